package reporter

import "time"

// Outcome is the terminal state of a task.
type Outcome string

// Outcome values. OutcomeUnset means no terminal event has been seen.
const (
	OutcomeUnset    Outcome = ""
	OutcomeSuccess  Outcome = "success"
	OutcomeFail     Outcome = "fail"
	OutcomeUpToDate Outcome = "up-to-date"
)

// StartedLayout formats ResultRecord.Started. Timestamps are in UTC.
const StartedLayout = "2006-01-02 15:04:05.000000"

// TaskResult tracks timing and outcome of a single task.
type TaskResult struct {
	name       string
	outcome    Outcome
	log        *string
	startedOn  time.Time
	finishedOn time.Time
}

// ResultRecord is the serialized form of a TaskResult.
type ResultRecord struct {
	Name    string   `json:"name"`
	Result  *string  `json:"result"`
	Log     *string  `json:"log"`
	Started *string  `json:"started"`
	Elapsed *float64 `json:"elapsed"`
}

// NewTaskResult creates an unset result for the named task.
func NewTaskResult(name string) *TaskResult {
	return &TaskResult{name: name}
}

// Name returns the task name.
func (r *TaskResult) Name() string { return r.name }

// Outcome returns the recorded outcome, or OutcomeUnset.
func (r *TaskResult) Outcome() Outcome { return r.outcome }

// Executed reports whether Execute has been called.
func (r *TaskResult) Executed() bool { return !r.startedOn.IsZero() }

// Execute marks the moment the task's actions started. It is ignored once
// the result is finalized.
func (r *TaskResult) Execute(now time.Time) {
	if r.outcome != OutcomeUnset {
		return
	}
	r.startedOn = now
}

// SetResult finalizes the result with its outcome and captured output.
func (r *TaskResult) SetResult(t Task, outcome Outcome, now time.Time) {
	r.finishedOn = now
	r.outcome = outcome
	log := "--err--\n" + capturedErr(t) + "--out--\n" + capturedOut(t)
	r.log = &log
}

// Elapsed returns the time between Execute and SetResult.
// ok is false when the task never executed, is not finished, or finished
// before it started.
func (r *TaskResult) Elapsed() (d time.Duration, ok bool) {
	if !r.Executed() || r.finishedOn.IsZero() || r.finishedOn.Before(r.startedOn) {
		return 0, false
	}
	return r.finishedOn.Sub(r.startedOn), true
}

// Record returns the serializable form of the result.
func (r *TaskResult) Record() ResultRecord {
	rec := ResultRecord{Name: r.name}
	if r.outcome != OutcomeUnset {
		s := string(r.outcome)
		rec.Result = &s
	}
	if r.log != nil {
		s := *r.log
		rec.Log = &s
	}
	if r.Executed() {
		started := r.startedOn.UTC().Format(StartedLayout)
		rec.Started = &started
		if d, ok := r.Elapsed(); ok {
			secs := d.Seconds()
			rec.Elapsed = &secs
		}
	}
	return rec
}
