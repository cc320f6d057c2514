package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// JSON collects one TaskResult per task and writes them all as a JSON
// array when the run completes.
type JSON struct {
	out io.Writer
	now Clock

	mu      sync.Mutex
	order   []string
	results map[string]*TaskResult
}

// NewJSON creates an aggregating reporter. ShowOut and ShowErr are ignored:
// the log of every task always contains both streams.
func NewJSON(streams Streams, _ Options) *JSON {
	return &JSON{
		out:     streams.Out,
		now:     time.Now,
		results: make(map[string]*TaskResult),
	}
}

// WithClock replaces the time source. Intended for tests.
func (j *JSON) WithClock(c Clock) *JSON {
	j.now = c
	return j
}

// StartTask registers a fresh result for t, replacing any prior one.
func (j *JSON) StartTask(t Task) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reset(t.Name())
	return nil
}

// ExecuteTask records the start time of t.
func (j *JSON) ExecuteTask(t Task) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result(t.Name()).Execute(j.now())
	return nil
}

// AddFailure finalizes t as failed.
func (j *JSON) AddFailure(t Task, _ Failure) error {
	return j.finish(t, OutcomeFail)
}

// AddSuccess finalizes t as successful.
func (j *JSON) AddSuccess(t Task) error {
	return j.finish(t, OutcomeSuccess)
}

// SkipUptodate finalizes t as up-to-date.
func (j *JSON) SkipUptodate(t Task) error {
	return j.finish(t, OutcomeUpToDate)
}

// CleanupError is a no-op: cleanup failures are not tied to a task and
// have no place in the per-task document.
func (j *JSON) CleanupError(Failure) error { return nil }

// CompleteRun writes every result, in the order tasks were first started.
func (j *JSON) CompleteRun() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := EncodeRecords(j.out, j.records()); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// Results returns the tracked results in report order.
func (j *JSON) Results() []*TaskResult {
	j.mu.Lock()
	defer j.mu.Unlock()

	results := make([]*TaskResult, 0, len(j.order))
	for _, name := range j.order {
		results = append(results, j.results[name])
	}
	return results
}

// EncodeRecords writes records as an indented JSON array.
func EncodeRecords(w io.Writer, records []ResultRecord) error {
	if records == nil {
		records = []ResultRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

func (j *JSON) finish(t Task, outcome Outcome) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result(t.Name()).SetResult(t, outcome, j.now())
	return nil
}

func (j *JSON) records() []ResultRecord {
	records := make([]ResultRecord, 0, len(j.order))
	for _, name := range j.order {
		records = append(records, j.results[name].Record())
	}
	return records
}

// reset installs a fresh result under name, keeping its original position.
func (j *JSON) reset(name string) *TaskResult {
	if _, ok := j.results[name]; !ok {
		j.order = append(j.order, name)
	}
	r := NewTaskResult(name)
	j.results[name] = r
	return r
}

// result returns the result for name, creating it for tasks that were
// never started.
func (j *JSON) result(name string) *TaskResult {
	if r, ok := j.results[name]; ok {
		return r
	}
	return j.reset(name)
}
