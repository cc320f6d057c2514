package reporter

import "sync"

// EventKind names a recorded reporter call.
type EventKind string

// Event kinds recorded by Fake.
const (
	EventStart        EventKind = "start"
	EventExecute      EventKind = "execute"
	EventFail         EventKind = "fail"
	EventSuccess      EventKind = "success"
	EventSkip         EventKind = "skip"
	EventCleanupError EventKind = "cleanup_error"
)

// Event is one recorded call. Task is nil for EventCleanupError.
type Event struct {
	Kind EventKind
	Task Task
}

// Fake records every call it receives. Used to verify the sequence of
// calls a scheduler makes.
type Fake struct {
	mu     sync.Mutex
	events []Event
}

// NewFake creates an empty Fake.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) record(kind EventKind, t Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, Event{Kind: kind, Task: t})
	return nil
}

func (f *Fake) StartTask(t Task) error             { return f.record(EventStart, t) }
func (f *Fake) ExecuteTask(t Task) error           { return f.record(EventExecute, t) }
func (f *Fake) AddFailure(t Task, _ Failure) error { return f.record(EventFail, t) }
func (f *Fake) AddSuccess(t Task) error            { return f.record(EventSuccess, t) }
func (f *Fake) SkipUptodate(t Task) error          { return f.record(EventSkip, t) }
func (f *Fake) CleanupError(Failure) error         { return f.record(EventCleanupError, nil) }

// CompleteRun records nothing.
func (f *Fake) CompleteRun() error { return nil }

// Events returns a copy of the recorded events in call order.
func (f *Fake) Events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.events...)
}
