package reporter

import (
	"errors"
	"time"
)

type stubAction struct {
	out, err string
}

func (a stubAction) Out() string { return a.out }
func (a stubAction) Err() string { return a.err }

type stubTask struct {
	name    string
	title   string
	actions []Action
}

func (t *stubTask) Name() string      { return t.name }
func (t *stubTask) Title() string     { return t.title }
func (t *stubTask) Actions() []Action { return t.actions }

func newTask(name string, actions ...Action) *stubTask {
	return &stubTask{name: name, title: name, actions: actions}
}

type stubFailure struct {
	name, msg string
}

func (f stubFailure) Name() string    { return f.name }
func (f stubFailure) Message() string { return f.msg }

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

// stepClock returns a clock starting at start that advances by step on
// every call.
func stepClock(start time.Time, step time.Duration) Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
