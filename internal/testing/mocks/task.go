// Package mocks provides shared test doubles for taskreport packages.
package mocks

import (
	"sync/atomic"

	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

// Task implements reporter.Task for testing.
// Use NewTask() to create instances with a fluent builder API.
type Task struct {
	name    string
	title   string
	actions []reporter.Action

	// Tracking (thread-safe)
	actionsCalls int32
}

// NewTask creates a new mock task with the given name and no actions.
func NewTask(name string) *Task {
	return &Task{name: name, title: name}
}

// WithTitle sets the task title.
func (m *Task) WithTitle(title string) *Task {
	m.title = title
	return m
}

// WithAction appends an action that captured the given streams.
func (m *Task) WithAction(out, err string) *Task {
	m.actions = append(m.actions, Action{StdOut: out, StdErr: err})
	return m
}

// reporter.Task interface implementation

func (m *Task) Name() string  { return m.name }
func (m *Task) Title() string { return m.title }

func (m *Task) Actions() []reporter.Action {
	atomic.AddInt32(&m.actionsCalls, 1)
	return m.actions
}

// ActionsCalls returns the number of times Actions was called.
func (m *Task) ActionsCalls() int32 {
	return atomic.LoadInt32(&m.actionsCalls)
}

// Action implements reporter.Action with fixed captured output.
type Action struct {
	StdOut string
	StdErr string
}

func (a Action) Out() string { return a.StdOut }
func (a Action) Err() string { return a.StdErr }

// Failure implements reporter.Failure.
type Failure struct {
	Kind string
	Msg  string
}

// NewFailure creates a failure with the given classification and message.
func NewFailure(kind, msg string) Failure {
	return Failure{Kind: kind, Msg: msg}
}

func (f Failure) Name() string    { return f.Kind }
func (f Failure) Message() string { return f.Msg }
