// Package reporter renders task lifecycle events produced by a scheduler.
//
// A scheduler holds exactly one Reporter for a run and calls its methods
// synchronously as it processes tasks in dependency order. CompleteRun is
// called once, after the last task, and flushes any buffered output.
package reporter

import (
	"io"
	"os"
	"strings"
)

// Task is the view of a scheduled task that reporters consume.
type Task interface {
	// Name returns the task identifier, unique within a run.
	Name() string
	// Title returns the display title.
	Title() string
	// Actions returns the task's actions in execution order.
	Actions() []Action
}

// Action exposes the output captured while an action executed.
// Both methods return "" when nothing was captured.
type Action interface {
	Out() string
	Err() string
}

// Failure describes why a task (or the cleanup phase) failed.
type Failure interface {
	// Name returns a short classification, e.g. "CommandError".
	Name() string
	// Message returns a human-readable message. May be empty.
	Message() string
}

// Reporter receives lifecycle notifications for each task in a run.
//
// Errors returned by a Reporter are output-channel failures and are fatal
// to the run. Task failures are never returned.
type Reporter interface {
	StartTask(t Task) error
	ExecuteTask(t Task) error
	AddFailure(t Task, f Failure) error
	AddSuccess(t Task) error
	SkipUptodate(t Task) error
	CleanupError(f Failure) error
	CompleteRun() error
}

// Streams holds the output channels a reporter writes to.
type Streams struct {
	Out io.Writer // progress and machine-readable output
	Err io.Writer // diagnostics
}

// StdStreams returns Streams bound to the process stdout and stderr.
func StdStreams() Streams {
	return Streams{Out: os.Stdout, Err: os.Stderr}
}

// Options configures a reporter at construction.
type Options struct {
	ShowOut bool // include captured stdout in the failure digest
	ShowErr bool // include captured stderr in the failure digest

	// ExecutedOnly silences up-to-date tasks and tasks without actions.
	ExecutedOnly bool
}

// capturedOut concatenates the stdout captured by all actions of t.
func capturedOut(t Task) string {
	var sb strings.Builder
	for _, a := range t.Actions() {
		sb.WriteString(a.Out())
	}
	return sb.String()
}

// capturedErr concatenates the stderr captured by all actions of t.
func capturedErr(t Task) string {
	var sb strings.Builder
	for _, a := range t.Actions() {
		sb.WriteString(a.Err())
	}
	return sb.String()
}
