// Package errors provides structured error types and exit codes for taskreport.
//
// A *TaskError doubles as the failure information handed to reporters: its
// Name is the classification shown in failure digests.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // All tasks succeeded or were up to date
	ExitTaskFailed   = 1 // At least one task failed
	ExitConfigError  = 2 // Invalid task file, unknown reporter, bad flags
	ExitReportFailed = 3 // Writing the report itself failed
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	KindTaskFailed ErrorKind = iota
	KindTaskError
	KindCommandError
	KindDependencyError
	KindCleanupError
	KindConfig
	KindReport
)

var kindNames = map[ErrorKind]string{
	KindTaskFailed:      "TaskFailed",
	KindTaskError:       "TaskError",
	KindCommandError:    "CommandError",
	KindDependencyError: "DependencyError",
	KindCleanupError:    "CleanupError",
	KindConfig:          "ConfigError",
	KindReport:          "ReportError",
}

// String returns the classification name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// TaskError is the base error type for taskreport.
type TaskError struct {
	Kind  ErrorKind
	Msg   string
	Task  string // Task name if applicable
	Cause error  // Underlying error
}

func (e *TaskError) Error() string {
	if e.Task != "" {
		return fmt.Sprintf("[%s] %s", e.Task, e.Msg)
	}
	return e.Msg
}

func (e *TaskError) Unwrap() error {
	return e.Cause
}

// Name returns the classification of the error, e.g. "CommandError".
func (e *TaskError) Name() string {
	return e.Kind.String()
}

// Message returns the human-readable message without the task prefix.
func (e *TaskError) Message() string {
	return e.Msg
}

// ExitCode returns the appropriate exit code for this error.
func (e *TaskError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindReport:
		return ExitReportFailed
	default:
		return ExitTaskFailed
	}
}

// TaskFailed reports that a task ran to completion but did not succeed.
func TaskFailed(task, message string) *TaskError {
	return &TaskError{Kind: KindTaskFailed, Task: task, Msg: message}
}

// CommandError reports that an action of task could not complete.
func CommandError(task string, cause error) *TaskError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &TaskError{Kind: KindCommandError, Task: task, Msg: msg, Cause: cause}
}

// Task reports that task could not be run for a reason other than a
// failing action, e.g. an unreadable file dependency.
func Task(task string, cause error) *TaskError {
	return &TaskError{Kind: KindTaskError, Task: task, Msg: cause.Error(), Cause: cause}
}

// DependencyError reports that task was not run because dep failed.
func DependencyError(task, dep string) *TaskError {
	return &TaskError{
		Kind: KindDependencyError,
		Task: task,
		Msg:  fmt.Sprintf("dependency %q failed", dep),
	}
}

// Cleanup reports a failure during teardown, unrelated to a single task.
func Cleanup(cause error) *TaskError {
	return &TaskError{Kind: KindCleanupError, Msg: cause.Error(), Cause: cause}
}

// Config creates a new configuration error.
func Config(message string) *TaskError {
	return &TaskError{Kind: KindConfig, Msg: message}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *TaskError {
	return Config(fmt.Sprintf(format, args...))
}

// Report wraps a failure to write the report.
func Report(cause error) *TaskError {
	return &TaskError{Kind: KindReport, Msg: fmt.Sprintf("write report: %v", cause), Cause: cause}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var te *TaskError
	if stderrors.As(err, &te) {
		return te.ExitCode()
	}
	return ExitTaskFailed
}
