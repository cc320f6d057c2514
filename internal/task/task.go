// Package task provides the task model consumed by the runner and reporters.
package task

import (
	"github.com/AndreyAkinshin/taskreport/internal/reporter"
)

// Task is a named unit of work made of zero or more shell actions.
// A task without actions only groups its dependencies.
type Task struct {
	name    string
	title   string
	actions []*CmdAction
	fileDep []string
	targets []string
	taskDep []string
}

// New creates a task with the given name and actions.
func New(name string, commands ...string) *Task {
	t := &Task{name: name}
	for _, c := range commands {
		t.actions = append(t.actions, NewCmdAction(c))
	}
	return t
}

// WithTitle sets the display title.
func (t *Task) WithTitle(title string) *Task {
	t.title = title
	return t
}

// WithFileDep sets the files the task reads.
func (t *Task) WithFileDep(paths ...string) *Task {
	t.fileDep = paths
	return t
}

// WithTargets sets the files the task produces.
func (t *Task) WithTargets(paths ...string) *Task {
	t.targets = paths
	return t
}

// WithTaskDep sets the tasks that must run before this one.
func (t *Task) WithTaskDep(names ...string) *Task {
	t.taskDep = names
	return t
}

// Name returns the task identifier.
func (t *Task) Name() string { return t.name }

// Title returns the display title, falling back to the name.
func (t *Task) Title() string {
	if t.title != "" {
		return t.title
	}
	return t.name
}

// Actions returns the task's actions as seen by reporters.
func (t *Task) Actions() []reporter.Action {
	actions := make([]reporter.Action, len(t.actions))
	for i, a := range t.actions {
		actions[i] = a
	}
	return actions
}

// CmdActions returns the executable actions in order.
func (t *Task) CmdActions() []*CmdAction { return t.actions }

// FileDep returns the file dependencies.
func (t *Task) FileDep() []string { return t.fileDep }

// Targets returns the files the task produces.
func (t *Task) Targets() []string { return t.targets }

// TaskDep returns the names of tasks this task depends on.
func (t *Task) TaskDep() []string { return t.taskDep }
