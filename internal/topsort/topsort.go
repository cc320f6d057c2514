// Package topsort orders tasks so that every task follows its dependencies.
package topsort

import (
	"fmt"
	"sort"
	"strings"
)

// Graph maps a task name to the names of the tasks it depends on.
type Graph map[string][]string

// CycleError reports a dependency cycle. Path starts and ends with the
// same task.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "circular dependency: " + strings.Join(e.Path, " -> ")
}

// UndefinedError reports a dependency on a task that does not exist.
type UndefinedError struct {
	Task string
	Dep  string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("task %q depends on undefined task %q", e.Task, e.Dep)
}

// Sort returns the requested tasks and their transitive dependencies in
// execution order. Dependencies are visited in declaration order, and
// requested tasks in the order given. A nil selection means every task,
// by name.
func Sort(g Graph, selected []string) ([]string, error) {
	if selected == nil {
		selected = make([]string, 0, len(g))
		for name := range g {
			selected = append(selected, name)
		}
		sort.Strings(selected)
	}

	var order []string
	done := make(map[string]bool, len(g))
	var stack []string
	onStack := make(map[string]bool)

	var visit func(name, from string) error
	visit = func(name, from string) error {
		if done[name] {
			return nil
		}
		if onStack[name] {
			return &CycleError{Path: cyclePath(stack, name)}
		}
		deps, ok := g[name]
		if !ok {
			if from == "" {
				return fmt.Errorf("task %q not found", name)
			}
			return &UndefinedError{Task: from, Dep: name}
		}

		onStack[name] = true
		stack = append(stack, name)
		for _, dep := range deps {
			if err := visit(dep, name); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		onStack[name] = false

		done[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range selected {
		if err := visit(name, ""); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Validate checks that every dependency is defined and that the graph is
// acyclic. Undefined dependencies are reported first, in name order.
func Validate(g Graph) error {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range g[name] {
			if _, ok := g[dep]; !ok {
				return &UndefinedError{Task: name, Dep: dep}
			}
		}
	}

	_, err := Sort(g, names)
	return err
}

// cyclePath extracts the cycle closing at name from the visit stack.
func cyclePath(stack []string, name string) []string {
	start := 0
	for i, n := range stack {
		if n == name {
			start = i
			break
		}
	}
	path := append([]string(nil), stack[start:]...)
	return append(path, name)
}
