package task

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/taskreport/internal/schema"
	"github.com/AndreyAkinshin/taskreport/internal/topsort"
)

// File is the on-disk task file format.
//
//	tasks:
//	  build:
//	    title: Build binary
//	    actions: ["go build -o bin/app ."]
//	    file_dep: [main.go]
//	    targets: [bin/app]
//	    task_dep: [generate]
type File struct {
	Tasks map[string]Spec `yaml:"tasks"`
}

// Spec describes a single task in a task file.
type Spec struct {
	Title   string   `yaml:"title"`
	Actions []string `yaml:"actions"`
	FileDep []string `yaml:"file_dep"`
	Targets []string `yaml:"targets"`
	TaskDep []string `yaml:"task_dep"`
}

// Set is a validated collection of tasks.
type Set struct {
	tasks map[string]*Task
}

// LoadFile reads a YAML task file, checks it against the task file schema
// and parses it.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	if err := schema.ValidateTasks(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a YAML task file. Unknown fields are rejected and an
// empty document yields an empty set.
func Parse(data []byte) (*Set, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}
	return NewSet(f)
}

// NewSet builds a task set from a decoded file and validates dependencies.
func NewSet(f File) (*Set, error) {
	s := &Set{tasks: make(map[string]*Task, len(f.Tasks))}
	for name, spec := range f.Tasks {
		if name == "" {
			return nil, fmt.Errorf("task name must not be empty")
		}
		s.tasks[name] = New(name, spec.Actions...).
			WithTitle(spec.Title).
			WithFileDep(spec.FileDep...).
			WithTargets(spec.Targets...).
			WithTaskDep(spec.TaskDep...)
	}
	if err := topsort.Validate(s.graph()); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of tasks.
func (s *Set) Len() int { return len(s.tasks) }

// Names returns all task names sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Order returns the selected tasks and their dependencies in execution
// order. An empty selection means all tasks.
func (s *Set) Order(selected []string) ([]*Task, error) {
	if len(selected) == 0 {
		selected = nil
	}
	names, err := topsort.Sort(s.graph(), selected)
	if err != nil {
		return nil, err
	}
	ordered := make([]*Task, len(names))
	for i, name := range names {
		ordered[i] = s.tasks[name]
	}
	return ordered, nil
}

func (s *Set) graph() topsort.Graph {
	g := make(topsort.Graph, len(s.tasks))
	for name, t := range s.tasks {
		g[name] = t.TaskDep()
	}
	return g
}
