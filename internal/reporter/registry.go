package reporter

import "sort"

// Factory builds a reporter for one run.
type Factory func(streams Streams, opts Options) Reporter

// DefaultName is the reporter used when none is selected.
const DefaultName = "default"

type entry struct {
	factory     Factory
	description string
}

// registry maps reporter names accepted on the command line to factories.
// It is populated here and never modified.
var registry = map[string]entry{
	DefaultName: {
		factory:     func(s Streams, o Options) Reporter { return NewConsole(s, o) },
		description: "print task titles and a digest of failures",
	},
	"executed-only": {
		factory:     func(s Streams, o Options) Reporter { return NewExecutedOnly(s, o) },
		description: "print only tasks that execute actions",
	},
	"json": {
		factory:     func(s Streams, o Options) Reporter { return NewJSON(s, o) },
		description: "write results of all tasks as json when the run completes",
	},
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	e, ok := registry[name]
	if !ok {
		return nil, false
	}
	return e.factory, true
}

// Describe returns a one-line description of the named reporter, or ""
// if name is not registered.
func Describe(name string) string {
	return registry[name].description
}

// Names returns all registered reporter names sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
