package topsort

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSort_Empty(t *testing.T) {
	result, err := Sort(Graph{}, nil)
	if err != nil {
		t.Errorf("Sort() error = %v, want nil", err)
	}
	if len(result) != 0 {
		t.Errorf("Sort() = %v, want empty", result)
	}
}

func TestSort_LinearChain(t *testing.T) {
	// c depends on b, b depends on a
	g := Graph{
		"a": nil,
		"b": {"a"},
		"c": {"b"},
	}
	result, err := Sort(g, nil)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(result, want) {
		t.Errorf("Sort() = %v, want %v", result, want)
	}
}

func TestSort_DeclarationOrder(t *testing.T) {
	// Dependencies run in the order the task lists them, not by name.
	g := Graph{
		"all":   {"zeta", "alpha"},
		"zeta":  nil,
		"alpha": nil,
	}
	result, err := Sort(g, []string{"all"})
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []string{"zeta", "alpha", "all"}; !reflect.DeepEqual(result, want) {
		t.Errorf("Sort() = %v, want %v", result, want)
	}
}

func TestSort_Diamond(t *testing.T) {
	g := Graph{
		"a": nil,
		"b": {"a"},
		"c": {"a"},
		"d": {"b", "c"},
	}
	result, err := Sort(g, []string{"d"})
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []string{"a", "b", "c", "d"}; !reflect.DeepEqual(result, want) {
		t.Errorf("Sort() = %v, want %v", result, want)
	}
}

func TestSort_SelectedNodes(t *testing.T) {
	g := Graph{
		"a":     nil,
		"b":     {"a"},
		"other": nil,
	}
	result, err := Sort(g, []string{"b"})
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(result, want) {
		t.Errorf("Sort() = %v, want %v", result, want)
	}
}

func TestSort_NilVsEmptySelection(t *testing.T) {
	g := Graph{"a": nil}

	all, err := Sort(g, nil)
	if err != nil || len(all) != 1 {
		t.Errorf("Sort(nil) = %v, %v; want [a], nil", all, err)
	}

	none, err := Sort(g, []string{})
	if err != nil || len(none) != 0 {
		t.Errorf("Sort([]) = %v, %v; want [], nil", none, err)
	}
}

func TestSort_Cycle(t *testing.T) {
	g := Graph{
		"a": {"c"},
		"b": {"a"},
		"c": {"b"},
	}
	_, err := Sort(g, []string{"a"})

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("Sort() error = %v, want *CycleError", err)
	}
	if want := []string{"a", "c", "b", "a"}; !reflect.DeepEqual(cycle.Path, want) {
		t.Errorf("cycle path = %v, want %v", cycle.Path, want)
	}
	if got := err.Error(); got != "circular dependency: a -> c -> b -> a" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSort_CycleWithBranch(t *testing.T) {
	g := Graph{
		"root": {"x"},
		"x":    {"y"},
		"y":    {"x"},
	}
	_, err := Sort(g, []string{"root"})

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("Sort() error = %v, want *CycleError", err)
	}
	if want := []string{"x", "y", "x"}; !reflect.DeepEqual(cycle.Path, want) {
		t.Errorf("cycle path = %v, want %v", cycle.Path, want)
	}
}

func TestSort_SelfReference(t *testing.T) {
	_, err := Sort(Graph{"a": {"a"}}, nil)

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("Sort() error = %v, want *CycleError", err)
	}
	if want := []string{"a", "a"}; !reflect.DeepEqual(cycle.Path, want) {
		t.Errorf("cycle path = %v, want %v", cycle.Path, want)
	}
}

func TestSort_UndefinedDependency(t *testing.T) {
	_, err := Sort(Graph{"a": {"missing"}}, nil)

	var undef *UndefinedError
	if !errors.As(err, &undef) {
		t.Fatalf("Sort() error = %v, want *UndefinedError", err)
	}
	if undef.Task != "a" || undef.Dep != "missing" {
		t.Errorf("UndefinedError = %+v", undef)
	}
}

func TestSort_UnknownSelection(t *testing.T) {
	_, err := Sort(Graph{"a": nil}, []string{"b"})
	if err == nil || !strings.Contains(err.Error(), `task "b" not found`) {
		t.Errorf("Sort() error = %v, want not found", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Graph
		wantErr string
	}{
		{"valid", Graph{"a": nil, "b": {"a"}}, ""},
		{"undefined", Graph{"b": {"zz"}, "a": {"yy"}}, `task "a" depends on undefined task "yy"`},
		{"cycle", Graph{"a": {"b"}, "b": {"a"}}, "circular dependency: a -> b -> a"},
		{"disconnected cycle", Graph{"ok": nil, "x": {"y"}, "y": {"x"}}, "circular dependency: x -> y -> x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.g)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
