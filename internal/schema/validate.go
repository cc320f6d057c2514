// Package schema validates taskreport documents against the embedded JSON schemas.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/AndreyAkinshin/taskreport/schema"
)

const (
	reportSchemaFile = "report.schema.json"
	tasksSchemaFile  = "tasks.schema.json"
)

var (
	reportSchema *jsonschema.Schema
	tasksSchema  *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{reportSchemaFile, tasksSchemaFile} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		reportSchema, err = compiler.Compile(reportSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile report schema: %w", err)
			return
		}

		tasksSchema, err = compiler.Compile(tasksSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile tasks schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateReport validates a document written by the json reporter.
func ValidateReport(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := reportSchema.Validate(v); err != nil {
		return fmt.Errorf("report validation failed: %w", err)
	}
	return nil
}

// ValidateTasks validates a YAML task file. An empty document is valid.
func ValidateTasks(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if v == nil {
		return nil
	}

	if err := tasksSchema.Validate(stringKeys(v)); err != nil {
		return fmt.Errorf("task file validation failed: %w", err)
	}
	return nil
}

// stringKeys converts YAML mappings with non-string keys, such as a task
// named 1, into the map[string]any form the validator understands.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = stringKeys(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i, e := range v {
			v[i] = stringKeys(e)
		}
		return v
	default:
		return v
	}
}
