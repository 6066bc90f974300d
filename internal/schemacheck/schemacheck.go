// Package schemacheck validates JSON documents read from disk against
// embedded JSON Schemas before they are decoded.
package schemacheck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema document.
type Schema struct {
	Name       string
	Definition []byte
}

// InvalidDocumentError reports a document that failed to parse or did not
// satisfy its schema.
type InvalidDocumentError struct {
	Schema string
	Err    error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

// compiled caches compiled schemas by name.
var compiled sync.Map // map[string]*jsonschema.Schema

// Validate checks raw against schema. Parse and validation failures are
// returned as *InvalidDocumentError; a schema that fails to compile is a
// plain error.
func Validate(schema Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidDocumentError{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := compile(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := s.Validate(parsed); err != nil {
		return &InvalidDocumentError{Schema: schema.Name, Err: err}
	}
	return nil
}

func compile(schema Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var def any
	if err := json.Unmarshal(schema.Definition, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled.Store(schema.Name, s)
	return s, nil
}
