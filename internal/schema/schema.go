// Package schema validates raw config documents against the embedded
// JSON Schema before any typed decoding is attempted. Validation is a
// pure function of the input value; it does no I/O and collects every
// violation instead of stopping at the first.
package schema

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	sch, err := jsonschema.CompileString("shuttle.schema.json", schemaJSON)
	if err != nil {
		// The schema is embedded at build time; this cannot be
		// triggered by user input.
		panic(fmt.Sprintf("embedded schema is invalid: %v", err))
	}
	return sch
}

// Document returns the embedded schema source.
func Document() string {
	return schemaJSON
}

// ValidationError is one schema violation.
type ValidationError struct {
	// Path is a JSON pointer into the validated document, empty for
	// document-level errors.
	Path    string
	Message string
}

func (e ValidationError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Validate checks a decoded JSON value (as produced by encoding/json
// into any) against the config schema. It returns every violation; an
// empty result means the document is valid.
func Validate(value any) []ValidationError {
	err := compiled.Validate(value)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []ValidationError{{Message: err.Error()}}
	}

	var out []ValidationError
	collectLeaves(ve, &out)
	return out
}

// collectLeaves flattens the validator's error tree into the leaf
// violations, which carry the most specific instance paths.
func collectLeaves(ve *jsonschema.ValidationError, out *[]ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, ValidationError{
			Path:    ve.InstanceLocation,
			Message: ve.Message,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}
