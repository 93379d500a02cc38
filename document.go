package reshape

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Op names an operation of this package. The names match the keys used
	// by pipeline files.
	Op string

	// Replacement describes a conditional value substitution for
	// [ReplaceValueIfEquals] and [ReplaceAllValuesIfEquals].
	//
	// IfEquals is compared without coercion, so nil matches only explicit
	// nulls. Use [record.Undefined] to match keys holding no value.
	Replacement struct {
		// Property is a string or a list of strings naming the keys to check.
		// ReplaceAllValuesIfEquals ignores it.
		Property    any
		IfEquals    any
		ReplaceWith any
	}

	// argRule validates one operation argument and describes the accepted
	// shape in an OpenAPI schema. expected is the shape named in errors.
	argRule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
		expected() string
	}
)

// appendDescription adds desc to the description of ref, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
