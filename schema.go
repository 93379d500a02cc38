package reshape

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ArgumentSchema returns an OpenAPI object schema with one property per
// argument of op, built from the same rules that validate those arguments.
// Operations without arguments get an empty object schema.
func ArgumentSchema(op Op) (*openapi3.Schema, error) {
	o, ok := operations[op]
	if !ok {
		return nil, newUnknownOperationError(op)
	}
	schema := openapi3.NewObjectSchema()
	schema.Title = string(op)
	for _, a := range o.args {
		ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if err := a.rule.Describe(a.name, schema, ref); err != nil {
			return nil, err
		}
		schema.WithPropertyRef(a.name, ref)
	}
	return schema, nil
}

// ArgumentSchemas returns the argument schema of every operation keyed by
// operation name.
func ArgumentSchemas() (openapi3.Schemas, error) {
	out := make(openapi3.Schemas, len(opOrder))
	for _, op := range opOrder {
		s, err := ArgumentSchema(op)
		if err != nil {
			return nil, err
		}
		out[string(op)] = openapi3.NewSchemaRef("", s)
	}
	return out, nil
}
