package reshape

import (
	"errors"

	"github.com/Gobd/reshape/record"
	"github.com/Gobd/reshape/transform"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotString   = validation.NewError("reshape_not_string", "must be a string")
	errNotList     = validation.NewError("reshape_not_list", "must be a list of strings")
	errNotKeys     = validation.NewError("reshape_not_keys", "must be a string or a list of strings")
	errNotRecord   = validation.NewError("reshape_not_record", "must be a record")
	errNotIteratee = validation.NewError("reshape_not_function", "must be a func(string, any) (string, any)")
)

var isString = validation.By(func(value any) error {
	if _, ok := value.(string); !ok {
		return errNotString
	}
	return nil
})

// propertyError marks a replacement whose property field is malformed.
type propertyError struct {
	cause error
}

func (e propertyError) Error() string {
	return "property: " + e.cause.Error()
}

func (e propertyError) Unwrap() error {
	return e.cause
}

// recordRule accepts a record, or a Go map converted to one. When values is
// set every value must pass it.
type recordRule struct {
	values      validation.Rule
	valueSchema func() *openapi3.Schema
	desc        string
}

func (r recordRule) Validate(value any) error {
	rec, ok := asRecord(value)
	if !ok {
		return errNotRecord
	}
	if r.values == nil {
		return nil
	}
	errs := validation.Errors{}
	for _, p := range rec.Pairs() {
		errs[p.Key] = validation.Validate(p.Value, r.values)
	}
	return errs.Filter()
}

func (r recordRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	s := openapi3.NewObjectSchema()
	if r.valueSchema != nil {
		s = s.WithAdditionalProperties(r.valueSchema())
	}
	ref.Value = s
	appendDescription(ref, r.desc)
	schema.Required = append(schema.Required, name)
	return nil
}

func (r recordRule) expected() string { return "<Record>" }

// keysRule accepts a list of strings, and a single string when allowString
// is set.
type keysRule struct {
	allowString bool
	desc        string
}

func (r keysRule) Validate(value any) error {
	switch l := value.(type) {
	case string:
		if r.allowString {
			return nil
		}
	case []string:
		return nil
	case []any:
		if err := validation.Validate(l, validation.Each(isString)); err != nil {
			return r.err()
		}
		return nil
	}
	return r.err()
}

func (r keysRule) err() error {
	if r.allowString {
		return errNotKeys
	}
	return errNotList
}

func (r keysRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	list := openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	if r.allowString {
		ref.Value = openapi3.NewOneOfSchema(openapi3.NewStringSchema(), list)
	} else {
		ref.Value = list
	}
	appendDescription(ref, r.desc)
	schema.Required = append(schema.Required, name)
	return nil
}

func (r keysRule) expected() string {
	if r.allowString {
		return "<String> or <List>"
	}
	return "<List>"
}

type iterateeRule struct{}

func (iterateeRule) Validate(value any) error {
	if _, ok := asIteratee(value); !ok {
		return errNotIteratee
	}
	return nil
}

func (iterateeRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value = openapi3.NewStringSchema()
	appendDescription(ref, "name of a registered iteratee returning the new key and value of each entry")
	schema.Required = append(schema.Required, name)
	return nil
}

func (iterateeRule) expected() string { return "<Function>" }

// replacementRule accepts a Replacement or a record with the keys property,
// ifEquals and replaceWith. The property field is only checked when
// withProperty is set.
type replacementRule struct {
	withProperty bool
}

var propertyRule = keysRule{allowString: true}

func (r replacementRule) Validate(value any) error {
	rep, ok := asReplacement(value)
	if !ok {
		return errNotRecord
	}
	if r.withProperty {
		if err := propertyRule.Validate(rep.Property); err != nil {
			return propertyError{cause: err}
		}
	}
	return nil
}

func (r replacementRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	s := openapi3.NewObjectSchema()
	if r.withProperty {
		prop := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
		if err := propertyRule.Describe("property", s, prop); err != nil {
			return err
		}
		appendDescription(prop, "keys to check")
		s = s.WithPropertyRef("property", prop)
	}
	ifEquals := openapi3.NewSchema().WithNullable()
	ifEquals.Description = "value compared without coercion; omit to match keys holding no value"
	replaceWith := openapi3.NewSchema().WithNullable()
	replaceWith.Description = "replacement value; omit to store no value"
	s = s.WithProperty("ifEquals", ifEquals).WithProperty("replaceWith", replaceWith)
	ref.Value = s
	schema.Required = append(schema.Required, name)
	return nil
}

func (replacementRule) expected() string { return "<Record>" }

func asRecord(value any) (*record.Record, bool) {
	switch v := value.(type) {
	case *record.Record:
		return v, v != nil
	case map[string]any:
		return record.FromMap(v), true
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return record.FromMap(m), true
	}
	return nil, false
}

// asKeys converts a value accepted by keysRule.
func asKeys(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		keys := make([]string, 0, len(v))
		for _, k := range v {
			s, _ := k.(string)
			keys = append(keys, s)
		}
		return keys
	}
	return nil
}

func asIteratee(value any) (transform.Iteratee, bool) {
	var fn transform.Iteratee
	switch v := value.(type) {
	case transform.Iteratee:
		fn = v
	case func(string, any) (string, any):
		fn = v
	default:
		return nil, false
	}
	if fn == nil {
		return nil, false
	}
	return fn, true
}

func asReplacement(value any) (Replacement, bool) {
	switch v := value.(type) {
	case Replacement:
		return v, true
	case *Replacement:
		if v == nil {
			return Replacement{}, false
		}
		return *v, true
	}
	rec, ok := asRecord(value)
	if !ok {
		return Replacement{}, false
	}
	field := func(key string) any {
		if v, ok := rec.Get(key); ok {
			return v
		}
		return record.Undefined
	}
	return Replacement{
		Property:    field("property"),
		IfEquals:    field("ifEquals"),
		ReplaceWith: field("replaceWith"),
	}, true
}

func isPropertyError(err error) bool {
	var pe propertyError
	return errors.As(err, &pe)
}
