package openapi

import (
	"github.com/Gobd/reshape"
	"github.com/getkin/kin-openapi/openapi3"
)

const componentsPrefix = "#/components/schemas/"

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(title, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// DocumentMust is like [Document] but panics on error.
func DocumentMust() *openapi3.T {
	doc, err := Document()
	if err != nil {
		panic(err)
	}
	return doc
}

// Document returns the reshape schema document at the current [reshape.Version].
func Document() (*openapi3.T, error) {
	doc := DocBase("reshape", "Arguments of reshape operations and pipeline files.", reshape.Version)
	if err := AddSchemas(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddSchemas stores the argument schema of every operation in the components
// of doc, followed by the Step and Pipeline schemas referring to them.
func AddSchemas(doc *openapi3.T) error {
	args, err := reshape.ArgumentSchemas()
	if err != nil {
		return err
	}
	if doc.Components == nil {
		doc.Components = &openapi3.Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = openapi3.Schemas{}
	}
	for name, ref := range args {
		doc.Components.Schemas[name] = ref
	}

	step := StepSchema(args)
	doc.Components.Schemas["Step"] = openapi3.NewSchemaRef("", step)
	doc.Components.Schemas["Pipeline"] = openapi3.NewSchemaRef("", PipelineSchema(step))
	return nil
}

// StepSchema returns a schema accepting one pipeline step: an op name
// together with the arguments that operation takes. args are argument
// schemas keyed by operation name, as returned by [reshape.ArgumentSchemas].
func StepSchema(args openapi3.Schemas) *openapi3.Schema {
	step := &openapi3.Schema{OneOf: openapi3.SchemaRefs{}}
	for _, op := range reshape.Ops() {
		ref, ok := args[string(op)]
		if !ok {
			continue
		}
		name := openapi3.NewStringSchema().WithEnum(string(op))
		tag := openapi3.NewObjectSchema().WithProperty("op", name)
		tag.Required = []string{"op"}

		alt := openapi3.NewAllOfSchema(tag)
		alt.AllOf = append(alt.AllOf, openapi3.NewSchemaRef(componentsPrefix+string(op), ref.Value))
		alt.Title = string(op)
		step.OneOf = append(step.OneOf, openapi3.NewSchemaRef("", alt))
	}
	return step
}

// PipelineSchema returns the schema of a pipeline file whose steps match step.
func PipelineSchema(step *openapi3.Schema) *openapi3.Schema {
	steps := openapi3.NewArraySchema()
	steps.Items = openapi3.NewSchemaRef(componentsPrefix+"Step", step)

	s := openapi3.NewObjectSchema().WithProperty("steps", steps)
	s.Required = []string{"steps"}
	return s
}
