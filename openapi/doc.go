// Package openapi publishes the argument contract of every reshape operation
// as an OpenAPI 3 document, so pipeline files can be checked by any tool that
// understands JSON Schema.
//
// [Document] returns a complete document. Its components hold one schema per
// operation, named after the operation, plus "Step" and "Pipeline" describing
// the YAML read by the pipeline package:
//
//	doc, err := openapi.Document()
//	pipelineSchema := doc.Components.Schemas["Pipeline"].Value
//	err = pipelineSchema.VisitJSON(decoded)
package openapi
