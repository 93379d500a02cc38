// Package pipeline runs a declared list of reshape operations against
// records, so a whole transformation can live in a YAML file:
//
//	steps:
//	  - op: rename
//	    props: {b: mammals, c: orange}
//	  - op: delete
//	    props: [a]
//	  - op: map
//	    iteratee: upperKeys
//	  - op: capitalizeFirstChar
//
// Steps are checked when the pipeline is built. Each step's props are
// validated against the OpenAPI schema of its operation (see
// [reshape.ArgumentSchema]) and map steps name an iteratee added with
// [RegisterIteratee]. YAML mappings in props keep their document order.
package pipeline
