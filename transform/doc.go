// Package transform provides the per-record edits behind [reshape]: each
// function mutates a single [record.Record] in place. Functions that walk the
// keys of the record take a snapshot first, so keys added during the walk are
// not visited.
//
// These functions trust their arguments. Use the reshape package for the
// checked, dynamically typed API that also accepts sequences.
package transform
