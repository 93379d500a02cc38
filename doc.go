// Package reshape applies structural edits to records and sequences of
// records in place: renaming, deleting, limiting, merging, defaulting, value
// substitution and key casing.
//
// Data is a [record.Record] or a [record.Sequence]. Every operation mutates
// the data it is given and returns only an error:
//
//	data := record.New(record.P("a", 1), record.P("b", "bats"), record.P("c", "color"))
//	err := reshape.Rename(data, map[string]any{"b": "mammals", "c": "orange"})
//	// data is now {a: 1, mammals: "bats", orange: "color"}
//
// On a sequence the same edit is applied to every element in order, with the
// same arguments.
//
// Arguments are checked before anything is touched, so a rejected call leaves
// the data as it was. Failures are typed: [*DataTypeError] for data that is
// neither a record nor a sequence, [*ArgumentTypeError] for a malformed
// argument and [*PropertyArgumentError] for a bad `property` given to
// [ReplaceValueIfEquals]. Each has a stable message and a Code.
//
// Sub-packages:
//   - record – the ordered record type, strict equality, JSON and YAML codecs
//   - transform – the unchecked per-record edits
//   - pipeline – YAML-declared sequences of operations
//   - openapi – an OpenAPI document of operation arguments and pipeline files
package reshape
