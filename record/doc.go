// Package record defines the data that reshape transforms operate on.
//
// A [Record] is a string-keyed mapping that remembers insertion order, so a
// record decoded from JSON or YAML is written back with its keys where they
// were. Overwriting a key keeps its position, new keys are appended:
//
//	r := record.New(record.P("a", 1), record.P("b", "bats"))
//	r.Set("c", "color")   // a, b, c
//	r.Set("a", 2)         // a, b, c
//	r.Delete("b")         // a, c
//
// Three states of a key are kept apart: absent (Get reports ok == false),
// present and null (the value is nil), and present but holding no value
// (the value is [Undefined]). [StrictEqual] compares values without any
// coercion between them.
package record
