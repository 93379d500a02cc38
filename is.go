package reshape

import "github.com/Gobd/reshape/record"

// IsRecord reports whether v is a single record that the operations of this
// package accept as data.
func IsRecord(v any) bool {
	r, ok := v.(*record.Record)
	return ok && r != nil
}

// IsSequence reports whether v is a sequence of records. A nil sequence is an
// empty one.
func IsSequence(v any) bool {
	switch v.(type) {
	case record.Sequence, []*record.Record:
		return true
	default:
		return false
	}
}
