package reshape

import "github.com/Gobd/reshape/record"

// target is data resolved at the facade boundary. Both implementations run
// the same per-record function.
type target interface {
	apply(fn func(*record.Record))
}

type single struct {
	r *record.Record
}

func (s single) apply(fn func(*record.Record)) {
	fn(s.r)
}

// fanOut applies fn to every element in order. Nil elements are skipped.
type fanOut record.Sequence

func (f fanOut) apply(fn func(*record.Record)) {
	for _, r := range f {
		if r != nil {
			fn(r)
		}
	}
}

func resolve(op Op, data any) (target, error) {
	switch d := data.(type) {
	case *record.Record:
		if d != nil {
			return single{d}, nil
		}
	case record.Sequence:
		return fanOut(d), nil
	case []*record.Record:
		return fanOut(d), nil
	}
	return nil, newDataTypeError(op)
}
