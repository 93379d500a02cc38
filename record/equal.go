package record

import "reflect"

// StrictEqual reports whether a and b are the same value without any type
// coercion. Values of different dynamic types are never equal, so int(1) is
// not float64(1) and nil is not [Undefined]. Comparable values are compared
// with ==, which keeps NaN unequal to itself. Slices, maps and funcs are
// equal only when they are the same reference. Other values that == cannot
// compare, such as structs holding a slice, are never equal, not even to
// themselves.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

func deepEqual(a, b any) bool {
	ra, aok := a.(*Record)
	rb, bok := b.(*Record)
	if aok && bok {
		return ra.Equal(rb)
	}
	return reflect.DeepEqual(a, b)
}
