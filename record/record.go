package record

import (
	"slices"
	"sort"
)

// Undefined marks a key that is present but holds no value.
// It is distinct from nil, which stands for an explicit null.
var Undefined = undefined{}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// MarshalJSON writes null. Records skip Undefined entries; this covers
// Undefined nested in lists, where JSON has no way to leave a hole.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML writes null, like MarshalJSON.
func (undefined) MarshalYAML() (any, error) {
	return nil, nil
}

// Pair is a single key/value entry of a [Record].
type Pair struct {
	Key   string
	Value any
}

// P is a shorthand for Pair.
func P(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Record is a string-keyed mapping that keeps keys in insertion order.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]any
}

// Sequence is an ordered list of records.
type Sequence []*Record

// New creates a record holding pairs in the given order. A repeated key
// overwrites the earlier value and keeps the earlier position.
func New(pairs ...Pair) *Record {
	r := &Record{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]any, len(pairs)),
	}
	for _, p := range pairs {
		r.Set(p.Key, p.Value)
	}
	return r
}

// FromMap creates a record from m. Go maps have no order, so keys are
// inserted in sorted order.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := New()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the keys in order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Pairs returns a copy of the entries in order.
func (r *Record) Pairs() []Pair {
	pairs := make([]Pair, len(r.keys))
	for i, k := range r.keys {
		pairs[i] = Pair{Key: k, Value: r.values[k]}
	}
	return pairs
}

// Has reports whether key is present, whatever its value.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}
	delete(r.values, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
	return true
}

// Map returns the entries as a plain Go map. Order is lost.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.keys))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Clone returns a shallow copy of r.
func (r *Record) Clone() *Record {
	return New(r.Pairs()...)
}

// Equal reports whether r and o hold the same keys in the same order with
// deeply equal values.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !slices.Equal(r.keys, o.keys) {
		return false
	}
	for _, k := range r.keys {
		if !deepEqual(r.values[k], o.values[k]) {
			return false
		}
	}
	return true
}
