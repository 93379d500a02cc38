package transform

import (
	"unicode/utf8"

	"github.com/Gobd/reshape/record"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Iteratee computes the replacement key and value for one entry.
type Iteratee func(key string, value any) (newKey string, newValue any)

// Direction tells [Rename] how to read its pairs.
type Direction int

const (
	// Forward reads each pair as old key to new key.
	Forward Direction = iota
	// Reverse reads each pair as new key to old key.
	Reverse
)

// Case selects the mapping applied by [ChangeFirstCharCase].
type Case int

const (
	Upper Case = iota
	Lower
)

func (c Case) caser() cases.Caser {
	if c == Lower {
		return cases.Lower(language.Und)
	}
	return cases.Upper(language.Und)
}

// Map replaces every entry with the key and value returned by fn. An entry
// whose key is unchanged keeps its position. When two entries map to the same
// key the later one wins.
func Map(r *record.Record, fn Iteratee) {
	for _, p := range r.Pairs() {
		newKey, newValue := fn(p.Key, p.Value)
		if newKey != p.Key {
			r.Delete(p.Key)
		}
		r.Set(newKey, newValue)
	}
}

// Merge copies every entry of props into r. Existing keys are overwritten
// only when overwrite is set.
func Merge(r, props *record.Record, overwrite bool) {
	for _, p := range props.Pairs() {
		if overwrite || !r.Has(p.Key) {
			r.Set(p.Key, p.Value)
		}
	}
}

// Delete removes keys from r. Absent keys are ignored.
func Delete(r *record.Record, keys ...string) {
	for _, k := range keys {
		r.Delete(k)
	}
}

// Rename moves values between keys as listed in pairs, in order. A pair is a
// no-op when both names match or the source key is absent.
func Rename(r *record.Record, pairs []record.Pair, dir Direction) {
	for _, p := range pairs {
		to, _ := p.Value.(string)
		from := p.Key
		if dir == Reverse {
			from, to = to, from
		}
		if from == to {
			continue
		}
		v, ok := r.Get(from)
		if !ok {
			continue
		}
		r.Set(to, v)
		r.Delete(from)
	}
}

// LimitTo removes every key of r not listed in keys.
func LimitTo(r *record.Record, keys []string) {
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}
	for _, k := range r.Keys() {
		if _, ok := keep[k]; !ok {
			r.Delete(k)
		}
	}
}

// ReplaceValueIfEquals sets each listed key whose value strictly equals
// ifEquals to replaceWith. Missing keys are never created.
func ReplaceValueIfEquals(r *record.Record, keys []string, ifEquals, replaceWith any) {
	for _, k := range keys {
		if v, ok := r.Get(k); ok && record.StrictEqual(v, ifEquals) {
			r.Set(k, replaceWith)
		}
	}
}

// ReplaceAllValuesIfEquals sets every value of r that strictly equals
// ifEquals to replaceWith.
func ReplaceAllValuesIfEquals(r *record.Record, ifEquals, replaceWith any) {
	for _, p := range r.Pairs() {
		if record.StrictEqual(p.Value, ifEquals) {
			r.Set(p.Key, replaceWith)
		}
	}
}

// ChangeFirstCharCase maps the first character of every key to c and renames
// the keys that change. The renamed key is appended, or overwrites a key that
// already has that name.
func ChangeFirstCharCase(r *record.Record, c Case) {
	caser := c.caser()
	for _, k := range r.Keys() {
		first, size := utf8.DecodeRuneInString(k)
		if size == 0 {
			continue
		}
		orig := string(first)
		mapped := caser.String(orig)
		if mapped == orig {
			continue
		}
		v, _ := r.Get(k)
		r.Set(mapped+k[size:], v)
		r.Delete(k)
	}
}
