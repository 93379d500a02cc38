package pipeline

import (
	"errors"
	"sync"

	"github.com/Gobd/reshape/transform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	iterateesMu sync.RWMutex
	iteratees   = map[string]transform.Iteratee{
		"upperKeys": caseKeys(func() cases.Caser { return cases.Upper(language.Und) }),
		"lowerKeys": caseKeys(func() cases.Caser { return cases.Lower(language.Und) }),
	}
)

// caseKeys maps every key through a fresh Caser. Casers keep state and are
// not shared between calls.
func caseKeys(newCaser func() cases.Caser) transform.Iteratee {
	return func(key string, value any) (string, any) {
		return newCaser().String(key), value
	}
}

// RegisterIteratee makes fn available to map steps under name, replacing any
// iteratee registered before with the same name.
func RegisterIteratee(name string, fn transform.Iteratee) error {
	if name == "" {
		return errors.New("pipeline: iteratee name is empty")
	}
	if fn == nil {
		return errors.New("pipeline: iteratee " + name + " is nil")
	}
	iterateesMu.Lock()
	defer iterateesMu.Unlock()
	iteratees[name] = fn
	return nil
}

func lookupIteratee(name string) (transform.Iteratee, bool) {
	iterateesMu.RLock()
	defer iterateesMu.RUnlock()
	fn, ok := iteratees[name]
	return fn, ok
}
