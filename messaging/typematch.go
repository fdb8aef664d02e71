package messaging

import (
	"reflect"
	"sync"
)

// typePair keys the capability cache.
type typePair struct {
	t          reflect.Type
	capability reflect.Type
}

// implementsCache memoizes interface-satisfaction checks. Whether a type
// implements an interface never changes at runtime, so entries are never
// invalidated.
var implementsCache sync.Map // typePair -> bool

// satisfies reports whether runtime type t matches a registered key: the
// identical type, or an interface t implements.
func satisfies(t, key reflect.Type) bool {
	if t == key {
		return true
	}
	if t == nil || key == nil || key.Kind() != reflect.Interface {
		return false
	}
	pair := typePair{t: t, capability: key}
	if cached, ok := implementsCache.Load(pair); ok {
		return cached.(bool)
	}
	ok := t.Implements(key)
	implementsCache.Store(pair, ok)
	return ok
}

// tokensMatch compares channel tokens by value. Absent (nil) tokens match
// only each other; a token of an uncomparable type matches nothing.
func tokensMatch(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
