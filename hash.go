package linearmap

import (
	"hash/maphash"
	"reflect"
)

type HashFunc[K comparable] func(K) uint64

// Hasher is implemented by keys that supply their own hash.
// Hash must be deterministic and consistent with ==.
type Hasher interface {
	Hash() uint64
}

// MakeDefaultHashFunc returns a hash function that prefers the key's own
// Hasher implementation and falls back to maphash.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		if h, ok := any(k).(Hasher); ok {
			return h.Hash()
		}

		return maphash.Comparable(seed, k)
	}
}

// Returns the preferred slot of a hash in a table of the given capacity.
func indexFor(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

// isNillable reports whether values of K can be nil.
func isNillable[K comparable]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isNilKey[K comparable](k K) bool {
	v := reflect.ValueOf(any(k))
	if !v.IsValid() {
		// nil interface
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
