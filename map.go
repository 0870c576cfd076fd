package linearmap

import "iter"

// Map is an open addressing hash map with linear probing.
// All entries live in a single slice of slots. The map doubles its capacity
// right before an insert would fill the last free slot, and it never shrinks.
// Deletion shifts displaced entries backward instead of leaving tombstones,
// so lookups don't slow down under heavy delete/insert churn.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given initial capacity, which must be positive.
func New[K comparable, V any](capacity int, opts ...Option) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Returns the value stored under the key, if any.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	if err := m.checkKey(key); err != nil {
		return m.emptyV, false, err
	}

	v, ok := m.get(key)

	return v, ok, nil
}

func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	if err := m.checkKey(key); err != nil {
		return false, err
	}

	_, res := m.locate(m.slots, key)

	return res == probeFound, nil
}

// Puts a value under the key.
// Returns the previous value and whether the key was already present.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
	if err := m.checkKey(key); err != nil {
		return m.emptyV, false, err
	}

	old, replaced := m.put(key, value)

	return old, replaced, nil
}

// Removes the key. Returns the removed value and whether the key was present.
func (m *Map[K, V]) Remove(key K) (V, bool, error) {
	if err := m.checkKey(key); err != nil {
		return m.emptyV, false, err
	}

	v, ok := m.delete(key)

	return v, ok, nil
}

func (m *Map[K, V]) Len() int {
	return m.size
}

// Size is the same as Len.
func (m *Map[K, V]) Size() int {
	return m.size
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current number of slots.
func (m *Map[K, V]) Capacity() int {
	return len(m.slots)
}

// Keys returns a snapshot of the stored keys in slot order.
func (m *Map[K, V]) Keys() []K {
	return m.keys()
}

// Entries returns a snapshot of the stored entries in slot order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	return m.entries()
}

// All iterates over a snapshot of the entries taken when iteration starts,
// so the map may be modified inside the loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}
