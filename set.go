package linearmap

import "iter"

// Set is a set of keys on top of the same linear probing table as Map.
// It doesn't store values, only keys.
type Set[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option) (*Set[K], error) {
	var s Set[K]
	if err := s.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Add(key K) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}

	_, existed := s.put(key, struct{}{})

	return !existed, nil
}

func (s *Set[K]) Has(key K) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}

	_, ok := s.get(key)

	return ok, nil
}

// Deletes a key. Returns whether the key was in the set.
func (s *Set[K]) Delete(key K) (bool, error) {
	if err := s.checkKey(key); err != nil {
		return false, err
	}

	_, ok := s.delete(key)

	return ok, nil
}

func (s *Set[K]) Len() int {
	return s.size
}

func (s *Set[K]) Keys() []K {
	return s.keys()
}

func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.keys() {
			if !yield(k) {
				return
			}
		}
	}
}
