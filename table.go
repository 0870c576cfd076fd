package linearmap

import (
	"fmt"
	"hash/maphash"

	"go.uber.org/zap"
)

type slot[K comparable, V any] struct {
	key   K
	value V

	// Empty slots are the zero value, so a freshly made slice is all empty.
	occupied bool
}

// Entry is a key/value pair copied out of the table.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type probeResult uint8

const (
	probeFound probeResult = iota
	probeFree
	probeFull
)

type table[K comparable, V any] struct {
	slots []slot[K, V]
	size  int
	grows int

	hashFunc    HashFunc[K]
	nillableKey bool

	logger *zap.Logger

	emptyV V
}

type Option func(o *options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets up a zap logger for growth and invariant breach events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	t.slots = make([]slot[K, V], capacity)
	t.size = 0
	t.grows = 0
	t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	t.nillableKey = isNillable[K]()
	t.logger = o.logger.Named("linearmap")

	return nil
}

func (t *table[K, V]) checkKey(key K) error {
	if t.nillableKey && isNilKey(key) {
		return ErrInvalidKey
	}

	return nil
}

// locate scans slots circularly from the key's preferred index, at most
// len(slots) steps. It stops on the matching key or on the first empty slot.
func (t *table[K, V]) locate(slots []slot[K, V], key K) (int, probeResult) {
	capacity := len(slots)
	i := indexFor(t.hashFunc(key), capacity)

	for range capacity {
		s := &slots[i]
		if !s.occupied {
			return i, probeFree
		}

		if s.key == key {
			return i, probeFound
		}

		i++
		if i == capacity {
			i = 0
		}
	}

	return -1, probeFull
}

func (t *table[K, V]) get(key K) (V, bool) {
	i, res := t.locate(t.slots, key)
	if res != probeFound {
		return t.emptyV, false
	}

	return t.slots[i].value, true
}

func (t *table[K, V]) put(key K, value V) (V, bool) {
	// Growing up front keeps at least one empty slot for locate to stop on.
	if t.size == len(t.slots) {
		t.grow()
	}

	i, res := t.locate(t.slots, key)
	switch res {
	case probeFound:
		s := &t.slots[i]
		old := s.value
		s.value = value

		return old, true
	case probeFree:
		t.slots[i] = slot[K, V]{key: key, value: value, occupied: true}
		t.size++

		return t.emptyV, false
	default:
		panic(t.fullError("put", len(t.slots)))
	}
}

func (t *table[K, V]) grow() {
	oldSlots := t.slots
	newSlots := make([]slot[K, V], len(oldSlots)*2)

	for idx := range oldSlots {
		if !oldSlots[idx].occupied {
			continue
		}

		i, res := t.locate(newSlots, oldSlots[idx].key)
		if res != probeFree {
			panic(t.fullError("grow", len(newSlots)))
		}

		newSlots[i] = oldSlots[idx]
	}

	t.slots = newSlots
	t.grows++

	t.logger.Debug("table grown",
		zap.Int("old_capacity", len(oldSlots)),
		zap.Int("new_capacity", len(newSlots)),
		zap.Int("size", t.size),
	)
}

// delete removes the key and closes the gap with backward shifting, so no
// tombstones are ever left behind.
func (t *table[K, V]) delete(key K) (V, bool) {
	hole, res := t.locate(t.slots, key)
	if res != probeFound {
		return t.emptyV, false
	}

	removed := t.slots[hole].value
	t.slots[hole] = slot[K, V]{}
	t.size--

	capacity := len(t.slots)
	j := hole

	for step := 1; step < capacity; step++ {
		j++
		if j == capacity {
			j = 0
		}

		s := &t.slots[j]
		if !s.occupied {
			break
		}

		// An entry whose preferred slot lies in (hole, j] is still reachable
		// without the hole, leave it where it is.
		p := indexFor(t.hashFunc(s.key), capacity)
		if cyclicBetween(hole, p, j) {
			continue
		}

		t.slots[hole] = *s
		*s = slot[K, V]{}
		hole = j
	}

	return removed, true
}

// cyclicBetween reports whether p lies in the circular half-open range (lo, hi].
func cyclicBetween(lo, p, hi int) bool {
	if lo <= hi {
		return lo < p && p <= hi
	}

	return p > lo || p <= hi
}

func (t *table[K, V]) fullError(op string, capacity int) error {
	err := fmt.Errorf("%w: %s found no free slot, size=%d capacity=%d", errTableFull, op, t.size, capacity)
	t.logger.Error("table invariant broken", zap.String("op", op), zap.Error(err))

	return err
}

// Reset empties every slot and keeps the current capacity.
func (t *table[K, V]) Reset() {
	clear(t.slots)
	t.size = 0
}

func (t *table[K, V]) entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.size)
	for i := range t.slots {
		if s := &t.slots[i]; s.occupied {
			out = append(out, Entry[K, V]{Key: s.key, Value: s.value})
		}
	}

	return out
}

func (t *table[K, V]) keys() []K {
	out := make([]K, 0, t.size)
	for i := range t.slots {
		if s := &t.slots[i]; s.occupied {
			out = append(out, s.key)
		}
	}

	return out
}

func (t *table[K, V]) stats() Stats {
	capacity := len(t.slots)
	st := Stats{
		Size:       t.size,
		Capacity:   capacity,
		LoadFactor: float32(t.size) / float32(capacity),
		Grows:      t.grows,
	}

	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}

		p := indexFor(t.hashFunc(s.key), capacity)
		dist := i - p
		if dist < 0 {
			dist += capacity
		}

		st.MaxProbeLength = max(st.MaxProbeLength, dist)
	}

	return st
}
