package hashtable

import (
	"fmt"
	"io"

	"shale/lib/hash"
	"shale/probing"
)

// Item is a key/value pair stored in the table. Pointers to it returned by
// Find stay valid across resizes (slots move, items don't), but mutating Key
// through one corrupts the table.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// slot is one storage location. A nil *slot is empty; deleted marks a
// tombstone, which keeps probe chains intact until the next resize drops it.
type slot[K comparable, V any] struct {
	Item[K, V]
	deleted bool
}

// Table is a hash table using open addressing, generic over the key and
// value types and the probing strategy. It is single-threaded: callers that
// share one across goroutines must wrap it in their own mutex.
type Table[K comparable, V any, P probing.Prober[K]] struct {
	prober    P
	hash      func(K) uint64
	equals    func(a, b K) bool
	threshold float64
	name      string

	slots    []*slot[K, V]
	live     uint64 // occupied, non-tombstoned slots
	dead     uint64 // tombstoned slots
	capIndex int    // index into capacities; only ever advances

	stats Stats
}

// New creates a table at the smallest capacity, driven by the given probing
// strategy. Zero-valued or out-of-range option fields fall back to defaults.
func New[K comparable, V any, P probing.Prober[K]](prober P, opts Options[K]) *Table[K, V, P] {
	if opts.Hash == nil {
		opts.Hash = hash.Comparable[K]()
	}
	if opts.Equals == nil {
		opts.Equals = func(a, b K) bool { return a == b }
	}
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		opts.Threshold = DefaultThreshold
	}
	t := &Table[K, V, P]{
		prober:    prober,
		hash:      opts.Hash,
		equals:    opts.Equals,
		threshold: opts.Threshold,
		name:      opts.Name,
		slots:     make([]*slot[K, V], capacities[0]),
	}
	if opts.ReportStats {
		go t.reportStats()
	}
	return t
}

// NewLinear is New with linear probing, the default strategy.
func NewLinear[K comparable, V any](opts Options[K]) *Table[K, V, probing.Linear[K]] {
	return New[K, V](probing.Linear[K]{}, opts)
}

// Len returns the number of live entries.
func (t *Table[K, V, P]) Len() int {
	return int(t.live)
}

func (t *Table[K, V, P]) Empty() bool {
	return t.live == 0
}

// Capacity returns the current slot count.
func (t *Table[K, V, P]) Capacity() int {
	return len(t.slots)
}

// LoadFactor returns the fraction of slots that are occupied or tombstoned,
// the quantity the growth threshold is compared against.
func (t *Table[K, V, P]) LoadFactor() float64 {
	return float64(t.live+t.dead) / float64(len(t.slots))
}

// lookup walks key's probe sequence and returns its live slot, or nil. The
// walk stops at the first empty slot: a key inserted later than a given
// tombstone always sits past it, never past an empty slot.
func (t *Table[K, V, P]) lookup(key K) *slot[K, V] {
	m := uint64(len(t.slots))
	seq := t.prober.Probe(t.hash(key)%m, m, key)
	defer func() { t.stats.Probes.Add(seq.Probes()) }()
	for {
		loc, ok := seq.Next()
		if !ok {
			return nil
		}
		s := t.slots[loc]
		if s == nil {
			return nil
		}
		if !s.deleted && t.equals(s.Key, key) {
			return s
		}
	}
}

// Insert stores value under key, overwriting the value of an existing live
// entry. The load factor is checked against the threshold before probing, so
// a key is never placed into an over-threshold table; the growth this
// triggers can fail with ErrCapacityExhausted. ErrTableFull is returned if
// the probe sequence yields no usable slot, which a sub-1.0 threshold makes
// unreachable in practice.
func (t *Table[K, V, P]) Insert(key K, value V) error {
	maybeInc(shouldSample(), &t.stats.Sets)
	if t.LoadFactor() >= t.threshold {
		if err := t.grow(); err != nil {
			return err
		}
	}
	m := uint64(len(t.slots))
	seq := t.prober.Probe(t.hash(key)%m, m, key)
	var tomb *slot[K, V] // first tombstone on the walk, reclaimed if no live match
	for {
		loc, ok := seq.Next()
		if !ok {
			break
		}
		s := t.slots[loc]
		if s == nil {
			if tomb != nil {
				break
			}
			t.slots[loc] = &slot[K, V]{Item: Item[K, V]{Key: key, Value: value}}
			t.live++
			t.stats.Probes.Add(seq.Probes())
			return nil
		}
		if s.deleted {
			if tomb == nil {
				tomb = s
			}
			continue
		}
		if t.equals(s.Key, key) {
			s.Value = value
			t.stats.Probes.Add(seq.Probes())
			return nil
		}
	}
	t.stats.Probes.Add(seq.Probes())
	if tomb != nil {
		tomb.Item = Item[K, V]{Key: key, Value: value}
		tomb.deleted = false
		t.live++
		t.dead--
		t.stats.TombstoneReuses.Inc()
		return nil
	}
	return ErrTableFull
}

// Remove tombstones key's slot. Removing an absent key is a no-op. The slot
// is physically reclaimed by a later colliding insert or the next resize.
func (t *Table[K, V, P]) Remove(key K) {
	maybeInc(shouldSample(), &t.stats.Dels)
	s := t.lookup(key)
	if s == nil {
		return
	}
	s.deleted = true
	t.live--
	t.dead++
}

// Find returns the stored item for key, or nil, false. It never mutates the
// table; the caller may update the value through the returned pointer.
func (t *Table[K, V, P]) Find(key K) (*Item[K, V], bool) {
	maybeInc(shouldSample(), &t.stats.Gets)
	s := t.lookup(key)
	if s == nil {
		maybeInc(shouldSample(), &t.stats.Misses)
		return nil, false
	}
	return &s.Item, true
}

// At returns the value for key, or ErrKeyNotFound.
func (t *Table[K, V, P]) At(key K) (V, error) {
	maybeInc(shouldSample(), &t.stats.Gets)
	s := t.lookup(key)
	if s == nil {
		maybeInc(shouldSample(), &t.stats.Misses)
		var zero V
		return zero, ErrKeyNotFound
	}
	return s.Value, nil
}

// Ref returns a mutable reference to key's value, first inserting a zero
// value if the key is absent. The only errors are the ones Insert can
// return.
func (t *Table[K, V, P]) Ref(key K) (*V, error) {
	if s := t.lookup(key); s != nil {
		return &s.Value, nil
	}
	var zero V
	if err := t.Insert(key, zero); err != nil {
		return nil, err
	}
	return &t.lookup(key).Value, nil
}

// grow advances to the next capacity and rehashes every live entry, dropping
// tombstones. The new slot array is fully built before the table is touched,
// so a failed grow leaves the table exactly as it was.
func (t *Table[K, V, P]) grow() error {
	if t.capIndex+1 >= len(capacities) {
		return ErrCapacityExhausted
	}
	m := capacities[t.capIndex+1]
	fresh := make([]*slot[K, V], m)
	for _, s := range t.slots {
		if s == nil || s.deleted {
			continue
		}
		seq := t.prober.Probe(t.hash(s.Key)%m, m, s.Key)
		placed := false
		for {
			loc, ok := seq.Next()
			if !ok {
				break
			}
			if fresh[loc] == nil {
				fresh[loc] = s
				placed = true
				break
			}
		}
		if !placed {
			// unreachable while the strategy's step stays coprime with m
			return ErrTableFull
		}
	}
	t.capIndex++
	t.slots = fresh
	t.dead = 0
	t.stats.Resizes.Inc()
	return nil
}

// Dump writes one "index: key => value" line per live slot, in slot order.
// Debugging aid only; the format is not stable.
func (t *Table[K, V, P]) Dump(w io.Writer) {
	for i, s := range t.slots {
		if s == nil || s.deleted {
			continue
		}
		fmt.Fprintf(w, "%d: %v => %v\n", i, s.Key, s.Value)
	}
}

// Stats returns the table's counters.
func (t *Table[K, V, P]) Stats() *Stats {
	return &t.stats
}
