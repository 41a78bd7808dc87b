package probing

import (
	"github.com/segmentio/fasthash/fnv1a"
)

// moduli are the step moduli for double hashing, one odd prime just under
// each supported table capacity. Every entry is smaller than the capacity it
// pairs with and the capacities themselves are prime, so any step in
// [1, modulus] is coprime with the capacity and the probe sequence reaches
// every slot. Extending the capacity table requires extending this one too.
var moduli = [...]uint64{
	7, 19, 43, 89, 193, 389, 787, 1583, 3191, 6397,
	12841, 25703, 51431, 102871, 205721, 411503, 823051,
	1646221, 3292463, 6584957, 13169963, 26339921,
	52679927, 105359939, 210719881, 421439749, 842879563,
	1685759113,
}

// DoubleHash derives the probe step from a secondary hash of the key, which
// spreads keys that collide on their primary hash across different probe
// chains instead of clustering them the way a fixed step does.
type DoubleHash[K any] struct {
	// Hash2 is the secondary hash. It must be set and should be independent
	// of the table's primary hash.
	Hash2 func(K) uint64
}

// NewDoubleHash returns a double-hashing strategy using h2 as the secondary
// hash.
func NewDoubleHash[K any](h2 func(K) uint64) DoubleHash[K] {
	return DoubleHash[K]{Hash2: h2}
}

// NewDoubleHashString returns a double-hashing strategy for string keys with
// fnv1a as the secondary hash. Pair it with a table whose primary hash is
// xxhash so the two stay independent.
func NewDoubleHashString() DoubleHash[string] {
	return DoubleHash[string]{Hash2: fnv1a.HashString64}
}

func (d DoubleHash[K]) Probe(start, capacity uint64, key K) Sequence {
	mod := moduli[0]
	for _, m := range moduli {
		if m >= capacity {
			break
		}
		mod = m
	}
	// step is always in [1, mod]: mod - x for x in [0, mod-1].
	step := mod - d.Hash2(key)%mod
	return Sequence{
		start:    start,
		capacity: capacity,
		step:     step,
		primed:   true,
	}
}
