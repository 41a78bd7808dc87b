package hash

import (
	"math/rand"
)

const positionalBase = 36

// defaultRValues are fixed so that hashes are reproducible in tests and
// benchmarks; use RandomPositional for a per-process randomized hasher.
var defaultRValues = [5]uint64{983132572, 1468777056, 552714139, 984953261, 261934300}

// Positional is a rolling base-36 hash for alphanumeric string keys. The key
// is split into up to five chunks of six characters counted from the end,
// each chunk is read as a base-36 number (a-z then 0-9), and the chunk values
// are combined as a weighted sum with the five r-values. Keys longer than 30
// characters contribute only their last 30.
//
// It is an auxiliary keyed hash for workloads with short human-readable keys;
// tables default to the xxhash/maphash functions in this package instead.
type Positional struct {
	RValues [5]uint64
}

// NewPositional returns a positional hasher with the fixed default r-values.
func NewPositional() Positional {
	return Positional{RValues: defaultRValues}
}

// RandomPositional returns a positional hasher with r-values drawn from rng.
func RandomPositional(rng *rand.Rand) Positional {
	var p Positional
	for i := range p.RValues {
		p.RValues[i] = uint64(rng.Uint32())
	}
	return p
}

// Hash hashes k. Characters outside [a-zA-Z0-9] count as 'a'.
func (p Positional) Hash(k string) uint64 {
	var w [5]uint64
	n := len(k)
	for chunk := 0; chunk < 5; chunk++ {
		end := n - chunk*6
		if end <= 0 {
			break
		}
		start := end - 6
		if start < 0 {
			start = 0
		}
		var v uint64
		for i := start; i < end; i++ {
			v = v*positionalBase + digit(k[i])
		}
		// chunks fill w back to front: the trailing chunk lands in w[4]
		w[4-chunk] = v
	}
	var h uint64
	for i, r := range p.RValues {
		h += r * w[i]
	}
	return h
}

// digit maps 'a'/'A'..'z'/'Z' to 0..25 and '0'..'9' to 26..35.
func digit(c byte) uint64 {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c - 'a')
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A')
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 26
	}
	return 0
}
