package probing

// A Prober produces the probe sequence a hash table walks when it resolves a
// collision. Strategies are stateless values; everything that varies per
// operation lives in the Sequence returned by Probe, so nested or re-entrant
// probes never alias each other's state.
type Prober[K any] interface {
	// Probe starts a fresh sequence for one table operation. start is the
	// slot the key's primary hash maps to, capacity is the current table
	// capacity. The key is only consulted by strategies that derive their
	// step from it.
	Probe(start, capacity uint64, key K) Sequence
}

// Sequence is the per-operation probe state. The zero value is unusable;
// obtain one from a Prober.
type Sequence struct {
	start    uint64
	capacity uint64
	step     uint64
	probes   uint64
	primed   bool
}

// NewSequence builds a primed sequence directly. It is the escape hatch for
// strategies outside this package; step must be coprime with capacity or the
// full-cycle guarantee is lost.
func NewSequence(start, capacity, step uint64) Sequence {
	return Sequence{
		start:    start,
		capacity: capacity,
		step:     step,
		primed:   true,
	}
}

// Next returns the next candidate slot. ok is false once the sequence has
// produced capacity candidates; by construction the step is coprime with the
// capacity, so every slot is visited exactly once before exhaustion.
//
// Calling Next on a Sequence that did not come from Probe is a programming
// error and panics.
func (s *Sequence) Next() (loc uint64, ok bool) {
	if !s.primed {
		panic("probing: Next called on a sequence not initialized by Probe")
	}
	if s.probes >= s.capacity {
		return 0, false
	}
	loc = (s.start + s.probes*s.step) % s.capacity
	s.probes++
	return loc, true
}

// Probes reports how many candidates the sequence has produced so far.
func (s *Sequence) Probes() uint64 {
	return s.probes
}
