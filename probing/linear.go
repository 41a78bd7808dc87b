package probing

// Linear probes the slots start, start+1, start+2, ... mod capacity.
type Linear[K any] struct{}

func (Linear[K]) Probe(start, capacity uint64, _ K) Sequence {
	return Sequence{
		start:    start,
		capacity: capacity,
		step:     1,
		primed:   true,
	}
}
