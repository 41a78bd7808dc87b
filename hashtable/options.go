package hashtable

import (
	"shale/lib/hash"
)

// DefaultThreshold is the load factor at which a table grows. 0.4 keeps
// probe chains short for both strategies while wasting at most ~2.5x memory.
const DefaultThreshold = 0.4

type Options[K comparable] struct {
	// Threshold is the growth trigger: when (live + tombstoned) / capacity
	// reaches it, the table advances to the next capacity before placing the
	// incoming key. Must be in (0, 1].
	Threshold float64

	// Hash is the primary hash; nil means the runtime memory hash over K.
	Hash func(K) uint64

	// Equals is the key equality predicate; nil means ==.
	Equals func(a, b K) bool

	// Name labels this table's metrics - useful when reading stats from
	// multiple tables.
	Name string

	// ReportStats exports the table's counters to prometheus.
	ReportStats bool
}

func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Threshold: DefaultThreshold,
		Hash:      hash.Comparable[K](),
		Equals:    func(a, b K) bool { return a == b },
	}
}

func (o Options[K]) WithThreshold(alpha float64) Options[K] {
	o.Threshold = alpha
	return o
}

func (o Options[K]) WithHash(h func(K) uint64) Options[K] {
	o.Hash = h
	return o
}

func (o Options[K]) WithEquals(eq func(a, b K) bool) Options[K] {
	o.Equals = eq
	return o
}

func (o Options[K]) WithName(name string) Options[K] {
	o.Name = name
	return o
}

func (o Options[K]) WithReportStats(report bool) Options[K] {
	o.ReportStats = report
	return o
}
