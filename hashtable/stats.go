package hashtable

import (
	"time"

	"github.com/detailyang/fastrand-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

const (
	sampleRate     = 128
	reportInterval = 10 * time.Second
)

// Stats holds the table's counters. Gets, Misses, Sets and Dels are sampled
// at 1/sampleRate and scaled back up when reported; the rest are exact.
// Counters are atomic only so the reporter goroutine can read them - table
// operations themselves are single-threaded.
type Stats struct {
	Gets   atomic.Uint64
	Misses atomic.Uint64
	Sets   atomic.Uint64
	Dels   atomic.Uint64

	Probes          atomic.Uint64
	TombstoneReuses atomic.Uint64
	Resizes         atomic.Uint64
}

var stats = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "shale_stats",
	Help: "Stats about performance of shale hash tables",
}, []string{"metric", "name"})

func (t *Table[K, V, P]) reportStats() {
	name := t.name
	for range time.Tick(reportInterval) {
		stats.WithLabelValues("gets", name).Set(float64(t.stats.Gets.Load() * sampleRate))
		stats.WithLabelValues("misses", name).Set(float64(t.stats.Misses.Load() * sampleRate))
		stats.WithLabelValues("sets", name).Set(float64(t.stats.Sets.Load() * sampleRate))
		stats.WithLabelValues("dels", name).Set(float64(t.stats.Dels.Load() * sampleRate))

		stats.WithLabelValues("probes", name).Set(float64(t.stats.Probes.Load()))
		stats.WithLabelValues("tombstone_reuses", name).Set(float64(t.stats.TombstoneReuses.Load()))
		stats.WithLabelValues("resizes", name).Set(float64(t.stats.Resizes.Load()))
	}
}

func maybeInc(shouldSample bool, a *atomic.Uint64) {
	if shouldSample {
		a.Inc()
	}
}

func shouldSample() bool {
	return (fastrand.FastRand() & (sampleRate - 1)) == 0
}
