package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"shale/hashtable"
	"shale/lib/hash"
	"shale/probing"

	"github.com/alexflint/go-arg"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type LoadTestArg struct {
	NumKeys     int     `arg:"--num_keys" default:"100000"`
	Threshold   float64 `arg:"--threshold" default:"0.4"`
	Probing     string  `arg:"--probing" default:"linear"` // linear | double
	DelFraction float64 `arg:"--del_fraction" default:"0.2"`
	ReportStats bool    `arg:"--report_stats" default:"false"`
	Seed        int64   `arg:"--seed" default:"0"`
}

type table interface {
	Insert(key string, value int) error
	Find(key string) (*hashtable.Item[string, int], bool)
	Remove(key string)
	Len() int
	Capacity() int
	LoadFactor() float64
	Stats() *hashtable.Stats
}

func run(tab table, keys []string, delFraction float64, rng *rand.Rand) error {
	start := time.Now()
	for i, k := range keys {
		if err := tab.Insert(k, i); err != nil {
			return fmt.Errorf("insert %q: %w", k, err)
		}
	}
	zap.L().Info("inserts done",
		zap.Int("keys", len(keys)),
		zap.Int("len", tab.Len()),
		zap.Int("capacity", tab.Capacity()),
		zap.Float64("load_factor", tab.LoadFactor()),
		zap.Uint64("resizes", tab.Stats().Resizes.Load()),
		zap.Duration("took", time.Since(start)),
	)

	deleted := make(map[string]bool, int(delFraction*float64(len(keys))))
	for _, k := range keys {
		if rng.Float64() < delFraction {
			tab.Remove(k)
			deleted[k] = true
		}
	}

	start = time.Now()
	for i, k := range keys {
		item, ok := tab.Find(k)
		if deleted[k] {
			if ok {
				return fmt.Errorf("key %q still present after delete", k)
			}
			continue
		}
		if !ok {
			return fmt.Errorf("key %q lost", k)
		}
		if item.Value != i {
			return fmt.Errorf("key %q: got %d, want %d", k, item.Value, i)
		}
	}
	zap.L().Info("verification done",
		zap.Int("deleted", len(deleted)),
		zap.Int("len", tab.Len()),
		zap.Uint64("probes", tab.Stats().Probes.Load()),
		zap.Uint64("tombstone_reuses", tab.Stats().TombstoneReuses.Load()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func main() {
	var flags LoadTestArg
	arg.MustParse(&flags)

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to construct logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	rng := rand.New(rand.NewSource(flags.Seed))
	keys := make([]string, flags.NumKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d-%d", i, rng.Uint32())
	}
	keys = lo.Shuffle(keys)

	opts := hashtable.DefaultOptions[string]().
		WithThreshold(flags.Threshold).
		WithHash(hash.Sum64String).
		WithName("loadtest").
		WithReportStats(flags.ReportStats)

	var tab table
	switch flags.Probing {
	case "linear":
		tab = hashtable.NewLinear[string, int](opts)
	case "double":
		tab = hashtable.New[string, int](probing.NewDoubleHashString(), opts)
	default:
		zap.L().Fatal("unknown probing strategy", zap.String("probing", flags.Probing))
	}

	if err := run(tab, keys, flags.DelFraction, rng); err != nil {
		zap.L().Fatal("loadtest failed", zap.Error(err))
	}
	zap.L().Info("loadtest passed")
}
