package probing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearSequence(t *testing.T) {
	var p Linear[string]
	seq := p.Probe(7, 11, "ignored")
	var got []uint64
	for {
		loc, ok := seq.Next()
		if !ok {
			break
		}
		got = append(got, loc)
	}
	assert.Equal(t, []uint64{7, 8, 9, 10, 0, 1, 2, 3, 4, 5, 6}, got)
	// a finished sequence stays exhausted
	_, ok := seq.Next()
	assert.False(t, ok)
}

func TestLinearFullCycle(t *testing.T) {
	var p Linear[int]
	for _, m := range []uint64{11, 23, 47} {
		seq := p.Probe(3, m, 0)
		seen := make(map[uint64]bool)
		for {
			loc, ok := seq.Next()
			if !ok {
				break
			}
			assert.False(t, seen[loc], "slot %d visited twice", loc)
			seen[loc] = true
		}
		assert.Equal(t, int(m), len(seen))
	}
}

func TestUnprimedSequencePanics(t *testing.T) {
	var seq Sequence
	assert.Panics(t, func() { seq.Next() })
}

func TestDoubleHashStep(t *testing.T) {
	// with h2(k) = k, step = mod - k%mod for the largest mod < capacity
	p := NewDoubleHash(func(k uint64) uint64 { return k })

	// capacity 11 selects modulus 7
	seq := p.Probe(0, 11, 3)
	first, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(0), first)
	second, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(4), second) // step = 7 - 3%7 = 4

	// h2 a multiple of the modulus gives the maximum step, never zero
	seq = p.Probe(0, 11, 14)
	seq.Next()
	second, _ = seq.Next()
	assert.Equal(t, uint64(7), second)

	// capacity 47 selects modulus 43
	seq = p.Probe(1, 47, 10)
	seq.Next()
	second, _ = seq.Next()
	assert.Equal(t, uint64(1+43-10), second)
}

func TestDoubleHashFullCycle(t *testing.T) {
	p := NewDoubleHash(func(k uint64) uint64 { return k * 2654435761 })
	for _, m := range []uint64{11, 23, 97, 1597} {
		for key := uint64(0); key < 5; key++ {
			seq := p.Probe(key%m, m, key)
			seen := make(map[uint64]bool)
			for {
				loc, ok := seq.Next()
				if !ok {
					break
				}
				seen[loc] = true
			}
			assert.Equal(t, int(m), len(seen), "capacity %d key %d", m, key)
		}
	}
}

func TestDoubleHashString(t *testing.T) {
	p := NewDoubleHashString()
	seq := p.Probe(2, 23, "reproducibility")
	loc, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), loc)
	// distinct keys should usually pick distinct steps
	steps := make(map[uint64]bool)
	for _, w := range []string{"eruct", "acids", "flyspecks", "driveshafts", "volcanically"} {
		s := p.Probe(0, 1597, w)
		s.Next()
		loc, _ := s.Next()
		steps[loc] = true
	}
	assert.Greater(t, len(steps), 1)
}
