package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64Deterministic(t *testing.T) {
	assert.Equal(t, Sum64([]byte("samara")), Sum64String("samara"))
	assert.NotEqual(t, Sum64String("samara"), Sum64String("thromboses"))
}

func TestFnv1aIndependentOfXxhash(t *testing.T) {
	// the secondary hash must not shadow the primary one
	for _, w := range []string{"abusing", "samara", "impolite", "tenancy", "linty"} {
		assert.NotEqual(t, Sum64String(w), Fnv1aString(w))
	}
}

func TestComparable(t *testing.T) {
	h := Comparable[int]()
	assert.Equal(t, h(42), h(42))
	spread := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		spread[h(i)] = true
	}
	assert.Greater(t, len(spread), 90)
}

func TestPositionalKnownValues(t *testing.T) {
	p := NewPositional()
	for k, want := range map[string]uint64{
		"a":               0,
		"z":               6548357500,
		"ab":              261934300,
		"hello":           3132368043848600,
		"0":               6810291800,
		"9":               9167700500,
		"abcdef1":         16756138074608100,
		"reproducibility": 1055289702398150773,
		"drivennesses99":  804454404926764443,
	} {
		assert.Equal(t, want, p.Hash(k), "key %q", k)
	}
}

func TestPositionalCaseInsensitive(t *testing.T) {
	p := NewPositional()
	assert.Equal(t, p.Hash("hello"), p.Hash("Hello"))
	assert.Equal(t, p.Hash("hello"), p.Hash("HELLO"))
}

func TestPositionalLongKeysUseTrailingChunks(t *testing.T) {
	p := NewPositional()
	// only the last 30 characters contribute
	long := "xxxxxcounterreactionbiomarkers"
	assert.Equal(t, p.Hash(long), p.Hash("y"+long))
	assert.NotEqual(t, p.Hash(long), p.Hash(long[1:]))
}

func TestRandomPositional(t *testing.T) {
	a := RandomPositional(rand.New(rand.NewSource(1)))
	b := RandomPositional(rand.New(rand.NewSource(2)))
	assert.NotEqual(t, a.RValues, b.RValues)
}
