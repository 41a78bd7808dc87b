package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
	"github.com/segmentio/fasthash/fnv1a"
)

// Sum64 is the standardized hash for byte-string keys in shale. Tables and
// probers that need independent hashes should combine this with Fnv1aString
// rather than re-seeding xxhash.
func Sum64(k []byte) uint64 {
	return xxhash.Sum64(k)
}

// Sum64String is Sum64 for string keys without copying.
func Sum64String(k string) uint64 {
	return xxhash.Sum64String(k)
}

// Fnv1aString hashes a string with fnv1a. Used as the secondary hash for
// double hashing, where independence from xxhash matters more than speed.
func Fnv1aString(k string) uint64 {
	return fnv1a.HashString64(k)
}

// Comparable returns a hash function over any comparable key type, backed by
// the runtime's memory hash with a per-process seed. This is the default
// primary hash for tables whose callers don't supply one.
func Comparable[K comparable]() func(K) uint64 {
	h := maphash.NewHasher[K]()
	return h.Hash
}
