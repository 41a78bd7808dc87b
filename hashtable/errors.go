package hashtable

import "errors"

var (
	// ErrKeyNotFound is returned by At for keys with no live slot.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTableFull is returned by Insert when a full probe sequence finds no
	// usable slot. With a growth threshold below 1.0 this should never happen;
	// it exists so a pathological strategy fails deterministically instead of
	// spinning.
	ErrTableFull = errors.New("no usable slot in probe sequence")

	// ErrCapacityExhausted is returned when a resize is needed but the table
	// is already at the largest supported capacity.
	ErrCapacityExhausted = errors.New("capacity schedule exhausted")
)
