package rtree

import "errors"

var (
	// ErrInvalidConfig is returned by New when d, m, or M violate
	// 2 ≤ m ≤ ⌈M/2⌉, M ≥ 2, or d ≥ 1.
	ErrInvalidConfig = errors.New("rtree: invalid configuration")

	// ErrKindMismatch backs a panic when an operation is applied to a
	// node of the wrong variant (leaf vs internal). It is a programmer
	// error, not meant to be recovered, but is named so tests can
	// assert on it via recover() and errors.Is.
	ErrKindMismatch = errors.New("rtree: operation applied to wrong node kind")

	// ErrDimMismatch backs a panic when a tuple or query MBR does not
	// have exactly d coordinates.
	ErrDimMismatch = errors.New("rtree: tuple dimensionality mismatch")
)
