// Package conv provides checked integer conversions for the engine.
//
// StateIDs are uint32 while Go slices are indexed by int. These helpers
// narrow with a bounds check and panic on overflow, since an automaton that
// large means the builder is being misused, not that the pattern is bad.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
