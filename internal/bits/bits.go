// Package bits implements small bit-arithmetic helpers used by the delta
// package, carried and trimmed from the teacher's internal/bits.
package bits

import "math/bits"

// Len32 returns the number of bits required to represent i, treating it as
// an unsigned 32-bit pattern. Used to size each delta miniblock's bit width.
func Len32(i int32) int {
	return bits.Len32(uint32(i))
}

// Len64 is the 64-bit equivalent of Len32.
func Len64(i int64) int {
	return bits.Len64(uint64(i))
}
