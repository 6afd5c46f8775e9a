// Package rounding provides ULP-level directed rounding primitives on
// float64, built on a sign-magnitude to two's-complement bit encoding.
//
// The encoding maps every float64 onto a uint64 key such that
// incrementing/decrementing the key by one steps to the adjacent
// representable double in value order, including across the -0/+0 seam,
// with no discontinuity (the step wraps modulo 2^64 there, which is
// exactly what uint64 arithmetic does natively). Within either sign the
// key also orders the same way the values do, which is what lets
// Midpoint bisect directly on the integer key for same-sign domains
// (every caller in this library only ever inverts over positive x).
package rounding

import "math"

// key reinterprets x's IEEE-754 bits as a linearly ordered uint64: if the
// sign bit is set, the lower 63 bits are inverted, converting
// sign-magnitude to two's complement.
func key(x float64) uint64 {
	bits := math.Float64bits(x)
	mask := uint64(int64(bits) >> 63)
	return bits ^ (mask >> 1)
}

// unkey is the inverse of key.
func unkey(k uint64) float64 {
	mask := uint64(int64(k) >> 63)
	return math.Float64frombits(k ^ (mask >> 1))
}

// NextK returns the double delta ULPs above x in value order.
func NextK(x float64, delta uint64) float64 {
	return unkey(key(x) + delta)
}

// PrevK returns the double delta ULPs below x in value order.
func PrevK(x float64, delta uint64) float64 {
	return unkey(key(x) - delta)
}

// Next returns the smallest representable double strictly greater than x,
// except at the -0/+0 seam: -0 and +0 are adjacent keys, so Next(-0) is +0.
func Next(x float64) float64 {
	return NextK(x, 1)
}

// Prev returns the largest representable double strictly less than x,
// except at the -0/+0 seam: -0 and +0 are adjacent keys, so Prev(+0) is -0.
func Prev(x float64) float64 {
	return PrevK(x, 1)
}

// Midpoint returns the double halfway between low and high in key
// space, for low <= high of the same sign. Used to bisect directly on
// the encoded bit-key rather than on the (non-uniformly-spaced) real
// values themselves.
func Midpoint(low, high float64) float64 {
	lo, hi := key(low), key(high)
	return unkey(lo + (hi-lo)/2)
}
