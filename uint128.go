package fastfloat

import "math/bits"

// uint128 is an unsigned 128-bit integer split into two 64-bit halves, used
// to hold the normalized mantissa of a power of five during the
// Eisel-Lemire computation. It carries no arithmetic beyond what that
// algorithm needs.
type uint128 struct {
	hi, lo uint64
}

// mul64 returns the full 128-bit product of x and y.
func mul64(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{hi: hi, lo: lo}
}

// powerOfFive returns the normalized mantissa of 5^q, for q in
// [minPowerOfFiveQ, maxPowerOfFiveQ]. The caller must range-check q first.
func powerOfFive(q int64) uint128 {
	return powersOfFive[q-minPowerOfFiveQ]
}
