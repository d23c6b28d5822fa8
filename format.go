// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// formatTraits bundles every constant the parsing pipeline needs that
// differs between binary32 and binary64. It plays the role a type
// parameter would in a generic implementation: the pipeline is written once
// against *formatTraits, and instantiated twice, as binary32Traits and
// binary64Traits. This mirrors how Go's own strconv package ports the same
// algorithm (floatInfo, eiselLemire32/64) without generics.
type formatTraits struct {
	mantissaExplicitBits int // significand bits, excluding the implicit one

	// Eisel-Lemire only needs to round ties to even for q in this range;
	// outside it the approximation is always exact or always safely
	// roundable without checking for a halfway case.
	minExponentRoundToEven int32
	maxExponentRoundToEven int32

	// fast-path bounds, in decimal exponent and mantissa magnitude
	minExponentFastPath    int64
	maxExponentFastPath    int64
	maxExponentDisguisedFastPath int64
	maxMantissaFastPath    uint64

	minimumExponent int32 // unbiased exponent of the smallest normal, minus 1 (the negated bias)
	infinitePower   int32 // biased exponent value reserved for Inf/NaN
	signIndex       uint  // bit index of the sign bit

	smallestPowerOfTen int32 // smallest decimal exponent for a nonzero value
	largestPowerOfTen  int32 // largest decimal exponent for a finite value

	pow10FastPath []float64 // exact powers of ten representable in-format
}

// binary32Traits holds the IEEE 754 binary32 (float32) constants.
var binary32Traits = formatTraits{
	mantissaExplicitBits:         23,
	minExponentRoundToEven:       -17,
	maxExponentRoundToEven:       10,
	minExponentFastPath:          -10,
	maxExponentFastPath:          10,
	maxExponentDisguisedFastPath: 17,
	maxMantissaFastPath:          2 << 23,
	minimumExponent:              -127,
	infinitePower:                0xFF,
	signIndex:                    31,
	smallestPowerOfTen:           -65,
	largestPowerOfTen:            38,
	pow10FastPath: []float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	},
}

// binary64Traits holds the IEEE 754 binary64 (float64) constants.
var binary64Traits = formatTraits{
	mantissaExplicitBits:         52,
	minExponentRoundToEven:       -4,
	maxExponentRoundToEven:       23,
	minExponentFastPath:          -22,
	maxExponentFastPath:          22,
	maxExponentDisguisedFastPath: 37,
	maxMantissaFastPath:          2 << 52,
	minimumExponent:              -1023,
	infinitePower:                0x7FF,
	signIndex:                    63,
	smallestPowerOfTen:           -342,
	largestPowerOfTen:            308,
	pow10FastPath: []float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
		1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
		1e21, 1e22,
	},
}

// int10Powers are exact powers of ten up to 10^15, used by the disguised
// fast path to rescale the mantissa of a literal whose decimal exponent
// exceeds the format's pure fast-path bound but whose value is still exactly
// representable after multiplying up.
var int10Powers = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
}
