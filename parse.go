// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"errors"
	"math"
)

// ErrEmpty is returned when the input has zero bytes.
var ErrEmpty = errors.New("fastfloat: cannot parse float from empty string")

// ErrInvalid is returned when the input has bytes but they do not match
// the numeric-literal grammar, or match only a strict prefix of it.
var ErrInvalid = errors.New("fastfloat: invalid float literal")

// ParseFloat64 parses s as an IEEE 754 binary64 value, rounding to
// nearest with ties to even. It accepts an optionally signed decimal
// literal with an optional fraction and an optional e/E exponent, plus
// "inf", "infinity" and "nan" in any capitalization, optionally signed.
func ParseFloat64(s string) (float64, error) {
	word, err := parseBits(&binary64Traits, s)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(word), nil
}

// ParseFloat32 parses s as an IEEE 754 binary32 value, rounding to
// nearest with ties to even.
func ParseFloat32(s string) (float32, error) {
	word, err := parseBits(&binary32Traits, s)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(word)), nil
}

// parseBits runs the full lex -> fast path -> Eisel-Lemire -> slow path
// pipeline and assembles the final IEEE bit pattern.
func parseBits(traits *formatTraits, s string) (uint64, error) {
	raw := []byte(s)
	if len(raw) == 0 {
		return 0, ErrEmpty
	}

	num, consumed, ok := lex(raw)
	if !ok {
		neg, isInf, isNaN, consumed2, specialOK := lexSpecial(raw)
		if !specialOK || consumed2 != len(raw) {
			return 0, ErrInvalid
		}
		return specialBits(traits, neg, isInf, isNaN), nil
	}
	if consumed != len(raw) {
		return 0, ErrInvalid
	}

	if value, ok := tryFastPath(traits, num); ok {
		return floatBits(traits, value), nil
	}

	result := eiselLemire(traits, num.exponent, num.mantissa)
	if num.manyDigits {
		alt := eiselLemire(traits, num.exponent, num.mantissa+1)
		if alt != result {
			result.power2 = -1
		}
	}
	if result.needsSlowPath() {
		result = slowPath(traits, raw)
	}

	word := result.mantissa
	word |= uint64(result.power2) << uint(traits.mantissaExplicitBits)
	if num.negative {
		word |= uint64(1) << traits.signIndex
	}
	return word, nil
}

// specialBits assembles the bit pattern for a signed infinity or NaN.
func specialBits(traits *formatTraits, negative, isInf, isNaN bool) uint64 {
	var word uint64
	switch {
	case isInf:
		word = uint64(traits.infinitePower) << uint(traits.mantissaExplicitBits)
	case isNaN:
		// A quiet NaN: biased exponent all-ones, top mantissa bit set.
		word = uint64(traits.infinitePower) << uint(traits.mantissaExplicitBits)
		word |= uint64(1) << uint(traits.mantissaExplicitBits-1)
	}
	if negative {
		word |= uint64(1) << traits.signIndex
	}
	return word
}

// floatBits reinterprets a fast-path float64 result (already carrying its
// sign) as the raw bit pattern parseBits returns. The fast path computes in
// float64 for both formats; for binary32 the value is narrowed with
// float32(value) here.
func floatBits(traits *formatTraits, value float64) uint64 {
	if traits.mantissaExplicitBits == binary32Traits.mantissaExplicitBits {
		return uint64(math.Float32bits(float32(value)))
	}
	return math.Float64bits(value)
}
