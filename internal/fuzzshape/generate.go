// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fuzzshape generates random, but grammatically valid, decimal
// float literals for the round-trip and shape-coverage properties that
// parse_table_test.go exercises. It is the dual of the parsing pipeline:
// where that pipeline turns a literal into a float, this package turns a
// shape description into a literal, so tests can assert the two compose
// to an identity (modulo precision loss the shape deliberately forces).
package fuzzshape

import (
	"math/rand"
	"strconv"
	"strings"
)

// Decimal exponent range a binary64 literal can carry without being
// trivially zero or infinite; mirrors the smallest/largest power of ten
// the parsing pipeline's Eisel-Lemire stage accepts before routing to
// its zero/Inf early-outs.
const (
	minDecimalExponent = -342
	maxDecimalExponent = 308
)

// Shape describes the syntactic knobs a generated literal varies along.
type Shape struct {
	Negative     bool
	IntDigits    int  // digit count before the decimal point, 0 allowed
	FracDigits   int  // digit count after the decimal point, 0 allowed
	LeadingZeros int  // extra zeros prepended to the integer run
	TrailingZeros int // extra zeros appended to the fraction run
	Exponent     int  // explicit exponent; UseExponent false omits it
	UseExponent  bool
	UpperE       bool // spell the exponent marker as 'E' instead of 'e'
}

// longDigitRunMin/Max bound the very-long digit runs Random occasionally
// produces, large enough to push bigDecimal past maxBigDecimalDigits (768)
// during slow-path left shifts — the classic "halfway" torture-test shape
// this domain is known for, comparable to spec.md §9's own "≈800 digits"
// capacity note.
const (
	longDigitRunMin = 500
	longDigitRunMax = 800
)

// Random returns a Shape drawn from r, biased toward the digit counts and
// exponent magnitudes that exercise all three parsing tiers: small shapes
// land on the fast path, mid-sized many-digit shapes force Eisel-Lemire,
// and shapes near the format's decimal exponent extremes force the slow
// path. One shape in five additionally stretches either the integer or
// fraction digit run out to longDigitRunMin..longDigitRunMax digits, so the
// slow path's multi-iteration shift loops and its digit-buffer overflow
// truncation are both regularly exercised, not just its fast, short-digit
// branches.
func Random(r *rand.Rand) Shape {
	intDigits := r.Intn(25)
	fracDigits := r.Intn(25)
	if r.Intn(5) == 0 {
		long := longDigitRunMin + r.Intn(longDigitRunMax-longDigitRunMin+1)
		if r.Intn(2) == 0 {
			intDigits = long
		} else {
			fracDigits = long
		}
	}
	return Shape{
		Negative:      r.Intn(2) == 0,
		IntDigits:     intDigits,
		FracDigits:    fracDigits,
		LeadingZeros:  r.Intn(4),
		TrailingZeros: r.Intn(4),
		Exponent:      minDecimalExponent + r.Intn(maxDecimalExponent-minDecimalExponent+1),
		UseExponent:   r.Intn(2) == 0,
		UpperE:        r.Intn(2) == 0,
	}
}

// Literal renders shape as a decimal float literal using r to fill in
// digit values, returning the literal text alongside the float64 it
// denotes (computed via strconv, as an independent oracle from the
// pipeline under test).
func Literal(r *rand.Rand, shape Shape) (text string, value float64) {
	var b strings.Builder
	if shape.Negative {
		b.WriteByte('-')
	}
	for i := 0; i < shape.LeadingZeros; i++ {
		b.WriteByte('0')
	}
	intDigits := digitRun(r, shape.IntDigits)
	b.WriteString(intDigits)
	if shape.IntDigits == 0 && shape.LeadingZeros == 0 {
		b.WriteByte('0')
	}
	if shape.FracDigits > 0 || shape.TrailingZeros > 0 {
		b.WriteByte('.')
		b.WriteString(digitRun(r, shape.FracDigits))
		for i := 0; i < shape.TrailingZeros; i++ {
			b.WriteByte('0')
		}
	}
	if shape.UseExponent {
		if shape.UpperE {
			b.WriteByte('E')
		} else {
			b.WriteByte('e')
		}
		b.WriteString(strconv.Itoa(shape.Exponent))
	}

	text = b.String()
	value, _ = strconv.ParseFloat(text, 64)
	return text, value
}

// digitRun returns n random decimal digits, including runs that start
// with zero; Shape.LeadingZeros/TrailingZeros controls zero-padding
// explicitly instead, so callers don't need this to dodge leading zeros.
func digitRun(r *rand.Rand, n int) string {
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + r.Intn(10))
	}
	return string(buf)
}

// Special returns one of the case-varied inf/infinity/nan spellings the
// parsing pipeline accepts, optionally signed.
func Special(r *rand.Rand) string {
	spellings := []string{"inf", "Inf", "INF", "infinity", "Infinity", "INFINITY", "nan", "NaN", "NAN"}
	s := spellings[r.Intn(len(spellings))]
	switch r.Intn(3) {
	case 0:
		return "-" + s
	case 1:
		return "+" + s
	default:
		return s
	}
}
