// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "strings"

// lex scans the prefix of s matching the numeric-literal grammar: an
// optional sign, then a digit sequence with an optional fraction and
// exponent. "inf"/"infinity"/"nan" are not recognized here; lexSpecial
// handles those. It returns the parsed
// number, the count of bytes consumed, and ok == false if s has no digits
// at all (the caller then tries the inf/nan spelling before giving up).
//
// lex processes one byte at a time; unaligned multi-byte reads are a
// performance optimization this implementation does not need.
func lex(s []byte) (n number, consumed int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		n.negative = s[i] == '-'
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intEnd := i

	fracStart, fracEnd := i, i
	if i < len(s) && s[i] == '.' {
		i++
		fracStart = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracEnd = i
	}
	fracDigits := fracEnd - fracStart

	if intEnd-intStart == 0 && fracDigits == 0 {
		return number{}, 0, false
	}

	mantissa, manyDigits, exponent := truncateDigits(s[intStart:intEnd], s[fracStart:fracEnd], fracDigits)

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		expNeg := false
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			expNeg = s[j] == '-'
			j++
		}
		expStart := j
		var explicitExp int64
		for j < len(s) && isDigit(s[j]) {
			explicitExp = explicitExp*10 + int64(s[j]-'0')
			if explicitExp > 1<<60 {
				explicitExp = 1 << 60
			}
			j++
		}
		if j > expStart {
			if expNeg {
				explicitExp = -explicitExp
			}
			exponent += explicitExp
			i = j
		}
	}

	n.mantissa = mantissa
	n.exponent = exponent
	n.manyDigits = manyDigits
	return n, i, true
}

// truncateDigits folds the integer and fraction digit runs into a single
// uint64 mantissa, following spec.md's truncation policy: leading zeros
// across the combined digit stream are elided (and shift nothing, since
// they carry no value); once 19 significant digits have been absorbed,
// further digits leave the mantissa untouched and only advance exponent,
// setting manyDigits if any of those dropped digits was non-zero. The
// fraction-digit count (of the original, unstripped run) always reduces
// exponent by one per digit; the explicit exponent (if any) is added by
// the caller afterwards.
func truncateDigits(intDigits, fracDigits []byte, fracDigitCount int) (mantissa uint64, manyDigits bool, exponent int64) {
	exponent = -int64(fracDigitCount)

	k := 0
	for k < len(intDigits) && intDigits[k] == '0' {
		k++
	}
	lead := intDigits[k:]
	tail := fracDigits
	if k == len(intDigits) {
		// The entire integer run was zeros (or empty); keep stripping
		// leading zeros into the fraction run too, e.g. "000.5" -> "5".
		j := 0
		for j < len(tail) && tail[j] == '0' {
			j++
		}
		tail = tail[j:]
	}

	var n int64
	for _, d := range lead {
		accumulateTruncated(&mantissa, &manyDigits, &n, &exponent, d-'0')
	}
	for _, d := range tail {
		accumulateTruncated(&mantissa, &manyDigits, &n, &exponent, d-'0')
	}
	return mantissa, manyDigits, exponent
}

func accumulateTruncated(mantissa *uint64, manyDigits *bool, n *int64, exponent *int64, d byte) {
	if *n < maxDigitsWithoutOverflow {
		*mantissa = *mantissa*10 + uint64(d)
	} else {
		if d != 0 {
			*manyDigits = true
		}
		*exponent++
	}
	*n++
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// lexSpecial recognizes "inf", "infinity" and "nan", case-insensitively,
// optionally signed. It returns ok == false if s does not begin with one
// of those spellings.
func lexSpecial(s []byte) (negative, isInf, isNaN bool, consumed int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	rest := strings.ToLower(string(s[i:]))
	switch {
	case strings.HasPrefix(rest, "infinity"):
		return negative, true, false, i + len("infinity"), true
	case strings.HasPrefix(rest, "inf"):
		return negative, true, false, i + len("inf"), true
	case strings.HasPrefix(rest, "nan"):
		return negative, false, true, i + len("nan"), true
	default:
		return false, false, false, 0, false
	}
}
