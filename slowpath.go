// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// maxShift is the shift applied once a literal needs len(shiftSchedule) or
// more decimal digits' worth of binary shift to stabilize.
const maxShift = 60

// shiftSchedule maps "digits still needed to settle decimalPoint" to the
// largest binary shift that cannot skip past the target range, for small
// digit counts; shifts beyond the table's reach always use maxShift.
var shiftSchedule = [...]uint{0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59}

func shiftFor(nDigits int) uint {
	if nDigits < len(shiftSchedule) {
		return shiftSchedule[nDigits]
	}
	return maxShift
}

// slowPath computes the correctly-rounded mantissa and biased exponent of
// the literal in raw directly from its digits, using exact bigDecimal
// arithmetic. Unlike eiselLemire it never needs to escalate further: given
// enough shifts and round()'s use of the truncated flag, it always
// produces the exact IEEE rounding.
func slowPath(traits *formatTraits, raw []byte) lemireResult {
	zero := lemireResult{mantissa: 0, power2: 0}
	inf := lemireResult{mantissa: 0, power2: traits.infinitePower}

	d := parseDecimal(raw)
	if d.numDigits == 0 || d.decimalPoint < -324 {
		return zero
	}
	if d.decimalPoint >= 310 {
		return inf
	}

	exp2 := int32(0)
	for d.decimalPoint > 0 {
		shift := shiftFor(d.decimalPoint)
		d.rightShift(shift)
		if d.decimalPoint < -decimalPointRange {
			return zero
		}
		exp2 += int32(shift)
	}
pointWalk:
	for d.decimalPoint <= 0 {
		var shift uint
		if d.decimalPoint == 0 {
			switch {
			case d.digits[0] >= 5:
				break pointWalk
			case d.digits[0] == 0 || d.digits[0] == 1:
				shift = 2
			default:
				shift = 1
			}
		} else {
			shift = shiftFor(-d.decimalPoint)
		}
		d.leftShift(shift)
		if d.decimalPoint > decimalPointRange {
			return inf
		}
		exp2 -= int32(shift)
	}

	exp2--
	for traits.minimumExponent+1 > exp2 {
		n := uint(traits.minimumExponent + 1 - exp2)
		if n > maxShift {
			n = maxShift
		}
		d.rightShift(n)
		exp2 += int32(n)
	}
	if exp2-traits.minimumExponent >= traits.infinitePower {
		return inf
	}

	d.leftShift(uint(traits.mantissaExplicitBits + 1))
	mantissa := d.round()
	if mantissa >= uint64(1)<<uint(traits.mantissaExplicitBits+1) {
		d.rightShift(1)
		exp2++
		mantissa = d.round()
		if exp2-traits.minimumExponent >= traits.infinitePower {
			return inf
		}
	}

	power2 := exp2 - traits.minimumExponent
	if mantissa < uint64(1)<<uint(traits.mantissaExplicitBits) {
		power2--
	}
	mantissa &^= uint64(1) << uint(traits.mantissaExplicitBits)
	return lemireResult{mantissa: mantissa, power2: power2}
}
