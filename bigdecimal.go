// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// maxBigDecimalDigits bounds a bigDecimal's digit buffer comfortably past
// the worst-case shift sequence for the most extreme subnormal or overflow
// inputs the slow path exercises; see DESIGN.md.
const maxBigDecimalDigits = 768

// decimalPointRange bounds how far decimalPoint may wander during a shift
// before the slow path can declare underflow or overflow outright.
const decimalPointRange = 2047

// bigDecimal is a fixed-capacity, single-digit-per-byte decimal used by
// the slow path to shift a literal's exact value left and right by powers
// of two until it falls into a directly roundable range. Unlike the
// base-1e19 packed representation general-purpose decimal arithmetic
// wants, a per-digit layout is what makes leftShift/rightShift's
// digit-by-digit carry propagation simple to get exactly right.
type bigDecimal struct {
	digits     [maxBigDecimalDigits]byte
	numDigits  int
	decimalPoint int
	truncated  bool
}

// tryAddDigit appends d, silently dropping it (but counting it towards
// numDigits) once the buffer is full; parseDecimal uses the resulting
// overflow to set truncated.
func (d *bigDecimal) tryAddDigit(v byte) {
	if d.numDigits < maxBigDecimalDigits {
		d.digits[d.numDigits] = v
	}
	d.numDigits++
}

// trim drops trailing zero digits; they carry no information and only
// cost cycles in later shifts.
func (d *bigDecimal) trim() {
	for d.numDigits != 0 && d.digits[d.numDigits-1] == 0 {
		d.numDigits--
	}
}

// round interprets d as an integer with everything from decimalPoint
// onward treated as a fractional tail, rounding to nearest with ties
// resolved to even using the truncated flag to break an otherwise-exact
// tie.
func (d *bigDecimal) round() uint64 {
	if d.numDigits == 0 || d.decimalPoint < 0 {
		return 0
	}
	if d.decimalPoint > 18 {
		return 0xFFFFFFFFFFFFFFFF
	}
	dp := d.decimalPoint
	var n uint64
	for i := 0; i < dp; i++ {
		n *= 10
		if i < d.numDigits {
			n += uint64(d.digits[i])
		}
	}
	roundUp := false
	if dp < d.numDigits {
		roundUp = d.digits[dp] >= 5
		if d.digits[dp] == 5 && dp+1 == d.numDigits {
			roundUp = d.truncated || (dp != 0 && d.digits[dp-1]&1 != 0)
		}
	}
	if roundUp {
		n++
	}
	return n
}

// leftShift multiplies d's value by 2^shift, processing digits from the
// least significant end and writing the result into a scratch buffer
// sized to comfortably hold any new leading digits the multiply produces.
func (d *bigDecimal) leftShift(shift uint) {
	if d.numDigits == 0 {
		return
	}
	var buf [maxBigDecimalDigits + 25]byte
	write := len(buf)
	read := d.numDigits
	var carry uint64
	for read != 0 {
		read--
		write--
		carry += uint64(d.digits[read]) << shift
		q, r := carry/10, carry%10
		buf[write] = byte(r)
		carry = q
	}
	for carry != 0 {
		write--
		q, r := carry/10, carry%10
		buf[write] = byte(r)
		carry = q
	}
	numNew := len(buf) - write - d.numDigits
	total := d.numDigits + numNew
	truncExtra := false
	if total > maxBigDecimalDigits {
		for i := write + maxBigDecimalDigits; i < write+total; i++ {
			if buf[i] != 0 {
				truncExtra = true
			}
		}
		total = maxBigDecimalDigits
	}
	copy(d.digits[0:total], buf[write:write+total])
	d.numDigits = total
	d.decimalPoint += numNew
	if truncExtra {
		d.truncated = true
	}
	d.trim()
}

// rightShift divides d's value by 2^shift, processing digits from the
// most significant end.
func (d *bigDecimal) rightShift(shift uint) {
	read, write := 0, 0
	var n uint64
	for n>>shift == 0 {
		if read < d.numDigits {
			n = 10*n + uint64(d.digits[read])
			read++
		} else if n == 0 {
			return
		} else {
			for n>>shift == 0 {
				n *= 10
				read++
			}
			break
		}
	}
	d.decimalPoint -= read - 1
	if d.decimalPoint < -decimalPointRange {
		d.numDigits = 0
		d.decimalPoint = 0
		d.truncated = false
		return
	}
	mask := uint64(1)<<shift - 1
	for read < d.numDigits {
		newDigit := byte(n >> shift)
		n = 10*(n&mask) + uint64(d.digits[read])
		read++
		d.digits[write] = newDigit
		write++
	}
	for n > 0 {
		newDigit := byte(n >> shift)
		n = 10 * (n & mask)
		if write < maxBigDecimalDigits {
			d.digits[write] = newDigit
			write++
		} else if newDigit > 0 {
			d.truncated = true
		}
	}
	d.numDigits = write
	d.trim()
}

// parseDecimal consumes the same syntactic prefix as lex, writing
// significant digits into a bigDecimal instead of a uint64 mantissa, so no
// precision is lost regardless of how many digits the literal carries.
func parseDecimal(s []byte) bigDecimal {
	var d bigDecimal
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < n && s[i] == '0' {
		i++
	}
	for i < n && isDigit(s[i]) {
		d.tryAddDigit(s[i] - '0')
		i++
	}

	var dotDigitsStart int
	if i < n && s[i] == '.' {
		i++
		dotDigitsStart = i
		if d.numDigits == 0 {
			for i < n && s[i] == '0' {
				i++
			}
		}
		for i < n && isDigit(s[i]) {
			d.tryAddDigit(s[i] - '0')
			i++
		}
		d.decimalPoint = -(i - dotDigitsStart)
	}

	consumedBeforeExp := i
	if d.numDigits != 0 {
		nTrailingZeros := 0
		for j := consumedBeforeExp - 1; j >= start; j-- {
			switch s[j] {
			case '0':
				nTrailingZeros++
			case '.':
				// decimal point itself carries no digit weight; skip over it
			default:
				goto doneTrailing
			}
		}
	doneTrailing:
		d.decimalPoint += nTrailingZeros
		d.numDigits -= nTrailingZeros
		d.decimalPoint += d.numDigits
		if d.numDigits > maxBigDecimalDigits {
			d.truncated = true
			d.numDigits = maxBigDecimalDigits
		}
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		negExp := false
		if i < n && (s[i] == '+' || s[i] == '-') {
			negExp = s[i] == '-'
			i++
		}
		var expNum int
		for i < n && isDigit(s[i]) {
			if expNum < 0x10000 {
				expNum = expNum*10 + int(s[i]-'0')
			}
			i++
		}
		if negExp {
			d.decimalPoint -= expNum
		} else {
			d.decimalPoint += expNum
		}
	}
	return d
}
