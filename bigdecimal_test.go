// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "testing"

func digitsEqual(d *bigDecimal, want ...byte) bool {
	if d.numDigits != len(want) {
		return false
	}
	for i, w := range want {
		if d.digits[i] != w {
			return false
		}
	}
	return true
}

func TestParseDecimalShape(t *testing.T) {
	cases := []struct {
		in           string
		digits       []byte
		decimalPoint int
	}{
		{"123.45", []byte{1, 2, 3, 4, 5}, 3},
		{"0.005", []byte{5}, -2},
		{"123", []byte{1, 2, 3}, 3},
		{"5", []byte{5}, 1},
		{"100", []byte{1}, 3}, // trailing zeros carry no digit weight
		{"0", nil, 0},
	}
	for _, c := range cases {
		d := parseDecimal([]byte(c.in))
		if !digitsEqual(&d, c.digits...) {
			t.Errorf("parseDecimal(%q).digits = %v (n=%d), want %v", c.in, d.digits[:d.numDigits], d.numDigits, c.digits)
		}
		if d.decimalPoint != c.decimalPoint {
			t.Errorf("parseDecimal(%q).decimalPoint = %d, want %d", c.in, d.decimalPoint, c.decimalPoint)
		}
	}
}

func TestBigDecimalRoundExact(t *testing.T) {
	d := bigDecimal{digits: [maxBigDecimalDigits]byte{1, 2, 3}, numDigits: 3, decimalPoint: 3}
	if got := d.round(); got != 123 {
		t.Errorf("round() = %d, want 123", got)
	}
}

func TestBigDecimalRoundTiesToEven(t *testing.T) {
	// 12.5 -> 12 (even stays).
	d := bigDecimal{digits: [maxBigDecimalDigits]byte{1, 2, 5}, numDigits: 3, decimalPoint: 2}
	if got := d.round(); got != 12 {
		t.Errorf("round() of 12.5 = %d, want 12", got)
	}
	// 13.5 -> 14 (odd rounds up to even).
	d2 := bigDecimal{digits: [maxBigDecimalDigits]byte{1, 3, 5}, numDigits: 3, decimalPoint: 2}
	if got := d2.round(); got != 14 {
		t.Errorf("round() of 13.5 = %d, want 14", got)
	}
	// 12.50...1 (truncated tail) always rounds up regardless of parity.
	d3 := bigDecimal{digits: [maxBigDecimalDigits]byte{1, 2, 5}, numDigits: 3, decimalPoint: 2, truncated: true}
	if got := d3.round(); got != 13 {
		t.Errorf("round() of truncated 12.5+ = %d, want 13", got)
	}
}

func TestBigDecimalRightShift(t *testing.T) {
	d := parseDecimal([]byte("123"))
	d.rightShift(1) // divide by two: 123 / 2 = 61.5
	if !digitsEqual(&d, 6, 1, 5) || d.decimalPoint != 2 {
		t.Errorf("rightShift(1) of 123 = digits %v decimalPoint %d, want [6 1 5] 2", d.digits[:d.numDigits], d.decimalPoint)
	}
}

func TestBigDecimalLeftShift(t *testing.T) {
	d := parseDecimal([]byte("5"))
	d.leftShift(1) // multiply by two: 5 * 2 = 10
	if !digitsEqual(&d, 1) || d.decimalPoint != 2 {
		t.Errorf("leftShift(1) of 5 = digits %v decimalPoint %d, want [1] 2", d.digits[:d.numDigits], d.decimalPoint)
	}
}

// TestBigDecimalLeftShiftOverflowTruncatesTail checks that when a shift
// grows the digit count past maxBigDecimalDigits, the digits dropped are
// the new least-significant ones, not the most-significant ones: doubling
// a run of maxBigDecimalDigits nines produces one extra leading digit
// ("1" followed by maxBigDecimalDigits-1 nines, then a trailing "8"), and
// the retained value must keep that leading "1", not the trailing "8".
func TestBigDecimalLeftShiftOverflowTruncatesTail(t *testing.T) {
	var d bigDecimal
	for i := 0; i < maxBigDecimalDigits; i++ {
		d.tryAddDigit(9)
	}
	d.decimalPoint = maxBigDecimalDigits

	d.leftShift(1)

	if d.numDigits != maxBigDecimalDigits {
		t.Fatalf("numDigits = %d, want %d", d.numDigits, maxBigDecimalDigits)
	}
	if d.digits[0] != 1 {
		t.Fatalf("digits[0] = %d, want 1 (the new leading digit must survive truncation)", d.digits[0])
	}
	for i := 1; i < maxBigDecimalDigits; i++ {
		if d.digits[i] != 9 {
			t.Fatalf("digits[%d] = %d, want 9", i, d.digits[i])
		}
	}
	if !d.truncated {
		t.Error("truncated = false, want true (the dropped trailing digit was 8, nonzero)")
	}
	if d.decimalPoint != maxBigDecimalDigits+1 {
		t.Errorf("decimalPoint = %d, want %d", d.decimalPoint, maxBigDecimalDigits+1)
	}
}
