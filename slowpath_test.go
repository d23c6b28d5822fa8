// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "testing"

func TestShiftForTable(t *testing.T) {
	if shiftFor(0) != 0 {
		t.Errorf("shiftFor(0) = %d, want 0", shiftFor(0))
	}
	if shiftFor(len(shiftSchedule) - 1) != shiftSchedule[len(shiftSchedule)-1] {
		t.Error("shiftFor at the table's last index should read straight from the table")
	}
	if shiftFor(len(shiftSchedule) + 100) != maxShift {
		t.Errorf("shiftFor beyond the table should saturate at maxShift (%d)", maxShift)
	}
}

func TestSlowPathZeroAndInf(t *testing.T) {
	if r := slowPath(&binary64Traits, []byte("0")); r.mantissa != 0 || r.power2 != 0 {
		t.Errorf("slowPath(\"0\") = %+v, want the zero result", r)
	}
	r := slowPath(&binary64Traits, []byte("1e400"))
	if r.power2 != binary64Traits.infinitePower {
		t.Errorf("slowPath(\"1e400\") power2 = %d, want %d", r.power2, binary64Traits.infinitePower)
	}
}

var benchSlowPathResult lemireResult

func BenchmarkSlowPath(b *testing.B) {
	raw := []byte("2.2250738585072014e-308")
	for i := 0; i < b.N; i++ {
		benchSlowPathResult = slowPath(&binary64Traits, raw)
	}
}

func TestSlowPathMatchesFastPathOnOverlap(t *testing.T) {
	// A literal simple enough for the fast path must still produce the same
	// bit pattern when routed through the exact slow path: both tiers
	// round the same mathematical value to the same nearest double.
	raw := []byte("123.5")
	n, _, ok := lex(raw)
	if !ok {
		t.Fatal("lex(123.5) failed")
	}
	fast, fastOK := tryFastPath(&binary64Traits, n)
	if !fastOK {
		t.Fatal("tryFastPath(123.5) failed")
	}
	slow := slowPath(&binary64Traits, raw)
	word := slow.mantissa | uint64(slow.power2)<<uint(binary64Traits.mantissaExplicitBits)
	fastWord := floatBits(&binary64Traits, fast)
	if word != fastWord {
		t.Errorf("slowPath(123.5) bits = %#x, tryFastPath bits = %#x", word, fastWord)
	}
}
