// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "testing"

func TestFormatTraitsPow10Tables(t *testing.T) {
	for _, traits := range []*formatTraits{&binary32Traits, &binary64Traits} {
		if len(traits.pow10FastPath) != int(traits.maxExponentFastPath)+1 {
			t.Errorf("pow10FastPath has %d entries, want %d", len(traits.pow10FastPath), traits.maxExponentFastPath+1)
		}
		for i, p := range traits.pow10FastPath {
			want := 1.0
			for j := 0; j < i; j++ {
				want *= 10
			}
			if p != want {
				t.Errorf("pow10FastPath[%d] = %v, want %v", i, p, want)
			}
		}
	}
}

func TestInt10PowersExact(t *testing.T) {
	want := uint64(1)
	for i, p := range int10Powers {
		if p != want {
			t.Errorf("int10Powers[%d] = %d, want %d", i, p, want)
		}
		want *= 10
	}
}

func TestBinaryTraitsSignIndex(t *testing.T) {
	if binary32Traits.signIndex != 31 {
		t.Errorf("binary32Traits.signIndex = %d, want 31", binary32Traits.signIndex)
	}
	if binary64Traits.signIndex != 63 {
		t.Errorf("binary64Traits.signIndex = %d, want 63", binary64Traits.signIndex)
	}
}
