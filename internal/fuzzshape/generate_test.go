// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fuzzshape

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralParsesAsFloat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		shape := Random(r)
		text, _ := Literal(r, shape)
		require.NotEmpty(t, text, "shape %+v produced an empty literal", shape)
		_, err := strconv.ParseFloat(text, 64)
		require.True(t, err == nil || errors.Is(err, strconv.ErrRange), "literal %q does not parse: %v", text, err)
	}
}

func TestSpecialSpellings(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		s := Special(r)
		require.Regexp(t, `^[+-]?(?i:inf|infinity|nan)$`, s)
	}
}

func TestDigitRunLength(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 5, 24} {
		got := digitRun(r, n)
		require.Len(t, got, n)
	}
}
