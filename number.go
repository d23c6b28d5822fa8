// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// maxDigitsWithoutOverflow is the number of decimal digits that always fit
// in an unsigned 64-bit mantissa without truncation.
const maxDigitsWithoutOverflow = 19

// number is the lexer's output: a decimal mantissa and exponent pair
// together with the bookkeeping the rest of the pipeline needs to tell a
// cheap exact result from one that may need the slow path.
type number struct {
	exponent   int64
	mantissa   uint64
	negative   bool
	manyDigits bool
}
