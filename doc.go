// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fastfloat parses decimal ASCII text into IEEE 754 binary32 and
binary64 values.

Parsing runs a three-tier pipeline. A fast path handles the common case of a
mantissa and exponent that an ordinary hardware float multiply or divide
represents exactly. The Eisel-Lemire algorithm extends that to almost every
other input, approximating the relevant power of ten to 128 bits. A
big-decimal fallback handles the remaining near-halfway cases exactly,
however many digits they require. Every result is rounded to nearest, ties
to even, and is bit-for-bit identical to what an exact decimal-to-binary
conversion would produce.

	v, err := fastfloat.ParseFloat64("6.62607015e-34")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

ParseFloat32 and ParseFloat64 also accept "inf", "infinity" and "nan" in any
case, optionally signed, per the Go strconv.ParseFloat conventions.
*/
package fastfloat
