// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

// tryFastPath attempts to compute n's value directly with a hardware float
// multiply or divide, returning ok == false when n falls outside the
// fast path's provably-exact range and the driver must escalate.
func tryFastPath(traits *formatTraits, n number) (value float64, ok bool) {
	if n.manyDigits ||
		n.exponent < traits.minExponentFastPath ||
		n.exponent > traits.maxExponentDisguisedFastPath ||
		n.mantissa > traits.maxMantissaFastPath {
		return 0, false
	}

	if n.exponent <= traits.maxExponentFastPath {
		// Pure fast path: both the mantissa and 10^exponent are exactly
		// representable, so a single IEEE multiply or divide rounds
		// correctly.
		v := float64(n.mantissa)
		if n.exponent < 0 {
			v /= traits.pow10FastPath[-n.exponent]
		} else {
			v *= traits.pow10FastPath[n.exponent]
		}
		if n.negative {
			v = -v
		}
		return v, true
	}

	// Disguised fast path: the decimal exponent exceeds the table of exact
	// powers of ten, but the mantissa carries fewer significant digits
	// than it has trailing zeros worth of exponent. Pre-scale the mantissa
	// by an exact integer power of ten so the remaining exponent falls
	// back within the exact table, bailing out if that pre-scale would
	// itself lose precision.
	shift := n.exponent - traits.maxExponentFastPath
	if shift < 0 || shift >= int64(len(int10Powers)) {
		return 0, false
	}
	product := mul64(n.mantissa, int10Powers[shift])
	if product.hi != 0 || product.lo > traits.maxMantissaFastPath {
		return 0, false
	}
	v := float64(product.lo) * traits.pow10FastPath[traits.maxExponentFastPath]
	if n.negative {
		v = -v
	}
	return v, true
}
