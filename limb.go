// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "math/bits"

// Limb is a single machine word, the digit of the big-number representation.
// Base B = 2^64.
type Limb = uint64

// mulHiLo returns the full 128-bit product of a and b as (hi, lo).
func mulHiLo(a, b Limb) (hi, lo Limb) {
	hi, lo = bits.Mul64(a, b)
	return
}

// addOverflow returns a+b and the carry out (0 or 1).
func addOverflow(a, b Limb) (sum Limb, carry Limb) {
	s, c := bits.Add64(a, b, 0)
	return s, c
}

// subOverflow returns a-b and the borrow out (0 or 1).
func subOverflow(a, b Limb) (diff Limb, borrow Limb) {
	d, bo := bits.Sub64(a, b, 0)
	return d, bo
}
