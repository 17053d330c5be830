// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "math/bits"

// This file implements the multi-precision add/sub/compare/copy primitives
// the multiplication core consumes (distilled spec §6). A full bignum
// library keeps these in a sibling package shared with addition,
// subtraction and shift operators; this repository has no such sibling, so
// they live here, grounded on the teacher's mpnAddN/mpnSubN generic
// fallback and on bford-go's nat.go carry-propagation idioms (cadd/csub/cmp),
// adapted from a Word-slice "nat" type to this package's Limb slices.

// addN computes rp = ap + bp over n limbs each, returning the carry out.
func addN(rp, ap, bp []Limb, n int) Limb {
	var carry uint64
	for i := 0; i < n; i++ {
		var sum uint64
		sum, carry = bits.Add64(ap[i], bp[i], carry)
		rp[i] = sum
	}
	return carry
}

// subN computes rp = ap - bp over n limbs each, returning the borrow out.
func subN(rp, ap, bp []Limb, n int) Limb {
	var borrow uint64
	for i := 0; i < n; i++ {
		var diff uint64
		diff, borrow = bits.Sub64(ap[i], bp[i], borrow)
		rp[i] = diff
	}
	return borrow
}

// add computes rp = {ap, an} + {bp, bn} with an >= bn: a bn-limb addition
// followed by carry-propagation through the remaining an-bn limbs.
func add(rp, ap []Limb, an int, bp []Limb, bn int) Limb {
	assertf(an >= bn, "add: an (%d) must be >= bn (%d)", an, bn)
	carry := addN(rp[:bn], ap[:bn], bp[:bn], bn)
	if an > bn {
		copy(rp[bn:an], ap[bn:an])
		carry = incrN(rp[bn:an], carry)
	}
	return carry
}

// sub computes rp = {ap, an} - {bp, bn} with an >= bn, symmetric to add.
func sub(rp, ap []Limb, an int, bp []Limb, bn int) Limb {
	assertf(an >= bn, "sub: an (%d) must be >= bn (%d)", an, bn)
	borrow := subN(rp[:bn], ap[:bn], bp[:bn], bn)
	if an > bn {
		copy(rp[bn:an], ap[bn:an])
		borrow = decrN(rp[bn:an], borrow)
	}
	return borrow
}

// cmpResult mirrors Ordering from the reference implementation this
// package is modeled on, kept distinct from an int return so call sites
// read as comparisons rather than arithmetic differences.
type cmpResult int

const (
	cmpLess    cmpResult = -1
	cmpEqual   cmpResult = 0
	cmpGreater cmpResult = 1
)

// cmp lexicographically compares two n-limb slices from the
// most-significant limb down.
func cmp(ap, bp []Limb, n int) cmpResult {
	for i := n - 1; i >= 0; i-- {
		if ap[i] != bp[i] {
			if ap[i] < bp[i] {
				return cmpLess
			}
			return cmpGreater
		}
	}
	return cmpEqual
}

// isZero reports whether every one of the n limbs at p is zero.
func isZero(p []Limb, n int) bool {
	for i := 0; i < n; i++ {
		if p[i] != 0 {
			return false
		}
	}
	return true
}

// zero writes n zero limbs to p.
func zero(p []Limb, n int) {
	for i := 0; i < n; i++ {
		p[i] = 0
	}
}

// incr adds limb v to p, propagating the carry through as many higher
// limbs as needed, terminating at the first add that does not overflow.
// p is assumed long enough to absorb the carry (the dispatcher sizes its
// output buffers so this always holds).
func incr(p []Limb, v Limb) {
	i := 0
	for v != 0 {
		sum, carry := addOverflow(p[i], v)
		p[i] = sum
		v = carry
		i++
	}
}

// incrN is incr bounded to n limbs, returning any carry that overflows the
// available range instead of writing past it. Used by add/sub to
// propagate a carry/borrow through the tail of a mixed-length operand.
func incrN(p []Limb, carry Limb) Limb {
	for i := 0; i < len(p) && carry != 0; i++ {
		sum, c := addOverflow(p[i], carry)
		p[i] = sum
		carry = c
	}
	return carry
}

func decrN(p []Limb, borrow Limb) Limb {
	for i := 0; i < len(p) && borrow != 0; i++ {
		d, b := subOverflow(p[i], borrow)
		p[i] = d
		borrow = b
	}
	return borrow
}

// copyIncr copies n limbs from src to dst. It uses the built-in copy,
// which handles overlapping ranges in either direction, so it is safe when
// dst's address is >= src's.
func copyIncr(src, dst []Limb, n int) {
	copy(dst[:n], src[:n])
}
