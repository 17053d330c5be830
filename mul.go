// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "math/bits"

// toom22Threshold is the operand size, in limbs, at or below which Mul and
// Sqr use the schoolbook base case instead of recursing. It is a var
// rather than a const so tests can force a small threshold and exercise
// the recursive paths on small, hand-checkable operands.
var toom22Threshold = 20

// Mul computes {wp, xs+ys} = {xp, xs} * {yp, ys}. xs must be >= ys, ys
// must be > 0, and wp's destination range must not overlap either input.
//
// The algorithm selected depends on the operand sizes: when ys is at or
// below toom22Threshold the schoolbook base case is used; balanced operands
// (xs*2 < ys*3) recurse with Toom-22 (Karatsuba); operands with
// xs*2 >= ys*3 are streamed through mulUnbalanced instead.
func Mul(wp, xp []Limb, xs int, yp []Limb, ys int) {
	assertf(xs >= ys, "Mul: xs (%d) must be >= ys (%d)", xs, ys)
	assertf(ys > 0, "Mul: ys must be > 0, got %d", ys)
	assertf(!overlap(wp[:xs+ys], xp[:xs]), "Mul: wp must not overlap xp")
	assertf(!overlap(wp[:xs+ys], yp[:ys]), "Mul: wp must not overlap yp")

	if ys <= toom22Threshold {
		mulBasecase(wp, xp, xs, yp, ys)
		return
	}

	// Each recursion level rounds its half-size up, so the scratch needs a
	// few limbs per level beyond xs*2 when the threshold is small.
	n := xs*2 + 2*bits.Len(uint(xs))
	s := newScratch(n).alloc(n)
	if xs*2 >= ys*3 {
		mulUnbalanced(wp, xp, xs, yp, ys, s)
	} else {
		mulToom22(wp, xp, xs, yp, ys, s)
	}
}

// mulRec is the recursive entry point used internally once a scratch
// window has already been sized by the top-level call. scratch is a plain
// slice, not a bump arena: mulToom22 and sqrToom2 hand the very same
// trailing window to each of their sibling recursive calls in turn, since
// each completes before the next starts and none needs to keep what it
// wrote there.
func mulRec(wp, xp []Limb, xs int, yp []Limb, ys int, scratch []Limb) {
	if ys <= toom22Threshold {
		mulBasecase(wp, xp, xs, yp, ys)
	} else if xs*2 >= ys*3 {
		mulUnbalanced(wp, xp, xs, yp, ys, scratch)
	} else {
		mulToom22(wp, xp, xs, yp, ys, scratch)
	}
}

// Sqr computes {wp, xs*2} = {xp, xs}^2. {wp, xs*2} must not overlap
// {xp, xs}. Squaring is specialized over Mul(x, x, ...) because each
// level computes two half-size squares and a single cross product instead
// of three general products.
func Sqr(wp, xp []Limb, xs int) {
	assertf(xs > 0, "Sqr: xs must be > 0, got %d", xs)
	assertf(!overlap(wp[:xs*2], xp[:xs]), "Sqr: wp must not overlap xp")

	if xs <= toom22Threshold {
		mulBasecase(wp, xp, xs, xp, xs)
		return
	}

	n := xs*2 + 2*bits.Len(uint(xs))
	s := newScratch(n).alloc(n)
	sqrToom2(wp, xp, xs, s)
}

// sqrRec is Sqr's recursive counterpart to mulRec.
func sqrRec(wp, xp []Limb, xs int, scratch []Limb) {
	if xs <= toom22Threshold {
		mulBasecase(wp, xp, xs, xp, xs)
	} else {
		sqrToom2(wp, xp, xs, scratch)
	}
}
