// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// mulToom22 computes {wp, xs+ys} = {xp, xs} * {yp, ys} for balanced
// operands (xs >= ys, xs < ys*2) via one level of Toom-22 (Karatsuba)
// recursion, grounded directly on the reference engine's mul_toom22.
//
// Split x into x1, x0 and y into y1, y0 so that x = x1*B^n + x0 and
// y = y1*B^n + y0. Then:
//
//	x*y = (B^2n + B^n)*z2 - B^n*z1 + (B^n + 1)*z0
//	    = B^2n*z2 + B^n*(z2 + z0 - z1) + z0
//
// where z0 = x0*y0, z2 = x1*y1, and z1 = (x1-x0)*(y1-y0). z1 is computed
// from zx1 = x1-x0 and zy1 = y1-y0, tracking the sign of each difference
// separately (z1Neg) so the recursive multiply always sees non-negative
// operands.
func mulToom22(wp, xp []Limb, xs int, yp []Limb, ys int, scratch []Limb) {
	assertf(xs >= ys && xs < ys*2,
		"mulToom22: requires xs >= ys && xs < ys*2, got xs=%d ys=%d", xs, ys)

	xh := xs >> 1 // number of high limbs in x
	nl := xs - xh // number of low limbs
	yh := ys - nl // number of high limbs in y

	assertf(0 < xh && xh <= nl, "mulToom22: bad split xh=%d nl=%d", xh, nl)
	assertf(0 < yh && yh <= xh, "mulToom22: bad split yh=%d xh=%d", yh, xh)

	x0, y0 := xp[:nl], yp[:nl]
	x1, y1 := xp[nl:nl+xh], yp[nl:nl+yh]

	zx1 := wp[:nl]
	zy1 := wp[nl : 2*nl]
	z1Neg := false

	if nl == xh {
		if cmp(x0, x1, nl) == cmpLess {
			subN(zx1, x1, x0, nl)
			z1Neg = true
		} else {
			subN(zx1, x0, x1, nl)
		}
	} else { // nl > xh
		if isZero(x0[xh:], nl-xh) && cmp(x0, x1, xh) == cmpLess {
			subN(zx1, x1, x0, xh)
			zero(zx1[xh:], nl-xh)
			z1Neg = true
		} else {
			sub(zx1, x0, nl, x1, xh)
		}
	}

	if nl == yh {
		if cmp(y0, y1, nl) == cmpLess {
			subN(zy1, y1, y0, nl)
			z1Neg = !z1Neg
		} else {
			subN(zy1, y0, y1, nl)
		}
	} else { // nl > yh
		if isZero(y0[yh:], nl-yh) && cmp(y0, y1, yh) == cmpLess {
			subN(zy1, y1, y0, yh)
			zero(zy1[yh:], nl-yh)
			z1Neg = !z1Neg
		} else {
			sub(zy1, y0, nl, y1, yh)
		}
	}

	z0 := wp[:2*nl]
	z1 := scratch[:2*nl]
	z2 := wp[2*nl : 2*nl+xh+yh]
	scratchOut := scratch[2*nl:]

	// zx1/zy1 alias wp[:2*nl], which z0 also names; the three recursive
	// calls below read zx1/zy1 to completion before any of them writes
	// into wp, so this is safe despite the aliasing. The three calls also
	// share scratchOut unchanged: each runs to completion before the next
	// starts, so reusing the same trailing window is safe.
	mulRec(z1, zx1, nl, zy1, nl, scratchOut)
	mulRec(z0, x0, nl, y0, nl, scratchOut)
	mulRec(z2, x1, xh, y1, yh, scratchOut)

	// {wp, 2*nl} now holds z0 and {wp+2*nl, xh+yh} holds z2; fold them
	// together with z1 to land on z0 + B^n*(z0+z2-z1) + B^2n*z2.
	cy1 := addN(wp[2*nl:3*nl], z2[:nl], z0[nl:2*nl], nl)
	cy2 := cy1 + addN(wp[nl:2*nl], z0[:nl], z2[:nl], nl)
	cy3 := cy1 + add(wp[2*nl:], z2[:nl], nl, z2[nl:], xh+yh-nl)

	if z1Neg {
		cy3 += addN(wp[nl:3*nl], wp[nl:3*nl], z1[:2*nl], 2*nl)
	} else {
		cy3 -= subN(wp[nl:3*nl], wp[nl:3*nl], z1[:2*nl], 2*nl)
	}

	// Carries must be applied last, after every limb they might ripple
	// into has its final pre-carry value in place.
	incr(wp[2*nl:], cy2)
	incr(wp[3*nl:], cy3)
}
