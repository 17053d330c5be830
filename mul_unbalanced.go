// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// mulUnbalanced handles multiplication when xs is much bigger than ys
// (xs*2 >= ys*3), grounded on the reference engine's mul_unbalanced. It
// works the way mul1 does, but streaming ys-limb blocks of x through a
// balanced Toom-22 multiply against {yp, ys} instead of a single limb
// through a scalar kernel.
func mulUnbalanced(wp, xp []Limb, xs int, yp []Limb, ys int, scratch []Limb) {
	assertf(xs > ys, "mulUnbalanced: xs (%d) must be > ys (%d)", xs, ys)

	mulToom22(wp, xp, ys, yp, ys, scratch)

	xs -= ys
	xp = xp[ys:]
	wp = wp[ys:]

	// wTmp only needs 2*ys limbs in the loop below, but the final
	// (possibly ragged) block can produce up to 3*ys. This is a fresh,
	// independent allocation, not sliced from scratch: its lifetime spans
	// the whole streaming loop below, unlike scratch's per-call reuse.
	wTmp := newScratch(ys * 3).alloc(ys * 3)

	for xs >= ys*2 {
		mulToom22(wTmp, xp, ys, yp, ys, scratch)
		xs -= ys
		xp = xp[ys:]

		cy := addN(wp, wp, wTmp, ys)
		copyIncr(wTmp[ys:], wp[ys:], ys)
		incr(wp[ys:], cy)

		wp = wp[ys:]
	}

	if xs >= ys {
		mulRec(wTmp, xp, xs, yp, ys, scratch)
	} else {
		mulRec(wTmp, yp, ys, xp, xs, scratch)
	}

	cy := addN(wp, wp, wTmp, ys)
	copyIncr(wTmp[ys:], wp[ys:], xs)
	incr(wp[ys:], cy)
}
