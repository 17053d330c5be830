// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// sqrToom2 computes {wp, xs*2} = {xp, xs}^2 for xs above toom22Threshold,
// grounded on the reference engine's sqr_toom2. It is mulToom22's
// specialization for squaring: since both operands of the split are the
// same number, the cross term only needs computing once.
//
// Split x into x1, x0 so x = x1*B^n + x0:
//
//	x*x = B^2n*z2 + 2*B^n*z1 + z0
//
// where z0 = x0^2, z2 = x1^2, and z1 = x0*x1.
func sqrToom2(wp, xp []Limb, xs int, scratch []Limb) {
	xh := xs >> 1
	xl := xs - xh

	x0 := xp[:xl]
	x1 := xp[xl : xl+xh]

	z0 := wp[:2*xl]
	z1 := scratch[:2*xl]
	z2 := wp[2*xl : 2*xl+2*xh]
	scratchOut := scratch[2*xl:]

	mulRec(z1, x0, xl, x1, xh, scratchOut)
	sqrRec(z0, x0, xl, scratchOut)
	sqrRec(z2, x1, xh, scratchOut)

	cy := addN(z1, z1, z1, xs)
	cy += addN(wp[xl:], wp[xl:], z1, xs)

	incr(wp[xl+xs:], cy)
}
