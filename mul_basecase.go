// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

// mulBasecase computes wp = xp*yp the schoolbook way: one mul1 pass
// seeding the first xs+1 output limbs, then ys-1 addmul1 passes accumulating
// the rest, each writing its own carry-out limb at wp[xs+i]. This is the
// base case every Toom-22 recursion bottoms out at once its operand falls
// at or below toom22Threshold limbs, and it is what the public Mul entry
// point calls directly for small operands.
//
// {wp, xs+ys} must be disjoint from both {xp, xs} and {yp, ys}.
func mulBasecase(wp, xp []Limb, xs int, yp []Limb, ys int) {
	d := getDispatcher()

	wp[xs] = d.Mul1Impl(wp, xp, xs, yp[0])
	wRest, yRest := wp[1:], yp[1:]

	for i := 1; i < ys; i++ {
		wRest[xs] = d.AddMul1Impl(wRest, xp, xs, yRest[0])
		wRest = wRest[1:]
		yRest = yRest[1:]
	}
}
