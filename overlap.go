// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "unsafe"

// limbAddr returns the address of the first limb of s, or 0 for an empty
// slice. Used only to reason about overlap/ordering between buffers; never
// dereferenced directly.
func limbAddr(s []Limb) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s[0]))
}

// overlap reports whether {a, len(a)} and {b, len(b)} share at least one limb.
func overlap(a, b []Limb) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart, bStart := limbAddr(a), limbAddr(b)
	aEnd := aStart + uintptr(len(a))*unsafe.Sizeof(Limb(0))
	bEnd := bStart + uintptr(len(b))*unsafe.Sizeof(Limb(0))
	return aStart < bEnd && bStart < aEnd
}

// sameOrSeparate reports whether w and x are either disjoint or identical.
// addmul_1 and submul_1 require this: they read wp[i] before writing it, so
// partial aliasing (anything but exact identity) would corrupt the result.
func sameOrSeparate(w, x []Limb) bool {
	if len(w) == 0 || len(x) == 0 {
		return true
	}
	if limbAddr(w) == limbAddr(x) && len(w) == len(x) {
		return true
	}
	return !overlap(w, x)
}

// sameOrIncr reports whether w is identical to x, starts at a strictly
// higher address, or does not overlap x at all. mul_1 writes wp[i] before reading xp[i+1], so an
// ascending in-place pass (w == x) or a forward shift (w above x) is safe;
// a backward shift is not.
func sameOrIncr(w, x []Limb) bool {
	if len(w) == 0 || len(x) == 0 {
		return true
	}
	wAddr, xAddr := limbAddr(w), limbAddr(x)
	if wAddr == xAddr {
		return true
	}
	if wAddr > xAddr {
		return true
	}
	return !overlap(w, x)
}
