// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"math/big"
)

// limbsToBig interprets p as a little-endian base-2^64 integer, using
// math/big purely as an independent oracle for the randomized tests in
// this package — none of the package's own arithmetic goes through it.
func limbsToBig(p []Limb) *big.Int {
	n := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(p) - 1; i >= 0; i-- {
		n.Mul(n, base)
		n.Add(n, new(big.Int).SetUint64(uint64(p[i])))
	}
	return n
}

// bigToLimbs writes n's little-endian base-2^64 representation into
// exactly size limbs, panicking if n doesn't fit (a bug in the calling
// test, not in this package).
func bigToLimbs(n *big.Int, size int) []Limb {
	out := make([]Limb, size)
	rem := new(big.Int).Set(n)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	for i := 0; i < size; i++ {
		limb := new(big.Int).And(rem, mask)
		out[i] = Limb(limb.Uint64())
		rem.Rsh(rem, 64)
	}
	if rem.Sign() != 0 {
		panic("bigToLimbs: value does not fit in size limbs")
	}
	return out
}
