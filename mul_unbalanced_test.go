// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMulUnbalancedAgreesWithBigInt exercises mulUnbalanced directly
// (xs*2 >= ys*3) across sizes that span one, several, and a ragged final
// block of the ys-sized streaming window.
func TestMulUnbalancedAgreesWithBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ys := 4

	for _, xs := range []int{ys * 2, ys*4 + 1, ys*10 + 3} {
		xs := xs
		t.Run("", func(t *testing.T) {
			withThreshold(1, func() {
				xp := randomOperand(rng, xs)
				yp := randomOperand(rng, ys)

				want := limbsToBig(xp)
				want.Mul(want, limbsToBig(yp))

				got := make([]Limb, xs+ys)
				Mul(got, xp, xs, yp, ys)

				require.Equal(t, bigToLimbs(want, xs+ys), got, "xs=%d ys=%d", xs, ys)
			})
		})
	}
}
