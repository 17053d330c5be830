// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// mul1Vectors mirrors the reference engine's test_mul_1 table: each entry
// multiplies a by a fixed limb value l, checking both the low limbs and
// the carry-out limb.
func mul1Vectors() []struct {
	a, want []Limb
	l, carry Limb
} {
	return []struct {
		a, want []Limb
		l, carry Limb
	}{
		{a: []Limb{1}, l: 2, want: []Limb{2}, carry: 0},
		{a: []Limb{0x8000000000000000}, l: 2, want: []Limb{0}, carry: 1},
		{a: []Limb{math.MaxUint64}, l: 2, want: []Limb{math.MaxUint64 - 1}, carry: 1},
	}
}

func TestMul1Generic(t *testing.T) {
	for _, v := range mul1Vectors() {
		n := len(v.a)
		wp := make([]Limb, n)
		carry := mul1Generic(wp, v.a, n, v.l)
		require.Equal(t, v.want, wp)
		require.Equal(t, v.carry, carry)
	}
}

func TestMul1GenericInPlace(t *testing.T) {
	buf := []Limb{math.MaxUint64, math.MaxUint64}
	carry := mul1Generic(buf, buf, 2, 2)
	require.Equal(t, []Limb{math.MaxUint64 - 1, math.MaxUint64}, buf)
	require.Equal(t, Limb(1), carry)
}

func TestAddMul1Generic(t *testing.T) {
	wp := []Limb{1, 1}
	carry := addMul1Generic(wp, []Limb{2, 3}, 2, 5)
	require.Equal(t, []Limb{11, 16}, wp)
	require.Equal(t, Limb(0), carry)
}

func TestSubMul1Generic(t *testing.T) {
	wp := []Limb{11, 16}
	carry := subMul1Generic(wp, []Limb{2, 3}, 2, 5)
	require.Equal(t, []Limb{1, 1}, wp)
	require.Equal(t, Limb(0), carry)
}

// TestKernelRandomAgreement cross-checks addMul1 against subMul1 on random
// inputs: applying both in sequence to the same buffer must be a no-op,
// and the two must return the same carry.
func TestKernelRandomAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(8)
		xp := make([]Limb, n)
		for i := range xp {
			xp[i] = Limb(rng.Uint64())
		}
		vl := Limb(rng.Uint64())

		wp := make([]Limb, n)
		for i := range wp {
			wp[i] = Limb(rng.Uint64())
		}
		original := append([]Limb(nil), wp...)

		addCarry := addMul1Generic(wp, xp, n, vl)
		subCarry := subMul1Generic(wp, xp, n, vl)

		require.Equal(t, original, wp, "addMul1 then subMul1 must round-trip")
		require.Equal(t, addCarry, subCarry, "round-trip carries must match")
	}
}
