// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratchAlloc(t *testing.T) {
	s := newScratch(10)
	a := s.alloc(4)
	b := s.alloc(6)
	require.Len(t, a, 4)
	require.Len(t, b, 6)
}

func TestScratchExhaustedPanics(t *testing.T) {
	s := newScratch(4)
	s.alloc(4)
	require.Panics(t, func() {
		s.alloc(1)
	})
}

func TestOverlap(t *testing.T) {
	buf := make([]Limb, 10)
	require.True(t, overlap(buf[0:5], buf[3:8]))
	require.False(t, overlap(buf[0:3], buf[3:8]))
	require.False(t, overlap(nil, buf[0:3]))
}

func TestSameOrSeparate(t *testing.T) {
	buf := make([]Limb, 10)
	require.True(t, sameOrSeparate(buf[0:3], buf[0:3]))
	require.True(t, sameOrSeparate(buf[0:3], buf[5:8]))
	require.False(t, sameOrSeparate(buf[0:5], buf[3:8]))
}

func TestSameOrIncr(t *testing.T) {
	buf := make([]Limb, 10)
	require.True(t, sameOrIncr(buf[0:3], buf[0:3]))
	require.True(t, sameOrIncr(buf[3:6], buf[0:3]))
	require.True(t, sameOrIncr(buf[0:3], buf[3:6])) // disjoint, no incr relationship needed
	require.False(t, sameOrIncr(buf[0:4], buf[2:6])) // w starts lower than x and overlaps
}
