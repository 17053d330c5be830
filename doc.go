// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package bignum implements the arbitrary-precision unsigned multiplication
// core of a bignum library: single-limb kernels, a schoolbook base case, a
// balanced Toom-22 (Karatsuba) divide-and-conquer, an unbalanced-operand
// streaming path, and a squaring specialization. Callers own the limb
// vector and the surrounding signed/rational/division machinery; this
// package only ever multiplies.
package bignum
