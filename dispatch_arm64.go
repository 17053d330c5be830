// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build arm64

package bignum

// initDispatcherImpl sets up ARM64-specific kernel selection.
//
// kernels_arm64.go currently just forwards to the portable kernels
// (mirroring the teacher's own arm64 fallback-pending-fixed-calling-
// convention posture for its asm paths), so wiring it here costs nothing
// and leaves the seam in place for a future specialized variant.
func initDispatcherImpl(d *kernelDispatcher) {
	d.Mul1Impl = mul1ARM64
	d.AddMul1Impl = addMul1ARM64
	d.SubMul1Impl = subMul1ARM64
}
