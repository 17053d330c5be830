// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package bignum

// initDispatcherImpl selects the amd64 kernel variant when BMI2 is
// available, since mul1AMD64/addMul1AMD64/subMul1AMD64 assume a carry
// chain cheap enough to unroll; otherwise it falls back to the portable
// kernels.
func initDispatcherImpl(d *kernelDispatcher) {
	if d.Features.HasBMI2 {
		d.Mul1Impl = mul1AMD64
		d.AddMul1Impl = addMul1AMD64
		d.SubMul1Impl = subMul1AMD64
		return
	}
	d.Mul1Impl = mul1Generic
	d.AddMul1Impl = addMul1Generic
	d.SubMul1Impl = subMul1Generic
}
