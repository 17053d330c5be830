// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !arm64

package bignum

// initDispatcherImpl sets up the portable kernel selection for platforms
// with no specialized variant.
func initDispatcherImpl(d *kernelDispatcher) {
	d.Mul1Impl = mul1Generic
	d.AddMul1Impl = addMul1Generic
	d.SubMul1Impl = subMul1Generic
}
