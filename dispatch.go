// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "sync"

// Function pointer types for the dispatched single-limb kernels. Every
// higher-level algorithm in this package (mulBasecase, mulToom22,
// mulUnbalanced, sqr) calls through these rather than the kernels_*.go
// functions directly, so a faster architecture-specific variant is a
// transparent swap.
type (
	mul1Func    func(wp, xp []Limb, n int, vl Limb) Limb
	addMul1Func func(wp, xp []Limb, n int, vl Limb) Limb
	subMul1Func func(wp, xp []Limb, n int, vl Limb) Limb
)

// kernelDispatcher holds the kernel implementations selected at runtime.
// The teacher's version of this file carried a ~40-field Dispatcher for
// its BigFloat/vector/matrix surface; this package's dispatch concern is
// just the three scalar kernels the multiplication core bottoms out in, so
// the struct is narrowed to match.
type kernelDispatcher struct {
	Mul1Impl    mul1Func
	AddMul1Impl addMul1Func
	SubMul1Impl subMul1Func

	Features cpuFeaturesT
}

var (
	dispatcher     *kernelDispatcher
	dispatcherOnce sync.Once
)

// initDispatcher builds the kernel dispatcher for this process, selecting
// implementations based on detected CPU capabilities. The actual selection
// is architecture-specific: see dispatch_amd64.go, dispatch_arm64.go and
// dispatch_generic.go.
func initDispatcher() *kernelDispatcher {
	d := &kernelDispatcher{}
	d.Features = getCPUFeatures()

	initDispatcherImpl(d)

	return d
}

// getDispatcher returns the process-wide kernel dispatcher, building it on
// first use.
func getDispatcher() *kernelDispatcher {
	dispatcherOnce.Do(func() {
		dispatcher = initDispatcher()
	})
	return dispatcher
}
