// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64

package bignum

import "golang.org/x/sys/cpu"

// detectAMD64Features detects AMD64-specific CPU features, backed by
// golang.org/x/sys/cpu's cached CPUID probe rather than hand-rolled and
// unverifiable CPUID assembly.
func detectAMD64Features(features *cpuFeaturesT) {
	features.HasBMI2 = cpu.X86.HasBMI2
}

// detectARM64Features is not applicable on AMD64.
func detectARM64Features(features *cpuFeaturesT) {}
