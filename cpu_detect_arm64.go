// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build arm64

package bignum

import "golang.org/x/sys/cpu"

// detectAMD64Features is not applicable on ARM64.
func detectAMD64Features(features *cpuFeaturesT) {}

// detectARM64Features detects ARM64-specific CPU features.
func detectARM64Features(features *cpuFeaturesT) {
	features.HasASIMD = cpu.ARM64.HasASIMD
}
