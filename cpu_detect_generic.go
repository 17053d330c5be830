// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !amd64 && !arm64

package bignum

// detectAMD64Features is not applicable off AMD64.
func detectAMD64Features(features *cpuFeaturesT) {}

// detectARM64Features is not applicable off ARM64.
func detectARM64Features(features *cpuFeaturesT) {}
