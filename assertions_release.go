// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !bignumdebug

package bignum

// debugChecks is false in ordinary (release) builds: precondition
// assertions compile away entirely rather than pay their cost on every
// call. Build with -tags bignumdebug to enable them.
const debugChecks = false
