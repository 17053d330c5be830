// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bignum

import "github.com/pkg/errors"

// scratchError reports that the scope-bound scratch arena could not satisfy
// an allocation request. The arena is a fixed-size bump allocator sized by
// the top-level call (see scratch.go); running out means the dispatcher's
// scratch-sizing accounting (§ "Scratch sizing" in the design notes) was
// violated, which is always a bug in this package, never caller input.
type scratchError struct {
	requested, remaining int
	cause                error
}

func (e *scratchError) Error() string {
	return e.cause.Error()
}

func (e *scratchError) Unwrap() error { return e.cause }

func newScratchError(requested, remaining int) *scratchError {
	return &scratchError{
		requested: requested,
		remaining: remaining,
		cause: errors.Errorf(
			"bignum: scratch arena exhausted: requested %d limbs, %d remaining",
			requested, remaining),
	}
}

// preconditionError reports a violated contract on the public surface
// (bad sizes, overlapping or wrongly aliased buffers). Only ever raised
// when built with -tags bignumdebug; see assertions_debug.go.
type preconditionError struct {
	cause error
}

func (e *preconditionError) Error() string { return e.cause.Error() }
func (e *preconditionError) Unwrap() error { return e.cause }

func newPreconditionError(format string, args ...interface{}) *preconditionError {
	return &preconditionError{cause: errors.Errorf(format, args...)}
}

// fail reports a fatal condition. The core never recovers from either a
// scratch-allocation failure or a violated precondition: both are
// programmer errors in the caller or in this package, surfaced immediately
// rather than silently truncated or ignored, per the failure semantics in
// the design notes.
func fail(err error) {
	panic(err)
}

// assertf panics with a preconditionError when debugChecks is enabled and
// cond is false. Compiles away to nothing when debugChecks is false.
func assertf(cond bool, format string, args ...interface{}) {
	if !debugChecks {
		return
	}
	if !cond {
		fail(newPreconditionError(format, args...))
	}
}
