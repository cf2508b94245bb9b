// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import (
	"errors"
	"fmt"
)

// Decoding failures are reported with the errors of package bytecode:
// *bytecode.TruncatedError and *bytecode.InvalidValueError, both matching
// bytecode.ErrTruncated.

// UnknownReferenceError reports an instruction naming an id that is missing
// from the drawing's tables.
type UnknownReferenceError struct {
	Kind string // "gradient" or "subroutine"
	ID   uint32
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("vm: unknown %s id %d", e.Kind, e.ID)
}

// GradientError reports a gradient that could not be constructed.
type GradientError struct {
	ID  uint32
	Err error
}

func (e *GradientError) Error() string {
	return fmt.Sprintf("vm: gradient %d: %v", e.ID, e.Err)
}

func (e *GradientError) Unwrap() error { return e.Err }

var (
	// ErrDepth is returned when subroutines nest deeper than
	// Options.MaxDepth.
	ErrDepth = errors.New("vm: subroutines nested too deeply")

	errNoStops = errors.New("no color stops")
)
