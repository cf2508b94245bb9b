// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

import (
	"errors"
	"strconv"
)

// ErrTruncated is the class of every decoding failure: the stream ended
// early or held bytes that no instruction can start with. Test for it with
// errors.Is.
var ErrTruncated = errors.New("bytecode: truncated or malformed stream")

// TruncatedError reports a read that needed more bytes than remained.
type TruncatedError struct {
	Offset    int // Where the read started, relative to the start of decoding.
	Required  int
	Available int
}

func (e *TruncatedError) Error() string {
	return "bytecode: out of bounds at offset " + itoa(e.Offset) +
		": required " + itoa(e.Required) + " bytes, " + itoa(e.Available) + " left"
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// InvalidValueError reports a byte that is not a valid opcode or enumeration
// value.
type InvalidValueError struct {
	Offset int
	What   string // "opcode", "fill rule", ...
	Value  uint8
}

func (e *InvalidValueError) Error() string {
	return "bytecode: invalid " + e.What + " " + itoa(int(e.Value)) + " at offset " + itoa(e.Offset)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrTruncated }

func itoa(i int) string { return strconv.Itoa(i) }
