// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

import (
	"maps"
	"slices"
)

// Tables are the gradients and subroutines that prefix a drawing's
// instructions. They are immutable once read and shared by every subroutine
// invocation of the same drawing.
type Tables struct {
	Gradients   map[uint32]Gradient
	Subroutines map[uint32][]byte
}

// ReadTables reads the gradient table and then the subroutine table from c,
// leaving c at the first instruction. Subroutine bodies alias c's bytes.
func ReadTables(c *Cursor) (*Tables, error) {
	t := &Tables{
		Gradients:   map[uint32]Gradient{},
		Subroutines: map[uint32][]byte{},
	}
	n, err := c.count(4)
	if err != nil {
		return nil, err
	}
	for ; n > 0; n-- {
		id, err := c.Uint32()
		if err != nil {
			return nil, err
		}
		if t.Gradients[id], err = c.Gradient(); err != nil {
			return nil, err
		}
	}
	if n, err = c.count(8); err != nil {
		return nil, err
	}
	for ; n > 0; n-- {
		id, err := c.Uint32()
		if err != nil {
			return nil, err
		}
		size, err := c.Uint32()
		if err != nil {
			return nil, err
		}
		if uint64(size) > uint64(c.Len()) {
			return nil, &TruncatedError{Offset: c.Offset(), Required: int(min(size, 1<<31-1)), Available: c.Len()}
		}
		if t.Subroutines[id], err = c.Bytes(int(size)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AppendTables appends the encoding of t to dst, ids in ascending order. A
// nil t encodes as two empty tables.
func AppendTables(dst []byte, t *Tables) []byte {
	b := buffer(dst)
	if t == nil {
		b.uint32(0)
		b.uint32(0)
		return b
	}
	b.uint32(uint32(len(t.Gradients)))
	for _, id := range slices.Sorted(maps.Keys(t.Gradients)) {
		b.uint32(id)
		b.gradient(t.Gradients[id])
	}
	b.uint32(uint32(len(t.Subroutines)))
	for _, id := range slices.Sorted(maps.Keys(t.Subroutines)) {
		body := t.Subroutines[id]
		b.uint32(id)
		b.uint32(uint32(len(body)))
		b = append(b, body...)
	}
	return b
}
