// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bytecode defines a compact binary instruction format for vector
graphics drawings, and the encoder and decoding loop for it.

A drawing is a preamble of two tables followed by instructions:

	gradient count  u32
	  gradient id   u32
	  stop count    u32
	    location    f32
	    color       f32 f32 f32 f32 (r g b a)
	subroutine count u32
	  subroutine id u32
	  body length   u32
	  body          [body length]byte
	instructions...

Every instruction is a one byte Opcode followed by its operands. Numbers are
little-endian: ids and counts are u32, coordinates and lengths f32, bools and
enumerations one byte. Variable-length operands (dash lengths, Lines points)
carry a u32 element count.

Subroutine bodies and path-only routines are bare instruction streams with
no preamble. A subroutine body refers to gradients and subroutines by ids
from the tables of the drawing that contains it.

The format has no version field and is not self-describing. Opcode numbers
are only ever appended; the decoder rejects opcode bytes it does not know.
*/
package bytecode
