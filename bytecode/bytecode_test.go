// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/bytecode/bytecodetest"
)

func TestSamplesCoverEveryOpcode(t *testing.T) {
	if got, want := len(bytecodetest.Samples), bytecode.NumOpcodes; got != want {
		t.Fatalf("len(Samples): got %d, want %d", got, want)
	}
	for i, s := range bytecodetest.Samples {
		if int(s.Op) != i {
			t.Errorf("Samples[%d].Op: got %v, want opcode %d", i, s.Op, i)
		}
		if got := bytecode.Opcode(s.Encode()[0]); got != s.Op {
			t.Errorf("%v: encoded opcode byte: got %v", s.Op, got)
		}
	}
}

func TestOpcodeString(t *testing.T) {
	testCases := []struct {
		op   bytecode.Opcode
		want string
	}{
		{bytecode.OpSaveGState, "SaveGState"},
		{bytecode.OpSubroutine, "Subroutine"},
		{bytecode.OpMiterLimit, "MiterLimit"},
		{bytecode.Opcode(bytecode.NumOpcodes), "Opcode(52)"},
	}
	for _, tc := range testCases {
		if got := tc.op.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", uint8(tc.op), got, tc.want)
		}
	}
}

// locatingEncoder re-encodes what it visits and remembers every Context.
type locatingEncoder struct {
	bytecode.Encoder
	ctxs []bytecode.Context
}

func (e *locatingEncoder) Locate(ctx bytecode.Context) { e.ctxs = append(e.ctxs, ctx) }

func TestVisitSingleInstruction(t *testing.T) {
	for _, s := range bytecodetest.Samples {
		src := s.Encode()
		e := &locatingEncoder{}
		if err := bytecode.Visit(bytecode.NewCursor(src), e); err != nil {
			t.Errorf("%v: Visit: %v", s.Op, err)
			continue
		}
		if !bytes.Equal(e.Bytes(), src) {
			t.Errorf("%v: re-encoded\ngot  % x\nwant % x", s.Op, e.Bytes(), src)
		}
		want := []bytecode.Context{{Offset: 0, CommandIndex: 0, TotalSize: len(src)}}
		if diff := cmp.Diff(want, e.ctxs); diff != "" {
			t.Errorf("%v: contexts (-want +got):\n%s", s.Op, diff)
		}
	}
}

func TestVisitRoundTrip(t *testing.T) {
	var e bytecode.Encoder
	for _, s := range bytecodetest.Samples {
		if err := s.Call(&e); err != nil {
			t.Fatalf("%v: %v", s.Op, err)
		}
	}
	src := e.Bytes()

	got := &locatingEncoder{}
	if err := bytecode.Visit(bytecode.NewCursor(src), got); err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if !bytes.Equal(got.Bytes(), src) {
		t.Fatalf("round trip mismatch\ngot  % x\nwant % x", got.Bytes(), src)
	}
	if n := len(got.ctxs); n != bytecode.NumOpcodes {
		t.Fatalf("number of instructions: got %d, want %d", n, bytecode.NumOpcodes)
	}
	offset := 0
	for i, s := range bytecodetest.Samples {
		ctx := got.ctxs[i]
		if ctx.Offset != offset || ctx.CommandIndex != i || ctx.TotalSize != len(src) {
			t.Errorf("%v: got %+v, want offset %d index %d", s.Op, ctx, offset, i)
		}
		offset += len(s.Encode())
	}
}

func TestTruncation(t *testing.T) {
	for _, s := range bytecodetest.Samples {
		src := s.Encode()
		for n := 1; n < len(src); n++ {
			err := bytecode.Visit(bytecode.NewCursor(src[:n]), &bytecode.Encoder{})
			if !errors.Is(err, bytecode.ErrTruncated) {
				t.Errorf("%v truncated to %d of %d bytes: got %v, want a truncation error", s.Op, n, len(src), err)
			}
			var te *bytecode.TruncatedError
			if errors.As(err, &te) && te.Available >= te.Required {
				t.Errorf("%v truncated to %d bytes: inconsistent %+v", s.Op, n, te)
			}
		}
	}
}

func TestInvalidBytes(t *testing.T) {
	testCases := []struct {
		name string
		src  []byte
		what string
	}{
		{"opcode 52", []byte{52}, "opcode"},
		{"opcode 255", []byte{0x00, 0xff}, "opcode"},
		{"fill rule", []byte{byte(bytecode.OpFillRule), 2}, "fill rule"},
		{"drawing mode", []byte{byte(bytecode.OpDrawPath), 5}, "drawing mode"},
		{"blend mode", []byte{byte(bytecode.OpBlendMode), 28}, "blend mode"},
		{"clockwise", []byte{byte(bytecode.OpAddArc),
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2}, "bool"},
	}
	for _, tc := range testCases {
		err := bytecode.Visit(bytecode.NewCursor(tc.src), &bytecode.Encoder{})
		var ie *bytecode.InvalidValueError
		if !errors.As(err, &ie) {
			t.Errorf("%s: got %v, want an InvalidValueError", tc.name, err)
			continue
		}
		if ie.What != tc.what {
			t.Errorf("%s: What: got %q, want %q", tc.name, ie.What, tc.what)
		}
		if !errors.Is(err, bytecode.ErrTruncated) {
			t.Errorf("%s: not in the truncation class", tc.name)
		}
	}
}

func TestHugeCount(t *testing.T) {
	src := []byte{byte(bytecode.OpLines), 0xff, 0xff, 0xff, 0xff, 1, 2, 3, 4}
	err := bytecode.Visit(bytecode.NewCursor(src), &bytecode.Encoder{})
	var te *bytecode.TruncatedError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want a TruncatedError", err)
	}
	if te.Offset != 1 {
		t.Errorf("Offset: got %d, want 1", te.Offset)
	}
}

func TestVisitPath(t *testing.T) {
	var e bytecode.Encoder
	e.MoveTo(bytecode.Point{X: 1, Y: 2})
	e.LineTo(bytecode.Point{X: 3, Y: 4})
	e.ClosePath()
	src := append([]byte(nil), e.Bytes()...)

	var got bytecode.Encoder
	if err := bytecode.VisitPath(bytecode.NewCursor(src), &got); err != nil {
		t.Fatalf("VisitPath: %v", err)
	}
	if !bytes.Equal(got.Bytes(), src) {
		t.Errorf("got % x, want % x", got.Bytes(), src)
	}

	e.Fill()
	err := bytecode.VisitPath(bytecode.NewCursor(e.Bytes()), &bytecode.Encoder{})
	var ie *bytecode.InvalidValueError
	if !errors.As(err, &ie) || ie.Value != uint8(bytecode.OpFill) {
		t.Errorf("non-path opcode: got %v", err)
	}
}

func TestTables(t *testing.T) {
	want := &bytecode.Tables{
		Gradients: map[uint32]bytecode.Gradient{
			7: bytecodetest.Gradient,
			2: {{Location: 0.5, Color: bytecode.Color{G: 1, A: 1}}},
		},
		Subroutines: map[uint32][]byte{
			1: bytecodetest.Samples[bytecode.OpFill].Encode(),
			0: {},
		},
	}
	src := bytecode.AppendTables(nil, want)
	src = append(src, byte(bytecode.OpStroke))

	c := bytecode.NewCursor(src)
	got, err := bytecode.ReadTables(c)
	if err != nil {
		t.Fatalf("ReadTables: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tables (-want +got):\n%s", diff)
	}
	if rest := c.Rest(); !bytes.Equal(rest, []byte{byte(bytecode.OpStroke)}) {
		t.Errorf("rest: got % x", rest)
	}

	// Ids are written in ascending order, so encoding is deterministic.
	if again := bytecode.AppendTables(nil, got); !bytes.Equal(again, src[:len(src)-1]) {
		t.Errorf("re-encoded tables differ")
	}

	for n := 0; n < len(src)-1; n++ {
		if _, err := bytecode.ReadTables(bytecode.NewCursor(src[:n])); !errors.Is(err, bytecode.ErrTruncated) {
			t.Errorf("tables truncated to %d bytes: got %v", n, err)
		}
	}
}

func TestEmptyTables(t *testing.T) {
	src := bytecode.AppendTables(nil, nil)
	if want := []byte{0, 0, 0, 0, 0, 0, 0, 0}; !bytes.Equal(src, want) {
		t.Fatalf("got % x, want % x", src, want)
	}
	got, err := bytecode.ReadTables(bytecode.NewCursor(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Gradients) != 0 || len(got.Subroutines) != 0 {
		t.Errorf("got %+v, want empty tables", got)
	}
}

func TestTransform(t *testing.T) {
	scale := bytecode.Transform{A: 2, D: 3}
	move := bytecode.Transform{A: 1, D: 1, TX: 10, TY: 20}
	p := bytecode.Point{X: 1, Y: 1}

	if got, want := scale.Concat(move).Apply(p), (bytecode.Point{X: 12, Y: 23}); got != want {
		t.Errorf("scale then move: got %v, want %v", got, want)
	}
	if got, want := move.Concat(scale).Apply(p), (bytecode.Point{X: 22, Y: 63}); got != want {
		t.Errorf("move then scale: got %v, want %v", got, want)
	}
	if got, want := move.ApplySize(bytecode.Size{W: 1, H: 2}), (bytecode.Size{W: 1, H: 2}); got != want {
		t.Errorf("ApplySize ignores translation: got %v, want %v", got, want)
	}
	rot := bytecode.Transform{A: 0, B: 3, C: -4, D: 0}
	if got := rot.ScaleX(); got != 4 {
		t.Errorf("ScaleX: got %v, want 4", got)
	}
}
