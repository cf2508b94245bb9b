// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/bytecode/bytecodetest"
	"golang.org/x/vgbc/ir"
	"golang.org/x/vgbc/vm"
	"golang.org/x/vgbc/vm/vmtest"
)

var red = bytecode.Color{R: 1, A: 1}

func f32s(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

func TestCompileBytes(t *testing.T) {
	r := &ir.Route{Steps: []ir.Step{
		ir.FillColor{Color: red},
		ir.Composite{Steps: []ir.Step{
			ir.MoveTo{Point: bytecode.Point{X: 1, Y: 2}},
			ir.ClosePath{},
		}},
		ir.Fill{},
	}}
	got, err := Compile(r)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]byte, 8) // no gradients, no subroutines
	want = append(want, byte(bytecode.OpFillColor))
	want = f32s(want, 1, 0, 0, 1)
	want = append(want, byte(bytecode.OpMoveTo))
	want = f32s(want, 1, 2)
	want = append(want, byte(bytecode.OpClosePath), byte(bytecode.OpFill))
	if !bytes.Equal(got, want) {
		t.Errorf("got\n% x\nwant\n% x", got, want)
	}
}

// nested is a route whose subroutines define their own gradients and
// subroutines.
func nested() *ir.Route {
	inner := &ir.Route{
		Gradients: map[string]bytecode.Gradient{"glow": bytecodetest.Gradient},
		Steps: []ir.Step{
			ir.AppendRectangle{Rect: bytecode.Rect{W: 2, H: 2}},
			ir.FillRadialGradient{Gradient: "glow", Options: bytecode.RadialGradient{EndRadius: 2}},
			ir.FillAndStroke{},
		},
	}
	outer := &ir.Route{
		Subroutines: map[string]*ir.Route{"inner": inner},
		Steps: []ir.Step{
			ir.FillColor{Color: red},
			ir.Subroutine{Name: "inner"},
			ir.StrokeLinearGradient{Gradient: "band", Options: bytecode.LinearGradient{End: bytecode.Point{X: 1}}},
			ir.MoveTo{},
			ir.LineTo{Point: bytecode.Point{X: 4, Y: 4}},
			ir.FillAndStroke{},
		},
	}
	return &ir.Route{
		Bounds: bytecode.Rect{W: 16, H: 16},
		Gradients: map[string]bytecode.Gradient{
			"band": bytecodetest.Gradient,
			"alt":  {{Location: 0.5, Color: red}},
		},
		Subroutines: map[string]*ir.Route{"outer": outer},
		Steps: []ir.Step{
			ir.SaveGState{},
			ir.ConcatCTM{Transform: bytecode.Transform{A: 2, D: 2}},
			ir.Subroutine{Name: "outer"},
			ir.RestoreGState{},
			ir.LinearGradient{Gradient: "alt", Options: bytecode.LinearGradient{End: bytecode.Point{Y: 1}}},
			ir.Shadow{Shadow: bytecode.Shadow{Offset: bytecode.Size{W: 1, H: 1}, Blur: 2, Color: red}},
			ir.Subroutine{Name: "inner"},
		},
	}
}

func TestIDsFollowNames(t *testing.T) {
	p, err := NewProgram(nested())
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		lookup func(string) (uint32, bool)
		name   string
		want   uint32
	}{
		{p.GradientID, "alt", 0},
		{p.GradientID, "band", 1},
		{p.GradientID, "glow", 2},
		{p.SubroutineID, "inner", 0},
		{p.SubroutineID, "outer", 1},
	} {
		got, ok := tc.lookup(tc.name)
		if !ok || got != tc.want {
			t.Errorf("id of %q = %d, %v; want %d", tc.name, got, ok, tc.want)
		}
	}
	if _, ok := p.GradientID("missing"); ok {
		t.Error("missing gradient has an id")
	}
	if n := len(p.Tables.Gradients); n != 3 {
		t.Errorf("%d gradients in tables, want 3", n)
	}
	if n := len(p.Tables.Subroutines); n != 2 {
		t.Errorf("%d subroutines in tables, want 2", n)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	first, err := Compile(nested())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		b, err := Compile(nested())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(b, first) {
			t.Fatalf("compilation %d differs", i)
		}
	}
}

// TestReplayMatchesBytecode checks that running the compiled bytes makes the
// same calls as running the steps directly.
func TestReplayMatchesBytecode(t *testing.T) {
	p, err := NewProgram(nested())
	if err != nil {
		t.Fatal(err)
	}

	direct := &vmtest.Recorder{}
	m := vm.NewMachine(direct, p.Tables, nil)
	m.Synchronize()
	if err := p.Replay(m); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	decoded := &vmtest.Recorder{}
	if err := vm.Run(decoded, p.Bytes(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(direct.Calls, decoded.Calls); diff != "" {
		t.Errorf("calls differ (-replay +bytecode):\n%s", diff)
	}
	if len(decoded.Calls) < 10 {
		t.Errorf("only %d calls:\n%s", len(decoded.Calls), decoded)
	}
}

func TestReplayEncodesBody(t *testing.T) {
	p, err := NewProgram(nested())
	if err != nil {
		t.Fatal(err)
	}
	var e bytecode.Encoder
	if err := p.Replay(&e); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(e.Bytes(), p.Body()) {
		t.Error("Replay into an Encoder differs from Body")
	}
	if !bytes.HasSuffix(p.Bytes(), p.Body()) {
		t.Error("Bytes does not end with Body")
	}
}

func TestCompileErrors(t *testing.T) {
	shared := &ir.Route{}
	testCases := []struct {
		name  string
		route *ir.Route
		want  error
	}{{
		name:  "undefined gradient",
		route: &ir.Route{Steps: []ir.Step{ir.FillLinearGradient{Gradient: "nope"}}},
		want:  &UndefinedError{Kind: "gradient", Name: "nope"},
	}, {
		name:  "undefined subroutine",
		route: &ir.Route{Steps: []ir.Step{ir.Composite{Steps: []ir.Step{ir.Subroutine{Name: "nope"}}}}},
		want:  &UndefinedError{Kind: "subroutine", Name: "nope"},
	}, {
		name:  "nil subroutine",
		route: &ir.Route{Subroutines: map[string]*ir.Route{"empty": nil}},
		want:  &UndefinedError{Kind: "subroutine", Name: "empty"},
	}, {
		name: "undefined inside subroutine",
		route: &ir.Route{Subroutines: map[string]*ir.Route{
			"s": {Steps: []ir.Step{ir.StrokeRadialGradient{Gradient: "g"}}},
		}},
		want: &UndefinedError{Kind: "gradient", Name: "g"},
	}, {
		name: "conflicting gradients",
		route: &ir.Route{
			Gradients: map[string]bytecode.Gradient{"g": bytecodetest.Gradient},
			Subroutines: map[string]*ir.Route{
				"s": {Gradients: map[string]bytecode.Gradient{"g": {{Color: red}}}},
			},
		},
		want: &ConflictError{Kind: "gradient", Name: "g"},
	}, {
		name: "conflicting subroutines",
		route: &ir.Route{Subroutines: map[string]*ir.Route{
			"s": {Subroutines: map[string]*ir.Route{"s": {}}},
		}},
		want: &ConflictError{Kind: "subroutine", Name: "s"},
	}, {
		name: "shared subroutine",
		route: &ir.Route{Subroutines: map[string]*ir.Route{
			"a": {Subroutines: map[string]*ir.Route{"s": shared}},
			"b": {Subroutines: map[string]*ir.Route{"s": shared}},
		}},
		want: nil,
	}, {
		name: "identical redefinition",
		route: &ir.Route{Subroutines: map[string]*ir.Route{
			"a": {Subroutines: map[string]*ir.Route{"s": {Steps: []ir.Step{ir.Fill{}}}}},
			"b": {Subroutines: map[string]*ir.Route{"s": {Steps: []ir.Step{ir.Fill{}}}}},
		}},
		want: nil,
	}, {
		name: "different redefinition",
		route: &ir.Route{Subroutines: map[string]*ir.Route{
			"a": {Subroutines: map[string]*ir.Route{"s": {Steps: []ir.Step{ir.Fill{}}}}},
			"b": {Subroutines: map[string]*ir.Route{"s": {Steps: []ir.Step{ir.Stroke{}}}}},
		}},
		want: &ConflictError{Kind: "subroutine", Name: "s"},
	}}

	for _, tc := range testCases {
		_, err := Compile(tc.route)
		if diff := cmp.Diff(tc.want, err); diff != "" {
			t.Errorf("%s: error (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestPath(t *testing.T) {
	r := &ir.PathRoutine{ID: "tick", Steps: []ir.Step{
		ir.MoveTo{Point: bytecode.Point{X: 1}},
		ir.Composite{Steps: []ir.Step{
			ir.Lines{Points: []bytecode.Point{{X: 2}, {X: 2, Y: 2}}},
		}},
		ir.ClosePath{},
	}}
	got, err := Path(r)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{byte(bytecode.OpMoveTo)}
	want = f32s(want, 1, 0)
	want = append(want, byte(bytecode.OpLines), 2, 0, 0, 0)
	want = f32s(want, 2, 0, 2, 2)
	want = append(want, byte(bytecode.OpClosePath))
	if !bytes.Equal(got, want) {
		t.Errorf("got\n% x\nwant\n% x", got, want)
	}

	r.Steps = append(r.Steps, ir.Composite{Steps: []ir.Step{ir.Fill{}}})
	_, err = Path(r)
	var npe *NotPathError
	if !errors.As(err, &npe) || npe.Routine != "tick" || npe.Op != bytecode.OpFill {
		t.Errorf("got %v, want a NotPathError for fill", err)
	}
}

func TestBatch(t *testing.T) {
	routes := make([]*ir.Route, 50)
	for i := range routes {
		routes[i] = &ir.Route{Steps: []ir.Step{ir.LineWidth{Value: float32(i)}}}
	}
	got, err := Batch(context.Background(), routes, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range routes {
		want, err := Compile(r)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got[i], want) {
			t.Errorf("result %d is not the encoding of route %d", i, i)
		}
	}

	routes[17] = &ir.Route{Steps: []ir.Step{ir.Subroutine{Name: "missing"}}}
	if _, err := Batch(context.Background(), routes, 0); err == nil {
		t.Error("Batch succeeded with an undefined subroutine")
	}
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	routes := []*ir.Route{{}, {}}
	if _, err := Batch(ctx, routes, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
