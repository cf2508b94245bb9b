// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/f64"
)

var (
	identity = f64.Aff3{1, 0, 0, 0, 1, 0}
	black    = color.RGBA64{0, 0, 0, 0xffff}
	white    = color.RGBA64{0xffff, 0xffff, 0xffff, 0xffff}
	stops    = []Stop{{0, black}, {1, white}}
)

func TestExtendClamp(t *testing.T) {
	testCases := []struct {
		e    Extend
		x    float64
		want float64
	}{
		{0, 0.5, 0.5},
		{0, -0.1, -1},
		{0, 1.1, -1},
		{ExtendStart, -3, 0},
		{ExtendStart, 1.1, -1},
		{ExtendEnd, 1.1, 1},
		{ExtendEnd, -0.1, -1},
		{ExtendStart | ExtendEnd, 7, 1},
	}
	for _, tc := range testCases {
		if got := tc.e.Clamp(tc.x); got != tc.want {
			t.Errorf("Extend(%d).Clamp(%v) = %v, want %v", tc.e, tc.x, got, tc.want)
		}
	}
}

func gray(c color.Color) uint32 {
	r, _, _, _ := c.RGBA()
	return r
}

func alpha(c color.Color) uint32 {
	_, _, _, a := c.RGBA()
	return a
}

func TestLinear(t *testing.T) {
	var g Gradient
	g.InitLinear(0, 0, 10, 0, 0, stops, identity)

	// The center of pixel 4 is 45% of the way along.
	if got, want := gray(g.At(4, 7)), uint32(29490); got < want-1 || got > want+1 {
		t.Errorf("At(4, 7) gray = %#04x, want about %#04x", got, want)
	}
	if gray(g.At(1, 0)) >= gray(g.At(8, 0)) {
		t.Error("not increasing along the gradient")
	}
	if a := alpha(g.At(-5, 0)); a != 0 {
		t.Errorf("before start: alpha %#04x, want 0", a)
	}
	if a := alpha(g.At(12, 0)); a != 0 {
		t.Errorf("after end: alpha %#04x, want 0", a)
	}

	g.InitLinear(0, 0, 10, 0, ExtendStart|ExtendEnd, stops, identity)
	if got := g.At(-5, 0); got != black {
		t.Errorf("extended start: got %v, want %v", got, black)
	}
	if got := g.At(12, 0); got != white {
		t.Errorf("extended end: got %v, want %v", got, white)
	}
}

func TestLinearPix2User(t *testing.T) {
	// Pixels are twice the size of user space units.
	var g Gradient
	g.InitLinear(0, 0, 10, 0, 0, stops, f64.Aff3{2, 0, 0, 0, 2, 0})
	if a := alpha(g.At(6, 0)); a != 0 {
		t.Errorf("pixel 6 maps past the end, got alpha %#04x", a)
	}
	if a := alpha(g.At(4, 0)); a == 0 {
		t.Error("pixel 4 maps inside the gradient")
	}
}

func TestRadial(t *testing.T) {
	var g Gradient
	g.InitRadial(5, 5, 0, 5, 5, 5, 0, stops, identity)

	center, edge := gray(g.At(5, 5)), gray(g.At(8, 5))
	if center >= edge {
		t.Errorf("center %#04x should be darker than %#04x", center, edge)
	}
	if a := alpha(g.At(20, 5)); a != 0 {
		t.Errorf("outside the end circle: alpha %#04x, want 0", a)
	}

	g.InitRadial(5, 5, 0, 5, 5, 5, ExtendEnd, stops, identity)
	if got := g.At(20, 5); got != white {
		t.Errorf("extended: got %v, want %v", got, white)
	}
}

func TestTwoCircle(t *testing.T) {
	// A cone from a point at (0, 0) to a circle of radius 2 at (10, 0).
	var g Gradient
	g.InitRadial(0, 0, 0, 10, 0, 2, 0, stops, identity)
	if a := alpha(g.At(4, 0)); a == 0 {
		t.Error("point on the axis is not painted")
	}
	if a := alpha(g.At(-3, 8)); a != 0 {
		t.Errorf("point behind the start: alpha %#04x, want 0", a)
	}
}

func TestStops(t *testing.T) {
	red := color.RGBA64{0xffff, 0, 0, 0xffff}
	var g Gradient
	g.InitLinear(0, 0, 100, 0, 0, []Stop{{0.5, red}, {0.5, white}, {1, black}}, identity)
	if got := g.At(10, 0); got != red {
		t.Errorf("before the first stop: got %v, want %v", got, red)
	}

	g.InitLinear(0, 0, 100, 0, ExtendStart|ExtendEnd, []Stop{{0.25, red}}, identity)
	for _, x := range []int{-10, 10, 60, 200} {
		if got := g.At(x, 0); got != red {
			t.Errorf("single stop, At(%d, 0) = %v, want %v", x, got, red)
		}
	}
}
