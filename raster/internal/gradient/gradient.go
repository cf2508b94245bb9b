// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides linear and two-circle radial gradient images.
package gradient

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Shape is the gradient shape.
type Shape uint8

const (
	ShapeLinear Shape = iota
	ShapeRadial
)

// Extend says whether a gradient paints past its ends. Offsets outside of
// [0, 1] on a side that does not extend map to transparent black; offsets on
// a side that does extend map to that end's color.
type Extend uint8

const (
	ExtendStart Extend = 1 << iota
	ExtendEnd
)

// Clamp clamps x to the range [0, 1]. It returns -1 if x is outside that
// range on a side that e does not extend.
func (e Extend) Clamp(x float64) float64 {
	switch {
	case x < 0:
		if e&ExtendStart == 0 {
			return -1
		}
		return 0
	case x > 1:
		if e&ExtendEnd == 0 {
			return -1
		}
		return 1
	}
	return x
}

// Stop is an offset and a premultiplied color.
type Stop struct {
	Offset float64
	RGBA64 color.RGBA64
}

// Range is the range between two stops.
type Range struct {
	Offset0 float64
	Offset1 float64
	Width   float64
	R0      float64
	R1      float64
	G0      float64
	G1      float64
	B0      float64
	B1      float64
	A0      float64
	A1      float64
}

// MakeRange returns the range between two stops.
func MakeRange(s0, s1 Stop) Range {
	return Range{
		Offset0: s0.Offset,
		Offset1: s1.Offset,
		Width:   s1.Offset - s0.Offset,
		R0:      float64(s0.RGBA64.R),
		R1:      float64(s1.RGBA64.R),
		G0:      float64(s0.RGBA64.G),
		G1:      float64(s1.RGBA64.G),
		B0:      float64(s0.RGBA64.B),
		B1:      float64(s1.RGBA64.B),
		A0:      float64(s0.RGBA64.A),
		A1:      float64(s1.RGBA64.A),
	}
}

// MakeRanges returns the ranges between consecutive stops, which must be
// sorted by offset.
func MakeRanges(stops []Stop) []Range {
	if len(stops) < 2 {
		return nil
	}
	a := make([]Range, 0, len(stops)-1)
	for i := 0; i < len(stops)-1; i++ {
		a = append(a, MakeRange(stops[i], stops[i+1]))
	}
	return a
}

// Gradient is a very large image.Image (the same size as an image.Uniform)
// whose colors form a gradient.
type Gradient struct {
	Shape  Shape
	Extend Extend
	Ranges []Range

	// First and Last are the first and last stop's colors.
	First, Last color.RGBA64
	// FirstOffset and LastOffset are the first and last stop's offsets.
	FirstOffset, LastOffset float64

	// Pix2User transforms coordinates from pixel space (the arguments to
	// the Image.At method) to the space that the geometry below is given in.
	Pix2User f64.Aff3

	// A linear gradient runs from P0 to P1. A radial gradient runs from the
	// circle (P0, R0) to the circle (P1, R1).
	P0, P1 [2]float64
	R0, R1 float64
}

func (g *Gradient) init(extend Extend, stops []Stop, pix2User f64.Aff3) {
	g.Extend = extend
	g.Ranges = MakeRanges(stops)
	g.Pix2User = pix2User
	if len(stops) == 0 {
		g.First, g.Last = color.RGBA64{}, color.RGBA64{}
		g.FirstOffset, g.LastOffset = 0, 0
		return
	}
	g.First, g.Last = stops[0].RGBA64, stops[len(stops)-1].RGBA64
	g.FirstOffset, g.LastOffset = stops[0].Offset, stops[len(stops)-1].Offset
}

// InitLinear initializes g to be a linear gradient from (x0, y0) to (x1, y1).
func (g *Gradient) InitLinear(x0, y0, x1, y1 float64, extend Extend, stops []Stop, pix2User f64.Aff3) {
	g.init(extend, stops, pix2User)
	g.Shape = ShapeLinear
	g.P0, g.P1 = [2]float64{x0, y0}, [2]float64{x1, y1}
}

// InitRadial initializes g to be a gradient between the circle centered on
// (x0, y0) with radius r0 and the circle centered on (x1, y1) with radius
// r1.
func (g *Gradient) InitRadial(x0, y0, r0, x1, y1, r1 float64, extend Extend, stops []Stop, pix2User f64.Aff3) {
	g.init(extend, stops, pix2User)
	g.Shape = ShapeRadial
	g.P0, g.P1 = [2]float64{x0, y0}, [2]float64{x1, y1}
	g.R0, g.R1 = r0, r1
}

// ColorModel satisfies the image.Image interface.
func (g *Gradient) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds satisfies the image.Image interface.
func (g *Gradient) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{-1e9, -1e9},
		Max: image.Point{+1e9, +1e9},
	}
}

// offset returns the position of the user space point (x, y) along the
// gradient, unclamped, and false if no circle of a radial gradient passes
// through it.
func (g *Gradient) offset(x, y float64) (float64, bool) {
	if g.Shape == ShapeLinear {
		dx, dy := g.P1[0]-g.P0[0], g.P1[1]-g.P0[1]
		d := dx*dx + dy*dy
		if d == 0 {
			return 0, false
		}
		return ((x-g.P0[0])*dx + (y-g.P0[1])*dy) / d, true
	}

	// Find the largest t with r(t) >= 0 such that (x, y) lies on the circle
	// centered on P0 + t*(P1-P0) with radius r(t) = R0 + t*(R1-R0).
	cdx, cdy := g.P1[0]-g.P0[0], g.P1[1]-g.P0[1]
	pdx, pdy := x-g.P0[0], y-g.P0[1]
	dr := g.R1 - g.R0
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, g.R0+t*dr >= 0
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0, t1 := (b+sq)/a, (b-sq)/a
	if t0 < t1 {
		t0, t1 = t1, t0
	}
	if g.R0+t0*dr >= 0 {
		return t0, true
	}
	if g.R0+t1*dr >= 0 {
		return t1, true
	}
	return 0, false
}

// At satisfies the image.Image interface.
func (g *Gradient) At(x, y int) color.Color {
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	m := &g.Pix2User
	ux := m[0]*px + m[1]*py + m[2]
	uy := m[3]*px + m[4]*py + m[5]

	t, ok := g.offset(ux, uy)
	if !ok {
		return color.RGBA64{}
	}
	offset := g.Extend.Clamp(t)
	if !(offset >= 0) {
		return color.RGBA64{}
	}

	if offset <= g.FirstOffset {
		return g.First
	}
	for _, r := range g.Ranges {
		if r.Offset0 <= offset && offset <= r.Offset1 {
			if r.Width <= 0 {
				return color.RGBA64{uint16(r.R1), uint16(r.G1), uint16(r.B1), uint16(r.A1)}
			}
			t := (offset - r.Offset0) / r.Width
			s := 1 - t
			return color.RGBA64{
				uint16(s*r.R0 + t*r.R1),
				uint16(s*r.G0 + t*r.G1),
				uint16(s*r.B0 + t*r.B1),
				uint16(s*r.A0 + t*r.A1),
			}
		}
	}
	return g.Last
}
