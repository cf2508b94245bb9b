// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

import (
	"encoding/binary"
	"math"
)

// Cursor reads operands from a byte slice, failing rather than reading past
// its end. Offsets are relative to the slice the Cursor was created with.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a Cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor { return &Cursor{b: b} }

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Len returns the number of bytes left.
func (c *Cursor) Len() int { return len(c.b) - c.off }

// Rest returns the bytes left, without consuming them.
func (c *Cursor) Rest() []byte { return c.b[c.off:] }

func (c *Cursor) need(n int) error {
	if n < 0 || c.Len() < n {
		return &TruncatedError{Offset: c.off, Required: n, Available: c.Len()}
	}
	return nil
}

// Bytes consumes and returns the next n bytes. The result aliases the
// Cursor's slice.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.b[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

func (c *Cursor) Uint8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.b[c.off]
	c.off++
	return v, nil
}

func (c *Cursor) Uint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.b[c.off:])
	c.off += 4
	return v, nil
}

func (c *Cursor) Float32() (float32, error) {
	u, err := c.Uint32()
	return math.Float32frombits(u), err
}

func (c *Cursor) Bool() (bool, error) {
	v, err := c.Uint8()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, &InvalidValueError{Offset: c.off - 1, What: "bool", Value: v}
	}
	return v == 1, nil
}

// count reads an array length and checks that elemSize*count bytes remain.
func (c *Cursor) count(elemSize int) (int, error) {
	start := c.off
	n, err := c.Uint32()
	if err != nil {
		return 0, err
	}
	if need := uint64(n) * uint64(elemSize); need > uint64(c.Len()) {
		c.off = start
		return 0, &TruncatedError{Offset: start, Required: 4 + int(min(need, math.MaxInt32)), Available: c.Len() + 4}
	}
	return int(n), nil
}

// floats reads n float32 values into dst.
func (c *Cursor) floats(dst []float32) error {
	if err := c.need(4 * len(dst)); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(c.b[c.off:]))
		c.off += 4
	}
	return nil
}

func (c *Cursor) Point() (Point, error) {
	var f [2]float32
	err := c.floats(f[:])
	return Point{f[0], f[1]}, err
}

func (c *Cursor) Size() (Size, error) {
	var f [2]float32
	err := c.floats(f[:])
	return Size{f[0], f[1]}, err
}

func (c *Cursor) Rect() (Rect, error) {
	var f [4]float32
	err := c.floats(f[:])
	return Rect{f[0], f[1], f[2], f[3]}, err
}

func (c *Cursor) Color() (Color, error) {
	var f [4]float32
	err := c.floats(f[:])
	return Color{f[0], f[1], f[2], f[3]}, err
}

func (c *Cursor) Transform() (Transform, error) {
	var f [6]float32
	err := c.floats(f[:])
	return Transform{f[0], f[1], f[2], f[3], f[4], f[5]}, err
}

func (c *Cursor) CubicCurve() (CubicCurve, error) {
	var f [6]float32
	err := c.floats(f[:])
	return CubicCurve{Point{f[0], f[1]}, Point{f[2], f[3]}, Point{f[4], f[5]}}, err
}

func (c *Cursor) QuadCurve() (QuadCurve, error) {
	var f [4]float32
	err := c.floats(f[:])
	return QuadCurve{Point{f[0], f[1]}, Point{f[2], f[3]}}, err
}

func (c *Cursor) Arc() (Arc, error) {
	var f [5]float32
	if err := c.floats(f[:]); err != nil {
		return Arc{}, err
	}
	cw, err := c.Bool()
	return Arc{Point{f[0], f[1]}, f[2], f[3], f[4], cw}, err
}

func (c *Cursor) Float32s() ([]float32, error) {
	n, err := c.count(4)
	if err != nil {
		return nil, err
	}
	f := make([]float32, n)
	return f, c.floats(f)
}

func (c *Cursor) Points() ([]Point, error) {
	n, err := c.count(8)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i], _ = c.Point()
	}
	return pts, nil
}

func (c *Cursor) DashPattern() (DashPattern, error) {
	phase, err := c.Float32()
	if err != nil {
		return DashPattern{}, err
	}
	lengths, err := c.Float32s()
	return DashPattern{phase, lengths}, err
}

// enum reads a byte that must be less than limit.
func (c *Cursor) enum(what string, limit uint8) (uint8, error) {
	v, err := c.Uint8()
	if err != nil {
		return 0, err
	}
	if v >= limit {
		return 0, &InvalidValueError{Offset: c.off - 1, What: what, Value: v}
	}
	return v, nil
}

func (c *Cursor) FillRule() (FillRule, error) {
	v, err := c.enum("fill rule", uint8(numFillRules))
	return FillRule(v), err
}

func (c *Cursor) DrawingMode() (DrawingMode, error) {
	v, err := c.enum("drawing mode", uint8(numDrawingModes))
	return DrawingMode(v), err
}

func (c *Cursor) LineJoin() (LineJoin, error) {
	v, err := c.enum("line join", uint8(numLineJoins))
	return LineJoin(v), err
}

func (c *Cursor) LineCap() (LineCap, error) {
	v, err := c.enum("line cap", uint8(numLineCaps))
	return LineCap(v), err
}

func (c *Cursor) RenderingIntent() (RenderingIntent, error) {
	v, err := c.enum("rendering intent", uint8(numRenderingIntents))
	return RenderingIntent(v), err
}

func (c *Cursor) BlendMode() (BlendMode, error) {
	v, err := c.enum("blend mode", uint8(numBlendModes))
	return BlendMode(v), err
}

func (c *Cursor) GradientOptions() (GradientOptions, error) {
	v, err := c.enum("gradient options", uint8(allGradientOptions)+1)
	return GradientOptions(v), err
}

func (c *Cursor) LinearGradient() (LinearGradient, error) {
	var f [4]float32
	if err := c.floats(f[:]); err != nil {
		return LinearGradient{}, err
	}
	o, err := c.GradientOptions()
	return LinearGradient{Point{f[0], f[1]}, Point{f[2], f[3]}, o}, err
}

func (c *Cursor) RadialGradient() (RadialGradient, error) {
	var f [6]float32
	if err := c.floats(f[:]); err != nil {
		return RadialGradient{}, err
	}
	o, err := c.GradientOptions()
	return RadialGradient{Point{f[0], f[1]}, f[2], Point{f[3], f[4]}, f[5], o}, err
}

func (c *Cursor) Shadow() (Shadow, error) {
	var f [7]float32
	if err := c.floats(f[:]); err != nil {
		return Shadow{}, err
	}
	return Shadow{Size{f[0], f[1]}, f[2], Color{f[3], f[4], f[5], f[6]}}, nil
}

func (c *Cursor) Gradient() (Gradient, error) {
	n, err := c.count(20)
	if err != nil {
		return nil, err
	}
	g := make(Gradient, n)
	for i := range g {
		var f [5]float32
		c.floats(f[:])
		g[i] = GradientStop{f[0], Color{f[1], f[2], f[3], f[4]}}
	}
	return g, nil
}

// buffer is an append-only encoding of operands.
type buffer []byte

func (b *buffer) uint8(v uint8) { *b = append(*b, v) }

func (b *buffer) uint32(v uint32) { *b = binary.LittleEndian.AppendUint32(*b, v) }

func (b *buffer) float32(v float32) { b.uint32(math.Float32bits(v)) }

func (b *buffer) bool(v bool) {
	if v {
		b.uint8(1)
	} else {
		b.uint8(0)
	}
}

func (b *buffer) floats(f ...float32) {
	for _, v := range f {
		b.float32(v)
	}
}

func (b *buffer) point(p Point)         { b.floats(p.X, p.Y) }
func (b *buffer) size(s Size)           { b.floats(s.W, s.H) }
func (b *buffer) rect(r Rect)           { b.floats(r.X, r.Y, r.W, r.H) }
func (b *buffer) color(c Color)         { b.floats(c.R, c.G, c.B, c.A) }
func (b *buffer) transform(t Transform) { b.floats(t.A, t.B, t.C, t.D, t.TX, t.TY) }

func (b *buffer) float32s(f []float32) {
	b.uint32(uint32(len(f)))
	b.floats(f...)
}

func (b *buffer) points(pts []Point) {
	b.uint32(uint32(len(pts)))
	for _, p := range pts {
		b.point(p)
	}
}

func (b *buffer) linearGradient(g LinearGradient) {
	b.point(g.Start)
	b.point(g.End)
	b.uint8(uint8(g.Options))
}

func (b *buffer) radialGradient(g RadialGradient) {
	b.point(g.StartCenter)
	b.float32(g.StartRadius)
	b.point(g.EndCenter)
	b.float32(g.EndRadius)
	b.uint8(uint8(g.Options))
}

func (b *buffer) gradient(g Gradient) {
	b.uint32(uint32(len(g)))
	for _, s := range g {
		b.float32(s.Location)
		b.color(s.Color)
	}
}
