// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a vm.Destination that draws onto a raster image.
//
// User space has its origin at the top left with y growing downwards. The
// drawing's view box is scaled to fill the destination rectangle.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/raster/internal/gradient"
	"golang.org/x/vgbc/vm"
)

var _ vm.Destination = (*Rasterizer)(nil)

// Shadow is a shadow in device space, as set by SetShadow.
type Shadow struct {
	Offset bytecode.Size
	Blur   float32
	Color  bytecode.Color
}

type gstate struct {
	ctm         f64.Aff3
	fill        color.RGBA64
	stroke      color.RGBA64
	alpha       float32
	lineWidth   float32
	miterLimit  float32
	flatness    float32
	join        bytecode.LineJoin
	cap         bytecode.LineCap
	dashPhase   float32
	dash        []float32
	blend       bytecode.BlendMode
	intent      bytecode.RenderingIntent
	fillSpace   vm.ColorSpace
	strokeSpace vm.ColorSpace
	shadow      Shadow
	// clip is nil when nothing is clipped. Clip masks are never modified
	// once set, so saved states may share them.
	clip *image.Alpha
}

type layer struct {
	img   *image.RGBA
	alpha float32
	clip  *image.Alpha
}

// Rasterizer is a vm.Destination that draws onto a raster image.
//
// Call SetDstImage, or Reset, before use. A Rasterizer without a raster
// image to draw onto still tracks its graphics state, so running a drawing
// against it checks the bytecode.
//
// Even-odd fills and clips are rendered with the nonzero rule. Blend modes
// other than normal and copy, rendering intents, and shadows are recorded
// but not rendered.
type Rasterizer struct {
	// Logger receives debug messages. Nil means no logging.
	Logger *zap.Logger

	z vector.Rasterizer

	dst  draw.Image
	r    image.Rectangle
	base f64.Aff3

	gs     gstate
	stack  []gstate
	path   path
	layers []layer
	stops  map[*bytecode.Gradient][]gradient.Stop
}

// SetDstImage sets the Rasterizer to draw onto dst within r, mapping
// viewBox onto r, and resets the graphics state. The scaling factors may
// differ in the two dimensions.
func (z *Rasterizer) SetDstImage(dst draw.Image, r image.Rectangle, viewBox bytecode.Rect) {
	z.dst = dst
	if r.Empty() {
		r = image.Rectangle{}
	}
	z.r = r
	sx, sy := 1.0, 1.0
	if viewBox.W > 0 {
		sx = float64(r.Dx()) / float64(viewBox.W)
	}
	if viewBox.H > 0 {
		sy = float64(r.Dy()) / float64(viewBox.H)
	}
	z.base = f64.Aff3{
		sx, 0, -float64(viewBox.X) * sx,
		0, sy, -float64(viewBox.Y) * sy,
	}
	z.Reset()
}

// Reset restores the default graphics state and forgets the current path,
// open transparency layers and cached gradients.
func (z *Rasterizer) Reset() {
	if z.base == (f64.Aff3{}) {
		z.base = identity
	}
	z.gs = gstate{
		ctm:        z.base,
		fill:       color.RGBA64{A: 0xffff},
		stroke:     color.RGBA64{A: 0xffff},
		alpha:      1,
		lineWidth:  1,
		miterLimit: 10,
		flatness:   0.5,
	}
	z.stack = z.stack[:0]
	z.path.reset()
	z.layers = nil
	z.stops = nil
}

// Render draws code, a complete drawing, onto dst within r.
func Render(dst draw.Image, r image.Rectangle, viewBox bytecode.Rect, code []byte, opts *vm.Options) error {
	z := &Rasterizer{}
	if opts != nil {
		z.Logger = opts.Logger
	}
	z.SetDstImage(dst, r, viewBox)
	return vm.Run(z, code, opts)
}

func (z *Rasterizer) log() *zap.Logger {
	if z.Logger == nil {
		return zap.NewNop()
	}
	return z.Logger
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// mul returns the transform that applies n and then m.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return f64.Aff3{}, false
	}
	a, b, d, e := m[4]/det, -m[1]/det, -m[3]/det, m[0]/det
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}, true
}

func toAff3(t bytecode.Transform) f64.Aff3 {
	return f64.Aff3{
		float64(t.A), float64(t.C), float64(t.TX),
		float64(t.B), float64(t.D), float64(t.TY),
	}
}

func fromAff3(m f64.Aff3) bytecode.Transform {
	return bytecode.Transform{
		A: float32(m[0]), C: float32(m[1]), TX: float32(m[2]),
		B: float32(m[3]), D: float32(m[4]), TY: float32(m[5]),
	}
}

// dev maps a user space point to device space.
func (z *Rasterizer) dev(p bytecode.Point) f32.Vec2 {
	m := &z.gs.ctm
	x, y := float64(p.X), float64(p.Y)
	return f32.Vec2{
		float32(m[0]*x + m[1]*y + m[2]),
		float32(m[3]*x + m[4]*y + m[5]),
	}
}

// scale is the factor by which the CTM scales lengths, on average.
func (z *Rasterizer) scale() float32 {
	m := &z.gs.ctm
	return float32(math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3])))
}

func (z *Rasterizer) tolerance() float32 {
	if f := z.gs.flatness; f > 0 {
		return f
	}
	return 0.5
}

// premul converts c to a premultiplied color.
func premul(c bytecode.Color) color.RGBA64 {
	unit := func(f float32) float64 {
		if !(f > 0) {
			return 0
		}
		if f > 1 {
			return 1
		}
		return float64(f)
	}
	a := unit(c.A)
	return color.RGBA64{
		R: uint16(unit(c.R)*a*0xffff + 0.5),
		G: uint16(unit(c.G)*a*0xffff + 0.5),
		B: uint16(unit(c.B)*a*0xffff + 0.5),
		A: uint16(a*0xffff + 0.5),
	}
}

func (z *Rasterizer) SaveGState() {
	z.stack = append(z.stack, z.gs)
}

func (z *Rasterizer) RestoreGState() {
	n := len(z.stack)
	if n == 0 {
		z.log().Debug("raster: restore without matching save")
		return
	}
	z.gs = z.stack[n-1]
	z.stack = z.stack[:n-1]
}

func (z *Rasterizer) ConcatCTM(t bytecode.Transform) {
	z.gs.ctm = mul(z.gs.ctm, toAff3(t))
}

// CTM returns the transform from user space to device space.
func (z *Rasterizer) CTM() bytecode.Transform { return fromAff3(z.gs.ctm) }

func (z *Rasterizer) SetFillColorSpace(cs vm.ColorSpace)   { z.gs.fillSpace = cs }
func (z *Rasterizer) SetStrokeColorSpace(cs vm.ColorSpace) { z.gs.strokeSpace = cs }
func (z *Rasterizer) SetFillColor(c bytecode.Color)        { z.gs.fill = premul(c) }
func (z *Rasterizer) SetStrokeColor(c bytecode.Color)      { z.gs.stroke = premul(c) }
func (z *Rasterizer) SetAlpha(a float32)                   { z.gs.alpha = a }
func (z *Rasterizer) SetLineWidth(w float32)               { z.gs.lineWidth = w }
func (z *Rasterizer) SetLineJoin(j bytecode.LineJoin)      { z.gs.join = j }
func (z *Rasterizer) SetLineCap(c bytecode.LineCap)        { z.gs.cap = c }
func (z *Rasterizer) SetMiterLimit(m float32)              { z.gs.miterLimit = m }
func (z *Rasterizer) SetFlatness(f float32)                { z.gs.flatness = f }

func (z *Rasterizer) SetLineDash(phase float32, lengths []float32) {
	z.gs.dashPhase = phase
	z.gs.dash = append([]float32(nil), lengths...)
}

func (z *Rasterizer) SetRenderingIntent(i bytecode.RenderingIntent) { z.gs.intent = i }

func (z *Rasterizer) SetBlendMode(m bytecode.BlendMode) {
	if m != bytecode.BlendNormal && m != bytecode.BlendCopy {
		z.log().Debug("raster: blend mode drawn as normal", zap.Stringer("mode", m))
	}
	z.gs.blend = m
}

func (z *Rasterizer) SetShadow(offset bytecode.Size, blur float32, c bytecode.Color) {
	z.gs.shadow = Shadow{Offset: offset, Blur: blur, Color: c}
}

// Shadow returns the current shadow.
func (z *Rasterizer) Shadow() Shadow { return z.gs.shadow }

// BlendMode returns the current blend mode.
func (z *Rasterizer) BlendMode() bytecode.BlendMode { return z.gs.blend }

func (z *Rasterizer) MoveTo(p bytecode.Point) { z.path.moveTo(z.dev(p)) }
func (z *Rasterizer) LineTo(p bytecode.Point) { z.path.lineTo(z.dev(p)) }
func (z *Rasterizer) ClosePath()              { z.path.close() }

func (z *Rasterizer) CurveTo(c bytecode.CubicCurve) {
	z.path.cubeTo(z.dev(c.Control1), z.dev(c.Control2), z.dev(c.To))
}

func (z *Rasterizer) QuadCurveTo(c bytecode.QuadCurve) {
	z.path.quadTo(z.dev(c.Control), z.dev(c.To))
}

func (z *Rasterizer) AddRect(r bytecode.Rect) {
	z.MoveTo(bytecode.Point{X: r.X, Y: r.Y})
	z.LineTo(bytecode.Point{X: r.X + r.W, Y: r.Y})
	z.LineTo(bytecode.Point{X: r.X + r.W, Y: r.Y + r.H})
	z.LineTo(bytecode.Point{X: r.X, Y: r.Y + r.H})
	z.ClosePath()
}

func (z *Rasterizer) AddLines(pts []bytecode.Point) {
	for i, p := range pts {
		if i == 0 {
			z.MoveTo(p)
		} else {
			z.LineTo(p)
		}
	}
}

// kappa places the control points of a cubic approximating a quarter circle.
const kappa = 0.5522847498

func (z *Rasterizer) AddEllipse(r bytecode.Rect) {
	rx, ry := r.W/2, r.H/2
	cx, cy := r.X+rx, r.Y+ry
	kx, ky := rx*kappa, ry*kappa
	pt := func(x, y float32) bytecode.Point { return bytecode.Point{X: x, Y: y} }
	z.MoveTo(pt(cx+rx, cy))
	z.CurveTo(bytecode.CubicCurve{Control1: pt(cx+rx, cy+ky), Control2: pt(cx+kx, cy+ry), To: pt(cx, cy+ry)})
	z.CurveTo(bytecode.CubicCurve{Control1: pt(cx-kx, cy+ry), Control2: pt(cx-rx, cy+ky), To: pt(cx-rx, cy)})
	z.CurveTo(bytecode.CubicCurve{Control1: pt(cx-rx, cy-ky), Control2: pt(cx-kx, cy-ry), To: pt(cx, cy-ry)})
	z.CurveTo(bytecode.CubicCurve{Control1: pt(cx+kx, cy-ry), Control2: pt(cx+rx, cy-ky), To: pt(cx+rx, cy)})
	z.ClosePath()
}

func (z *Rasterizer) AddRoundedRect(r bytecode.Rect, rx, ry float32) {
	rx, ry = min(rx, r.W/2), min(ry, r.H/2)
	if rx <= 0 || ry <= 0 {
		z.AddRect(r)
		return
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	kx, ky := rx*kappa, ry*kappa
	pt := func(x, y float32) bytecode.Point { return bytecode.Point{X: x, Y: y} }
	z.MoveTo(pt(x0+rx, y0))
	z.LineTo(pt(x1-rx, y0))
	z.CurveTo(bytecode.CubicCurve{Control1: pt(x1-rx+kx, y0), Control2: pt(x1, y0+ry-ky), To: pt(x1, y0+ry)})
	z.LineTo(pt(x1, y1-ry))
	z.CurveTo(bytecode.CubicCurve{Control1: pt(x1, y1-ry+ky), Control2: pt(x1-rx+kx, y1), To: pt(x1-rx, y1)})
	z.LineTo(pt(x0+rx, y1))
	z.CurveTo(bytecode.CubicCurve{Control1: pt(x0+rx-kx, y1), Control2: pt(x0, y1-ry+ky), To: pt(x0, y1-ry)})
	z.LineTo(pt(x0, y0+ry))
	z.CurveTo(bytecode.CubicCurve{Control1: pt(x0, y0+ry-ky), Control2: pt(x0+rx-kx, y0), To: pt(x0+rx, y0)})
	z.ClosePath()
}

// AddArc adds a circular arc, joined by a line to the current point if there
// is one. A clockwise arc runs from StartAngle towards decreasing angles.
func (z *Rasterizer) AddArc(a bytecode.Arc) {
	start, end := float64(a.StartAngle), float64(a.EndAngle)
	if a.Clockwise {
		for end > start {
			end -= 2 * math.Pi
		}
	} else {
		for end < start {
			end += 2 * math.Pi
		}
	}
	sweep := end - start

	cx, cy, r := float64(a.Center.X), float64(a.Center.Y), float64(a.Radius)
	at := func(theta, k float64) (p, tangent bytecode.Point) {
		sin, cos := math.Sincos(theta)
		p = bytecode.Point{X: float32(cx + r*cos), Y: float32(cy + r*sin)}
		tangent = bytecode.Point{X: float32(-k * r * sin), Y: float32(k * r * cos)}
		return p, tangent
	}
	p0, _ := at(start, 0)
	if z.path.hasPen {
		z.LineTo(p0)
	} else {
		z.MoveTo(p0)
	}

	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	delta := sweep / float64(max(n, 1))
	k := 4.0 / 3.0 * math.Tan(delta/4)
	for i := 0; i < n; i++ {
		t0, t1 := start+float64(i)*delta, start+float64(i+1)*delta
		p, tp := at(t0, k)
		q, tq := at(t1, k)
		z.CurveTo(bytecode.CubicCurve{
			Control1: bytecode.Point{X: p.X + tp.X, Y: p.Y + tp.Y},
			Control2: bytecode.Point{X: q.X - tq.X, Y: q.Y - tq.Y},
			To:       q,
		})
	}
}

func (z *Rasterizer) BeginPath() { z.path.reset() }

// CopyPath returns a copy of the current path, or nil if it is empty.
func (z *Rasterizer) CopyPath() vm.PathSnapshot {
	if len(z.path.segs) == 0 {
		return nil
	}
	return z.path.clone()
}

func (z *Rasterizer) AddPath(s vm.PathSnapshot) {
	if p, ok := s.(*path); ok {
		z.path.append(p)
	}
}

func (z *Rasterizer) ReplacePathWithStrokedPath() {
	polys := z.strokePolygons()
	z.path.reset()
	for _, poly := range polys {
		z.path.moveTo(poly[0])
		for _, p := range poly[1:] {
			z.path.lineTo(p)
		}
		z.path.close()
	}
}
