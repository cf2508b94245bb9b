// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/image/math/f32"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/raster/internal/gradient"
)

var errNoStops = errors.New("raster: gradient has no stops")

// drawable reports whether there are pixels to paint.
func (z *Rasterizer) drawable() bool {
	return z.dst != nil && !z.r.Empty()
}

// target returns the image painting goes to: the innermost transparency
// layer, or the destination image.
func (z *Rasterizer) target() draw.Image {
	if n := len(z.layers); n > 0 {
		return z.layers[n-1].img
	}
	return z.dst
}

func (z *Rasterizer) op() draw.Op {
	if z.gs.blend == bytecode.BlendCopy {
		return draw.Src
	}
	return draw.Over
}

// coverage rasterizes closed polygons, in device space, into a new mask the
// size of the destination rectangle.
func (z *Rasterizer) coverage(polys [][]f32.Vec2) *image.Alpha {
	w, h := z.r.Dx(), z.r.Dy()
	z.z.Reset(w, h)
	z.z.DrawOp = draw.Src
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.z.MoveTo(poly[0][0], poly[0][1])
		for _, p := range poly[1:] {
			z.z.LineTo(p[0], p[1])
		}
		z.z.ClosePath()
	}
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	z.z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

func (z *Rasterizer) fillCoverage() *image.Alpha {
	pls := z.path.flatten(z.tolerance())
	polys := make([][]f32.Vec2, len(pls))
	for i, pl := range pls {
		polys[i] = pl.pts
	}
	return z.coverage(polys)
}

// intersect multiplies m by clip in place.
func intersect(m, clip *image.Alpha) {
	for i, a := range clip.Pix {
		m.Pix[i] = uint8((uint32(m.Pix[i])*uint32(a) + 0x7f) / 0xff)
	}
}

// mask combines cover, which may be nil for full coverage, with the clip
// and the global alpha. It may modify cover. A nil result means paint
// everything.
func (z *Rasterizer) mask(cover *image.Alpha) image.Image {
	if clip := z.gs.clip; clip != nil {
		if cover == nil {
			cover = image.NewAlpha(clip.Rect)
			copy(cover.Pix, clip.Pix)
		} else {
			intersect(cover, clip)
		}
	}
	a := z.gs.alpha
	if a >= 1 {
		if cover == nil {
			return nil
		}
		return cover
	}
	if !(a > 0) {
		a = 0
	}
	if cover == nil {
		return image.NewUniform(color.Alpha16{A: uint16(a*0xffff + 0.5)})
	}
	k := uint32(a*0xff + 0.5)
	for i, c := range cover.Pix {
		cover.Pix[i] = uint8((uint32(c)*k + 0x7f) / 0xff)
	}
	return cover
}

// paint draws src through cover, which may be nil for full coverage.
// Device space pixel p takes its color from src at p.
func (z *Rasterizer) paint(src image.Image, cover *image.Alpha) {
	dst, r := z.target(), z.r
	if len(z.layers) > 0 {
		// Layers are the size of the destination rectangle.
		r = r.Sub(r.Min)
	}
	draw.DrawMask(dst, r, src, image.Point{}, z.mask(cover), image.Point{}, z.op())
}

func (z *Rasterizer) FillPath(rule bytecode.FillRule) {
	if z.drawable() {
		z.fill(rule)
	}
	z.path.reset()
}

func (z *Rasterizer) fill(rule bytecode.FillRule) {
	if rule == bytecode.EvenOdd {
		// TODO: even-odd coverage. vector.Rasterizer only accumulates
		// nonzero winding, so this needs a crossing-parity scan of its own.
		z.log().Debug("raster: even-odd fill drawn with the nonzero rule")
	}
	z.paint(image.NewUniform(z.gs.fill), z.fillCoverage())
}

func (z *Rasterizer) StrokePath() {
	if z.drawable() {
		z.stroke()
	}
	z.path.reset()
}

func (z *Rasterizer) stroke() {
	z.paint(image.NewUniform(z.gs.stroke), z.coverage(z.strokePolygons()))
}

func (z *Rasterizer) DrawPath(mode bytecode.DrawingMode) {
	if z.drawable() {
		switch mode {
		case bytecode.ModeFill, bytecode.ModeFillStroke:
			z.fill(bytecode.Winding)
		case bytecode.ModeEOFill, bytecode.ModeEOFillStroke:
			z.fill(bytecode.EvenOdd)
		}
		switch mode {
		case bytecode.ModeStroke, bytecode.ModeFillStroke, bytecode.ModeEOFillStroke:
			z.stroke()
		}
	}
	z.path.reset()
}

func (z *Rasterizer) FillEllipse(r bytecode.Rect) {
	z.path.reset()
	z.AddEllipse(r)
	z.FillPath(bytecode.Winding)
}

func (z *Rasterizer) Clip(rule bytecode.FillRule) {
	if z.drawable() {
		if rule == bytecode.EvenOdd {
			z.log().Debug("raster: even-odd clip drawn with the nonzero rule")
		}
		z.clip(z.fillCoverage())
	}
	z.path.reset()
}

// ClipToRect intersects the clip with r. The current path is unchanged.
func (z *Rasterizer) ClipToRect(r bytecode.Rect) {
	if !z.drawable() {
		return
	}
	saved := z.path
	z.path = path{}
	z.AddRect(r)
	cover := z.fillCoverage()
	z.path = saved
	z.clip(cover)
}

// clip intersects the clip with cover, which it takes ownership of.
func (z *Rasterizer) clip(cover *image.Alpha) {
	if z.gs.clip != nil {
		intersect(cover, z.gs.clip)
	}
	z.gs.clip = cover
}

// BeginTransparencyLayer starts painting into an offscreen image that
// EndTransparencyLayer composites with the alpha and clip current now.
// Within the layer, the alpha is 1 and nothing is clipped.
func (z *Rasterizer) BeginTransparencyLayer() {
	z.SaveGState()
	if z.drawable() {
		z.layers = append(z.layers, layer{
			img:   image.NewRGBA(image.Rect(0, 0, z.r.Dx(), z.r.Dy())),
			alpha: z.gs.alpha,
			clip:  z.gs.clip,
		})
	}
	z.gs.alpha = 1
	z.gs.clip = nil
	z.gs.shadow = Shadow{}
}

func (z *Rasterizer) EndTransparencyLayer() {
	n := len(z.layers)
	if !z.drawable() || n == 0 {
		z.RestoreGState()
		return
	}
	l := z.layers[n-1]
	z.layers = z.layers[:n-1]
	z.RestoreGState()

	saved := z.gs
	z.gs.alpha, z.gs.clip = l.alpha, l.clip
	z.paint(l.img, nil)
	z.gs = saved
}

// gradientStops returns g's stops sorted by location and premultiplied.
func (z *Rasterizer) gradientStops(g *bytecode.Gradient) ([]gradient.Stop, error) {
	if s, ok := z.stops[g]; ok {
		return s, nil
	}
	if g == nil || len(*g) == 0 {
		return nil, errNoStops
	}
	s := make([]gradient.Stop, len(*g))
	for i, gs := range *g {
		s[i] = gradient.Stop{Offset: float64(gs.Location), RGBA64: premul(gs.Color)}
	}
	sort.SliceStable(s, func(i, j int) bool { return s[i].Offset < s[j].Offset })
	if z.stops == nil {
		z.stops = map[*bytecode.Gradient][]gradient.Stop{}
	}
	z.stops[g] = s
	return s, nil
}

func extend(o bytecode.GradientOptions) gradient.Extend {
	var e gradient.Extend
	if o&bytecode.DrawsBeforeStart != 0 {
		e |= gradient.ExtendStart
	}
	if o&bytecode.DrawsAfterEnd != 0 {
		e |= gradient.ExtendEnd
	}
	return e
}

func (z *Rasterizer) DrawLinearGradient(g *bytecode.Gradient, o bytecode.LinearGradient) error {
	stops, err := z.gradientStops(g)
	if err != nil {
		return err
	}
	pix2User, ok := invert(z.gs.ctm)
	if !z.drawable() || !ok {
		return nil
	}
	var gr gradient.Gradient
	gr.InitLinear(
		float64(o.Start.X), float64(o.Start.Y), float64(o.End.X), float64(o.End.Y),
		extend(o.Options), stops, pix2User)
	z.paint(&gr, nil)
	return nil
}

func (z *Rasterizer) DrawRadialGradient(g *bytecode.Gradient, o bytecode.RadialGradient) error {
	stops, err := z.gradientStops(g)
	if err != nil {
		return err
	}
	pix2User, ok := invert(z.gs.ctm)
	if !z.drawable() || !ok {
		return nil
	}
	if o.StartRadius < 0 || o.EndRadius < 0 {
		z.log().Debug("raster: negative gradient radius",
			zap.Float32("start", o.StartRadius), zap.Float32("end", o.EndRadius))
		return nil
	}
	var gr gradient.Gradient
	gr.InitRadial(
		float64(o.StartCenter.X), float64(o.StartCenter.Y), float64(o.StartRadius),
		float64(o.EndCenter.X), float64(o.EndCenter.Y), float64(o.EndRadius),
		extend(o.Options), stops, pix2User)
	z.paint(&gr, nil)
	return nil
}
