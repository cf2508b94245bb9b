// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/vgbc/bytecode"
)

// stroker turns polylines into polygons whose nonzero union is the stroke.
// All polygons are wound the same way so that overlaps do not cancel.
type stroker struct {
	hw     float32 // half the line width, in device space
	join   bytecode.LineJoin
	cap    bytecode.LineCap
	miter  float32
	circle int // number of sides of round joins and caps
	polys  [][]f32.Vec2
}

// strokePolygons returns the outline of the current path stroked with the
// current line parameters.
func (z *Rasterizer) strokePolygons() [][]f32.Vec2 {
	scale := z.scale()
	hw := z.gs.lineWidth * scale / 2
	if !(hw > 0) {
		// Zero width strokes are the thinnest visible line.
		hw = 0.5
	}
	s := &stroker{
		hw:     hw,
		join:   z.gs.join,
		cap:    z.gs.cap,
		miter:  z.gs.miterLimit,
		circle: max(8, min(64, int(4*math.Sqrt(float64(hw))+8))),
	}
	pattern := make([]float32, len(z.gs.dash))
	for i, l := range z.gs.dash {
		pattern[i] = l * scale
	}
	for _, pl := range z.path.flatten(z.tolerance()) {
		for _, d := range dash(pl, pattern, z.gs.dashPhase*scale) {
			s.polyline(d.pts, d.closed)
		}
	}
	return s.polys
}

// dash splits pl into its dashes. It returns pl unchanged if pattern does not
// describe a dash.
func dash(pl polyline, pattern []float32, phase float32) []polyline {
	var total float32
	for _, l := range pattern {
		if l < 0 {
			return []polyline{pl}
		}
		total += l
	}
	if !(total > 0) {
		return []polyline{pl}
	}
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
		total *= 2
	}

	pts := pl.pts
	if pl.closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	phase = float32(math.Mod(float64(phase), float64(total)))
	if phase < 0 {
		phase += total
	}
	i := 0
	for phase >= pattern[i] {
		phase -= pattern[i]
		i = (i + 1) % len(pattern)
	}
	rem, on := pattern[i]-phase, i%2 == 0

	var out []polyline
	var cur []f32.Vec2
	if on {
		cur = []f32.Vec2{pts[0]}
	}
	for j := 1; j < len(pts); j++ {
		a, b := pts[j-1], pts[j]
		l := dist(a, b)
		pos := float32(0)
		for l-pos > rem {
			pos += rem
			p := f32.Vec2{a[0] + (b[0]-a[0])*pos/l, a[1] + (b[1]-a[1])*pos/l}
			if on {
				out = append(out, polyline{pts: append(cur, p)})
				cur = nil
			} else {
				cur = []f32.Vec2{p}
			}
			on = !on
			i = (i + 1) % len(pattern)
			rem = pattern[i]
		}
		rem -= l - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, polyline{pts: cur})
	}
	return out
}

func (s *stroker) add(poly ...f32.Vec2) {
	var area float32
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p[0]*q[1] - q[0]*p[1]
	}
	if area == 0 {
		return
	}
	if area > 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	s.polys = append(s.polys, poly)
}

func (s *stroker) disc(c f32.Vec2) {
	poly := make([]f32.Vec2, s.circle)
	for i := range poly {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(s.circle))
		poly[i] = f32.Vec2{c[0] + s.hw*float32(cos), c[1] + s.hw*float32(sin)}
	}
	s.add(poly...)
}

// unit returns the unit vector from a to b.
func unit(a, b f32.Vec2) f32.Vec2 {
	l := dist(a, b)
	return f32.Vec2{(b[0] - a[0]) / l, (b[1] - a[1]) / l}
}

// normal returns d rotated a quarter turn and scaled to the half width.
func (s *stroker) normal(d f32.Vec2) f32.Vec2 {
	return f32.Vec2{-d[1] * s.hw, d[0] * s.hw}
}

func plus(a, b f32.Vec2) f32.Vec2  { return f32.Vec2{a[0] + b[0], a[1] + b[1]} }
func minus(a, b f32.Vec2) f32.Vec2 { return f32.Vec2{a[0] - b[0], a[1] - b[1]} }

func (s *stroker) polyline(in []f32.Vec2, closed bool) {
	pts := make([]f32.Vec2, 0, len(in))
	for _, p := range in {
		if len(pts) == 0 || p != pts[len(pts)-1] {
			pts = append(pts, p)
		}
	}
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	switch len(pts) {
	case 0:
		return
	case 1:
		if closed {
			return
		}
		switch s.cap {
		case bytecode.CapRound:
			s.disc(pts[0])
		case bytecode.CapSquare:
			p, h := pts[0], s.hw
			s.add(f32.Vec2{p[0] - h, p[1] - h}, f32.Vec2{p[0] + h, p[1] - h},
				f32.Vec2{p[0] + h, p[1] + h}, f32.Vec2{p[0] - h, p[1] + h})
		}
		return
	}

	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		a, b := pts[i], pts[(i+1)%n]
		m := s.normal(unit(a, b))
		s.add(plus(a, m), plus(b, m), minus(b, m), minus(a, m))
	}
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		s.joint(pts[i], unit(prev, pts[i]), unit(pts[i], next))
	}
	if !closed {
		s.capEnd(pts[0], unit(pts[1], pts[0]))
		s.capEnd(pts[n-1], unit(pts[n-2], pts[n-1]))
	}
}

// joint joins the segment arriving at v in direction d1 to the one leaving
// in direction d2.
func (s *stroker) joint(v, d1, d2 f32.Vec2) {
	if s.join == bytecode.JoinRound {
		s.disc(v)
		return
	}
	n1, n2 := s.normal(d1), s.normal(d2)
	s.add(v, plus(v, n1), plus(v, n2))
	s.add(v, minus(v, n1), minus(v, n2))
	if s.join != bytecode.JoinMiter {
		return
	}
	cross := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(float64(cross)) < 1e-6 {
		return
	}
	o1, o2 := n1, n2
	if cross > 0 {
		o1, o2 = f32.Vec2{-n1[0], -n1[1]}, f32.Vec2{-n2[0], -n2[1]}
	}
	m := plus(o1, o2)
	dot := m[0]*o1[0] + m[1]*o1[1]
	if dot <= 0 {
		return
	}
	k := s.hw * s.hw / dot
	tip := f32.Vec2{v[0] + m[0]*k, v[1] + m[1]*k}
	if dist(v, tip) > s.miter*s.hw {
		return
	}
	s.add(v, plus(v, o1), tip, plus(v, o2))
}

// capEnd caps the end point v of a line leaving it in direction d.
func (s *stroker) capEnd(v, d f32.Vec2) {
	switch s.cap {
	case bytecode.CapRound:
		s.disc(v)
	case bytecode.CapSquare:
		m := s.normal(d)
		e := f32.Vec2{v[0] + d[0]*s.hw, v[1] + d[1]*s.hw}
		s.add(plus(v, m), plus(e, m), minus(e, m), minus(v, m))
	}
}
