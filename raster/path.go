// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"math"

	"golang.org/x/image/math/f32"
)

type segOp uint8

const (
	segMove segOp = iota
	segLine
	segQuad
	segCube
	segClose
)

// segment is one path element in device space. Only the first n points of p
// are used, where n is 1 for moves and lines, 2 for quads and 3 for cubes.
type segment struct {
	op segOp
	p  [3]f32.Vec2
}

// path is a path in device space.
type path struct {
	segs   []segment
	start  f32.Vec2
	pen    f32.Vec2
	hasPen bool
}

func (p *path) reset() {
	p.segs = p.segs[:0]
	p.start, p.pen, p.hasPen = f32.Vec2{}, f32.Vec2{}, false
}

func (p *path) clone() *path {
	c := *p
	c.segs = append([]segment(nil), p.segs...)
	return &c
}

func (p *path) append(q *path) {
	p.segs = append(p.segs, q.segs...)
	p.start, p.pen, p.hasPen = q.start, q.pen, q.hasPen
}

func (p *path) moveTo(a f32.Vec2) {
	p.segs = append(p.segs, segment{op: segMove, p: [3]f32.Vec2{a}})
	p.start, p.pen, p.hasPen = a, a, true
}

// ensurePen starts a subpath at a if there is no current point.
func (p *path) ensurePen(a f32.Vec2) {
	if !p.hasPen {
		p.moveTo(a)
	}
}

func (p *path) lineTo(a f32.Vec2) {
	if !p.hasPen {
		p.moveTo(a)
		return
	}
	p.segs = append(p.segs, segment{op: segLine, p: [3]f32.Vec2{a}})
	p.pen = a
}

func (p *path) quadTo(b, c f32.Vec2) {
	p.ensurePen(b)
	p.segs = append(p.segs, segment{op: segQuad, p: [3]f32.Vec2{b, c}})
	p.pen = c
}

func (p *path) cubeTo(b, c, d f32.Vec2) {
	p.ensurePen(b)
	p.segs = append(p.segs, segment{op: segCube, p: [3]f32.Vec2{b, c, d}})
	p.pen = d
}

func (p *path) close() {
	if !p.hasPen {
		return
	}
	p.segs = append(p.segs, segment{op: segClose})
	p.pen = p.start
}

// polyline is a flattened subpath.
type polyline struct {
	pts    []f32.Vec2
	closed bool
}

// flatten approximates p by polylines whose distance from the curves is at
// most tol.
func (p *path) flatten(tol float32) []polyline {
	var (
		out   []polyline
		cur   []f32.Vec2
		start f32.Vec2
		pen   f32.Vec2
	)
	flush := func(closed bool) {
		if len(cur) > 0 {
			out = append(out, polyline{pts: cur, closed: closed})
		}
		cur = nil
	}
	// begin makes sure that drawing after a close starts from the subpath's
	// start point.
	begin := func() {
		if cur == nil {
			cur = []f32.Vec2{pen}
			start = pen
		}
	}
	for _, s := range p.segs {
		switch s.op {
		case segMove:
			flush(false)
			pen = s.p[0]
			cur = []f32.Vec2{pen}
			start = pen
		case segLine:
			begin()
			pen = s.p[0]
			cur = append(cur, pen)
		case segQuad:
			begin()
			cur = flattenQuad(cur, pen, s.p[0], s.p[1], tol)
			pen = s.p[1]
		case segCube:
			begin()
			cur = flattenCube(cur, pen, s.p[0], s.p[1], s.p[2], tol)
			pen = s.p[2]
		case segClose:
			flush(true)
			pen = start
		}
	}
	flush(false)
	return out
}

func lerp(a, b f32.Vec2, t float32) f32.Vec2 {
	return f32.Vec2{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}

func dist(a, b f32.Vec2) float32 {
	return float32(math.Hypot(float64(b[0]-a[0]), float64(b[1]-a[1])))
}

// steps returns the number of line segments to use for a curve whose control
// polygon deviates from its chord by d.
func steps(d, tol float32) int {
	if tol <= 0 {
		tol = 0.5
	}
	n := int(math.Ceil(math.Sqrt(float64(d / tol))))
	return max(1, min(n, 100))
}

func flattenQuad(dst []f32.Vec2, a, b, c f32.Vec2, tol float32) []f32.Vec2 {
	d := dist(b, lerp(a, c, 0.5))
	n := steps(d, tol)
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		dst = append(dst, lerp(lerp(a, b, t), lerp(b, c, t), t))
	}
	return dst
}

func flattenCube(dst []f32.Vec2, a, b, c, d f32.Vec2, tol float32) []f32.Vec2 {
	dev := max(dist(b, lerp(a, d, 1.0/3)), dist(c, lerp(a, d, 2.0/3)))
	n := steps(dev*1.5, tol)
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		ab, bc, cd := lerp(a, b, t), lerp(b, c, t), lerp(c, d, t)
		dst = append(dst, lerp(lerp(ab, bc, t), lerp(bc, cd, t), t))
	}
	return dst
}
