// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import "golang.org/x/vgbc/bytecode"

var _ bytecode.PathVisitor = pathVisitor{}

// pathVisitor feeds a path-only routine to a PathBuilder.
type pathVisitor struct {
	p PathBuilder
}

func (v pathVisitor) MoveTo(p bytecode.Point) error          { v.p.MoveTo(p); return nil }
func (v pathVisitor) CurveTo(c bytecode.CubicCurve) error    { v.p.CurveTo(c); return nil }
func (v pathVisitor) QuadCurveTo(c bytecode.QuadCurve) error { v.p.QuadCurveTo(c); return nil }
func (v pathVisitor) LineTo(p bytecode.Point) error          { v.p.LineTo(p); return nil }
func (v pathVisitor) AppendRectangle(r bytecode.Rect) error  { v.p.AddRect(r); return nil }
func (v pathVisitor) AddArc(a bytecode.Arc) error            { v.p.AddArc(a); return nil }
func (v pathVisitor) ClosePath() error                       { v.p.ClosePath(); return nil }
func (v pathVisitor) Lines(pts []bytecode.Point) error       { v.p.AddLines(pts); return nil }
func (v pathVisitor) AddEllipse(r bytecode.Rect) error       { v.p.AddEllipse(r); return nil }

func (v pathVisitor) AppendRoundedRect(r bytecode.Rect, rx, ry float32) error {
	v.p.AddRoundedRect(r, rx, ry)
	return nil
}
