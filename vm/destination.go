// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import "golang.org/x/vgbc/bytecode"

// PathBuilder receives path geometry in user space.
type PathBuilder interface {
	MoveTo(p bytecode.Point)
	LineTo(p bytecode.Point)
	CurveTo(c bytecode.CubicCurve)
	QuadCurveTo(c bytecode.QuadCurve)
	// AddArc adds a line from the current point, if any, to the start of the
	// arc, and then the arc.
	AddArc(a bytecode.Arc)
	AddRect(r bytecode.Rect)
	AddRoundedRect(r bytecode.Rect, rx, ry float32)
	AddEllipse(r bytecode.Rect)
	// AddLines adds a subpath through pts.
	AddLines(pts []bytecode.Point)
	ClosePath()
}

// PathSnapshot is an opaque copy of a Destination's current path.
type PathSnapshot any

// ColorSpace identifies the color space colors are given in.
type ColorSpace uint8

const (
	DeviceRGB ColorSpace = iota
)

// Destination is a 2D drawing context with a current path and a stack of
// graphics states, in the manner of PDF and Core Graphics. The Machine
// drives one while running bytecode.
//
// Colors passed to a Destination are non-premultiplied with the paint alpha
// already applied.
type Destination interface {
	PathBuilder

	// BeginPath discards the current path.
	BeginPath()
	// CopyPath returns a snapshot of the current path, or nil if it is
	// empty.
	CopyPath() PathSnapshot
	// AddPath appends a snapshot made by CopyPath to the current path.
	AddPath(p PathSnapshot)
	ReplacePathWithStrokedPath()

	SaveGState()
	RestoreGState()
	ConcatCTM(t bytecode.Transform)
	CTM() bytecode.Transform

	SetFillColorSpace(cs ColorSpace)
	SetStrokeColorSpace(cs ColorSpace)
	SetFillColor(c bytecode.Color)
	SetStrokeColor(c bytecode.Color)
	SetAlpha(a float32)
	SetLineWidth(w float32)
	SetLineJoin(j bytecode.LineJoin)
	SetLineCap(c bytecode.LineCap)
	SetMiterLimit(m float32)
	SetLineDash(phase float32, lengths []float32)
	SetFlatness(f float32)
	SetRenderingIntent(i bytecode.RenderingIntent)
	SetBlendMode(m bytecode.BlendMode)
	// SetShadow sets a shadow already transformed to device space.
	SetShadow(offset bytecode.Size, blur float32, c bytecode.Color)

	// Painting operations consume the current path.
	FillPath(rule bytecode.FillRule)
	StrokePath()
	DrawPath(mode bytecode.DrawingMode)
	FillEllipse(r bytecode.Rect)

	// Clip intersects the clip with the current path and consumes it.
	Clip(rule bytecode.FillRule)
	ClipToRect(r bytecode.Rect)

	BeginTransparencyLayer()
	EndTransparencyLayer()

	// DrawLinearGradient and DrawRadialGradient paint g over the clip. The
	// same *bytecode.Gradient is passed for every use of a table entry, so
	// implementations may cache what they build from it. A returned error
	// means g could not be turned into a gradient.
	DrawLinearGradient(g *bytecode.Gradient, o bytecode.LinearGradient) error
	DrawRadialGradient(g *bytecode.Gradient, o bytecode.RadialGradient) error
}
