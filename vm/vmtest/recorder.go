// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vmtest provides a vm.Destination that records calls, for tests.
package vmtest

import (
	"fmt"
	"strings"

	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/vm"
)

var _ vm.Destination = (*Recorder)(nil)

// Recorder is a vm.Destination that records every call as a line of text,
// such as "MoveTo({1 2})". It tracks the current path and the transform so
// that CopyPath and CTM behave like a real drawing context.
//
// The zero value is ready to use.
type Recorder struct {
	Calls []string
	// GradientErr, if non-nil, is returned by the gradient drawing methods.
	GradientErr error

	path  []string
	ctm   bytecode.Transform
	ctmOK bool
	saved []bytecode.Transform
}

// Reset forgets the recorded calls and the drawing state.
func (r *Recorder) Reset() { *r = Recorder{GradientErr: r.GradientErr} }

// String returns the recorded calls, one per line.
func (r *Recorder) String() string { return strings.Join(r.Calls, "\n") }

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) segment(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	r.Calls = append(r.Calls, s)
	r.path = append(r.path, s)
}

func (r *Recorder) MoveTo(p bytecode.Point)          { r.segment("MoveTo(%v)", p) }
func (r *Recorder) LineTo(p bytecode.Point)          { r.segment("LineTo(%v)", p) }
func (r *Recorder) CurveTo(c bytecode.CubicCurve)    { r.segment("CurveTo(%v)", c) }
func (r *Recorder) QuadCurveTo(c bytecode.QuadCurve) { r.segment("QuadCurveTo(%v)", c) }
func (r *Recorder) AddArc(a bytecode.Arc)            { r.segment("AddArc(%v)", a) }
func (r *Recorder) AddRect(rc bytecode.Rect)         { r.segment("AddRect(%v)", rc) }
func (r *Recorder) AddEllipse(rc bytecode.Rect)      { r.segment("AddEllipse(%v)", rc) }
func (r *Recorder) AddLines(pts []bytecode.Point)    { r.segment("AddLines(%v)", pts) }
func (r *Recorder) ClosePath()                       { r.segment("ClosePath()") }

func (r *Recorder) AddRoundedRect(rc bytecode.Rect, rx, ry float32) {
	r.segment("AddRoundedRect(%v, %v, %v)", rc, rx, ry)
}

func (r *Recorder) BeginPath() {
	r.record("BeginPath()")
	r.path = nil
}

// CopyPath returns the recorded segments of the current path.
func (r *Recorder) CopyPath() vm.PathSnapshot {
	r.record("CopyPath()")
	if len(r.path) == 0 {
		return nil
	}
	return append([]string(nil), r.path...)
}

func (r *Recorder) AddPath(p vm.PathSnapshot) {
	segs, _ := p.([]string)
	r.record("AddPath(%d segments)", len(segs))
	r.path = append(r.path, segs...)
}

func (r *Recorder) ReplacePathWithStrokedPath() { r.record("ReplacePathWithStrokedPath()") }

func (r *Recorder) SaveGState() {
	r.record("SaveGState()")
	r.saved = append(r.saved, r.CTMQuiet())
}

func (r *Recorder) RestoreGState() {
	r.record("RestoreGState()")
	if n := len(r.saved); n > 0 {
		r.ctm, r.ctmOK = r.saved[n-1], true
		r.saved = r.saved[:n-1]
	}
}

func (r *Recorder) ConcatCTM(t bytecode.Transform) {
	r.record("ConcatCTM(%v)", t)
	r.ctm, r.ctmOK = t.Concat(r.CTMQuiet()), true
}

// CTM returns the current transform and records the call.
func (r *Recorder) CTM() bytecode.Transform {
	r.record("CTM()")
	return r.CTMQuiet()
}

// CTMQuiet returns the current transform without recording a call.
func (r *Recorder) CTMQuiet() bytecode.Transform {
	if !r.ctmOK {
		return bytecode.Identity
	}
	return r.ctm
}

func (r *Recorder) SetFillColorSpace(cs vm.ColorSpace)   { r.record("SetFillColorSpace(%d)", cs) }
func (r *Recorder) SetStrokeColorSpace(cs vm.ColorSpace) { r.record("SetStrokeColorSpace(%d)", cs) }
func (r *Recorder) SetFillColor(c bytecode.Color)        { r.record("SetFillColor(%v)", c) }
func (r *Recorder) SetStrokeColor(c bytecode.Color)      { r.record("SetStrokeColor(%v)", c) }
func (r *Recorder) SetAlpha(a float32)                   { r.record("SetAlpha(%v)", a) }
func (r *Recorder) SetLineWidth(w float32)               { r.record("SetLineWidth(%v)", w) }
func (r *Recorder) SetLineJoin(j bytecode.LineJoin)      { r.record("SetLineJoin(%v)", j) }
func (r *Recorder) SetLineCap(c bytecode.LineCap)        { r.record("SetLineCap(%v)", c) }
func (r *Recorder) SetMiterLimit(m float32)              { r.record("SetMiterLimit(%v)", m) }
func (r *Recorder) SetFlatness(f float32)                { r.record("SetFlatness(%v)", f) }
func (r *Recorder) SetBlendMode(m bytecode.BlendMode)    { r.record("SetBlendMode(%v)", m) }

func (r *Recorder) SetLineDash(phase float32, lengths []float32) {
	r.record("SetLineDash(%v, %v)", phase, lengths)
}

func (r *Recorder) SetRenderingIntent(i bytecode.RenderingIntent) {
	r.record("SetRenderingIntent(%v)", i)
}

func (r *Recorder) SetShadow(offset bytecode.Size, blur float32, c bytecode.Color) {
	r.record("SetShadow(%v, %v, %v)", offset, blur, c)
}

func (r *Recorder) FillPath(rule bytecode.FillRule) {
	r.record("FillPath(%v)", rule)
	r.path = nil
}

func (r *Recorder) StrokePath() {
	r.record("StrokePath()")
	r.path = nil
}

func (r *Recorder) DrawPath(mode bytecode.DrawingMode) {
	r.record("DrawPath(%v)", mode)
	r.path = nil
}

func (r *Recorder) FillEllipse(rc bytecode.Rect) { r.record("FillEllipse(%v)", rc) }

func (r *Recorder) Clip(rule bytecode.FillRule) {
	r.record("Clip(%v)", rule)
	r.path = nil
}

func (r *Recorder) ClipToRect(rc bytecode.Rect) { r.record("ClipToRect(%v)", rc) }

func (r *Recorder) BeginTransparencyLayer() { r.record("BeginTransparencyLayer()") }
func (r *Recorder) EndTransparencyLayer()   { r.record("EndTransparencyLayer()") }

func (r *Recorder) DrawLinearGradient(g *bytecode.Gradient, o bytecode.LinearGradient) error {
	r.record("DrawLinearGradient(%d stops, %v)", len(*g), o)
	return r.GradientErr
}

func (r *Recorder) DrawRadialGradient(g *bytecode.Gradient, o bytecode.RadialGradient) error {
	r.record("DrawRadialGradient(%d stops, %v)", len(*g), o)
	return r.GradientErr
}
