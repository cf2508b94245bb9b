// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir defines drawing steps: the input that package compile turns
// into bytecode.
//
// Steps mirror the instruction set, except that gradients and subroutines
// are referred to by name and that steps can be grouped into a Composite.
package ir

import "golang.org/x/vgbc/bytecode"

// Route is a drawing: its steps, its bounds, and the gradients and
// subroutines its steps refer to.
type Route struct {
	Bounds      bytecode.Rect
	Steps       []Step
	Gradients   map[string]bytecode.Gradient
	Subroutines map[string]*Route
}

// PathRoutine is a named sequence of path-building steps.
type PathRoutine struct {
	ID    string
	Steps []Step
}

// Step is one drawing step. The concrete types are the structs in this
// package.
type Step interface {
	// Op returns the instruction the step compiles to. Composite returns
	// false.
	Op() (bytecode.Opcode, bool)
}

type (
	SaveGState                struct{}
	RestoreGState             struct{}
	ClosePath                 struct{}
	ReplacePathWithStrokePath struct{}
	Clip                      struct{}
	Fill                      struct{}
	Stroke                    struct{}
	FillAndStroke             struct{}
	SetGlobalAlphaToFillAlpha struct{}
	StrokeNone                struct{}
	FillNone                  struct{}
	BeginTransparencyLayer    struct{}
	EndTransparencyLayer      struct{}

	MoveTo          struct{ Point bytecode.Point }
	LineTo          struct{ Point bytecode.Point }
	CurveTo         struct{ Curve bytecode.CubicCurve }
	QuadCurveTo     struct{ Curve bytecode.QuadCurve }
	AppendRectangle struct{ Rect bytecode.Rect }
	AddEllipse      struct{ Rect bytecode.Rect }
	FillEllipse     struct{ Rect bytecode.Rect }
	ClipToRect      struct{ Rect bytecode.Rect }
	AddArc          struct{ Arc bytecode.Arc }
	Lines           struct{ Points []bytecode.Point }

	AppendRoundedRect struct {
		Rect   bytecode.Rect
		RX, RY float32
	}

	ClipWithRule struct{ Rule bytecode.FillRule }
	FillWithRule struct{ Rule bytecode.FillRule }
	FillRule     struct{ Rule bytecode.FillRule }
	DrawPath     struct{ Mode bytecode.DrawingMode }

	Dash        struct{ Pattern bytecode.DashPattern }
	DashPhase   struct{ Phase float32 }
	DashLengths struct{ Lengths []float32 }

	ConcatCTM            struct{ Transform bytecode.Transform }
	Flatness             struct{ Value float32 }
	LineWidth            struct{ Value float32 }
	MiterLimit           struct{ Value float32 }
	GlobalAlpha          struct{ Value float32 }
	StrokeAlpha          struct{ Value float32 }
	FillAlpha            struct{ Value float32 }
	LineJoinStyle        struct{ Join bytecode.LineJoin }
	LineCapStyle         struct{ Cap bytecode.LineCap }
	ColorRenderingIntent struct{ Intent bytecode.RenderingIntent }
	BlendMode            struct{ Mode bytecode.BlendMode }
	StrokeColor          struct{ Color bytecode.Color }
	FillColor            struct{ Color bytecode.Color }
	Shadow               struct{ Shadow bytecode.Shadow }

	// Gradient steps name an entry of the Route's Gradients.
	LinearGradient struct {
		Gradient string
		Options  bytecode.LinearGradient
	}
	RadialGradient struct {
		Gradient string
		Options  bytecode.RadialGradient
	}
	FillLinearGradient struct {
		Gradient string
		Options  bytecode.LinearGradient
	}
	FillRadialGradient struct {
		Gradient string
		Options  bytecode.RadialGradient
	}
	StrokeLinearGradient struct {
		Gradient string
		Options  bytecode.LinearGradient
	}
	StrokeRadialGradient struct {
		Gradient string
		Options  bytecode.RadialGradient
	}

	// Subroutine names an entry of the Route's Subroutines.
	Subroutine struct{ Name string }

	// Composite is a group of steps, flattened in order when compiled.
	Composite struct{ Steps []Step }
)

func (SaveGState) Op() (bytecode.Opcode, bool)                { return bytecode.OpSaveGState, true }
func (RestoreGState) Op() (bytecode.Opcode, bool)             { return bytecode.OpRestoreGState, true }
func (ClosePath) Op() (bytecode.Opcode, bool)                 { return bytecode.OpClosePath, true }
func (ReplacePathWithStrokePath) Op() (bytecode.Opcode, bool) { return bytecode.OpReplacePathWithStrokePath, true }
func (Clip) Op() (bytecode.Opcode, bool)                      { return bytecode.OpClip, true }
func (Fill) Op() (bytecode.Opcode, bool)                      { return bytecode.OpFill, true }
func (Stroke) Op() (bytecode.Opcode, bool)                    { return bytecode.OpStroke, true }
func (FillAndStroke) Op() (bytecode.Opcode, bool)             { return bytecode.OpFillAndStroke, true }
func (SetGlobalAlphaToFillAlpha) Op() (bytecode.Opcode, bool) { return bytecode.OpSetGlobalAlphaToFillAlpha, true }
func (StrokeNone) Op() (bytecode.Opcode, bool)                { return bytecode.OpStrokeNone, true }
func (FillNone) Op() (bytecode.Opcode, bool)                  { return bytecode.OpFillNone, true }
func (BeginTransparencyLayer) Op() (bytecode.Opcode, bool)    { return bytecode.OpBeginTransparencyLayer, true }
func (EndTransparencyLayer) Op() (bytecode.Opcode, bool)      { return bytecode.OpEndTransparencyLayer, true }
func (MoveTo) Op() (bytecode.Opcode, bool)                    { return bytecode.OpMoveTo, true }
func (LineTo) Op() (bytecode.Opcode, bool)                    { return bytecode.OpLineTo, true }
func (CurveTo) Op() (bytecode.Opcode, bool)                   { return bytecode.OpCurveTo, true }
func (QuadCurveTo) Op() (bytecode.Opcode, bool)               { return bytecode.OpQuadCurveTo, true }
func (AppendRectangle) Op() (bytecode.Opcode, bool)           { return bytecode.OpAppendRectangle, true }
func (AddEllipse) Op() (bytecode.Opcode, bool)                { return bytecode.OpAddEllipse, true }
func (FillEllipse) Op() (bytecode.Opcode, bool)               { return bytecode.OpFillEllipse, true }
func (ClipToRect) Op() (bytecode.Opcode, bool)                { return bytecode.OpClipToRect, true }
func (AddArc) Op() (bytecode.Opcode, bool)                    { return bytecode.OpAddArc, true }
func (Lines) Op() (bytecode.Opcode, bool)                     { return bytecode.OpLines, true }
func (AppendRoundedRect) Op() (bytecode.Opcode, bool)         { return bytecode.OpAppendRoundedRect, true }
func (ClipWithRule) Op() (bytecode.Opcode, bool)              { return bytecode.OpClipWithRule, true }
func (FillWithRule) Op() (bytecode.Opcode, bool)              { return bytecode.OpFillWithRule, true }
func (FillRule) Op() (bytecode.Opcode, bool)                  { return bytecode.OpFillRule, true }
func (DrawPath) Op() (bytecode.Opcode, bool)                  { return bytecode.OpDrawPath, true }
func (Dash) Op() (bytecode.Opcode, bool)                      { return bytecode.OpDash, true }
func (DashPhase) Op() (bytecode.Opcode, bool)                 { return bytecode.OpDashPhase, true }
func (DashLengths) Op() (bytecode.Opcode, bool)               { return bytecode.OpDashLengths, true }
func (ConcatCTM) Op() (bytecode.Opcode, bool)                 { return bytecode.OpConcatCTM, true }
func (Flatness) Op() (bytecode.Opcode, bool)                  { return bytecode.OpFlatness, true }
func (LineWidth) Op() (bytecode.Opcode, bool)                 { return bytecode.OpLineWidth, true }
func (MiterLimit) Op() (bytecode.Opcode, bool)                { return bytecode.OpMiterLimit, true }
func (GlobalAlpha) Op() (bytecode.Opcode, bool)               { return bytecode.OpGlobalAlpha, true }
func (StrokeAlpha) Op() (bytecode.Opcode, bool)               { return bytecode.OpStrokeAlpha, true }
func (FillAlpha) Op() (bytecode.Opcode, bool)                 { return bytecode.OpFillAlpha, true }
func (LineJoinStyle) Op() (bytecode.Opcode, bool)             { return bytecode.OpLineJoinStyle, true }
func (LineCapStyle) Op() (bytecode.Opcode, bool)              { return bytecode.OpLineCapStyle, true }
func (ColorRenderingIntent) Op() (bytecode.Opcode, bool)      { return bytecode.OpColorRenderingIntent, true }
func (BlendMode) Op() (bytecode.Opcode, bool)                 { return bytecode.OpBlendMode, true }
func (StrokeColor) Op() (bytecode.Opcode, bool)               { return bytecode.OpStrokeColor, true }
func (FillColor) Op() (bytecode.Opcode, bool)                 { return bytecode.OpFillColor, true }
func (Shadow) Op() (bytecode.Opcode, bool)                    { return bytecode.OpShadow, true }
func (LinearGradient) Op() (bytecode.Opcode, bool)            { return bytecode.OpLinearGradient, true }
func (RadialGradient) Op() (bytecode.Opcode, bool)            { return bytecode.OpRadialGradient, true }
func (FillLinearGradient) Op() (bytecode.Opcode, bool)        { return bytecode.OpFillLinearGradient, true }
func (FillRadialGradient) Op() (bytecode.Opcode, bool)        { return bytecode.OpFillRadialGradient, true }
func (StrokeLinearGradient) Op() (bytecode.Opcode, bool)      { return bytecode.OpStrokeLinearGradient, true }
func (StrokeRadialGradient) Op() (bytecode.Opcode, bool)      { return bytecode.OpStrokeRadialGradient, true }
func (Subroutine) Op() (bytecode.Opcode, bool)                { return bytecode.OpSubroutine, true }
func (Composite) Op() (bytecode.Opcode, bool)                 { return 0, false }
