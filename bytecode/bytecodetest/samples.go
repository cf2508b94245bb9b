// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytecodetest provides one sample instruction per opcode, for tests
// that need to cover the whole instruction set.
package bytecodetest

import (
	"math"

	"golang.org/x/vgbc/bytecode"
)

// Sample is an instruction with representative operands.
type Sample struct {
	Op bytecode.Opcode
	// Call invokes the method of v matching Op.
	Call func(v bytecode.Visitor) error
}

var (
	pt   = bytecode.Point{X: 1.5, Y: -2}
	rect = bytecode.Rect{X: 1, Y: 2, W: 30, H: 40}
	red  = bytecode.Color{R: 1, A: 0.5}
	lin  = bytecode.LinearGradient{
		Start:   bytecode.Point{X: 0, Y: 0},
		End:     bytecode.Point{X: 10, Y: 0},
		Options: bytecode.DrawsBeforeStart | bytecode.DrawsAfterEnd,
	}
	rad = bytecode.RadialGradient{
		StartCenter: bytecode.Point{X: 5, Y: 5},
		StartRadius: 0,
		EndCenter:   bytecode.Point{X: 5, Y: 5},
		EndRadius:   5,
		Options:     bytecode.DrawsAfterEnd,
	}
)

// Samples has exactly one entry per opcode, in opcode order.
var Samples = []Sample{
	{bytecode.OpSaveGState, func(v bytecode.Visitor) error { return v.SaveGState() }},
	{bytecode.OpRestoreGState, func(v bytecode.Visitor) error { return v.RestoreGState() }},
	{bytecode.OpMoveTo, func(v bytecode.Visitor) error { return v.MoveTo(pt) }},
	{bytecode.OpCurveTo, func(v bytecode.Visitor) error {
		return v.CurveTo(bytecode.CubicCurve{Control1: pt, Control2: bytecode.Point{X: 3, Y: 4}, To: bytecode.Point{X: 5, Y: 6}})
	}},
	{bytecode.OpQuadCurveTo, func(v bytecode.Visitor) error {
		return v.QuadCurveTo(bytecode.QuadCurve{Control: pt, To: bytecode.Point{X: 7, Y: 8}})
	}},
	{bytecode.OpLineTo, func(v bytecode.Visitor) error { return v.LineTo(pt) }},
	{bytecode.OpAppendRectangle, func(v bytecode.Visitor) error { return v.AppendRectangle(rect) }},
	{bytecode.OpAppendRoundedRect, func(v bytecode.Visitor) error { return v.AppendRoundedRect(rect, 2, 3) }},
	{bytecode.OpAddArc, func(v bytecode.Visitor) error {
		return v.AddArc(bytecode.Arc{Center: pt, Radius: 4, StartAngle: 0, EndAngle: math.Pi, Clockwise: true})
	}},
	{bytecode.OpClosePath, func(v bytecode.Visitor) error { return v.ClosePath() }},
	{bytecode.OpReplacePathWithStrokePath, func(v bytecode.Visitor) error { return v.ReplacePathWithStrokePath() }},
	{bytecode.OpLines, func(v bytecode.Visitor) error {
		return v.Lines([]bytecode.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	}},
	{bytecode.OpClip, func(v bytecode.Visitor) error { return v.Clip() }},
	{bytecode.OpClipWithRule, func(v bytecode.Visitor) error { return v.ClipWithRule(bytecode.EvenOdd) }},
	{bytecode.OpClipToRect, func(v bytecode.Visitor) error { return v.ClipToRect(rect) }},
	{bytecode.OpDash, func(v bytecode.Visitor) error {
		return v.Dash(bytecode.DashPattern{Phase: 1, Lengths: []float32{2, 3}})
	}},
	{bytecode.OpDashPhase, func(v bytecode.Visitor) error { return v.DashPhase(0.5) }},
	{bytecode.OpDashLengths, func(v bytecode.Visitor) error { return v.DashLengths([]float32{4, 1}) }},
	{bytecode.OpFill, func(v bytecode.Visitor) error { return v.Fill() }},
	{bytecode.OpFillWithRule, func(v bytecode.Visitor) error { return v.FillWithRule(bytecode.EvenOdd) }},
	{bytecode.OpFillEllipse, func(v bytecode.Visitor) error { return v.FillEllipse(rect) }},
	{bytecode.OpStroke, func(v bytecode.Visitor) error { return v.Stroke() }},
	{bytecode.OpDrawPath, func(v bytecode.Visitor) error { return v.DrawPath(bytecode.ModeEOFillStroke) }},
	{bytecode.OpAddEllipse, func(v bytecode.Visitor) error { return v.AddEllipse(rect) }},
	{bytecode.OpFillAndStroke, func(v bytecode.Visitor) error { return v.FillAndStroke() }},
	{bytecode.OpSetGlobalAlphaToFillAlpha, func(v bytecode.Visitor) error { return v.SetGlobalAlphaToFillAlpha() }},
	{bytecode.OpConcatCTM, func(v bytecode.Visitor) error {
		return v.ConcatCTM(bytecode.Transform{A: 2, B: 0, C: 0, D: 2, TX: 10, TY: 20})
	}},
	{bytecode.OpFlatness, func(v bytecode.Visitor) error { return v.Flatness(0.25) }},
	{bytecode.OpLineWidth, func(v bytecode.Visitor) error { return v.LineWidth(3) }},
	{bytecode.OpLineJoinStyle, func(v bytecode.Visitor) error { return v.LineJoinStyle(bytecode.JoinBevel) }},
	{bytecode.OpLineCapStyle, func(v bytecode.Visitor) error { return v.LineCapStyle(bytecode.CapSquare) }},
	{bytecode.OpColorRenderingIntent, func(v bytecode.Visitor) error {
		return v.ColorRenderingIntent(bytecode.IntentPerceptual)
	}},
	{bytecode.OpGlobalAlpha, func(v bytecode.Visitor) error { return v.GlobalAlpha(0.75) }},
	{bytecode.OpStrokeColor, func(v bytecode.Visitor) error { return v.StrokeColor(red) }},
	{bytecode.OpStrokeAlpha, func(v bytecode.Visitor) error { return v.StrokeAlpha(0.5) }},
	{bytecode.OpStrokeNone, func(v bytecode.Visitor) error { return v.StrokeNone() }},
	{bytecode.OpFillColor, func(v bytecode.Visitor) error { return v.FillColor(red) }},
	{bytecode.OpFillAlpha, func(v bytecode.Visitor) error { return v.FillAlpha(0.25) }},
	{bytecode.OpFillNone, func(v bytecode.Visitor) error { return v.FillNone() }},
	{bytecode.OpFillRule, func(v bytecode.Visitor) error { return v.FillRule(bytecode.EvenOdd) }},
	{bytecode.OpLinearGradient, func(v bytecode.Visitor) error { return v.LinearGradient(0, lin) }},
	{bytecode.OpRadialGradient, func(v bytecode.Visitor) error { return v.RadialGradient(0, rad) }},
	{bytecode.OpFillLinearGradient, func(v bytecode.Visitor) error { return v.FillLinearGradient(0, lin) }},
	{bytecode.OpFillRadialGradient, func(v bytecode.Visitor) error { return v.FillRadialGradient(0, rad) }},
	{bytecode.OpStrokeLinearGradient, func(v bytecode.Visitor) error { return v.StrokeLinearGradient(0, lin) }},
	{bytecode.OpStrokeRadialGradient, func(v bytecode.Visitor) error { return v.StrokeRadialGradient(0, rad) }},
	{bytecode.OpSubroutine, func(v bytecode.Visitor) error { return v.Subroutine(0) }},
	{bytecode.OpShadow, func(v bytecode.Visitor) error {
		return v.Shadow(bytecode.Shadow{Offset: bytecode.Size{W: 2, H: -2}, Blur: 3, Color: red})
	}},
	{bytecode.OpBlendMode, func(v bytecode.Visitor) error { return v.BlendMode(bytecode.BlendMultiply) }},
	{bytecode.OpBeginTransparencyLayer, func(v bytecode.Visitor) error { return v.BeginTransparencyLayer() }},
	{bytecode.OpEndTransparencyLayer, func(v bytecode.Visitor) error { return v.EndTransparencyLayer() }},
	{bytecode.OpMiterLimit, func(v bytecode.Visitor) error { return v.MiterLimit(10) }},
}

// Gradient is a valid gradient for the id 0 that Samples refer to.
var Gradient = bytecode.Gradient{
	{Location: 0, Color: bytecode.Color{R: 1, A: 1}},
	{Location: 1, Color: bytecode.Color{B: 1, A: 1}},
}

// Encode returns the encoding of s alone.
func (s Sample) Encode() []byte {
	var e bytecode.Encoder
	s.Call(&e)
	return e.Bytes()
}
