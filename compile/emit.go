// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"fmt"

	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/ir"
)

func (p *Program) gradient(name string) (uint32, error) {
	id, ok := p.gradients[name]
	if !ok {
		return 0, &UndefinedError{Kind: "gradient", Name: name}
	}
	return id, nil
}

// emit calls v once per instruction of steps, flattening composites.
func (p *Program) emit(steps []ir.Step, v bytecode.Visitor) error {
	for _, s := range steps {
		if err := p.emitOne(s, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) emitOne(s ir.Step, v bytecode.Visitor) error {
	switch s := s.(type) {
	case ir.Composite:
		return p.emit(s.Steps, v)
	case ir.SaveGState:
		return v.SaveGState()
	case ir.RestoreGState:
		return v.RestoreGState()
	case ir.MoveTo:
		return v.MoveTo(s.Point)
	case ir.CurveTo:
		return v.CurveTo(s.Curve)
	case ir.QuadCurveTo:
		return v.QuadCurveTo(s.Curve)
	case ir.LineTo:
		return v.LineTo(s.Point)
	case ir.AppendRectangle:
		return v.AppendRectangle(s.Rect)
	case ir.AppendRoundedRect:
		return v.AppendRoundedRect(s.Rect, s.RX, s.RY)
	case ir.AddArc:
		return v.AddArc(s.Arc)
	case ir.ClosePath:
		return v.ClosePath()
	case ir.ReplacePathWithStrokePath:
		return v.ReplacePathWithStrokePath()
	case ir.Lines:
		return v.Lines(s.Points)
	case ir.Clip:
		return v.Clip()
	case ir.ClipWithRule:
		return v.ClipWithRule(s.Rule)
	case ir.ClipToRect:
		return v.ClipToRect(s.Rect)
	case ir.Dash:
		return v.Dash(s.Pattern)
	case ir.DashPhase:
		return v.DashPhase(s.Phase)
	case ir.DashLengths:
		return v.DashLengths(s.Lengths)
	case ir.Fill:
		return v.Fill()
	case ir.FillWithRule:
		return v.FillWithRule(s.Rule)
	case ir.FillEllipse:
		return v.FillEllipse(s.Rect)
	case ir.Stroke:
		return v.Stroke()
	case ir.DrawPath:
		return v.DrawPath(s.Mode)
	case ir.AddEllipse:
		return v.AddEllipse(s.Rect)
	case ir.FillAndStroke:
		return v.FillAndStroke()
	case ir.SetGlobalAlphaToFillAlpha:
		return v.SetGlobalAlphaToFillAlpha()
	case ir.ConcatCTM:
		return v.ConcatCTM(s.Transform)
	case ir.Flatness:
		return v.Flatness(s.Value)
	case ir.LineWidth:
		return v.LineWidth(s.Value)
	case ir.LineJoinStyle:
		return v.LineJoinStyle(s.Join)
	case ir.LineCapStyle:
		return v.LineCapStyle(s.Cap)
	case ir.ColorRenderingIntent:
		return v.ColorRenderingIntent(s.Intent)
	case ir.GlobalAlpha:
		return v.GlobalAlpha(s.Value)
	case ir.StrokeColor:
		return v.StrokeColor(s.Color)
	case ir.StrokeAlpha:
		return v.StrokeAlpha(s.Value)
	case ir.StrokeNone:
		return v.StrokeNone()
	case ir.FillColor:
		return v.FillColor(s.Color)
	case ir.FillAlpha:
		return v.FillAlpha(s.Value)
	case ir.FillNone:
		return v.FillNone()
	case ir.FillRule:
		return v.FillRule(s.Rule)
	case ir.LinearGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.LinearGradient(id, s.Options)
	case ir.RadialGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.RadialGradient(id, s.Options)
	case ir.FillLinearGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.FillLinearGradient(id, s.Options)
	case ir.FillRadialGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.FillRadialGradient(id, s.Options)
	case ir.StrokeLinearGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.StrokeLinearGradient(id, s.Options)
	case ir.StrokeRadialGradient:
		id, err := p.gradient(s.Gradient)
		if err != nil {
			return err
		}
		return v.StrokeRadialGradient(id, s.Options)
	case ir.Subroutine:
		id, ok := p.subroutines[s.Name]
		if !ok {
			return &UndefinedError{Kind: "subroutine", Name: s.Name}
		}
		return v.Subroutine(id)
	case ir.Shadow:
		return v.Shadow(s.Shadow)
	case ir.BlendMode:
		return v.BlendMode(s.Mode)
	case ir.BeginTransparencyLayer:
		return v.BeginTransparencyLayer()
	case ir.EndTransparencyLayer:
		return v.EndTransparencyLayer()
	case ir.MiterLimit:
		return v.MiterLimit(s.Value)
	}
	panic(fmt.Sprintf("compile: unexpected step type %T", s))
}
