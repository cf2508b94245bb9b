// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

// Visitor receives decoded instructions, one method per opcode. Adding an
// opcode adds a method, so every Visitor implementation must handle it before
// the program compiles again.
//
// A non-nil error returned from a method stops Visit, which returns that
// error.
type Visitor interface {
	PathVisitor

	SaveGState() error
	RestoreGState() error
	ReplacePathWithStrokePath() error
	Clip() error
	ClipWithRule(rule FillRule) error
	ClipToRect(r Rect) error
	Dash(d DashPattern) error
	DashPhase(phase float32) error
	DashLengths(lengths []float32) error
	Fill() error
	FillWithRule(rule FillRule) error
	FillEllipse(r Rect) error
	Stroke() error
	DrawPath(mode DrawingMode) error
	FillAndStroke() error
	SetGlobalAlphaToFillAlpha() error
	ConcatCTM(t Transform) error
	Flatness(f float32) error
	LineWidth(w float32) error
	LineJoinStyle(j LineJoin) error
	LineCapStyle(c LineCap) error
	ColorRenderingIntent(i RenderingIntent) error
	GlobalAlpha(a float32) error
	StrokeColor(c Color) error
	StrokeAlpha(a float32) error
	StrokeNone() error
	FillColor(c Color) error
	FillAlpha(a float32) error
	FillNone() error
	FillRule(rule FillRule) error
	LinearGradient(id uint32, g LinearGradient) error
	RadialGradient(id uint32, g RadialGradient) error
	FillLinearGradient(id uint32, g LinearGradient) error
	FillRadialGradient(id uint32, g RadialGradient) error
	StrokeLinearGradient(id uint32, g LinearGradient) error
	StrokeRadialGradient(id uint32, g RadialGradient) error
	Subroutine(id uint32) error
	Shadow(s Shadow) error
	BlendMode(m BlendMode) error
	BeginTransparencyLayer() error
	EndTransparencyLayer() error
	MiterLimit(m float32) error
}

// PathVisitor receives the instructions allowed in path-only routines.
type PathVisitor interface {
	MoveTo(p Point) error
	CurveTo(c CubicCurve) error
	QuadCurveTo(c QuadCurve) error
	LineTo(p Point) error
	AppendRectangle(r Rect) error
	AppendRoundedRect(r Rect, rx, ry float32) error
	AddArc(a Arc) error
	ClosePath() error
	Lines(pts []Point) error
	AddEllipse(r Rect) error
}

// Context locates an instruction within the stream being visited.
type Context struct {
	Offset       int // Byte offset of the opcode.
	CommandIndex int // Zero-based instruction count.
	TotalSize    int // Length of the stream.
}

// A Locator is a Visitor that wants to know where each instruction starts.
// Visit calls Locate immediately before the instruction's method.
type Locator interface {
	Locate(ctx Context)
}

// Visit decodes instructions from c until it is exhausted, calling the
// matching method of v for each. Context offsets are relative to c's
// position when Visit is called.
func Visit(c *Cursor, v Visitor) error {
	loc, _ := v.(Locator)
	base, total := c.Offset(), c.Len()
	for i := 0; c.Len() > 0; i++ {
		at := c.Offset()
		b, _ := c.Uint8()
		if loc != nil {
			loc.Locate(Context{Offset: at - base, CommandIndex: i, TotalSize: total})
		}
		if err := visitOne(c, Opcode(b), v); err != nil {
			return err
		}
	}
	return nil
}

// VisitPath is like Visit but accepts only path-building opcodes, as found in
// path-only routines.
func VisitPath(c *Cursor, v PathVisitor) error {
	loc, _ := v.(Locator)
	base, total := c.Offset(), c.Len()
	for i := 0; c.Len() > 0; i++ {
		at := c.Offset()
		b, _ := c.Uint8()
		if !Opcode(b).IsPath() {
			return &InvalidValueError{Offset: at, What: "path opcode", Value: b}
		}
		if loc != nil {
			loc.Locate(Context{Offset: at - base, CommandIndex: i, TotalSize: total})
		}
		if err := visitPathOne(c, Opcode(b), v); err != nil {
			return err
		}
	}
	return nil
}

func visitPathOne(c *Cursor, op Opcode, v PathVisitor) error {
	switch op {
	case OpMoveTo:
		p, err := c.Point()
		if err != nil {
			return err
		}
		return v.MoveTo(p)
	case OpCurveTo:
		cc, err := c.CubicCurve()
		if err != nil {
			return err
		}
		return v.CurveTo(cc)
	case OpQuadCurveTo:
		qc, err := c.QuadCurve()
		if err != nil {
			return err
		}
		return v.QuadCurveTo(qc)
	case OpLineTo:
		p, err := c.Point()
		if err != nil {
			return err
		}
		return v.LineTo(p)
	case OpAppendRectangle:
		r, err := c.Rect()
		if err != nil {
			return err
		}
		return v.AppendRectangle(r)
	case OpAppendRoundedRect:
		var f [6]float32
		if err := c.floats(f[:]); err != nil {
			return err
		}
		return v.AppendRoundedRect(Rect{f[0], f[1], f[2], f[3]}, f[4], f[5])
	case OpAddArc:
		a, err := c.Arc()
		if err != nil {
			return err
		}
		return v.AddArc(a)
	case OpClosePath:
		return v.ClosePath()
	case OpLines:
		pts, err := c.Points()
		if err != nil {
			return err
		}
		return v.Lines(pts)
	case OpAddEllipse:
		r, err := c.Rect()
		if err != nil {
			return err
		}
		return v.AddEllipse(r)
	}
	panic("bytecode: " + op.String() + " is not a path opcode")
}

func visitOne(c *Cursor, op Opcode, v Visitor) error {
	if op.IsPath() {
		return visitPathOne(c, op, v)
	}
	switch op {
	case OpSaveGState:
		return v.SaveGState()
	case OpRestoreGState:
		return v.RestoreGState()
	case OpReplacePathWithStrokePath:
		return v.ReplacePathWithStrokePath()
	case OpClip:
		return v.Clip()
	case OpClipWithRule:
		r, err := c.FillRule()
		if err != nil {
			return err
		}
		return v.ClipWithRule(r)
	case OpClipToRect:
		r, err := c.Rect()
		if err != nil {
			return err
		}
		return v.ClipToRect(r)
	case OpDash:
		d, err := c.DashPattern()
		if err != nil {
			return err
		}
		return v.Dash(d)
	case OpDashPhase:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.DashPhase(f)
	case OpDashLengths:
		f, err := c.Float32s()
		if err != nil {
			return err
		}
		return v.DashLengths(f)
	case OpFill:
		return v.Fill()
	case OpFillWithRule:
		r, err := c.FillRule()
		if err != nil {
			return err
		}
		return v.FillWithRule(r)
	case OpFillEllipse:
		r, err := c.Rect()
		if err != nil {
			return err
		}
		return v.FillEllipse(r)
	case OpStroke:
		return v.Stroke()
	case OpDrawPath:
		m, err := c.DrawingMode()
		if err != nil {
			return err
		}
		return v.DrawPath(m)
	case OpFillAndStroke:
		return v.FillAndStroke()
	case OpSetGlobalAlphaToFillAlpha:
		return v.SetGlobalAlphaToFillAlpha()
	case OpConcatCTM:
		t, err := c.Transform()
		if err != nil {
			return err
		}
		return v.ConcatCTM(t)
	case OpFlatness:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.Flatness(f)
	case OpLineWidth:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.LineWidth(f)
	case OpLineJoinStyle:
		j, err := c.LineJoin()
		if err != nil {
			return err
		}
		return v.LineJoinStyle(j)
	case OpLineCapStyle:
		lc, err := c.LineCap()
		if err != nil {
			return err
		}
		return v.LineCapStyle(lc)
	case OpColorRenderingIntent:
		i, err := c.RenderingIntent()
		if err != nil {
			return err
		}
		return v.ColorRenderingIntent(i)
	case OpGlobalAlpha:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.GlobalAlpha(f)
	case OpStrokeColor:
		col, err := c.Color()
		if err != nil {
			return err
		}
		return v.StrokeColor(col)
	case OpStrokeAlpha:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.StrokeAlpha(f)
	case OpStrokeNone:
		return v.StrokeNone()
	case OpFillColor:
		col, err := c.Color()
		if err != nil {
			return err
		}
		return v.FillColor(col)
	case OpFillAlpha:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.FillAlpha(f)
	case OpFillNone:
		return v.FillNone()
	case OpFillRule:
		r, err := c.FillRule()
		if err != nil {
			return err
		}
		return v.FillRule(r)
	case OpLinearGradient, OpFillLinearGradient, OpStrokeLinearGradient:
		id, err := c.Uint32()
		if err != nil {
			return err
		}
		g, err := c.LinearGradient()
		if err != nil {
			return err
		}
		switch op {
		case OpLinearGradient:
			return v.LinearGradient(id, g)
		case OpFillLinearGradient:
			return v.FillLinearGradient(id, g)
		}
		return v.StrokeLinearGradient(id, g)
	case OpRadialGradient, OpFillRadialGradient, OpStrokeRadialGradient:
		id, err := c.Uint32()
		if err != nil {
			return err
		}
		g, err := c.RadialGradient()
		if err != nil {
			return err
		}
		switch op {
		case OpRadialGradient:
			return v.RadialGradient(id, g)
		case OpFillRadialGradient:
			return v.FillRadialGradient(id, g)
		}
		return v.StrokeRadialGradient(id, g)
	case OpSubroutine:
		id, err := c.Uint32()
		if err != nil {
			return err
		}
		return v.Subroutine(id)
	case OpShadow:
		s, err := c.Shadow()
		if err != nil {
			return err
		}
		return v.Shadow(s)
	case OpBlendMode:
		m, err := c.BlendMode()
		if err != nil {
			return err
		}
		return v.BlendMode(m)
	case OpBeginTransparencyLayer:
		return v.BeginTransparencyLayer()
	case OpEndTransparencyLayer:
		return v.EndTransparencyLayer()
	case OpMiterLimit:
		f, err := c.Float32()
		if err != nil {
			return err
		}
		return v.MiterLimit(f)
	}
	return &InvalidValueError{Offset: c.Offset() - 1, What: "opcode", Value: uint8(op)}
}
