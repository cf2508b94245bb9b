// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

var _ Visitor = (*Encoder)(nil)

// Encoder is a Visitor that appends the encoding of each instruction it is
// given. Visiting an Encoder's output with another Encoder reproduces it.
//
// The zero value is usable. Encoding never fails: every method returns nil.
type Encoder struct {
	buf buffer
}

// Bytes returns the instructions encoded so far. The tables preamble is not
// included; see AppendTables.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset discards the encoded instructions, keeping the allocated space.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int { return len(e.buf) }

func (e *Encoder) op(o Opcode) { e.buf.uint8(uint8(o)) }

func (e *Encoder) SaveGState() error    { e.op(OpSaveGState); return nil }
func (e *Encoder) RestoreGState() error { e.op(OpRestoreGState); return nil }

func (e *Encoder) MoveTo(p Point) error {
	e.op(OpMoveTo)
	e.buf.point(p)
	return nil
}

func (e *Encoder) CurveTo(c CubicCurve) error {
	e.op(OpCurveTo)
	e.buf.point(c.Control1)
	e.buf.point(c.Control2)
	e.buf.point(c.To)
	return nil
}

func (e *Encoder) QuadCurveTo(c QuadCurve) error {
	e.op(OpQuadCurveTo)
	e.buf.point(c.Control)
	e.buf.point(c.To)
	return nil
}

func (e *Encoder) LineTo(p Point) error {
	e.op(OpLineTo)
	e.buf.point(p)
	return nil
}

func (e *Encoder) AppendRectangle(r Rect) error {
	e.op(OpAppendRectangle)
	e.buf.rect(r)
	return nil
}

func (e *Encoder) AppendRoundedRect(r Rect, rx, ry float32) error {
	e.op(OpAppendRoundedRect)
	e.buf.rect(r)
	e.buf.floats(rx, ry)
	return nil
}

func (e *Encoder) AddArc(a Arc) error {
	e.op(OpAddArc)
	e.buf.point(a.Center)
	e.buf.floats(a.Radius, a.StartAngle, a.EndAngle)
	e.buf.bool(a.Clockwise)
	return nil
}

func (e *Encoder) ClosePath() error                 { e.op(OpClosePath); return nil }
func (e *Encoder) ReplacePathWithStrokePath() error { e.op(OpReplacePathWithStrokePath); return nil }

func (e *Encoder) Lines(pts []Point) error {
	e.op(OpLines)
	e.buf.points(pts)
	return nil
}

func (e *Encoder) Clip() error { e.op(OpClip); return nil }

func (e *Encoder) ClipWithRule(rule FillRule) error {
	e.op(OpClipWithRule)
	e.buf.uint8(uint8(rule))
	return nil
}

func (e *Encoder) ClipToRect(r Rect) error {
	e.op(OpClipToRect)
	e.buf.rect(r)
	return nil
}

func (e *Encoder) Dash(d DashPattern) error {
	e.op(OpDash)
	e.buf.float32(d.Phase)
	e.buf.float32s(d.Lengths)
	return nil
}

func (e *Encoder) DashPhase(phase float32) error {
	e.op(OpDashPhase)
	e.buf.float32(phase)
	return nil
}

func (e *Encoder) DashLengths(lengths []float32) error {
	e.op(OpDashLengths)
	e.buf.float32s(lengths)
	return nil
}

func (e *Encoder) Fill() error { e.op(OpFill); return nil }

func (e *Encoder) FillWithRule(rule FillRule) error {
	e.op(OpFillWithRule)
	e.buf.uint8(uint8(rule))
	return nil
}

func (e *Encoder) FillEllipse(r Rect) error {
	e.op(OpFillEllipse)
	e.buf.rect(r)
	return nil
}

func (e *Encoder) Stroke() error { e.op(OpStroke); return nil }

func (e *Encoder) DrawPath(mode DrawingMode) error {
	e.op(OpDrawPath)
	e.buf.uint8(uint8(mode))
	return nil
}

func (e *Encoder) AddEllipse(r Rect) error {
	e.op(OpAddEllipse)
	e.buf.rect(r)
	return nil
}

func (e *Encoder) FillAndStroke() error             { e.op(OpFillAndStroke); return nil }
func (e *Encoder) SetGlobalAlphaToFillAlpha() error { e.op(OpSetGlobalAlphaToFillAlpha); return nil }

func (e *Encoder) ConcatCTM(t Transform) error {
	e.op(OpConcatCTM)
	e.buf.transform(t)
	return nil
}

func (e *Encoder) scalar(o Opcode, f float32) error {
	e.op(o)
	e.buf.float32(f)
	return nil
}

func (e *Encoder) Flatness(f float32) error    { return e.scalar(OpFlatness, f) }
func (e *Encoder) LineWidth(w float32) error   { return e.scalar(OpLineWidth, w) }
func (e *Encoder) GlobalAlpha(a float32) error { return e.scalar(OpGlobalAlpha, a) }
func (e *Encoder) StrokeAlpha(a float32) error { return e.scalar(OpStrokeAlpha, a) }
func (e *Encoder) FillAlpha(a float32) error   { return e.scalar(OpFillAlpha, a) }
func (e *Encoder) MiterLimit(m float32) error  { return e.scalar(OpMiterLimit, m) }

func (e *Encoder) enum(o Opcode, v uint8) error {
	e.op(o)
	e.buf.uint8(v)
	return nil
}

func (e *Encoder) LineJoinStyle(j LineJoin) error { return e.enum(OpLineJoinStyle, uint8(j)) }
func (e *Encoder) LineCapStyle(c LineCap) error   { return e.enum(OpLineCapStyle, uint8(c)) }
func (e *Encoder) FillRule(rule FillRule) error   { return e.enum(OpFillRule, uint8(rule)) }
func (e *Encoder) BlendMode(m BlendMode) error    { return e.enum(OpBlendMode, uint8(m)) }

func (e *Encoder) ColorRenderingIntent(i RenderingIntent) error {
	return e.enum(OpColorRenderingIntent, uint8(i))
}

func (e *Encoder) StrokeColor(c Color) error {
	e.op(OpStrokeColor)
	e.buf.color(c)
	return nil
}

func (e *Encoder) FillColor(c Color) error {
	e.op(OpFillColor)
	e.buf.color(c)
	return nil
}

func (e *Encoder) StrokeNone() error { e.op(OpStrokeNone); return nil }
func (e *Encoder) FillNone() error   { e.op(OpFillNone); return nil }

func (e *Encoder) linear(o Opcode, id uint32, g LinearGradient) error {
	e.op(o)
	e.buf.uint32(id)
	e.buf.linearGradient(g)
	return nil
}

func (e *Encoder) radial(o Opcode, id uint32, g RadialGradient) error {
	e.op(o)
	e.buf.uint32(id)
	e.buf.radialGradient(g)
	return nil
}

func (e *Encoder) LinearGradient(id uint32, g LinearGradient) error {
	return e.linear(OpLinearGradient, id, g)
}

func (e *Encoder) RadialGradient(id uint32, g RadialGradient) error {
	return e.radial(OpRadialGradient, id, g)
}

func (e *Encoder) FillLinearGradient(id uint32, g LinearGradient) error {
	return e.linear(OpFillLinearGradient, id, g)
}

func (e *Encoder) FillRadialGradient(id uint32, g RadialGradient) error {
	return e.radial(OpFillRadialGradient, id, g)
}

func (e *Encoder) StrokeLinearGradient(id uint32, g LinearGradient) error {
	return e.linear(OpStrokeLinearGradient, id, g)
}

func (e *Encoder) StrokeRadialGradient(id uint32, g RadialGradient) error {
	return e.radial(OpStrokeRadialGradient, id, g)
}

func (e *Encoder) Subroutine(id uint32) error {
	e.op(OpSubroutine)
	e.buf.uint32(id)
	return nil
}

func (e *Encoder) Shadow(s Shadow) error {
	e.op(OpShadow)
	e.buf.size(s.Offset)
	e.buf.float32(s.Blur)
	e.buf.color(s.Color)
	return nil
}

func (e *Encoder) BeginTransparencyLayer() error { e.op(OpBeginTransparencyLayer); return nil }
func (e *Encoder) EndTransparencyLayer() error   { e.op(OpEndTransparencyLayer); return nil }
