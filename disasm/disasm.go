// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm prints bytecode as text, one instruction per line.
//
// A line holds the instruction's byte offset and its name and operands:
//
//	0x00012 MoveTo({1 2})
//	0x0001B FillLinearGradient(0, {{0 0} {0 24} drawsBeforeStart|drawsAfterEnd})
//
// Gradient and subroutine ids are printed as they appear in the stream.
package disasm

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/vgbc/bytecode"
)

var (
	_ bytecode.Visitor = (*Printer)(nil)
	_ bytecode.Locator = (*Printer)(nil)
)

// Printer is a bytecode.Visitor that prints each instruction it visits.
type Printer struct {
	w io.Writer
	// Indent is written at the start of every line.
	Indent string
	// Base is added to every printed offset.
	Base int

	at int
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Locate records the offset of the next instruction.
func (p *Printer) Locate(ctx bytecode.Context) { p.at = ctx.Offset }

func (p *Printer) line(op bytecode.Opcode, args ...any) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s0x%05X %v(", p.Indent, p.Base+p.at, op)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a)
	}
	b.WriteString(")\n")
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) SaveGState() error    { return p.line(bytecode.OpSaveGState) }
func (p *Printer) RestoreGState() error { return p.line(bytecode.OpRestoreGState) }
func (p *Printer) ClosePath() error     { return p.line(bytecode.OpClosePath) }
func (p *Printer) Clip() error          { return p.line(bytecode.OpClip) }
func (p *Printer) Fill() error          { return p.line(bytecode.OpFill) }
func (p *Printer) Stroke() error        { return p.line(bytecode.OpStroke) }
func (p *Printer) FillAndStroke() error { return p.line(bytecode.OpFillAndStroke) }
func (p *Printer) StrokeNone() error    { return p.line(bytecode.OpStrokeNone) }
func (p *Printer) FillNone() error      { return p.line(bytecode.OpFillNone) }

func (p *Printer) ReplacePathWithStrokePath() error {
	return p.line(bytecode.OpReplacePathWithStrokePath)
}

func (p *Printer) SetGlobalAlphaToFillAlpha() error {
	return p.line(bytecode.OpSetGlobalAlphaToFillAlpha)
}

func (p *Printer) BeginTransparencyLayer() error { return p.line(bytecode.OpBeginTransparencyLayer) }
func (p *Printer) EndTransparencyLayer() error   { return p.line(bytecode.OpEndTransparencyLayer) }

func (p *Printer) MoveTo(pt bytecode.Point) error         { return p.line(bytecode.OpMoveTo, pt) }
func (p *Printer) LineTo(pt bytecode.Point) error         { return p.line(bytecode.OpLineTo, pt) }
func (p *Printer) CurveTo(c bytecode.CubicCurve) error    { return p.line(bytecode.OpCurveTo, c) }
func (p *Printer) QuadCurveTo(c bytecode.QuadCurve) error { return p.line(bytecode.OpQuadCurveTo, c) }
func (p *Printer) AppendRectangle(r bytecode.Rect) error  { return p.line(bytecode.OpAppendRectangle, r) }
func (p *Printer) AddArc(a bytecode.Arc) error            { return p.line(bytecode.OpAddArc, a) }
func (p *Printer) Lines(pts []bytecode.Point) error       { return p.line(bytecode.OpLines, pts) }
func (p *Printer) AddEllipse(r bytecode.Rect) error       { return p.line(bytecode.OpAddEllipse, r) }
func (p *Printer) FillEllipse(r bytecode.Rect) error      { return p.line(bytecode.OpFillEllipse, r) }
func (p *Printer) ClipToRect(r bytecode.Rect) error       { return p.line(bytecode.OpClipToRect, r) }

func (p *Printer) AppendRoundedRect(r bytecode.Rect, rx, ry float32) error {
	return p.line(bytecode.OpAppendRoundedRect, r, rx, ry)
}

func (p *Printer) ClipWithRule(r bytecode.FillRule) error { return p.line(bytecode.OpClipWithRule, r) }
func (p *Printer) FillWithRule(r bytecode.FillRule) error { return p.line(bytecode.OpFillWithRule, r) }
func (p *Printer) FillRule(r bytecode.FillRule) error     { return p.line(bytecode.OpFillRule, r) }
func (p *Printer) DrawPath(m bytecode.DrawingMode) error  { return p.line(bytecode.OpDrawPath, m) }

func (p *Printer) Dash(d bytecode.DashPattern) error { return p.line(bytecode.OpDash, d.Phase, d.Lengths) }
func (p *Printer) DashPhase(f float32) error         { return p.line(bytecode.OpDashPhase, f) }
func (p *Printer) DashLengths(l []float32) error     { return p.line(bytecode.OpDashLengths, l) }

func (p *Printer) ConcatCTM(t bytecode.Transform) error { return p.line(bytecode.OpConcatCTM, t) }
func (p *Printer) Flatness(f float32) error             { return p.line(bytecode.OpFlatness, f) }
func (p *Printer) LineWidth(f float32) error            { return p.line(bytecode.OpLineWidth, f) }
func (p *Printer) MiterLimit(f float32) error           { return p.line(bytecode.OpMiterLimit, f) }
func (p *Printer) GlobalAlpha(f float32) error          { return p.line(bytecode.OpGlobalAlpha, f) }
func (p *Printer) StrokeAlpha(f float32) error          { return p.line(bytecode.OpStrokeAlpha, f) }
func (p *Printer) FillAlpha(f float32) error            { return p.line(bytecode.OpFillAlpha, f) }
func (p *Printer) StrokeColor(c bytecode.Color) error   { return p.line(bytecode.OpStrokeColor, c) }
func (p *Printer) FillColor(c bytecode.Color) error     { return p.line(bytecode.OpFillColor, c) }
func (p *Printer) Shadow(s bytecode.Shadow) error       { return p.line(bytecode.OpShadow, s) }
func (p *Printer) BlendMode(m bytecode.BlendMode) error { return p.line(bytecode.OpBlendMode, m) }

func (p *Printer) LineJoinStyle(j bytecode.LineJoin) error { return p.line(bytecode.OpLineJoinStyle, j) }
func (p *Printer) LineCapStyle(c bytecode.LineCap) error   { return p.line(bytecode.OpLineCapStyle, c) }

func (p *Printer) ColorRenderingIntent(i bytecode.RenderingIntent) error {
	return p.line(bytecode.OpColorRenderingIntent, i)
}

func (p *Printer) LinearGradient(id uint32, g bytecode.LinearGradient) error {
	return p.line(bytecode.OpLinearGradient, id, g)
}

func (p *Printer) RadialGradient(id uint32, g bytecode.RadialGradient) error {
	return p.line(bytecode.OpRadialGradient, id, g)
}

func (p *Printer) FillLinearGradient(id uint32, g bytecode.LinearGradient) error {
	return p.line(bytecode.OpFillLinearGradient, id, g)
}

func (p *Printer) FillRadialGradient(id uint32, g bytecode.RadialGradient) error {
	return p.line(bytecode.OpFillRadialGradient, id, g)
}

func (p *Printer) StrokeLinearGradient(id uint32, g bytecode.LinearGradient) error {
	return p.line(bytecode.OpStrokeLinearGradient, id, g)
}

func (p *Printer) StrokeRadialGradient(id uint32, g bytecode.RadialGradient) error {
	return p.line(bytecode.OpStrokeRadialGradient, id, g)
}

func (p *Printer) Subroutine(id uint32) error { return p.line(bytecode.OpSubroutine, id) }

// Disassemble prints a complete drawing: its gradients, its subroutine
// bodies, and then its instructions. Offsets of the instructions are from
// the start of code; offsets within subroutine bodies are from the start of
// each body.
//
// On a decoding error, the listing up to the bad instruction has been
// written and the error is returned.
func Disassemble(w io.Writer, code []byte) error {
	c := bytecode.NewCursor(code)
	t, err := bytecode.ReadTables(c)
	if err != nil {
		return err
	}
	for _, id := range slices.Sorted(maps.Keys(t.Gradients)) {
		g := t.Gradients[id]
		if _, err := fmt.Fprintf(w, "gradient %d (%d stops)\n", id, len(g)); err != nil {
			return err
		}
		for _, s := range g {
			if _, err := fmt.Fprintf(w, "\t%v %v\n", s.Location, s.Color); err != nil {
				return err
			}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(t.Subroutines)) {
		body := t.Subroutines[id]
		if _, err := fmt.Fprintf(w, "subroutine %d (%d bytes)\n", id, len(body)); err != nil {
			return err
		}
		p := &Printer{w: w, Indent: "\t"}
		if err := bytecode.Visit(bytecode.NewCursor(body), p); err != nil {
			return fmt.Errorf("subroutine %d: %w", id, err)
		}
	}
	if _, err := fmt.Fprintf(w, "body (%d bytes)\n", c.Len()); err != nil {
		return err
	}
	return bytecode.Visit(c, &Printer{w: w, Base: c.Offset()})
}

// DisassemblePath prints a path-only routine. Offsets are from the start of
// code.
func DisassemblePath(w io.Writer, code []byte) error {
	return bytecode.VisitPath(bytecode.NewCursor(code), NewPrinter(w))
}
