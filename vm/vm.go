// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vm runs bytecode against a Destination.
//
// A Machine is a bytecode.Visitor that translates instructions into calls on
// a Destination, keeping the part of the graphics state that a Destination
// cannot hold: fill and stroke paints that may be gradients, the fill rule,
// and the dash pattern.
//
// A Machine is not safe for concurrent use. Separate runs against separate
// Destinations may proceed concurrently; Tables are never modified.
package vm

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/vgbc/bytecode"
)

// DefaultMaxDepth is the default limit on subroutine nesting.
const DefaultMaxDepth = 64

// Options are optional parameters to Run. A nil *Options means the zero
// value.
type Options struct {
	// Logger receives debug messages. Nil means no logging.
	Logger *zap.Logger
	// MaxDepth limits subroutine nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Run draws code, a complete drawing with its tables, onto dst.
func Run(dst Destination, code []byte, opts *Options) error {
	c := bytecode.NewCursor(code)
	t, err := bytecode.ReadTables(c)
	if err != nil {
		return err
	}
	m := NewMachine(dst, t, opts)
	m.Synchronize()
	return bytecode.Visit(c, m)
}

// RunPath adds the geometry of a path-only routine to p.
func RunPath(p PathBuilder, code []byte) error {
	return bytecode.VisitPath(bytecode.NewCursor(code), pathVisitor{p: p})
}

var _ bytecode.Visitor = (*Machine)(nil)

// Machine executes instructions against a Destination.
type Machine struct {
	dst   Destination
	env   *env
	depth int
	state gstate
	stack []gstate
}

// env is shared by a Machine and every Machine it starts for a subroutine.
type env struct {
	tables    *bytecode.Tables
	gradients map[uint32]*bytecode.Gradient
	log       *zap.Logger
	maxDepth  int
}

// NewMachine returns a Machine in the default graphics state that resolves
// ids with t.
func NewMachine(dst Destination, t *bytecode.Tables, opts *Options) *Machine {
	if t == nil {
		t = &bytecode.Tables{}
	}
	e := &env{
		tables:    t,
		gradients: make(map[uint32]*bytecode.Gradient, len(t.Gradients)),
		log:       opts.logger(),
		maxDepth:  opts.maxDepth(),
	}
	for id, g := range t.Gradients {
		e.gradients[id] = &g
	}
	return &Machine{dst: dst, env: e, state: defaultState}
}

// Synchronize sets the Destination's color spaces from the graphics state.
// Run calls it before the first instruction.
func (m *Machine) Synchronize() {
	m.dst.SetFillColorSpace(m.state.colorSpace)
	m.dst.SetStrokeColorSpace(m.state.colorSpace)
}

func (m *Machine) gradient(id uint32) (*bytecode.Gradient, error) {
	g, ok := m.env.gradients[id]
	if !ok {
		return nil, &UnknownReferenceError{Kind: "gradient", ID: id}
	}
	if len(*g) == 0 {
		return nil, &GradientError{ID: id, Err: errNoStops}
	}
	return g, nil
}

func (m *Machine) syncFill()   { m.dst.SetFillColor(m.state.fill.resolved()) }
func (m *Machine) syncStroke() { m.dst.SetStrokeColor(m.state.stroke.resolved()) }

func (m *Machine) setDash() {
	if m.state.dash != nil {
		m.dst.SetLineDash(m.state.dashPhase, m.state.dash)
	}
}

func (m *Machine) SaveGState() error {
	m.stack = append(m.stack, m.state)
	m.dst.SaveGState()
	return nil
}

// RestoreGState pops the graphics state if one was saved. The restore is
// forwarded to the Destination either way.
func (m *Machine) RestoreGState() error {
	if n := len(m.stack); n > 0 {
		m.state = m.stack[n-1]
		m.stack = m.stack[:n-1]
	} else {
		m.env.log.Debug("restore without matching save", zap.Int("depth", m.depth))
	}
	m.dst.RestoreGState()
	return nil
}

func (m *Machine) MoveTo(p bytecode.Point) error          { m.dst.MoveTo(p); return nil }
func (m *Machine) CurveTo(c bytecode.CubicCurve) error    { m.dst.CurveTo(c); return nil }
func (m *Machine) QuadCurveTo(c bytecode.QuadCurve) error { m.dst.QuadCurveTo(c); return nil }
func (m *Machine) LineTo(p bytecode.Point) error          { m.dst.LineTo(p); return nil }
func (m *Machine) AppendRectangle(r bytecode.Rect) error  { m.dst.AddRect(r); return nil }
func (m *Machine) AddArc(a bytecode.Arc) error            { m.dst.AddArc(a); return nil }
func (m *Machine) ClosePath() error                       { m.dst.ClosePath(); return nil }
func (m *Machine) Lines(pts []bytecode.Point) error       { m.dst.AddLines(pts); return nil }
func (m *Machine) AddEllipse(r bytecode.Rect) error       { m.dst.AddEllipse(r); return nil }

func (m *Machine) AppendRoundedRect(r bytecode.Rect, rx, ry float32) error {
	m.dst.AddRoundedRect(r, rx, ry)
	return nil
}

func (m *Machine) ReplacePathWithStrokePath() error {
	m.dst.ReplacePathWithStrokedPath()
	return nil
}

func (m *Machine) Clip() error                               { m.dst.Clip(m.state.fillRule); return nil }
func (m *Machine) ClipWithRule(rule bytecode.FillRule) error { m.dst.Clip(rule); return nil }
func (m *Machine) ClipToRect(r bytecode.Rect) error          { m.dst.ClipToRect(r); return nil }

func (m *Machine) Dash(d bytecode.DashPattern) error {
	m.state.dashPhase = d.Phase
	m.state.dash = d.Lengths
	if m.state.dash == nil {
		m.state.dash = []float32{}
	}
	m.setDash()
	return nil
}

func (m *Machine) DashPhase(phase float32) error {
	m.state.dashPhase = phase
	m.setDash()
	return nil
}

func (m *Machine) DashLengths(lengths []float32) error {
	m.state.dash = lengths
	if m.state.dash == nil {
		m.state.dash = []float32{}
	}
	m.setDash()
	return nil
}

func (m *Machine) Fill() error                               { m.dst.FillPath(m.state.fillRule); return nil }
func (m *Machine) FillWithRule(rule bytecode.FillRule) error { m.dst.FillPath(rule); return nil }
func (m *Machine) FillEllipse(r bytecode.Rect) error         { m.dst.FillEllipse(r); return nil }
func (m *Machine) Stroke() error                             { m.dst.StrokePath(); return nil }
func (m *Machine) DrawPath(mode bytecode.DrawingMode) error  { m.dst.DrawPath(mode); return nil }

func (m *Machine) SetGlobalAlphaToFillAlpha() error {
	m.dst.SetAlpha(m.state.fill.alpha)
	return nil
}

func (m *Machine) ConcatCTM(t bytecode.Transform) error    { m.dst.ConcatCTM(t); return nil }
func (m *Machine) Flatness(f float32) error                { m.dst.SetFlatness(f); return nil }
func (m *Machine) LineWidth(w float32) error               { m.dst.SetLineWidth(w); return nil }
func (m *Machine) MiterLimit(l float32) error              { m.dst.SetMiterLimit(l); return nil }
func (m *Machine) GlobalAlpha(a float32) error             { m.dst.SetAlpha(a); return nil }
func (m *Machine) LineJoinStyle(j bytecode.LineJoin) error { m.dst.SetLineJoin(j); return nil }
func (m *Machine) LineCapStyle(c bytecode.LineCap) error   { m.dst.SetLineCap(c); return nil }
func (m *Machine) BlendMode(b bytecode.BlendMode) error    { m.dst.SetBlendMode(b); return nil }

func (m *Machine) ColorRenderingIntent(i bytecode.RenderingIntent) error {
	m.dst.SetRenderingIntent(i)
	return nil
}

func (m *Machine) StrokeColor(c bytecode.Color) error {
	m.state.stroke.dye = dye{kind: dyeColor, color: c}
	m.syncStroke()
	return nil
}

func (m *Machine) StrokeAlpha(a float32) error {
	m.state.stroke.alpha = a
	m.syncStroke()
	return nil
}

// StrokeNone pushes a transparent stroke color so that stroking draws
// nothing.
func (m *Machine) StrokeNone() error {
	m.state.stroke.dye = dye{kind: dyeNone}
	m.syncStroke()
	return nil
}

func (m *Machine) FillColor(c bytecode.Color) error {
	m.state.fill.dye = dye{kind: dyeColor, color: c}
	m.syncFill()
	return nil
}

func (m *Machine) FillAlpha(a float32) error {
	m.state.fill.alpha = a
	m.syncFill()
	return nil
}

func (m *Machine) FillNone() error {
	m.state.fill.dye = dye{kind: dyeNone}
	m.syncFill()
	return nil
}

func (m *Machine) FillRule(rule bytecode.FillRule) error {
	m.state.fillRule = rule
	return nil
}

func (m *Machine) LinearGradient(id uint32, o bytecode.LinearGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	return m.paintGradient(gradientDye{id: id, g: g, linear: o})
}

func (m *Machine) RadialGradient(id uint32, o bytecode.RadialGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	return m.paintGradient(gradientDye{id: id, g: g, radial: true, radOpt: o})
}

// Gradient dyes are only recorded here. Nothing reaches the Destination
// until the path is painted.

func (m *Machine) FillLinearGradient(id uint32, o bytecode.LinearGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	m.state.fill.dye = dye{kind: dyeGradient, gradient: gradientDye{id: id, g: g, linear: o}}
	return nil
}

func (m *Machine) FillRadialGradient(id uint32, o bytecode.RadialGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	m.state.fill.dye = dye{kind: dyeGradient, gradient: gradientDye{id: id, g: g, radial: true, radOpt: o}}
	return nil
}

func (m *Machine) StrokeLinearGradient(id uint32, o bytecode.LinearGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	m.state.stroke.dye = dye{kind: dyeGradient, gradient: gradientDye{id: id, g: g, linear: o}}
	return nil
}

func (m *Machine) StrokeRadialGradient(id uint32, o bytecode.RadialGradient) error {
	g, err := m.gradient(id)
	if err != nil {
		return err
	}
	m.state.stroke.dye = dye{kind: dyeGradient, gradient: gradientDye{id: id, g: g, radial: true, radOpt: o}}
	return nil
}

// Subroutine runs a subroutine body in a new Machine that shares the
// Destination and tables and starts from a copy of the current graphics
// state. State changes made by the body do not carry back, and colors the
// body pushed to the Destination are put back afterwards.
func (m *Machine) Subroutine(id uint32) error {
	body, ok := m.env.tables.Subroutines[id]
	if !ok {
		return &UnknownReferenceError{Kind: "subroutine", ID: id}
	}
	if m.depth+1 >= m.env.maxDepth {
		return ErrDepth
	}
	m.env.log.Debug("subroutine", zap.Uint32("id", id), zap.Int("depth", m.depth+1), zap.Int("size", len(body)))
	sub := &Machine{dst: m.dst, env: m.env, depth: m.depth + 1, state: m.state}
	if err := bytecode.Visit(bytecode.NewCursor(body), sub); err != nil {
		return err
	}
	if sub.state.fill.resolved() != m.state.fill.resolved() {
		m.syncFill()
	}
	if sub.state.stroke.resolved() != m.state.stroke.resolved() {
		m.syncStroke()
	}
	return nil
}

// Shadow sets the shadow after mapping its offset and blur to device space.
func (m *Machine) Shadow(s bytecode.Shadow) error {
	ctm := m.dst.CTM()
	offset := ctm.ApplySize(s.Offset)
	blur := float32(math.Floor(float64(s.Blur*ctm.ScaleX()) + 0.5))
	m.dst.SetShadow(offset, blur, s.Color)
	return nil
}

func (m *Machine) BeginTransparencyLayer() error { m.dst.BeginTransparencyLayer(); return nil }
func (m *Machine) EndTransparencyLayer() error   { m.dst.EndTransparencyLayer(); return nil }
