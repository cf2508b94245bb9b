// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import "golang.org/x/vgbc/bytecode"

// FillAndStroke paints the current path with the fill and stroke paints.
// Solid colors go through a single DrawPath. Gradient paints clip to the path
// (or to its stroke) and draw the gradient, which needs a copy of the path
// when both fill and stroke use it.
func (m *Machine) FillAndStroke() error {
	fill, stroke := m.state.fill.dye.kind, m.state.stroke.dye.kind
	switch {
	case stroke == dyeColor && fill == dyeColor:
		if m.state.fillRule == bytecode.EvenOdd {
			m.dst.DrawPath(bytecode.ModeEOFillStroke)
		} else {
			m.dst.DrawPath(bytecode.ModeFillStroke)
		}
	case stroke == dyeNone && fill == dyeColor:
		if m.state.fillRule == bytecode.EvenOdd {
			m.dst.DrawPath(bytecode.ModeEOFill)
		} else {
			m.dst.DrawPath(bytecode.ModeFill)
		}
	case stroke == dyeColor && fill == dyeNone:
		m.dst.DrawPath(bytecode.ModeStroke)
	case stroke == dyeGradient && fill == dyeGradient:
		path := m.dst.CopyPath()
		if path == nil {
			return nil
		}
		if err := m.fillWithGradient(nil); err != nil {
			return err
		}
		return m.strokeWithGradient(path)
	case stroke == dyeGradient && fill == dyeColor:
		path := m.dst.CopyPath()
		if path == nil {
			return nil
		}
		m.dst.FillPath(m.state.fillRule)
		return m.strokeWithGradient(path)
	case stroke == dyeColor && fill == dyeGradient:
		path := m.dst.CopyPath()
		if path == nil {
			return nil
		}
		if err := m.fillWithGradient(nil); err != nil {
			return err
		}
		m.dst.AddPath(path)
		m.dst.StrokePath()
	case stroke == dyeGradient && fill == dyeNone:
		return m.strokeWithGradient(nil)
	case stroke == dyeNone && fill == dyeGradient:
		return m.fillWithGradient(nil)
	default:
		m.dst.BeginPath()
	}
	return nil
}

// fillWithGradient clips to path, or to the current path if path is nil, and
// draws the fill gradient.
func (m *Machine) fillWithGradient(path PathSnapshot) error {
	m.dst.SaveGState()
	if path != nil {
		m.dst.BeginPath()
		m.dst.AddPath(path)
	}
	m.dst.Clip(m.state.fillRule)
	m.dst.SetAlpha(m.state.fill.alpha)
	err := m.paintGradient(m.state.fill.dye.gradient)
	m.dst.RestoreGState()
	return err
}

// strokeWithGradient clips to the outline of the stroke of path, or of the
// current path if path is nil, and draws the stroke gradient.
func (m *Machine) strokeWithGradient(path PathSnapshot) error {
	m.dst.SaveGState()
	if path != nil {
		m.dst.BeginPath()
		m.dst.AddPath(path)
	}
	m.dst.ReplacePathWithStrokedPath()
	m.dst.Clip(m.state.fillRule)
	m.dst.SetAlpha(m.state.stroke.alpha)
	err := m.paintGradient(m.state.stroke.dye.gradient)
	m.dst.RestoreGState()
	return err
}

func (m *Machine) paintGradient(g gradientDye) error {
	var err error
	if g.radial {
		err = m.dst.DrawRadialGradient(g.g, g.radOpt)
	} else {
		err = m.dst.DrawLinearGradient(g.g, g.linear)
	}
	if err != nil {
		return &GradientError{ID: g.id, Err: err}
	}
	return nil
}
