// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vm

import "golang.org/x/vgbc/bytecode"

type dyeKind uint8

const (
	dyeNone dyeKind = iota
	dyeColor
	dyeGradient
)

// gradientDye is a gradient bound to fill or stroke, drawn only when the
// path is painted.
type gradientDye struct {
	id     uint32
	g      *bytecode.Gradient
	radial bool
	linear bytecode.LinearGradient
	radOpt bytecode.RadialGradient
}

type dye struct {
	kind     dyeKind
	color    bytecode.Color
	gradient gradientDye
}

type paint struct {
	dye   dye
	alpha float32
}

// gstate is the part of the graphics state that the Machine tracks itself,
// because the Destination has no notion of it: paints may be gradients, and
// Fill uses the current fill rule.
type gstate struct {
	fillRule   bytecode.FillRule
	fill       paint
	stroke     paint
	dashPhase  float32
	dash       []float32 // nil until lengths are set
	colorSpace ColorSpace
}

var defaultState = gstate{
	fillRule: bytecode.Winding,
	fill:     paint{dye: dye{kind: dyeColor, color: bytecode.Color{A: 1}}, alpha: 1},
	stroke:   paint{dye: dye{kind: dyeNone}, alpha: 1},
}

// resolved returns the color a Destination should use for p: the dye's color
// with the paint alpha applied, or transparent unless the dye is a color.
func (p paint) resolved() bytecode.Color {
	if p.dye.kind != dyeColor {
		return bytecode.Transparent
	}
	return p.dye.color.WithAlpha(p.alpha)
}
