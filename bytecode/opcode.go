// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

import "strconv"

// Opcode is a one byte instruction tag. Values are part of the wire format
// and are only ever appended to.
type Opcode uint8

const (
	OpSaveGState Opcode = iota
	OpRestoreGState
	OpMoveTo
	OpCurveTo
	OpQuadCurveTo
	OpLineTo
	OpAppendRectangle
	OpAppendRoundedRect
	OpAddArc
	OpClosePath
	OpReplacePathWithStrokePath
	OpLines
	OpClip
	OpClipWithRule
	OpClipToRect
	OpDash
	OpDashPhase
	OpDashLengths
	OpFill
	OpFillWithRule
	OpFillEllipse
	OpStroke
	OpDrawPath
	OpAddEllipse
	OpFillAndStroke
	OpSetGlobalAlphaToFillAlpha
	OpConcatCTM
	OpFlatness
	OpLineWidth
	OpLineJoinStyle
	OpLineCapStyle
	OpColorRenderingIntent
	OpGlobalAlpha
	OpStrokeColor
	OpStrokeAlpha
	OpStrokeNone
	OpFillColor
	OpFillAlpha
	OpFillNone
	OpFillRule
	OpLinearGradient
	OpRadialGradient
	OpFillLinearGradient
	OpFillRadialGradient
	OpStrokeLinearGradient
	OpStrokeRadialGradient
	OpSubroutine
	OpShadow
	OpBlendMode
	OpBeginTransparencyLayer
	OpEndTransparencyLayer
	OpMiterLimit

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpSaveGState:                "SaveGState",
	OpRestoreGState:             "RestoreGState",
	OpMoveTo:                    "MoveTo",
	OpCurveTo:                   "CurveTo",
	OpQuadCurveTo:               "QuadCurveTo",
	OpLineTo:                    "LineTo",
	OpAppendRectangle:           "AppendRectangle",
	OpAppendRoundedRect:         "AppendRoundedRect",
	OpAddArc:                    "AddArc",
	OpClosePath:                 "ClosePath",
	OpReplacePathWithStrokePath: "ReplacePathWithStrokePath",
	OpLines:                     "Lines",
	OpClip:                      "Clip",
	OpClipWithRule:              "ClipWithRule",
	OpClipToRect:                "ClipToRect",
	OpDash:                      "Dash",
	OpDashPhase:                 "DashPhase",
	OpDashLengths:               "DashLengths",
	OpFill:                      "Fill",
	OpFillWithRule:              "FillWithRule",
	OpFillEllipse:               "FillEllipse",
	OpStroke:                    "Stroke",
	OpDrawPath:                  "DrawPath",
	OpAddEllipse:                "AddEllipse",
	OpFillAndStroke:             "FillAndStroke",
	OpSetGlobalAlphaToFillAlpha: "SetGlobalAlphaToFillAlpha",
	OpConcatCTM:                 "ConcatCTM",
	OpFlatness:                  "Flatness",
	OpLineWidth:                 "LineWidth",
	OpLineJoinStyle:             "LineJoinStyle",
	OpLineCapStyle:              "LineCapStyle",
	OpColorRenderingIntent:      "ColorRenderingIntent",
	OpGlobalAlpha:               "GlobalAlpha",
	OpStrokeColor:               "StrokeColor",
	OpStrokeAlpha:               "StrokeAlpha",
	OpStrokeNone:                "StrokeNone",
	OpFillColor:                 "FillColor",
	OpFillAlpha:                 "FillAlpha",
	OpFillNone:                  "FillNone",
	OpFillRule:                  "FillRule",
	OpLinearGradient:            "LinearGradient",
	OpRadialGradient:            "RadialGradient",
	OpFillLinearGradient:        "FillLinearGradient",
	OpFillRadialGradient:        "FillRadialGradient",
	OpStrokeLinearGradient:      "StrokeLinearGradient",
	OpStrokeRadialGradient:      "StrokeRadialGradient",
	OpSubroutine:                "Subroutine",
	OpShadow:                    "Shadow",
	OpBlendMode:                 "BlendMode",
	OpBeginTransparencyLayer:    "BeginTransparencyLayer",
	OpEndTransparencyLayer:      "EndTransparencyLayer",
	OpMiterLimit:                "MiterLimit",
}

// NumOpcodes is the number of defined opcodes. Every Opcode less than
// NumOpcodes is valid.
const NumOpcodes = int(numOpcodes)

func (o Opcode) String() string {
	if o < numOpcodes {
		return opcodeNames[o]
	}
	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}

// Valid reports whether o is a defined opcode.
func (o Opcode) Valid() bool { return o < numOpcodes }

// IsPath reports whether o only builds path geometry. Path-only routines are
// restricted to these opcodes.
func (o Opcode) IsPath() bool {
	switch o {
	case OpMoveTo, OpCurveTo, OpQuadCurveTo, OpLineTo, OpAppendRectangle,
		OpAppendRoundedRect, OpAddArc, OpClosePath, OpLines, OpAddEllipse:
		return true
	}
	return false
}
