// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytecode

import "math"

// Point is a 2D coordinate.
type Point struct {
	X, Y float32
}

// Size is a 2D extent. Shadow offsets are sizes: transforming them ignores
// translation.
type Size struct {
	W, H float32
}

// Rect is an axis-aligned rectangle with its origin at (X, Y).
type Rect struct {
	X, Y, W, H float32
}

// Transform is the affine matrix
//
//	| A  B  0 |
//	| C  D  0 |
//	| TX TY 1 |
//
// applied to row vectors, so that x' = A*x + C*y + TX and y' = B*x + D*y + TY.
type Transform struct {
	A, B, C, D, TX, TY float32
}

// Identity is the identity Transform.
var Identity = Transform{A: 1, D: 1}

// Apply transforms p.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}

// ApplySize transforms s by the linear part of t.
func (t Transform) ApplySize(s Size) Size {
	return Size{
		W: t.A*s.W + t.C*s.H,
		H: t.B*s.W + t.D*s.H,
	}
}

// Concat returns the transform that applies t and then u.
func (t Transform) Concat(u Transform) Transform {
	return Transform{
		A:  t.A*u.A + t.B*u.C,
		B:  t.A*u.B + t.B*u.D,
		C:  t.C*u.A + t.D*u.C,
		D:  t.C*u.B + t.D*u.D,
		TX: t.TX*u.A + t.TY*u.C + u.TX,
		TY: t.TX*u.B + t.TY*u.D + u.TY,
	}
}

// ScaleX is the length of the transformed unit X vector.
func (t Transform) ScaleX() float32 {
	return float32(math.Sqrt(float64(t.A*t.A + t.C*t.C)))
}

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float32) Color {
	c.A *= a
	return c
}

// Transparent is the color with all components zero.
var Transparent = Color{}

// CubicCurve is a cubic Bézier segment from the current point.
type CubicCurve struct {
	Control1, Control2, To Point
}

// QuadCurve is a quadratic Bézier segment from the current point.
type QuadCurve struct {
	Control, To Point
}

// Arc is a circular arc. Angles are in radians.
type Arc struct {
	Center     Point
	Radius     float32
	StartAngle float32
	EndAngle   float32
	Clockwise  bool
}

// DashPattern is a dash phase and the alternating on/off lengths.
type DashPattern struct {
	Phase   float32
	Lengths []float32
}

// FillRule selects how path winding determines the inside of a shape.
type FillRule uint8

const (
	Winding FillRule = iota
	EvenOdd

	numFillRules
)

func (r FillRule) String() string { return enumString(r, fillRuleNames[:]) }

var fillRuleNames = [numFillRules]string{"winding", "evenOdd"}

// DrawingMode selects the painting done by DrawPath.
type DrawingMode uint8

const (
	ModeFill DrawingMode = iota
	ModeEOFill
	ModeStroke
	ModeFillStroke
	ModeEOFillStroke

	numDrawingModes
)

func (m DrawingMode) String() string { return enumString(m, drawingModeNames[:]) }

var drawingModeNames = [numDrawingModes]string{"fill", "eoFill", "stroke", "fillStroke", "eoFillStroke"}

// LineJoin is the stroke join style.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel

	numLineJoins
)

func (j LineJoin) String() string { return enumString(j, lineJoinNames[:]) }

var lineJoinNames = [numLineJoins]string{"miter", "round", "bevel"}

// LineCap is the stroke cap style.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare

	numLineCaps
)

func (c LineCap) String() string { return enumString(c, lineCapNames[:]) }

var lineCapNames = [numLineCaps]string{"butt", "round", "square"}

// RenderingIntent is the color rendering intent.
type RenderingIntent uint8

const (
	IntentDefault RenderingIntent = iota
	IntentAbsoluteColorimetric
	IntentRelativeColorimetric
	IntentPerceptual
	IntentSaturation

	numRenderingIntents
)

func (i RenderingIntent) String() string { return enumString(i, renderingIntentNames[:]) }

var renderingIntentNames = [numRenderingIntents]string{
	"default", "absoluteColorimetric", "relativeColorimetric", "perceptual", "saturation",
}

// BlendMode is a compositing operator.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendClear
	BlendCopy
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendXOR
	BlendPlusDarker
	BlendPlusLighter

	numBlendModes
)

func (m BlendMode) String() string { return enumString(m, blendModeNames[:]) }

var blendModeNames = [numBlendModes]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"colorDodge", "colorBurn", "softLight", "hardLight", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "clear", "copy",
	"sourceIn", "sourceOut", "sourceAtop", "destinationOver", "destinationIn",
	"destinationOut", "destinationAtop", "xor", "plusDarker", "plusLighter",
}

// GradientOptions are bit flags controlling painting outside the gradient's
// start and end.
type GradientOptions uint8

const (
	DrawsBeforeStart GradientOptions = 1 << iota
	DrawsAfterEnd

	allGradientOptions = DrawsBeforeStart | DrawsAfterEnd
)

func (o GradientOptions) String() string {
	switch o {
	case 0:
		return "0"
	case DrawsBeforeStart:
		return "drawsBeforeStart"
	case DrawsAfterEnd:
		return "drawsAfterEnd"
	case DrawsBeforeStart | DrawsAfterEnd:
		return "drawsBeforeStart|drawsAfterEnd"
	}
	return "GradientOptions(" + itoa(int(o)) + ")"
}

// LinearGradient places a gradient along the line from Start to End.
type LinearGradient struct {
	Start, End Point
	Options    GradientOptions
}

// RadialGradient places a gradient between two circles.
type RadialGradient struct {
	StartCenter Point
	StartRadius float32
	EndCenter   Point
	EndRadius   float32
	Options     GradientOptions
}

// GradientStop is one color of a gradient at a location in [0, 1].
type GradientStop struct {
	Location float32
	Color    Color
}

// Gradient is an ordered list of stops.
type Gradient []GradientStop

// Shadow describes a drop shadow in user space.
type Shadow struct {
	Offset Size
	Blur   float32
	Color  Color
}

func enumString[T ~uint8](v T, names []string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return itoa(int(v))
}
