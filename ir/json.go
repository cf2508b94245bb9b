// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/vgbc/bytecode"
)

// The JSON form of a step is an object whose "op" field names the step, in
// lower camel case ("moveTo", "fillLinearGradient", "composite"), and whose
// other fields are the step's fields:
//
//	{"op": "moveTo", "point": {"x": 1, "y": 2}}
//	{"op": "fillColor", "color": {"r": 1, "g": 0, "b": 0, "a": 1}}
//	{"op": "subroutine", "name": "star"}
//	{"op": "composite", "steps": [...]}
//
// Enumerations are numbers, as in the bytecode.

var stepTypes = map[string]func() Step{}

func register(f func() Step) {
	s := f()
	name := "composite"
	if op, ok := s.Op(); ok {
		name = op.String()
		name = strings.ToLower(name[:1]) + name[1:]
	}
	stepTypes[name] = f
}

func init() {
	for _, f := range []func() Step{
		func() Step { return &SaveGState{} },
		func() Step { return &RestoreGState{} },
		func() Step { return &MoveTo{} },
		func() Step { return &CurveTo{} },
		func() Step { return &QuadCurveTo{} },
		func() Step { return &LineTo{} },
		func() Step { return &AppendRectangle{} },
		func() Step { return &AppendRoundedRect{} },
		func() Step { return &AddArc{} },
		func() Step { return &ClosePath{} },
		func() Step { return &ReplacePathWithStrokePath{} },
		func() Step { return &Lines{} },
		func() Step { return &Clip{} },
		func() Step { return &ClipWithRule{} },
		func() Step { return &ClipToRect{} },
		func() Step { return &Dash{} },
		func() Step { return &DashPhase{} },
		func() Step { return &DashLengths{} },
		func() Step { return &Fill{} },
		func() Step { return &FillWithRule{} },
		func() Step { return &FillEllipse{} },
		func() Step { return &Stroke{} },
		func() Step { return &DrawPath{} },
		func() Step { return &AddEllipse{} },
		func() Step { return &FillAndStroke{} },
		func() Step { return &SetGlobalAlphaToFillAlpha{} },
		func() Step { return &ConcatCTM{} },
		func() Step { return &Flatness{} },
		func() Step { return &LineWidth{} },
		func() Step { return &LineJoinStyle{} },
		func() Step { return &LineCapStyle{} },
		func() Step { return &ColorRenderingIntent{} },
		func() Step { return &GlobalAlpha{} },
		func() Step { return &StrokeColor{} },
		func() Step { return &StrokeAlpha{} },
		func() Step { return &StrokeNone{} },
		func() Step { return &FillColor{} },
		func() Step { return &FillAlpha{} },
		func() Step { return &FillNone{} },
		func() Step { return &FillRule{} },
		func() Step { return &LinearGradient{} },
		func() Step { return &RadialGradient{} },
		func() Step { return &FillLinearGradient{} },
		func() Step { return &FillRadialGradient{} },
		func() Step { return &StrokeLinearGradient{} },
		func() Step { return &StrokeRadialGradient{} },
		func() Step { return &Subroutine{} },
		func() Step { return &Shadow{} },
		func() Step { return &BlendMode{} },
		func() Step { return &BeginTransparencyLayer{} },
		func() Step { return &EndTransparencyLayer{} },
		func() Step { return &MiterLimit{} },
		func() Step { return &Composite{} },
	} {
		register(f)
	}
}

// UnmarshalStep decodes the JSON form of a single step.
func UnmarshalStep(data []byte) (Step, error) {
	var head struct{ Op string }
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	f, ok := stepTypes[head.Op]
	if !ok {
		return nil, fmt.Errorf("ir: unknown step %q", head.Op)
	}
	s := f()
	if c, ok := s.(*Composite); ok {
		var body struct{ Steps []json.RawMessage }
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, fmt.Errorf("ir: composite: %v", err)
		}
		steps, err := unmarshalSteps(body.Steps)
		if err != nil {
			return nil, err
		}
		c.Steps = steps
		return *c, nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("ir: %s: %v", head.Op, err)
	}
	return deref(s), nil
}

func unmarshalSteps(raw []json.RawMessage) ([]Step, error) {
	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		s, err := UnmarshalStep(r)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

type jsonRoute struct {
	Bounds      bytecode.Rect
	Steps       []json.RawMessage
	Gradients   map[string]bytecode.Gradient
	Subroutines map[string]*Route
}

// UnmarshalJSON decodes a route object with "bounds", "steps", "gradients"
// and "subroutines" fields.
func (r *Route) UnmarshalJSON(data []byte) error {
	var j jsonRoute
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	steps, err := unmarshalSteps(j.Steps)
	if err != nil {
		return err
	}
	*r = Route{
		Bounds:      j.Bounds,
		Steps:       steps,
		Gradients:   j.Gradients,
		Subroutines: j.Subroutines,
	}
	return nil
}

// UnmarshalJSON decodes a path routine object with "id" and "steps" fields.
func (p *PathRoutine) UnmarshalJSON(data []byte) error {
	var j struct {
		ID    string
		Steps []json.RawMessage
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	steps, err := unmarshalSteps(j.Steps)
	if err != nil {
		return err
	}
	*p = PathRoutine{ID: j.ID, Steps: steps}
	return nil
}

// deref turns the pointer made by a stepTypes constructor back into the
// value type that the rest of the module switches on.
func deref(s Step) Step {
	return reflect.ValueOf(s).Elem().Interface().(Step)
}
