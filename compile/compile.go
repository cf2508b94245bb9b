// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compile turns drawing steps into bytecode.
//
// Gradients and subroutines are referred to by name in the steps and by id in
// the bytecode. Ids are assigned in sorted name order, so compiling the same
// route twice produces the same bytes.
package compile

import (
	"maps"
	"reflect"
	"slices"
	"strconv"

	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/ir"
)

// UndefinedError reports a step naming a gradient or subroutine that the
// route does not define.
type UndefinedError struct {
	Kind string // "gradient" or "subroutine"
	Name string
}

func (e *UndefinedError) Error() string {
	return "compile: undefined " + e.Kind + " " + strconv.Quote(e.Name)
}

// ConflictError reports two different definitions for one name among a route
// and its nested subroutines.
type ConflictError struct {
	Kind string
	Name string
}

func (e *ConflictError) Error() string {
	return "compile: conflicting definitions of " + e.Kind + " " + strconv.Quote(e.Name)
}

// NotPathError reports a step that is not allowed in a path-only routine.
type NotPathError struct {
	Routine string
	Op      bytecode.Opcode
}

func (e *NotPathError) Error() string {
	return "compile: path routine " + strconv.Quote(e.Routine) + ": " + e.Op.String() + " does not build a path"
}

// Program is a route with every gradient and subroutine name resolved to an
// id.
type Program struct {
	// Tables holds the route's gradients and the encoded bodies of its
	// subroutines, including those of nested subroutines.
	Tables *bytecode.Tables

	route       *ir.Route
	gradients   map[string]uint32
	subroutines map[string]uint32
	body        []byte
}

// NewProgram resolves r. Gradients and subroutines defined by nested
// subroutine routes share the top-level namespace.
//
// Compilation stops at the first unresolvable name, returning an
// *UndefinedError and no Program.
func NewProgram(r *ir.Route) (*Program, error) {
	grads := map[string]bytecode.Gradient{}
	subs := map[string]*ir.Route{}
	if err := collect(r, grads, subs); err != nil {
		return nil, err
	}

	p := &Program{
		Tables: &bytecode.Tables{
			Gradients:   map[uint32]bytecode.Gradient{},
			Subroutines: map[uint32][]byte{},
		},
		route:       r,
		gradients:   map[string]uint32{},
		subroutines: map[string]uint32{},
	}
	for i, name := range slices.Sorted(maps.Keys(grads)) {
		p.gradients[name] = uint32(i)
		p.Tables.Gradients[uint32(i)] = grads[name]
	}
	subNames := slices.Sorted(maps.Keys(subs))
	for i, name := range subNames {
		p.subroutines[name] = uint32(i)
	}
	for i, name := range subNames {
		var e bytecode.Encoder
		if err := p.emit(subs[name].Steps, &e); err != nil {
			return nil, err
		}
		p.Tables.Subroutines[uint32(i)] = e.Bytes()
	}

	var e bytecode.Encoder
	if err := p.emit(r.Steps, &e); err != nil {
		return nil, err
	}
	p.body = e.Bytes()
	return p, nil
}

func collect(r *ir.Route, grads map[string]bytecode.Gradient, subs map[string]*ir.Route) error {
	for name, g := range r.Gradients {
		if old, ok := grads[name]; ok && !slices.Equal(old, g) {
			return &ConflictError{Kind: "gradient", Name: name}
		}
		grads[name] = g
	}
	for name, s := range r.Subroutines {
		if s == nil {
			return &UndefinedError{Kind: "subroutine", Name: name}
		}
		if old, ok := subs[name]; ok {
			if old != s && !reflect.DeepEqual(old, s) {
				return &ConflictError{Kind: "subroutine", Name: name}
			}
			continue
		}
		subs[name] = s
		if err := collect(s, grads, subs); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the complete encoding: the tables followed by the route's
// instructions.
func (p *Program) Bytes() []byte {
	b := bytecode.AppendTables(nil, p.Tables)
	return append(b, p.body...)
}

// Body returns the route's instructions without the tables.
func (p *Program) Body() []byte { return p.body }

// Replay calls the method of v for each of the route's instructions, as
// visiting Body would, but straight from the steps.
func (p *Program) Replay(v bytecode.Visitor) error {
	return p.emit(p.route.Steps, v)
}

// GradientID returns the id assigned to the named gradient.
func (p *Program) GradientID(name string) (uint32, bool) {
	id, ok := p.gradients[name]
	return id, ok
}

// SubroutineID returns the id assigned to the named subroutine.
func (p *Program) SubroutineID(name string) (uint32, bool) {
	id, ok := p.subroutines[name]
	return id, ok
}

// Compile is shorthand for NewProgram followed by Bytes.
func Compile(r *ir.Route) ([]byte, error) {
	p, err := NewProgram(r)
	if err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Path compiles a path-only routine. It has no tables; every step must build
// path geometry.
func Path(r *ir.PathRoutine) ([]byte, error) {
	if err := checkPath(r.ID, r.Steps); err != nil {
		return nil, err
	}
	var e bytecode.Encoder
	p := &Program{}
	if err := p.emit(r.Steps, &e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func checkPath(id string, steps []ir.Step) error {
	for _, s := range steps {
		if c, ok := s.(ir.Composite); ok {
			if err := checkPath(id, c.Steps); err != nil {
				return err
			}
			continue
		}
		if op, _ := s.Op(); !op.IsPath() {
			return &NotPathError{Routine: id, Op: op}
		}
	}
	return nil
}
