// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package artifact merges compiled drawings and path routines into one
// compressed blob.
//
// An Artifact indexes its blob by inclusive byte ranges of the decompressed
// bytes. Each drawing's range holds a complete program with its own tables;
// each path routine's range holds path instructions only. Ids in one
// drawing's tables mean nothing to another drawing.
package artifact

import (
	"golang.org/x/vgbc/compile"
	"golang.org/x/vgbc/compress"
	"golang.org/x/vgbc/ir"
	"golang.org/x/xerrors"
)

// Drawing locates a drawing in an Artifact's decompressed blob.
type Drawing struct {
	Name          string
	Width, Height float32
	// Start and End are inclusive offsets.
	Start, End int
}

// Path locates a path routine in an Artifact's decompressed blob. An empty
// routine has End == Start-1.
type Path struct {
	Name       string
	Start, End int
}

// Slice returns the drawing's bytes within blob.
func (d Drawing) Slice(blob []byte) []byte { return blob[d.Start : d.End+1] }

// Slice returns the routine's bytes within blob.
func (p Path) Slice(blob []byte) []byte { return blob[p.Start : p.End+1] }

// Artifact is a compressed blob of drawings and path routines.
type Artifact struct {
	Codec compress.Codec
	// Data is the compressed blob.
	Data []byte
	// DecompressedLen is the length of the blob once decompressed.
	DecompressedLen int

	Drawings []Drawing
	Paths    []Path
}

// Drawing returns the named drawing.
func (a *Artifact) Drawing(name string) (Drawing, bool) {
	for _, d := range a.Drawings {
		if d.Name == name {
			return d, true
		}
	}
	return Drawing{}, false
}

// Path returns the named path routine.
func (a *Artifact) Path(name string) (Path, bool) {
	for _, p := range a.Paths {
		if p.Name == name {
			return p, true
		}
	}
	return Path{}, false
}

// check reports an Artifact whose ranges do not fit its blob.
func (a *Artifact) check() error {
	if a.DecompressedLen < 0 {
		return xerrors.Errorf("artifact: negative length %d", a.DecompressedLen)
	}
	inBlob := func(kind, name string, start, end int) error {
		if start < 0 || end < start-1 || end >= a.DecompressedLen {
			return xerrors.Errorf("artifact: %s %q: range [%d, %d] outside %d-byte blob", kind, name, start, end, a.DecompressedLen)
		}
		return nil
	}
	for _, d := range a.Drawings {
		if err := inBlob("drawing", d.Name, d.Start, d.End); err != nil {
			return err
		}
	}
	for _, p := range a.Paths {
		if err := inBlob("path", p.Name, p.Start, p.End); err != nil {
			return err
		}
	}
	return nil
}

// Builder accumulates drawings and path routines. The zero value compresses
// with compress.Zstd in compress.DefaultPageSize pages.
type Builder struct {
	Codec    compress.Codec
	PageSize int

	blob     []byte
	drawings []Drawing
	paths    []Path
	names    map[string]bool
}

func (b *Builder) claim(kind, name string) error {
	key := kind + "\x00" + name
	if b.names[key] {
		return xerrors.Errorf("artifact: duplicate %s %q", kind, name)
	}
	if b.names == nil {
		b.names = map[string]bool{}
	}
	b.names[key] = true
	return nil
}

// AddDrawing compiles r and appends it under name. The drawing's size is
// the size of r's bounds.
func (b *Builder) AddDrawing(name string, r *ir.Route) error {
	code, err := compile.Compile(r)
	if err != nil {
		return xerrors.Errorf("artifact: drawing %q: %w", name, err)
	}
	return b.AddCompiled(name, r.Bounds.W, r.Bounds.H, code)
}

// AddCompiled appends an already compiled drawing.
func (b *Builder) AddCompiled(name string, width, height float32, code []byte) error {
	if err := b.claim("drawing", name); err != nil {
		return err
	}
	start := len(b.blob)
	b.blob = append(b.blob, code...)
	b.drawings = append(b.drawings, Drawing{
		Name:   name,
		Width:  width,
		Height: height,
		Start:  start,
		End:    len(b.blob) - 1,
	})
	return nil
}

// AddPath compiles r and appends it under r.ID.
func (b *Builder) AddPath(r *ir.PathRoutine) error {
	code, err := compile.Path(r)
	if err != nil {
		return xerrors.Errorf("artifact: path %q: %w", r.ID, err)
	}
	if err := b.claim("path", r.ID); err != nil {
		return err
	}
	start := len(b.blob)
	b.blob = append(b.blob, code...)
	b.paths = append(b.paths, Path{Name: r.ID, Start: start, End: len(b.blob) - 1})
	return nil
}

// Len returns the length of the blob so far.
func (b *Builder) Len() int { return len(b.blob) }

// Build compresses the blob. The Builder may be used again afterwards;
// later additions do not affect the returned Artifact.
func (b *Builder) Build() (*Artifact, error) {
	data, err := compress.Compress(b.blob, &compress.Options{Codec: b.Codec, PageSize: b.PageSize})
	if err != nil {
		return nil, xerrors.Errorf("artifact: %w", err)
	}
	return &Artifact{
		Codec:           b.Codec,
		Data:            data,
		DecompressedLen: len(b.blob),
		Drawings:        append([]Drawing(nil), b.drawings...),
		Paths:           append([]Path(nil), b.paths...),
	}, nil
}
