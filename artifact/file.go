// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifact

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/vgbc/artifact/internal/mmap"
	"golang.org/x/vgbc/compress"
	"golang.org/x/xerrors"
)

// fileVersion is written to every file and checked on reading.
const fileVersion = 1

// The file form of an Artifact is a CBOR map with small integer keys.
type file struct {
	Version         uint        `cbor:"0,keyasint"`
	Codec           uint8       `cbor:"1,keyasint"`
	Data            []byte      `cbor:"2,keyasint"`
	DecompressedLen int         `cbor:"3,keyasint"`
	Drawings        []fileEntry `cbor:"4,keyasint,omitempty"`
	Paths           []fileEntry `cbor:"5,keyasint,omitempty"`
}

type fileEntry struct {
	Name   string  `cbor:"0,keyasint"`
	Start  int     `cbor:"1,keyasint"`
	End    int     `cbor:"2,keyasint"`
	Width  float32 `cbor:"3,keyasint,omitempty"`
	Height float32 `cbor:"4,keyasint,omitempty"`
}

// Marshal returns the file form of a.
func Marshal(a *Artifact) ([]byte, error) {
	f := file{
		Version:         fileVersion,
		Codec:           uint8(a.Codec),
		Data:            a.Data,
		DecompressedLen: a.DecompressedLen,
	}
	for _, d := range a.Drawings {
		f.Drawings = append(f.Drawings, fileEntry{Name: d.Name, Start: d.Start, End: d.End, Width: d.Width, Height: d.Height})
	}
	for _, p := range a.Paths {
		f.Paths = append(f.Paths, fileEntry{Name: p.Name, Start: p.Start, End: p.End})
	}
	data, err := cbor.Marshal(f)
	if err != nil {
		return nil, xerrors.Errorf("artifact: failed to marshal to CBOR: %w", err)
	}
	return data, nil
}

// Unmarshal parses the file form of an Artifact and checks that its ranges
// fit its blob.
func Unmarshal(data []byte) (*Artifact, error) {
	var f file
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, xerrors.Errorf("artifact: failed to unmarshal CBOR: %w", err)
	}
	if f.Version != fileVersion {
		return nil, xerrors.Errorf("artifact: unsupported file version %d", f.Version)
	}
	codec := compress.Codec(f.Codec)
	if _, err := codec.MarshalText(); err != nil {
		return nil, xerrors.Errorf("artifact: %w", err)
	}
	a := &Artifact{
		Codec:           codec,
		Data:            f.Data,
		DecompressedLen: f.DecompressedLen,
	}
	for _, e := range f.Drawings {
		a.Drawings = append(a.Drawings, Drawing{Name: e.Name, Width: e.Width, Height: e.Height, Start: e.Start, End: e.End})
	}
	for _, e := range f.Paths {
		a.Paths = append(a.Paths, Path{Name: e.Name, Start: e.Start, End: e.End})
	}
	if err := a.check(); err != nil {
		return nil, err
	}
	return a, nil
}

// Write writes the file form of a to w.
func Write(w io.Writer, a *Artifact) error {
	data, err := Marshal(a)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return xerrors.Errorf("artifact: %w", err)
	}
	return nil
}

// Read reads the file form of an Artifact from r.
func Read(r io.Reader) (*Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("artifact: %w", err)
	}
	return Unmarshal(data)
}

// ReadFile reads the file form of an Artifact from the named file, which it
// maps into memory rather than copying. The result does not refer to the
// mapping.
func ReadFile(name string) (*Artifact, error) {
	r, err := mmap.Open(name)
	if err != nil {
		return nil, xerrors.Errorf("artifact: %w", err)
	}
	defer r.Close()
	a, err := Unmarshal(r.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", name, err)
	}
	return a, nil
}
