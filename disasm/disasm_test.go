// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/bytecode/bytecodetest"
	"golang.org/x/vgbc/compile"
	"golang.org/x/vgbc/ir"
)

var updateGolden = flag.Bool("u", false, "update expected text in test files instead of failing")

// Each testdata archive holds a route.json or a path.json and the expected
// listing in want.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			arc, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			got, err := listing(arc)
			if err != nil {
				t.Fatal(err)
			}
			want := archiveFile(arc, "want")
			if *updateGolden {
				setArchiveFile(arc, "want", got)
				if err := os.WriteFile(file, txtar.Format(arc), 0666); err != nil {
					t.Fatal(err)
				}
				return
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("listing (-want +got):\n%s", diff)
			}
		})
	}
}

func listing(arc *txtar.Archive) ([]byte, error) {
	var buf bytes.Buffer
	if src := archiveFile(arc, "route.json"); src != nil {
		var r ir.Route
		if err := json.Unmarshal(src, &r); err != nil {
			return nil, err
		}
		code, err := compile.Compile(&r)
		if err != nil {
			return nil, err
		}
		err = Disassemble(&buf, code)
		return buf.Bytes(), err
	}
	var p ir.PathRoutine
	if err := json.Unmarshal(archiveFile(arc, "path.json"), &p); err != nil {
		return nil, err
	}
	code, err := compile.Path(&p)
	if err != nil {
		return nil, err
	}
	err = DisassemblePath(&buf, code)
	return buf.Bytes(), err
}

func archiveFile(arc *txtar.Archive, name string) []byte {
	for _, f := range arc.Files {
		if f.Name == name {
			return f.Data
		}
	}
	return nil
}

func setArchiveFile(arc *txtar.Archive, name string, data []byte) {
	for i := range arc.Files {
		if arc.Files[i].Name == name {
			arc.Files[i].Data = data
			return
		}
	}
	arc.Files = append(arc.Files, txtar.File{Name: name, Data: data})
}

func TestEveryOpcodePrints(t *testing.T) {
	for _, s := range bytecodetest.Samples {
		var buf bytes.Buffer
		if err := bytecode.Visit(bytecode.NewCursor(s.Encode()), NewPrinter(&buf)); err != nil {
			t.Errorf("%v: %v", s.Op, err)
			continue
		}
		want := "0x00000 " + s.Op.String() + "("
		if got := buf.String(); !strings.HasPrefix(got, want) || !strings.HasSuffix(got, ")\n") {
			t.Errorf("%v: got %q", s.Op, got)
		}
	}
}

func TestDisassembleTruncated(t *testing.T) {
	var e bytecode.Encoder
	e.SaveGState()
	e.MoveTo(bytecode.Point{X: 1, Y: 1})
	code := bytecode.AppendTables(nil, nil)
	code = append(code, e.Bytes()...)
	code = code[:len(code)-2]

	var buf bytes.Buffer
	err := Disassemble(&buf, code)
	if !errors.Is(err, bytecode.ErrTruncated) {
		t.Errorf("got %v, want a truncation error", err)
	}
	if want := "body (8 bytes)\n0x00008 SaveGState()\n"; buf.String() != want {
		t.Errorf("partial listing:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestDisassemblePathRejectsPainting(t *testing.T) {
	var e bytecode.Encoder
	e.MoveTo(bytecode.Point{})
	e.Fill()
	var buf bytes.Buffer
	err := DisassemblePath(&buf, e.Bytes())
	var ie *bytecode.InvalidValueError
	if !errors.As(err, &ie) || ie.Offset != 9 {
		t.Errorf("got %v, want an invalid opcode at offset 9", err)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	code, err := compile.Compile(&ir.Route{Steps: []ir.Step{ir.Fill{}}})
	if err != nil {
		t.Fatal(err)
	}
	if err := Disassemble(failWriter{}, code); !errors.Is(err, errWrite) {
		t.Errorf("got %v, want the write error", err)
	}
}
