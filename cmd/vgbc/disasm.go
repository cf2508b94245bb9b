// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"

	"golang.org/x/vgbc/artifact"
	"golang.org/x/vgbc/disasm"
	"golang.org/x/xerrors"
)

func runDisasm(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("disasm", e.stderr)
	if err := fs.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if fs.NArg() == 0 {
		return &usageError{"no artifact"}
	}
	a, err := readArtifact(fs.Arg(0))
	if err != nil {
		return err
	}
	want := map[string]bool{}
	for _, name := range fs.Args()[1:] {
		if _, ok := a.Drawing(name); ok {
			want[name] = true
			continue
		}
		if _, ok := a.Path(name); ok {
			want[name] = true
			continue
		}
		return xerrors.Errorf("no drawing or path %q", name)
	}
	listed := func(name string) bool { return len(want) == 0 || want[name] }

	blob, err := artifact.NewLoader(&artifact.LoaderOptions{Logger: e.log.Desugar()}).Bytes(a)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(e.stdout)
	for _, d := range a.Drawings {
		if !listed(d.Name) {
			continue
		}
		fmt.Fprintf(w, "drawing %q %vx%v [%d, %d]\n", d.Name, d.Width, d.Height, d.Start, d.End)
		if err := disasm.Disassemble(w, d.Slice(blob)); err != nil {
			w.Flush()
			return xerrors.Errorf("drawing %q: %w", d.Name, err)
		}
		fmt.Fprintln(w)
	}
	for _, p := range a.Paths {
		if !listed(p.Name) {
			continue
		}
		fmt.Fprintf(w, "path %q [%d, %d]\n", p.Name, p.Start, p.End)
		if err := disasm.DisassemblePath(w, p.Slice(blob)); err != nil {
			w.Flush()
			return xerrors.Errorf("path %q: %w", p.Name, err)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
