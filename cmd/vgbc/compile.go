// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/vgbc/artifact"
	"golang.org/x/vgbc/compile"
	"golang.org/x/vgbc/ir"
	"golang.org/x/xerrors"
)

func runCompile(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("compile", e.stderr)
	configPath := fs.StringP("config", "c", "", "config file")
	out := fs.StringP("output", "o", "out.vgbc", "artifact to write")
	pathFiles := fs.StringArray("path", nil, "JSON file holding an array of path routines (repeatable)")
	if err := fs.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if fs.NArg() == 0 && len(*pathFiles) == 0 {
		return &usageError{"no input files"}
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	names := make([]string, fs.NArg())
	routes := make([]*ir.Route, fs.NArg())
	for i, file := range fs.Args() {
		names[i] = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		routes[i] = new(ir.Route)
		if err := readJSON(file, routes[i]); err != nil {
			return err
		}
	}
	var paths []*ir.PathRoutine
	for _, file := range *pathFiles {
		var ps []*ir.PathRoutine
		if err := readJSON(file, &ps); err != nil {
			return err
		}
		paths = append(paths, ps...)
	}

	codes, err := compile.Batch(ctx, routes, cfg.Workers)
	if err != nil {
		return err
	}
	b := &artifact.Builder{Codec: cfg.Codec, PageSize: cfg.PageSize}
	for i, code := range codes {
		bounds := routes[i].Bounds
		if err := b.AddCompiled(names[i], bounds.W, bounds.H, code); err != nil {
			return err
		}
		e.log.Debugw("compiled drawing", "name", names[i], "bytes", len(code))
	}
	for _, p := range paths {
		if err := b.AddPath(p); err != nil {
			return err
		}
		e.log.Debugw("compiled path", "name", p.ID)
	}
	a, err := b.Build()
	if err != nil {
		return err
	}
	if err := writeArtifact(*out, a); err != nil {
		return err
	}
	e.log.Infow("wrote artifact",
		"file", *out,
		"drawings", len(a.Drawings),
		"paths", len(a.Paths),
		"codec", a.Codec.String(),
		"bytes", a.DecompressedLen,
		"compressed", len(a.Data))
	return nil
}

func readJSON(file string, v any) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return xerrors.Errorf("%s: %w", file, err)
	}
	return nil
}

func writeArtifact(file string, a *artifact.Artifact) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := artifact.Write(w, a); err != nil {
		return xerrors.Errorf("writing %s: %w", file, err)
	}
	return w.Flush()
}

func readArtifact(file string) (*artifact.Artifact, error) {
	return artifact.ReadFile(file)
}
