// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/vgbc/artifact"
	"golang.org/x/vgbc/bytecode"
	"golang.org/x/vgbc/raster"
	"golang.org/x/xerrors"
)

// maxRenderSize bounds each dimension of a rendered image.
const maxRenderSize = 1 << 14

func runRender(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("render", e.stderr)
	out := fs.StringP("output", "o", "out.png", "PNG file to write")
	scale := fs.Float64("scale", 1, "pixels per unit of the drawing's size")
	if err := fs.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if fs.NArg() != 2 {
		return &usageError{"want an artifact and a drawing name"}
	}
	if !(*scale > 0) {
		return &usageError{"scale must be positive"}
	}
	a, err := readArtifact(fs.Arg(0))
	if err != nil {
		return err
	}
	name := fs.Arg(1)
	d, ok := a.Drawing(name)
	if !ok {
		return xerrors.Errorf("no drawing %q", name)
	}
	w := int(math.Ceil(float64(d.Width) * *scale))
	h := int(math.Ceil(float64(d.Height) * *scale))
	if w <= 0 || h <= 0 || w > maxRenderSize || h > maxRenderSize {
		return xerrors.Errorf("drawing %q: cannot render at %dx%d", name, w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := &raster.Rasterizer{Logger: e.log.Desugar()}
	z.SetDstImage(dst, dst.Bounds(), bytecode.Rect{W: d.Width, H: d.Height})
	l := artifact.NewLoader(&artifact.LoaderOptions{Logger: e.log.Desugar()})
	if err := l.Draw(z, a, name); err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return xerrors.Errorf("encoding %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.log.Infow("rendered drawing", "name", name, "file", *out, "width", w, "height", h)
	return nil
}
