// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compile

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"golang.org/x/vgbc/ir"
)

var tracer = otel.Tracer("golang.org/x/vgbc/compile")

// Batch compiles routes concurrently with at most workers goroutines (all
// CPUs if workers <= 0). The i'th result is the encoding of routes[i].
//
// The first failure cancels the remaining work and is returned.
func Batch(ctx context.Context, routes []*ir.Route, workers int) ([][]byte, error) {
	ctx, span := tracer.Start(ctx, "compile.Batch")
	defer span.End()
	span.SetAttributes(attribute.Int("routes", len(routes)))

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]byte, len(routes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, s := tracer.Start(ctx, "compile.Route")
			defer s.End()
			s.SetAttributes(attribute.Int("index", i))
			b, err := Compile(r)
			if err != nil {
				s.RecordError(err)
				return err
			}
			s.SetAttributes(attribute.Int("bytes", len(b)))
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}
