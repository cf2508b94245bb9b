// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"go/format"
	"go/token"
	"os"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/vgbc/artifact"
	"golang.org/x/xerrors"
)

func runGen(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("gen", e.stderr)
	configPath := fs.StringP("config", "c", "", "config file")
	pkg := fs.StringP("package", "p", "", "package name (default from the config file)")
	out := fs.StringP("output", "o", "", "Go file to write (default stdout)")
	if err := fs.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if fs.NArg() != 1 {
		return &usageError{"want one artifact"}
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	a, err := readArtifact(fs.Arg(0))
	if err != nil {
		return err
	}
	src, err := generate(cfg.Package, a)
	if err != nil {
		return err
	}
	if *out == "" {
		_, err := e.stdout.Write(src)
		return err
	}
	return os.WriteFile(*out, src, 0666)
}

var genTemplate = template.Must(template.New("gen").Parse(`// Code generated by vgbc gen. DO NOT EDIT.

package {{.Package}}

import (
	"golang.org/x/vgbc/artifact"
	"golang.org/x/vgbc/compress"
	"golang.org/x/vgbc/vm"
)

// Artifact holds the compressed bytecode of every drawing and path.
var Artifact = &artifact.Artifact{
	Codec:           compress.Codec({{.Codec}}),
	Data:            []byte({{printf "%q" .Data}}),
	DecompressedLen: {{.DecompressedLen}},
	Drawings: []artifact.Drawing{
{{- range .Drawings}}
		{Name: {{printf "%q" .Name}}, Width: {{.Width}}, Height: {{.Height}}, Start: {{.Start}}, End: {{.End}}},
{{- end}}
	},
	Paths: []artifact.Path{
{{- range .Paths}}
		{Name: {{printf "%q" .Name}}, Start: {{.Start}}, End: {{.End}}},
{{- end}}
	},
}

// Loader decompresses Artifact on first use.
var Loader = artifact.NewLoader(nil)
{{range .DrawFuncs}}
// {{.Func}} draws {{printf "%q" .Name}} onto dst.
func {{.Func}}(dst vm.Destination) error { return Loader.Draw(dst, Artifact, {{printf "%q" .Name}}) }
{{end}}
{{- range .PathFuncs}}
// {{.Func}} adds the path {{printf "%q" .Name}} to p.
func {{.Func}}(p vm.PathBuilder) error { return Loader.Path(p, Artifact, {{printf "%q" .Name}}) }
{{end}}`))

type genFunc struct {
	Func string
	Name string
}

// generate returns formatted Go source for package pkg embedding a.
func generate(pkg string, a *artifact.Artifact) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, xerrors.Errorf("invalid package name %q", pkg)
	}
	data := struct {
		*artifact.Artifact
		Package   string
		Codec     uint8
		DrawFuncs []genFunc
		PathFuncs []genFunc
	}{Artifact: a, Package: pkg, Codec: uint8(a.Codec)}

	seen := map[string]string{}
	fn := func(prefix, name string) (genFunc, error) {
		f := prefix + exported(name)
		if prev, ok := seen[f]; ok {
			return genFunc{}, xerrors.Errorf("%q and %q both generate %s", prev, name, f)
		}
		seen[f] = name
		return genFunc{Func: f, Name: name}, nil
	}
	for _, d := range a.Drawings {
		f, err := fn("Draw", d.Name)
		if err != nil {
			return nil, err
		}
		data.DrawFuncs = append(data.DrawFuncs, f)
	}
	for _, p := range a.Paths {
		f, err := fn("Path", p.Name)
		if err != nil {
			return nil, err
		}
		data.PathFuncs = append(data.PathFuncs, f)
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, xerrors.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

// exported turns a drawing name such as "arrow-left.2x" into the
// identifier suffix "ArrowLeft2x".
func exported(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
