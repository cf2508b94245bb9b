// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/vgbc/artifact"
	"golang.org/x/vgbc/compress"
)

const squareJSON = `{
	"bounds": {"w": 10, "h": 12},
	"steps": [
		{"op": "fillColor", "color": {"r": 1, "a": 1}},
		{"op": "appendRectangle", "rect": {"x": 1, "y": 1, "w": 8, "h": 8}},
		{"op": "fill"}
	]
}`

const pathsJSON = `[
	{"id": "tick", "steps": [
		{"op": "moveTo", "point": {"x": 0, "y": 0}},
		{"op": "lineTo", "point": {"x": 2, "y": 2}}
	]}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return file
}

// vgbc runs the command and returns its exit code and output.
func vgbc(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// compileSample writes the sample inputs to a temporary directory and
// compiles them, returning the directory and the artifact's file name.
func compileSample(t *testing.T) (dir, file string) {
	t.Helper()
	dir = t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)
	paths := writeFile(t, dir, "paths.json", pathsJSON)
	file = filepath.Join(dir, "out.vgbc")
	if code, _, stderr := vgbc("compile", "-o", file, "--path", paths, square); code != 0 {
		t.Fatalf("compile exited with %d:\n%s", code, stderr)
	}
	return dir, file
}

func TestCompile(t *testing.T) {
	_, file := compileSample(t)
	a, err := readArtifact(file)
	if err != nil {
		t.Fatal(err)
	}
	if a.Codec != compress.Zstd {
		t.Errorf("codec %v, want the default", a.Codec)
	}
	d, ok := a.Drawing("square")
	if !ok {
		t.Fatal("no drawing \"square\"")
	}
	if d.Width != 10 || d.Height != 12 {
		t.Errorf("size %vx%v, want 10x12", d.Width, d.Height)
	}
	if _, ok := a.Path("tick"); !ok {
		t.Error("no path \"tick\"")
	}
}

func TestCompileConfig(t *testing.T) {
	dir := t.TempDir()
	square := writeFile(t, dir, "square.json", squareJSON)
	cfg := writeFile(t, dir, "vgbc.toml", "codec = \"lz4\"\npage_size = 3\nworkers = 2\n")
	file := filepath.Join(dir, "out.vgbc")
	if code, _, stderr := vgbc("--log-level", "debug", "compile", "-c", cfg, "-o", file, square); code != 0 {
		t.Fatalf("compile exited with %d:\n%s", code, stderr)
	}
	a, err := readArtifact(file)
	if err != nil {
		t.Fatal(err)
	}
	if a.Codec != compress.LZ4 {
		t.Errorf("codec %v, want lz4", a.Codec)
	}
}

func TestDisasm(t *testing.T) {
	_, file := compileSample(t)
	code, stdout, stderr := vgbc("disasm", file)
	if code != 0 {
		t.Fatalf("disasm exited with %d:\n%s", code, stderr)
	}
	for _, want := range []string{
		`drawing "square" 10x12`,
		"FillColor({1 0 0 1})",
		"AppendRectangle({1 1 8 8})",
		`path "tick"`,
		"LineTo({2 2})",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}

	code, stdout, _ = vgbc("disasm", file, "tick")
	if code != 0 || strings.Contains(stdout, "square") {
		t.Errorf("disasm of one path: exit %d, output:\n%s", code, stdout)
	}
	if code, _, _ := vgbc("disasm", file, "missing"); code != 1 {
		t.Errorf("disasm of a missing name exited with %d, want 1", code)
	}
}

func TestRender(t *testing.T) {
	dir, file := compileSample(t)
	out := filepath.Join(dir, "square.png")
	if code, _, stderr := vgbc("render", "-o", out, "--scale", "2", file, "square"); code != 0 {
		t.Fatalf("render exited with %d:\n%s", code, stderr)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds().Size(), image.Pt(20, 24); got != want {
		t.Errorf("image size %v, want %v", got, want)
	}
	if got := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA); got != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("center pixel %v, want opaque red", got)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner pixel alpha %#x, want 0", a)
	}
	if code, _, _ := vgbc("render", file, "tick"); code != 1 {
		t.Errorf("rendering a path exited with %d, want 1", code)
	}
}

func TestGen(t *testing.T) {
	_, file := compileSample(t)
	code, stdout, stderr := vgbc("gen", "-p", "icons", file)
	if code != 0 {
		t.Fatalf("gen exited with %d:\n%s", code, stderr)
	}
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", stdout, 0)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, stdout)
	}
	if f.Name.Name != "icons" {
		t.Errorf("package %s, want icons", f.Name.Name)
	}
	for _, want := range []string{
		"func DrawSquare(dst vm.Destination) error",
		"func PathTick(p vm.PathBuilder) error",
		"DecompressedLen:",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("generated code lacks %q:\n%s", want, stdout)
		}
	}
}

func TestGenNameClash(t *testing.T) {
	a := &artifact.Artifact{Drawings: []artifact.Drawing{
		{Name: "arrow-left", End: -1},
		{Name: "arrow_left", End: -1},
	}}
	if _, err := generate("icons", a); err == nil {
		t.Error("clashing function names accepted")
	}
	if _, err := generate("not a name", &artifact.Artifact{}); err == nil {
		t.Error("invalid package name accepted")
	}
}

func TestExported(t *testing.T) {
	for in, want := range map[string]string{
		"square":        "Square",
		"arrow-left.2x": "ArrowLeft2x",
		"ic_close_24":   "IcClose24",
		"déjà vu":       "DéjàVu",
	} {
		if got := exported(in); got != want {
			t.Errorf("exported(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	got, err := loadConfig(writeFile(t, dir, "ok.toml", "codec = \"s2\"\npackage = \"art\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Codec = compress.S2
	want.Package = "art"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}

	for name, content := range map[string]string{
		"unknown.toml": "colour = \"red\"\n",
		"codec.toml":   "codec = \"gzip\"\n",
		"page.toml":    "page_size = -1\n",
		"syntax.toml":  "codec = \n",
	} {
		if _, err := loadConfig(writeFile(t, dir, name, content)); err == nil {
			t.Errorf("%s: loadConfig succeeded", name)
		}
	}
	if _, err := loadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file: loadConfig succeeded")
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"frobnicate"},
		{"compile"},
		{"render", "only-one-arg"},
		{"--log-level", "loud", "disasm"},
	} {
		if code, _, _ := vgbc(args...); code != 2 {
			t.Errorf("vgbc %q exited with %d, want 2", args, code)
		}
	}
}
