// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The vgbc command compiles vector drawings to bytecode and works with the
// resulting artifacts.
//
// Usage:
//
//	vgbc compile [-c config.toml] [-o out.vgbc] [--path paths.json] route.json...
//	vgbc disasm file.vgbc [name...]
//	vgbc render [-o out.png] [--scale n] file.vgbc name
//	vgbc gen [-c config.toml] [-p package] [-o out.go] file.vgbc
//
// compile reads drawing routes, one per JSON file and named after the file,
// and path routines, as JSON arrays, and merges their bytecode into one
// compressed artifact.
//
// disasm prints a listing of every drawing and path in an artifact, or of
// the named ones.
//
// render rasterizes one drawing to a PNG image.
//
// gen writes Go source that embeds an artifact and has a function for each
// drawing and path in it.
//
// The --log-level flag, accepted before the subcommand, sets the level of
// the messages written to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{"compile", "[-c config.toml] [-o out.vgbc] [--path paths.json] route.json...", runCompile},
	{"disasm", "file.vgbc [name...]", runDisasm},
	{"render", "[-o out.png] [--scale n] file.vgbc name", runRender},
	{"gen", "[-c config.toml] [-p package] [-o out.go] file.vgbc", runGen},
}

// env is what a subcommand runs with.
type env struct {
	log    *zap.SugaredLogger
	stdout io.Writer
	stderr io.Writer
}

// usageError is a bad command line. It is reported along with the usage.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vgbc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	levelName := fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	level, err := zapcore.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintf(stderr, "vgbc: %v\n", err)
		return 2
	}
	if fs.NArg() == 0 {
		usage(stderr)
		return 2
	}

	logger := newLogger(level, stderr)
	defer logger.Sync()
	e := &env{log: logger.Sugar(), stdout: stdout, stderr: stderr}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(ctx, e, fs.Args()[1:])
		switch err.(type) {
		case nil:
			return 0
		case *usageError:
			fmt.Fprintf(stderr, "vgbc %s: %v\nusage: vgbc %s %s\n", c.name, err, c.name, c.usage)
			return 2
		default:
			e.log.Errorf("%s: %v", c.name, err)
			return 1
		}
	}
	fmt.Fprintf(stderr, "vgbc: unknown command %q\n", name)
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	var b strings.Builder
	b.WriteString("usage: vgbc [--log-level level] command [arguments]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "\tvgbc %s %s\n", c.name, c.usage)
	}
	io.WriteString(w, b.String())
}

// newLogger returns a console logger writing to w.
func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	al := zap.NewAtomicLevelAt(level)
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), al)
	return zap.New(core)
}

// newFlagSet returns a flag set for a subcommand that reports errors instead
// of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	return fs
}
