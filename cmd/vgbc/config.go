// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/vgbc/compress"
	"golang.org/x/xerrors"
)

// config is the contents of a config file, such as:
//
//	codec = "lz4"
//	page_size = 256
//	workers = 4
//	package = "icons"
type config struct {
	Codec    compress.Codec `toml:"codec"`
	PageSize int            `toml:"page_size"`
	Workers  int            `toml:"workers"`
	Package  string         `toml:"package"`
}

func defaultConfig() config {
	return config{
		Codec:    compress.Zstd,
		PageSize: compress.DefaultPageSize,
		Package:  "drawings",
	}
}

// loadConfig reads the config file at path. An empty path means the
// defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, xerrors.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return c, xerrors.Errorf("parsing %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return c, xerrors.Errorf("%s: unknown setting %q", path, keys[0].String())
	}
	if c.PageSize <= 0 {
		return c, xerrors.Errorf("%s: page_size must be positive", path)
	}
	return c, nil
}
