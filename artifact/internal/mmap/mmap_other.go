// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package mmap

import (
	"io"
	"os"
)

// mapFile reads the file into memory where mapping is not supported.
func mapFile(f *os.File, size int) (*ReaderAt, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return &ReaderAt{data: data, unmap: func([]byte) error { return nil }}, nil
}
