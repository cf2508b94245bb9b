// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmap provides read-only access to the contents of a file, mapped
// into memory where the platform allows it.
package mmap

import (
	"fmt"
	"io"
	"os"
)

// ReaderAt reads a memory-mapped file.
//
// Like any io.ReaderAt, clients can execute parallel ReadAt calls, but it is
// not safe to call Close and reading methods concurrently.
type ReaderAt struct {
	data  []byte
	unmap func([]byte) error
}

// Len returns the length of the file.
func (r *ReaderAt) Len() int { return len(r.data) }

// At returns the byte at index i.
func (r *ReaderAt) At(i int) byte { return r.data[i] }

// Bytes returns the contents of the file. They are only valid until Close.
func (r *ReaderAt) Bytes() []byte { return r.data }

// ReadAt implements the io.ReaderAt interface.
func (r *ReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if r.data == nil && r.unmap != nil {
		return 0, os.ErrClosed
	}
	if off < 0 || int64(len(r.data)) < off {
		return 0, fmt.Errorf("mmap: invalid ReadAt offset %d", off)
	}
	n := copy(p, r.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close releases the mapping.
func (r *ReaderAt) Close() error {
	data := r.data
	r.data = nil
	if r.unmap == nil || data == nil {
		return nil
	}
	return r.unmap(data)
}

// Open memory-maps the named file for reading.
func Open(filename string) (*ReaderAt, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size < 0 {
		return nil, fmt.Errorf("mmap: file %q has negative size", filename)
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("mmap: file %q is too large", filename)
	}
	if size == 0 {
		return &ReaderAt{}, nil
	}
	return mapFile(f, int(size))
}
