// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmap

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	const filename = "mmap_test.go"
	r, err := Open(filename)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	want, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	if r.Len() != len(want) {
		t.Fatalf("got %d bytes, want %d", r.Len(), len(want))
	}
	if !bytes.Equal(r.Bytes(), want) {
		t.Fatalf("\ngot  %q\nwant %q", r.Bytes(), want)
	}
	if got := r.At(0); got != '/' { // first comment slash
		t.Errorf("At(0) = %q, want '/'", got)
	}

	got := make([]byte, 16)
	n, err := r.ReadAt(got, int64(len(want)-4))
	if n != 4 || err != io.EOF {
		t.Errorf("ReadAt past the end = %d, %v; want 4, EOF", n, err)
	}
	if !bytes.Equal(got[:4], want[len(want)-4:]) {
		t.Errorf("ReadAt past the end read %q", got[:4])
	}
	if _, err := r.ReadAt(got, -1); err == nil {
		t.Error("ReadAt at a negative offset succeeded")
	}
}

func TestClose(t *testing.T) {
	r, err := Open("mmap_test.go")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := r.ReadAt(make([]byte, 1), 0); !errors.Is(err, os.ErrClosed) {
		t.Errorf("ReadAt after Close: got %v, want %v", err, os.ErrClosed)
	}
}

func TestEmptyFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(filename, nil, 0666); err != nil {
		t.Fatal(err)
	}
	r, err := Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if n, err := r.ReadAt(make([]byte, 1), 0); n != 0 || err != io.EOF {
		t.Errorf("ReadAt = %d, %v; want 0, EOF", n, err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
