// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compress

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

var codecs = []Codec{Zstd, LZ4, S2, Deflate}

func testData(n int) []byte {
	rng := rand.New(rand.NewSource(int64(n)))
	b := make([]byte, n)
	for i := range b {
		// Mostly small opcodes and zero bytes, like real bytecode.
		if rng.Intn(3) == 0 {
			b[i] = byte(rng.Intn(52))
		}
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 127, 128, 129, 4*128 + 5, 10000}
	for _, c := range codecs {
		for _, n := range sizes {
			src := testData(n)
			z, err := Compress(src, &Options{Codec: c})
			if err != nil {
				t.Errorf("%v, %d bytes: Compress: %v", c, n, err)
				continue
			}
			got, err := Decompress(z, n, c)
			if err != nil {
				t.Errorf("%v, %d bytes: Decompress: %v", c, n, err)
				continue
			}
			if !bytes.Equal(got, src) {
				t.Errorf("%v, %d bytes: round trip mismatch", c, n)
			}
		}
	}
}

func TestPageSizeDoesNotChangeContent(t *testing.T) {
	src := testData(1000)
	for _, c := range codecs {
		for _, page := range []int{1, 7, 128, 4096} {
			z, err := Compress(src, &Options{Codec: c, PageSize: page})
			if err != nil {
				t.Fatalf("%v, page %d: %v", c, page, err)
			}
			got, err := Decompress(z, len(src), c)
			if err != nil {
				t.Fatalf("%v, page %d: %v", c, page, err)
			}
			if !bytes.Equal(got, src) {
				t.Errorf("%v, page %d: round trip mismatch", c, page)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	src := testData(3000)
	for _, c := range codecs {
		a, err := Compress(src, &Options{Codec: c})
		if err != nil {
			t.Fatal(err)
		}
		b, err := Compress(src, &Options{Codec: c})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%v: two compressions of the same input differ", c)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	src := testData(300)
	z, err := Compress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decompress(z, len(src), Zstd); err != nil {
		t.Errorf("nil options should mean zstd: %v", err)
	}
}

func TestDeclaredLengthMismatch(t *testing.T) {
	src := testData(500)
	for _, c := range codecs {
		z, err := Compress(src, &Options{Codec: c})
		if err != nil {
			t.Fatal(err)
		}
		_, err = Decompress(z, len(src)+1, c)
		var e *Error
		if !errors.As(err, &e) || !errors.Is(err, errShort) {
			t.Errorf("%v, declared too long: got %v", c, err)
		}
		_, err = Decompress(z, len(src)-1, c)
		if !errors.As(err, &e) || !errors.Is(err, errLong) {
			t.Errorf("%v, declared too short: got %v", c, err)
		}
	}
}

func TestDeclaredLengthOutOfRange(t *testing.T) {
	src := testData(300)
	for _, c := range codecs {
		z, err := Compress(src, &Options{Codec: c})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Decompress(z, -1, c); !errors.Is(err, errLen) {
			t.Errorf("%v, negative length: got %v", c, err)
		}
		if _, err := Decompress(z, 1<<62, c); !errors.Is(err, errShort) {
			t.Errorf("%v, huge length: got %v", c, err)
		}
	}
	if _, err := Decompress([]byte{1, 2, 3}, -1, Zstd); err == nil {
		t.Error("garbage with a negative length: got nil error")
	}
}

func TestCorrupt(t *testing.T) {
	garbage := []byte("this is not a compressed stream at all")
	for _, c := range codecs {
		_, err := Decompress(garbage, 100, c)
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("%v: got %v, want an *Error", c, err)
			continue
		}
		if e.Op != "decompress" || e.Codec != c {
			t.Errorf("%v: got %+v", c, e)
		}
	}
}

func TestCodecText(t *testing.T) {
	for _, c := range codecs {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Codec
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("%s: got %v, want %v", text, got, c)
		}
	}
	var c Codec
	if err := c.UnmarshalText([]byte("lzfse")); err == nil {
		t.Error("unknown codec name: got nil error")
	}
}
