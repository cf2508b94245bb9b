// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compress compresses merged bytecode blobs.
//
// Input is fed to a streaming compressor in fixed-size pages, followed by a
// final empty write, and the output is a single stream. Compressed data is
// not self-describing: callers keep the Codec and the decompressed length
// alongside it.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the compression algorithm.
type Codec uint8

const (
	Zstd Codec = iota
	LZ4
	S2
	Deflate

	numCodecs
)

var codecNames = [numCodecs]string{"zstd", "lz4", "s2", "deflate"}

func (c Codec) String() string {
	if c < numCodecs {
		return codecNames[c]
	}
	return fmt.Sprintf("Codec(%d)", uint8(c))
}

func (c Codec) MarshalText() ([]byte, error) {
	if c >= numCodecs {
		return nil, fmt.Errorf("compress: unknown codec %d", uint8(c))
	}
	return []byte(codecNames[c]), nil
}

func (c *Codec) UnmarshalText(text []byte) error {
	for i, name := range codecNames {
		if string(text) == name {
			*c = Codec(i)
			return nil
		}
	}
	return fmt.Errorf("compress: unknown codec %q", text)
}

// DefaultPageSize is the number of bytes written to the compressor at a time.
const DefaultPageSize = 128

// Options are the parameters for Compress. A nil *Options means the zero
// value: Zstd with DefaultPageSize pages.
type Options struct {
	Codec    Codec
	PageSize int
}

// Error is a failure to compress or to reconstruct the declared length of a
// blob. It is not retryable.
type Error struct {
	Op    string // "compress" or "decompress"
	Codec Codec
	Err   error
}

func (e *Error) Error() string { return "compress: " + e.Op + " " + e.Codec.String() + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

var (
	errShort = errors.New("stream ended before the declared length")
	errLong  = errors.New("stream is longer than the declared length")
	errLen   = errors.New("negative declared length")
)

// Compress compresses src.
func Compress(src []byte, opts *Options) ([]byte, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	var buf bytes.Buffer
	w, err := newWriter(&buf, o.Codec)
	if err != nil {
		return nil, &Error{"compress", o.Codec, err}
	}
	for len(src) > 0 {
		n := min(o.PageSize, len(src))
		if _, err := w.Write(src[:n]); err != nil {
			return nil, &Error{"compress", o.Codec, err}
		}
		src = src[n:]
	}
	if _, err := w.Write(nil); err != nil {
		return nil, &Error{"compress", o.Codec, err}
	}
	if err := w.Close(); err != nil {
		return nil, &Error{"compress", o.Codec, err}
	}
	return buf.Bytes(), nil
}

// Decompress decompresses src, which must hold exactly n bytes once
// decompressed. The output grows as the stream is read, so n bounds the
// result but is not allocated up front.
func Decompress(src []byte, n int, codec Codec) ([]byte, error) {
	if n < 0 {
		return nil, &Error{"decompress", codec, errLen}
	}
	r, err := newReader(bytes.NewReader(src), codec)
	if err != nil {
		return nil, &Error{"decompress", codec, err}
	}
	defer r.Close()
	var dst bytes.Buffer
	if _, err := dst.ReadFrom(io.LimitReader(r, int64(n))); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = errShort
		}
		return nil, &Error{"decompress", codec, err}
	}
	if dst.Len() < n {
		return nil, &Error{"decompress", codec, errShort}
	}
	var extra [1]byte
	switch m, err := r.Read(extra[:]); {
	case m > 0:
		return nil, &Error{"decompress", codec, errLong}
	case err != nil && err != io.EOF:
		return nil, &Error{"decompress", codec, err}
	}
	if n == 0 {
		return []byte{}, nil
	}
	return dst.Bytes(), nil
}

func newWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w,
			zstd.WithEncoderLevel(zstd.SpeedBestCompression),
			zstd.WithEncoderConcurrency(1),
			zstd.WithZeroFrames(true))
	case LZ4:
		zw := lz4.NewWriter(w)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, err
		}
		return zw, nil
	case S2:
		return s2.NewWriter(w, s2.WriterBestCompression(), s2.WriterConcurrency(1)), nil
	case Deflate:
		return flate.NewWriter(w, flate.BestCompression)
	}
	return nil, fmt.Errorf("unknown codec %d", uint8(c))
}

type readCloser struct {
	io.Reader
	close func()
}

func (r readCloser) Close() error {
	if r.close != nil {
		r.close()
	}
	return nil
}

func newReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return readCloser{d, d.Close}, nil
	case LZ4:
		return readCloser{Reader: lz4.NewReader(r)}, nil
	case S2:
		return readCloser{Reader: s2.NewReader(r)}, nil
	case Deflate:
		return flate.NewReader(r), nil
	}
	return nil, fmt.Errorf("unknown codec %d", uint8(c))
}
