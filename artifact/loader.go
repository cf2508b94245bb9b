// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package artifact

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	"go.uber.org/zap"
	"golang.org/x/vgbc/compress"
	"golang.org/x/vgbc/vm"
	"golang.org/x/xerrors"
)

// DefaultCacheSize is the size in bytes of a Loader's cache when
// LoaderOptions.CacheSize is zero.
const DefaultCacheSize = 32 << 20

// LoaderOptions are optional parameters to NewLoader. A nil *LoaderOptions
// means the zero value.
type LoaderOptions struct {
	// CacheSize bounds the memory used for decompressed blobs. Blobs larger
	// than 1/1024 of it are decompressed on every use.
	CacheSize int
	// Logger receives debug messages, and is passed on to vm.Run. Nil means
	// no logging.
	Logger *zap.Logger
	// MaxDepth is passed on to vm.Run.
	MaxDepth int
}

// Loader decompresses artifacts and runs their drawings. Decompressed blobs
// are cached, keyed by a hash of the compressed bytes.
//
// A Loader is safe for concurrent use.
type Loader struct {
	cache *freecache.Cache
	log   *zap.Logger
	vmOpt *vm.Options
}

// NewLoader returns a Loader.
func NewLoader(opts *LoaderOptions) *Loader {
	var o LoaderOptions
	if opts != nil {
		o = *opts
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &Loader{
		cache: freecache.NewCache(o.CacheSize),
		log:   o.Logger,
		vmOpt: &vm.Options{Logger: o.Logger, MaxDepth: o.MaxDepth},
	}
}

func key(a *Artifact) []byte {
	var k [17]byte
	binary.LittleEndian.PutUint64(k[0:], xxhash.Sum64(a.Data))
	binary.LittleEndian.PutUint64(k[8:], uint64(a.DecompressedLen))
	k[16] = byte(a.Codec)
	return k[:]
}

// Bytes returns a's decompressed blob.
func (l *Loader) Bytes(a *Artifact) ([]byte, error) {
	k := key(a)
	if blob, err := l.cache.Get(k); err == nil && len(blob) == a.DecompressedLen {
		return blob, nil
	}
	blob, err := compress.Decompress(a.Data, a.DecompressedLen, a.Codec)
	if err != nil {
		return nil, xerrors.Errorf("artifact: %w", err)
	}
	switch err := l.cache.Set(k, blob, 0); {
	case errors.Is(err, freecache.ErrLargeEntry):
		l.log.Debug("blob too large to cache", zap.Int("size", len(blob)))
	case err != nil:
		l.log.Warn("failed to cache blob", zap.Error(err))
	default:
		l.log.Debug("cached blob",
			zap.Stringer("codec", a.Codec),
			zap.Int("compressed", len(a.Data)),
			zap.Int("size", len(blob)))
	}
	return blob, nil
}

// Draw runs the named drawing of a against dst.
func (l *Loader) Draw(dst vm.Destination, a *Artifact, name string) error {
	d, ok := a.Drawing(name)
	if !ok {
		return xerrors.Errorf("artifact: no drawing %q", name)
	}
	blob, err := l.Bytes(a)
	if err != nil {
		return err
	}
	if err := vm.Run(dst, d.Slice(blob), l.vmOpt); err != nil {
		return xerrors.Errorf("artifact: drawing %q: %w", name, err)
	}
	return nil
}

// Path adds the geometry of the named path routine of a to p.
func (l *Loader) Path(p vm.PathBuilder, a *Artifact, name string) error {
	r, ok := a.Path(name)
	if !ok {
		return xerrors.Errorf("artifact: no path %q", name)
	}
	blob, err := l.Bytes(a)
	if err != nil {
		return err
	}
	if err := vm.RunPath(p, r.Slice(blob)); err != nil {
		return xerrors.Errorf("artifact: path %q: %w", name, err)
	}
	return nil
}

// HitRate reports the fraction of cache lookups that found a blob.
func (l *Loader) HitRate() float64 { return l.cache.HitRate() }
