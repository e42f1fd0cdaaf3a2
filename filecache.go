// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/filecache/internal/cacheutil"
)

// ErrInvalidKey is returned for a key that is empty, absolute, climbs out of
// the cache directory, or has a path segment ending in the temp file suffix.
var ErrInvalidKey = errors.New("invalid cache key")

// Cache is a handle on one cache directory and the codec for its entries.
// Create one with New or NewAt.
type Cache[T any] struct {
	dir   string
	codec Codec[T]
	opts  options
}

// New returns a Cache rooted at subPath beneath the platform cache directory
// (FILECACHE_DIR, or os.UserCacheDir). The second return value is false when
// no such directory can be determined; callers should then run uncached.
// Nothing is created on disk until the first write.
func New[T any](subPath string, codec Codec[T], opts ...Option) (*Cache[T], bool) {
	base, ok := cacheutil.BaseDir()
	if !ok {
		return nil, false
	}
	return NewAt(filepath.Join(base, subPath), codec, opts...), true
}

// NewAt returns a Cache rooted at dir.
func NewAt[T any](dir string, codec Codec[T], opts ...Option) *Cache[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T]{dir: dir, codec: codec, opts: o}
}

// Dir returns the cache's root directory.
func (c *Cache[T]) Dir() string {
	return c.dir
}

// Path returns the file that holds key's entry.
func (c *Cache[T]) Path(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(c.dir, filepath.FromSlash(key)), nil
}

// Flush discards every entry by removing the root directory and recreating
// it empty. A root directory that does not exist yet is left alone.
func (c *Cache[T]) Flush() error {
	if _, err := os.Lstat(c.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat cache directory: %w", err)
	}
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("failed to remove cache directory: %w", err)
	}
	// Another process may already have recreated it with its first write.
	if err := os.Mkdir(c.dir, c.opts.dirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("failed to recreate cache directory: %w", err)
	}
	log.WithField("dir", c.dir).Debug("flushed cache")
	return nil
}

// Invalidate removes the namespace subPath beneath the platform cache
// directory without needing a Cache of the matching value type. The first
// return value is false when no platform cache directory exists. Removing a
// namespace that is already gone succeeds.
func Invalidate(subPath string) (bool, error) {
	base, ok := cacheutil.BaseDir()
	if !ok {
		return false, nil
	}
	dir, err := cacheutil.NamespaceDir(base, subPath)
	if err != nil {
		return true, err
	}
	if err := os.RemoveAll(dir); err != nil {
		return true, fmt.Errorf("failed to invalidate cache: %w", err)
	}
	log.WithField("dir", dir).Debug("invalidated cache")
	return true, nil
}

func validateKey(key string) error {
	local := filepath.FromSlash(key)
	switch {
	case key == "":
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	case !filepath.IsLocal(local) || filepath.Clean(local) == ".":
		return fmt.Errorf("%w: %q is not a relative path inside the cache", ErrInvalidKey, key)
	}
	// A segment named like a temp file would collide with a sibling entry's
	// in-flight save.
	for _, seg := range strings.Split(filepath.ToSlash(filepath.Clean(local)), "/") {
		if strings.HasSuffix(seg, cacheutil.TempSuffix) {
			return fmt.Errorf("%w: %q has a segment ending in the reserved %s suffix", ErrInvalidKey, key, cacheutil.TempSuffix)
		}
	}
	return nil
}
