// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// OrInsertWith returns the value stored for key. On a miss it calls producer
// once, persists the result when the codec agrees to encode it, and returns
// the result. The returned value is always the one producer computed, even
// when a concurrent writer's value is the one that ends up on disk.
func (c *Cache[T]) OrInsertWith(key string, producer func() T) (T, error) {
	return c.OrTryInsertWith(key, func() (T, error) {
		return producer(), nil
	})
}

// OrTryInsertWith is OrInsertWith for a producer that can fail. A producer
// error is returned as is and nothing is persisted.
func (c *Cache[T]) OrTryInsertWith(key string, producer func() (T, error)) (T, error) {
	var zero T

	path, err := c.Path(key)
	if err != nil {
		return zero, err
	}
	if err := os.MkdirAll(filepath.Dir(path), c.opts.dirPerm); err != nil {
		return zero, fmt.Errorf("failed to create cache directory: %w", err)
	}

	v, found, err := c.read(path)
	if err != nil || found {
		return v, err
	}

	v, err = producer()
	if err != nil {
		return zero, err
	}

	data, ok := c.codec.Encode(v)
	if !ok {
		log.WithField("key", key).Debug("cache miss; value not encodable, skipping save")
		return v, nil
	}
	if err := c.save(path, data); err != nil {
		return zero, err
	}
	log.WithFields(log.Fields{"key": key, "bytes": len(data)}).Debug("cache miss; saved")
	return v, nil
}

// Get returns the value stored for key without producing one. found is false
// when there is no entry.
func (c *Cache[T]) Get(key string) (v T, found bool, err error) {
	path, err := c.Path(key)
	if err != nil {
		return v, false, err
	}
	return c.read(path)
}

func (c *Cache[T]) read(path string) (T, bool, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("failed to open cache entry: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return zero, false, fmt.Errorf("failed to stat cache entry: %w", err)
	}
	if !info.Mode().IsRegular() {
		return zero, false, fmt.Errorf("cache entry %s is not a regular file", path)
	}
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return zero, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	v, err := c.codec.Decode(buf)
	if err != nil {
		return zero, false, fmt.Errorf("failed to decode cache entry %s: %w", path, err)
	}
	log.WithField("path", path).Debug("cache hit")
	return v, true, nil
}
