// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"

	"github.com/staranto/filecache/internal/cacheutil"
)

func (c *Cache[T]) save(path string, data []byte) error {
	if c.opts.singleWriter {
		return saveDirect(path, data, c.opts.filePerm)
	}
	return saveAtomically(path, data, c.opts.filePerm)
}

// saveAtomically publishes data at path so that readers see either no file or
// the complete content. More than one process may save the same entry at
// once:
//  1. Create "<path>.save" exclusively. This fails if the file exists.
//  2. If it exists, another writer owns this entry; return without writing.
//  3. Otherwise write it and rename it over path.
func saveAtomically(path string, data []byte, perm fs.FileMode) error {
	tmp := path + cacheutil.TempSuffix

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.WithField("path", tmp).Debug("save already in progress, skipping")
			return nil
		}
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write cache temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close cache temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename cache temp file: %w", err)
	}
	return nil
}

// saveDirect creates or truncates path and writes data. It is only safe when
// a single writer touches the cache.
func saveDirect(path string, data []byte, perm fs.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
