// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// TempSuffix is appended to an entry path to name the file a writer fills
// before renaming it into place.
const TempSuffix = ".save"

// Entry describes one file found beneath a cache namespace directory.
type Entry struct {
	// Key is the slash-separated path relative to the namespace directory. For
	// temp files it is the key of the entry being written, without TempSuffix.
	Key     string
	Path    string
	Size    int64
	ModTime time.Time
	// Temp is true for a "<key>.save" file. One that outlives its writer is an
	// orphan left by a crash between create and rename.
	Temp bool
}

// BaseDir resolves the base cache directory.
// Precedence:
//  1. FILECACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()
//
// Returns ("", false) if a base cannot be resolved (treat as unavailable).
func BaseDir() (string, bool) {
	if c, ok := os.LookupEnv("FILECACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return dir, true
	}
	return "", false
}

// NamespaceDir joins subPath beneath base. It refuses a subPath that resolves
// to base itself or climbs out of it, since callers go on to delete the
// result recursively.
func NamespaceDir(base, subPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(subPath))
	if clean == "." || !filepath.IsLocal(clean) {
		return "", fmt.Errorf("invalid cache namespace %q", subPath)
	}
	return filepath.Join(base, clean), nil
}

// List walks dir and returns every regular file beneath it sorted by key,
// temp files included. A missing dir yields no entries and no error.
func List(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		e := Entry{
			Key:     filepath.ToSlash(rel),
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if strings.HasSuffix(e.Key, TempSuffix) {
			e.Key = strings.TrimSuffix(e.Key, TempSuffix)
			e.Temp = true
			log.Debugf("found temp file %s", path)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cache directory: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Key != entries[j].Key {
			return entries[i].Key < entries[j].Key
		}
		return !entries[i].Temp && entries[j].Temp
	})
	return entries, nil
}
