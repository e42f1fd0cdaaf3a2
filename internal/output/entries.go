// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/staranto/filecache/internal/cacheutil"
)

// EntryRows turns a cache listing into a dataset for Spit. Ages are relative
// to now.
func EntryRows(entries []cacheutil.Entry, now time.Time) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		kind := "entry"
		if e.Temp {
			kind = "temp"
		}
		rows = append(rows, map[string]interface{}{
			"kind":     kind,
			"key":      e.Key,
			"path":     e.Path,
			"bytes":    e.Size,
			"size":     humanize.Bytes(uint64(e.Size)),
			"modified": e.ModTime.UTC().Format(time.RFC3339),
			"age":      humanize.RelTime(e.ModTime, now, "ago", "from now"),
		})
	}
	return rows
}
