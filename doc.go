// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filecache is a filesystem-backed memoization cache. A Cache maps
// keys to files beneath a per-user cache directory. A miss runs the caller's
// producer once and persists the encoded result, so later lookups, including
// lookups from other processes sharing the directory, read it back instead.
//
// Writers of the same key need no locks. Each writer exclusively creates
// "<key>.save", fills it and renames it over the entry; a writer that finds
// the temp file already present leaves the save to whoever created it. The
// first committed writer wins, and racing callers each still get the value
// their own producer returned. A crash between create and rename leaves the
// temp file behind, and nothing here reclaims it.
//
// There is no expiry or eviction. Flush and Invalidate discard a whole
// namespace.
package filecache
