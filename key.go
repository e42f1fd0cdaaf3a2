// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// HashKey derives a fixed-length, filesystem-safe key from arbitrary parts.
// Each part is length-prefixed, so ("ab", "c") and ("a", "bc") differ. The
// hash is not cryptographic; do not use it where keys are attacker-chosen.
func HashKey(parts ...string) string {
	h := xxh3.New()
	buf := make([]byte, 8) //nolint:mnd
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf, uint64(len(p)))
		_, _ = h.Write(buf)
		_, _ = h.Write([]byte(p))
	}
	sum := h.Sum128().Bytes()
	return hex.EncodeToString(sum[:])
}

// ShardKey spreads hashed keys over subdirectories named by their first two
// characters, keeping any one directory small. Keys shorter than three
// characters are returned unchanged.
func ShardKey(key string) string {
	if len(key) < 3 { //nolint:mnd
		return key
	}
	return key[:2] + "/" + key[2:]
}
