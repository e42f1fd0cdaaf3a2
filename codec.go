// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Codec converts values to and from the bytes stored in an entry file. Both
// functions must be safe to call from several goroutines and Decode must
// accept whatever Encode produces.
type Codec[T any] struct {
	// Encode returns the bytes to persist for v. Returning false declines,
	// which leaves v uncached; a later lookup of the same key misses again.
	Encode func(v T) ([]byte, bool)
	// Decode rebuilds a value from an entry's bytes.
	Decode func(data []byte) (T, error)
}

// Bytes stores byte slices verbatim.
func Bytes() Codec[[]byte] {
	return Codec[[]byte]{
		Encode: func(v []byte) ([]byte, bool) { return v, true },
		Decode: func(data []byte) ([]byte, error) { return data, nil },
	}
}

// String stores strings verbatim.
func String() Codec[string] {
	return Codec[string]{
		Encode: func(v string) ([]byte, bool) { return []byte(v), true },
		Decode: func(data []byte) (string, error) { return string(data), nil },
	}
}

// JSON stores values as JSON. Values json.Marshal rejects are not cached.
func JSON[T any]() Codec[T] {
	return Codec[T]{
		Encode: func(v T) ([]byte, bool) {
			data, err := json.Marshal(v)
			if err != nil {
				log.WithError(err).Debug("json encode declined")
				return nil, false
			}
			return data, true
		},
		Decode: func(data []byte) (T, error) {
			var v T
			if err := json.Unmarshal(data, &v); err != nil {
				return v, fmt.Errorf("json decode: %w", err)
			}
			return v, nil
		},
	}
}

// YAML stores values as YAML. Values yaml.Marshal rejects are not cached.
func YAML[T any]() Codec[T] {
	return Codec[T]{
		Encode: func(v T) (data []byte, ok bool) {
			// yaml.v3 panics rather than erroring on some unsupported types.
			defer func() {
				if r := recover(); r != nil {
					log.Debugf("yaml encode declined: %v", r)
					data, ok = nil, false
				}
			}()
			data, err := yaml.Marshal(v)
			if err != nil {
				log.WithError(err).Debug("yaml encode declined")
				return nil, false
			}
			return data, true
		},
		Decode: func(data []byte) (T, error) {
			var v T
			if err := yaml.Unmarshal(data, &v); err != nil {
				return v, fmt.Errorf("yaml decode: %w", err)
			}
			return v, nil
		},
	}
}

// Zstd wraps inner so that entries are stored zstd-compressed.
func Zstd[T any](inner Codec[T]) Codec[T] {
	return Codec[T]{
		Encode: func(v T) ([]byte, bool) {
			data, ok := inner.Encode(v)
			if !ok {
				return nil, false
			}
			enc, _, err := zstdCoders()
			if err != nil {
				log.WithError(err).Debug("zstd encode declined")
				return nil, false
			}
			return enc.EncodeAll(data, make([]byte, 0, len(data))), true
		},
		Decode: func(data []byte) (T, error) {
			var zero T
			_, dec, err := zstdCoders()
			if err != nil {
				return zero, err
			}
			raw, err := dec.DecodeAll(data, nil)
			if err != nil {
				return zero, fmt.Errorf("zstd decode: %w", err)
			}
			return inner.Decode(raw)
		},
	}
}

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	errZstd  error
)

// zstdCoders returns process-wide coders. EncodeAll and DecodeAll are safe
// for concurrent use.
func zstdCoders() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEnc, errZstd = zstd.NewWriter(nil)
		if errZstd != nil {
			errZstd = fmt.Errorf("create zstd encoder: %w", errZstd)
			return
		}
		zstdDec, errZstd = zstd.NewReader(nil)
		if errZstd != nil {
			errZstd = fmt.Errorf("create zstd decoder: %w", errZstd)
		}
	})
	return zstdEnc, zstdDec, errZstd
}
