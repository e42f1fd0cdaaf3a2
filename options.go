// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filecache

import "io/fs"

// Option configures a Cache.
type Option func(*options)

type options struct {
	singleWriter bool
	dirPerm      fs.FileMode
	filePerm     fs.FileMode
}

func defaultOptions() options {
	return options{
		dirPerm:  0o755, //nolint:mnd
		filePerm: 0o600, //nolint:mnd
	}
}

// WithSingleWriter makes saves create or truncate the entry file directly
// instead of going through an exclusive temp file and a rename. Use it only
// when nothing else writes to the same directory; concurrent writers can
// then leave a torn entry behind.
func WithSingleWriter() Option {
	return func(o *options) {
		o.singleWriter = true
	}
}

// WithPerm sets the modes used for created directories and entry files. The
// process umask still applies.
func WithPerm(dir, file fs.FileMode) Option {
	return func(o *options) {
		o.dirPerm = dir
		o.filePerm = file
	}
}
