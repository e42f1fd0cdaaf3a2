// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filters implements the --filter expressions used to narrow cache
// listings.
package filters
