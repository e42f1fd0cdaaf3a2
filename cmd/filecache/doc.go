// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Command filecache inspects and manages the namespaces written by the
// filecache package: print a namespace directory, list or show entries, flush
// or invalidate a namespace.
package main
