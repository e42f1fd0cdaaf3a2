// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// FILECACHE_LOG env variable. Logs go to stderr so they never mix with entry
// content written to stdout.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("FILECACHE_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages as a single line with sorted fields.
type CustomHandler struct {
	Writer io.Writer
	// Now is used for timestamps when set; tests pin it.
	Now func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", now().Format("2006-01-02 15:04:05"), strings.ToUpper(e.Level.String()), e.Message)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
