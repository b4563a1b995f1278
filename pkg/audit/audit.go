/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package audit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// FileName is the audit log file name inside the workspace.
const FileName = "collection.log"

// timeFormat is the prefix format for every recorded line.
const timeFormat = "2006-01-02T15:04:05Z"

// Log is an append-only audit record mirrored to an interactive console.
// The zero value is unusable; use New.
type Log struct {
	mu      sync.Mutex
	file    *os.File
	console io.Writer
	now     func() time.Time
}

// New opens (or creates) the audit log file at path. Entries are mirrored
// to console unless quiet is true. If the file cannot be opened the log
// degrades to console-only output; collection is never blocked on audit
// availability.
func New(path string, console io.Writer, quiet bool) *Log {
	l := &Log{now: time.Now}
	if !quiet {
		l.console = console
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("audit log unavailable, falling back to console only",
			"path", path, "error", err)
		return l
	}
	l.file = f
	return l
}

// Record appends one timestamped line to the audit file and, unless
// silenced, writes the same line to the console. A failed file write
// disables the file sink for the remainder of the run.
func (l *Log) Record(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stamped := fmt.Sprintf("%s  %s\n", l.now().UTC().Format(timeFormat), line)

	if l.file != nil {
		if _, err := l.file.WriteString(stamped); err != nil {
			slog.Warn("audit log write failed, continuing console only", "error", err)
			_ = l.file.Close()
			l.file = nil
		}
	}
	if l.console != nil {
		fmt.Fprint(l.console, stamped)
	}
}

// Recordf is Record with fmt.Sprintf formatting.
func (l *Log) Recordf(format string, args ...any) {
	l.Record(fmt.Sprintf(format, args...))
}

// Close flushes and closes the underlying file, if any.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
