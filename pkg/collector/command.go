/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// CommandCollector runs a read-only diagnostic command and captures its
// standard output to the task's destination file.
type CommandCollector struct{}

// Collect implements the Collector interface.
func (c *CommandCollector) Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome {
	bin, err := exec.LookPath(task.Source)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("command unavailable: %s not found on search path", task.Source))
	}

	dest := ws.Resolve(task.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create destination: %v", err))
	}

	out, err := os.Create(dest)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create capture file: %v", err))
	}
	defer out.Close()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, task.Args...)
	cmd.Stdout = out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("%s: %v%s", task.Source, err, stderrHint(&stderr)))
	}
	return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
}

// stderrHint returns the first stderr line as outcome detail context.
func stderrHint(b *bytes.Buffer) string {
	line := strings.TrimSpace(b.String())
	if line == "" {
		return ""
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return fmt.Sprintf(" (%s)", line)
}
