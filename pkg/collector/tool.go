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

// destToken expands to the task's absolute destination directory in tool
// arguments.
const destToken = "{dest}"

// ToolCollector launches an external diagnostic utility with a fixed
// argument set, waits for completion, then verifies the expected output
// artifact exists. Availability is probed by attempting invocation, not
// assumed.
type ToolCollector struct{}

// Collect implements the Collector interface.
func (c *ToolCollector) Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome {
	bin, err := exec.LookPath(task.Source)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("tool unavailable: %s not found on search path", task.Source))
	}

	destDir := ws.Resolve(task.Dest)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create destination: %v", err))
	}

	args := make([]string, len(task.Args))
	for i, a := range task.Args {
		args[i] = strings.ReplaceAll(a, destToken, destDir)
	}

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	cmd.Dir = destDir

	if err := cmd.Run(); err != nil {
		detail := fmt.Sprintf("tool failed: %v", err)
		if s := strings.TrimSpace(output.String()); s != "" {
			detail = fmt.Sprintf("%s (%s)", detail, firstLine(s))
		}
		return catalog.NewOutcome(task.Name, catalog.StatusFailed, detail)
	}

	if task.Artifact != "" {
		artifact := filepath.Join(destDir, task.Artifact)
		if _, err := os.Stat(artifact); err != nil {
			return catalog.NewOutcome(task.Name, catalog.StatusFailed,
				fmt.Sprintf("tool ran but produced no output artifact (%s)", task.Artifact))
		}
	}
	return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
}
