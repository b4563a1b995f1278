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

// defaultExporter is the log channel exporter used on systemd hosts.
const defaultExporter = "journalctl"

// ChannelCollector exports a named log channel to a destination file.
// The channel is probed before export so that "channel absent" is
// reported distinctly from an export that broke.
type ChannelCollector struct {
	// Exporter is the exporter binary name or path.
	Exporter string
}

// Collect implements the Collector interface.
func (c *ChannelCollector) Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome {
	exporter, err := exec.LookPath(c.Exporter)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("exporter unavailable: %s not found on search path", c.Exporter))
	}

	// Probe: an empty result means the channel has no presence on this
	// host, which is a different triage path than an export error.
	probe := exec.CommandContext(ctx, exporter, "-q", "-u", task.Source, "-n", "1", "-o", "cat")
	probeOut, err := probe.Output()
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("channel probe failed: %v", err))
	}
	if len(bytes.TrimSpace(probeOut)) == 0 {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("channel absent: no entries for %s", task.Source))
	}

	dest := ws.Resolve(task.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create destination: %v", err))
	}

	out, err := os.Create(dest)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create export file: %v", err))
	}
	defer out.Close()

	var stderr strings.Builder
	export := exec.CommandContext(ctx, exporter, "-u", task.Source, "--no-pager")
	export.Stdout = out
	export.Stderr = &stderr

	if err := export.Run(); err != nil {
		detail := fmt.Sprintf("export failed: %v", err)
		if s := strings.TrimSpace(stderr.String()); s != "" {
			detail = fmt.Sprintf("%s (%s)", detail, firstLine(s))
		}
		return catalog.NewOutcome(task.Name, catalog.StatusFailed, detail)
	}
	return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
