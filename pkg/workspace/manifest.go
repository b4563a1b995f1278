/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package workspace

import (
	"fmt"
	"os"
	"strings"

	"github.com/diagpack/diagpack/pkg/report"
)

// ManifestFileName is the human-readable run summary inside the workspace.
const ManifestFileName = "MANIFEST.txt"

// categories describes the expected artifact layout. Documentation for
// the person opening the bundle, not validated data.
var categories = []struct{ path, desc string }{
	{"system/", "OS identity, kernel command line, memory and disk captures"},
	{"logs/", "kernel, package manager, and update history logs"},
	{"journal/", "exported journal channels"},
	{"services/", "unit state and failed-unit listings"},
	{"support/", "optional vendor support bundle"},
	{"collection.log", "audit record of every action taken in this run"},
	{"report.yaml", "machine-readable task outcome report"},
}

// WriteManifest renders the run header, the expected artifact categories,
// and the per-task outcomes into MANIFEST.txt. The manifest is
// documentation; a write failure must be logged and tolerated by the
// caller, never escalated.
func (m *Manager) WriteManifest(ws *Workspace, rep *report.RunReport, host HostInfo) error {
	var b strings.Builder

	fmt.Fprintf(&b, "diagpack collection manifest\n")
	fmt.Fprintf(&b, "============================\n\n")
	fmt.Fprintf(&b, "run:       %s\n", ws.RunID)
	fmt.Fprintf(&b, "id:        %s\n", ws.ID)
	fmt.Fprintf(&b, "host:      %s (%s/%s", host.Hostname, host.OS, host.Arch)
	if host.Kernel != "" {
		fmt.Fprintf(&b, ", kernel %s", host.Kernel)
	}
	fmt.Fprintf(&b, ")\n")
	fmt.Fprintf(&b, "created:   %s\n", ws.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "workspace: %s\n\n", ws.Path)

	fmt.Fprintf(&b, "Expected artifact categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "  %-16s %s\n", c.path, c.desc)
	}

	if rep != nil {
		fmt.Fprintf(&b, "\nTask outcomes (%s):\n", rep.Summary())
		for _, o := range rep.Outcomes {
			if o.Detail != "" {
				fmt.Fprintf(&b, "  %-20s %-10s %s\n", o.Task, o.Status, o.Detail)
			} else {
				fmt.Fprintf(&b, "  %-20s %s\n", o.Task, o.Status)
			}
		}
	}

	if err := os.WriteFile(ws.Resolve(ManifestFileName), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// WriteReport serializes the machine-readable run report into the
// workspace. Best effort, same tolerance as the manifest.
func (m *Manager) WriteReport(ws *Workspace, rep *report.RunReport) error {
	return rep.WriteFile(ws.Resolve(report.FileName))
}
