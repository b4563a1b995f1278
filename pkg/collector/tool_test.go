/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/collector"
)

func writeFakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-tool")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestToolInvocation(t *testing.T) {
	tool := writeFakeTool(t, "#!/bin/sh\necho diagnostics > \"$2\"\n")

	ws := newWorkspace(t)
	c := &collector.ToolCollector{}

	out := c.Collect(t.Context(), ws, catalog.Task{
		Name: "support-bundle", Kind: catalog.KindToolInvocation,
		Source:   tool,
		Args:     []string{"--output-file", "{dest}/bundle.log"},
		Dest:     "support",
		Artifact: "bundle.log",
	})

	assert.Equal(t, catalog.StatusCollected, out.Status)
	data, err := os.ReadFile(ws.Resolve("support/bundle.log"))
	require.NoError(t, err)
	assert.Equal(t, "diagnostics\n", string(data))
}

func TestToolInvocationUnavailable(t *testing.T) {
	ws := newWorkspace(t)
	c := &collector.ToolCollector{}

	out := c.Collect(t.Context(), ws, catalog.Task{
		Name: "support-bundle", Kind: catalog.KindToolInvocation,
		Source: "no-such-diagnostic-tool", Dest: "support", Artifact: "x.log",
	})

	assert.Equal(t, catalog.StatusFailed, out.Status)
	assert.Contains(t, out.Detail, "tool unavailable")
}

func TestToolInvocationNoArtifact(t *testing.T) {
	// Tool exits cleanly but writes nothing.
	tool := writeFakeTool(t, "#!/bin/sh\nexit 0\n")

	ws := newWorkspace(t)
	c := &collector.ToolCollector{}

	out := c.Collect(t.Context(), ws, catalog.Task{
		Name: "support-bundle", Kind: catalog.KindToolInvocation,
		Source: tool, Dest: "support", Artifact: "bundle.log",
	})

	assert.Equal(t, catalog.StatusFailed, out.Status)
	assert.Contains(t, out.Detail, "produced no output artifact")
}

func TestToolInvocationFailure(t *testing.T) {
	tool := writeFakeTool(t, "#!/bin/sh\necho cannot probe hardware >&2\nexit 2\n")

	ws := newWorkspace(t)
	c := &collector.ToolCollector{}

	out := c.Collect(t.Context(), ws, catalog.Task{
		Name: "support-bundle", Kind: catalog.KindToolInvocation,
		Source: tool, Dest: "support", Artifact: "bundle.log",
	})

	assert.Equal(t, catalog.StatusFailed, out.Status)
	assert.Contains(t, out.Detail, "tool failed")
	assert.Contains(t, out.Detail, "cannot probe hardware")
}
