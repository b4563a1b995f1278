/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/report"
	"github.com/diagpack/diagpack/pkg/workspace"
)

func TestCreate(t *testing.T) {
	root := t.TempDir()
	m := &workspace.Manager{}

	ws, err := m.Create(root)
	require.NoError(t, err)

	assert.DirExists(t, ws.Path)
	assert.True(t, strings.HasPrefix(ws.RunID, workspace.DefaultPrefix+"_"))
	assert.Equal(t, ws.RunID, filepath.Base(ws.Path))
	assert.NotEmpty(t, ws.ID)
	assert.False(t, ws.CreatedAt.IsZero())
}

func TestCreateMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b", "c")
	m := &workspace.Manager{Prefix: "probe"}

	ws, err := m.Create(root)
	require.NoError(t, err)
	assert.DirExists(t, ws.Path)
}

func TestCreateNeverCollides(t *testing.T) {
	root := t.TempDir()
	m := &workspace.Manager{}

	seen := map[string]bool{}
	for range 5 {
		ws, err := m.Create(root)
		require.NoError(t, err)
		assert.False(t, seen[ws.Path], "workspace path reused: %s", ws.Path)
		seen[ws.Path] = true
	}
}

func TestCreateFailsOnUnwritableRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o500))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	m := &workspace.Manager{}
	_, err := m.Create(root)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	ws := &workspace.Workspace{Path: "/tmp/diag_x"}
	assert.Equal(t, filepath.Join("/tmp/diag_x", "logs", "apt"), ws.Resolve("logs/apt"))
}

func TestWriteManifest(t *testing.T) {
	root := t.TempDir()
	m := &workspace.Manager{}
	ws, err := m.Create(root)
	require.NoError(t, err)

	rep := &report.RunReport{RunID: ws.RunID, StartedAt: time.Now().UTC()}
	rep.Append(catalog.NewOutcome("os-release", catalog.StatusCollected, ""))
	rep.Append(catalog.NewOutcome("journal-ssh", catalog.StatusNotFound, "channel absent"))
	rep.FinishedAt = time.Now().UTC()
	rep.Compute()

	host := workspace.HostInfo{Hostname: "testhost", OS: "linux", Arch: "amd64"}
	require.NoError(t, m.WriteManifest(ws, rep, host))

	data, err := os.ReadFile(ws.Resolve(workspace.ManifestFileName))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, ws.RunID)
	assert.Contains(t, text, ws.ID)
	assert.Contains(t, text, "testhost")
	assert.Contains(t, text, "os-release")
	assert.Contains(t, text, "channel absent")
	assert.Contains(t, text, "collection.log")
}

func TestWriteReport(t *testing.T) {
	root := t.TempDir()
	m := &workspace.Manager{}
	ws, err := m.Create(root)
	require.NoError(t, err)

	rep := &report.RunReport{RunID: ws.RunID}
	rep.Append(catalog.NewOutcome("uname", catalog.StatusCollected, ""))
	rep.Compute()

	require.NoError(t, m.WriteReport(ws, rep))
	assert.FileExists(t, ws.Resolve(report.FileName))
}
