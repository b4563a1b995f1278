/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diagpack/diagpack/pkg/errors"
)

// DefaultPrefix is the workspace directory name prefix.
const DefaultPrefix = "diag"

// timestampFormat qualifies workspace names so runs never collide.
const timestampFormat = "20060102T150405Z"

// Workspace is the on-disk root directory for one collection run.
type Workspace struct {
	// Path is the absolute workspace directory.
	Path string
	// RunID is the workspace base name (prefix + timestamp); the bundle
	// is named from it.
	RunID string
	// ID is a unique identifier for the run, recorded in the manifest
	// and report.
	ID string
	// CreatedAt is the workspace creation time.
	CreatedAt time.Time
}

// Resolve joins a workspace-relative destination into an absolute path.
func (w *Workspace) Resolve(rel string) string {
	return filepath.Join(w.Path, rel)
}

// Manager creates workspaces and writes their manifests.
type Manager struct {
	// Prefix overrides DefaultPrefix when non-empty.
	Prefix string
}

// Create builds a fresh, uniquely named workspace directory under root.
// This is a fatal precondition: an error here aborts the run.
func (m *Manager) Create(root string) (*Workspace, error) {
	prefix := m.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "cannot create output root", err)
	}

	now := time.Now().UTC()
	runID := fmt.Sprintf("%s_%s", prefix, now.Format(timestampFormat))

	// Two runs inside the same second disambiguate with a counter.
	candidate := runID
	for i := 2; ; i++ {
		path := filepath.Join(root, candidate)
		err := os.Mkdir(path, 0o755)
		if err == nil {
			abs, aerr := filepath.Abs(path)
			if aerr != nil {
				abs = path
			}
			return &Workspace{
				Path:      abs,
				RunID:     candidate,
				ID:        uuid.NewString(),
				CreatedAt: now,
			}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInternal, "cannot create workspace", err)
		}
		if i > 100 {
			return nil, errors.Wrap(errors.ErrCodeInternal, "cannot create workspace", err)
		}
		candidate = fmt.Sprintf("%s_%d", runID, i)
	}
}

// HostInfo identifies the host a run was collected from.
type HostInfo struct {
	Hostname string
	OS       string
	Arch     string
	Kernel   string
}

// CollectHostInfo gathers host identity for the manifest header. Every
// field is best effort.
func CollectHostInfo() HostInfo {
	hi := HostInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
	if name, err := os.Hostname(); err == nil {
		hi.Hostname = name
	}
	if data, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		hi.Kernel = strings.TrimSpace(string(data))
	}
	return hi
}
