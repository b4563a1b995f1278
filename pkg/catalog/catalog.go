/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/diagpack/diagpack/pkg/errors"
)

// Default returns the built-in ordered task catalog. The enumeration of
// paths, channels, and tools is host configuration data; replace it with
// Load for other hosts.
func Default() []Task {
	return []Task{
		{Name: "os-release", Kind: KindFileCopy, Source: "/etc/os-release", Dest: "system/os-release"},
		{Name: "kernel-cmdline", Kind: KindFileCopy, Source: "/proc/cmdline", Dest: "system/cmdline"},
		{Name: "meminfo", Kind: KindFileCopy, Source: "/proc/meminfo", Dest: "system/meminfo"},
		{Name: "uname", Kind: KindCommandCapture, Source: "uname", Args: []string{"-a"}, Dest: "system/uname.txt"},
		{Name: "disk-usage", Kind: KindCommandCapture, Source: "df", Args: []string{"-h"}, Dest: "system/df.txt"},
		{Name: "kernel-logs", Kind: KindTreeCopy, Source: "/var/log/kern.log*", Dest: "logs/kernel"},
		{Name: "dpkg-logs", Kind: KindTreeCopy, Source: "/var/log/dpkg.log*", Dest: "logs/dpkg"},
		{Name: "apt-logs", Kind: KindTreeCopy, Source: "/var/log/apt/*", Dest: "logs/apt"},
		{Name: "failed-units", Kind: KindCommandCapture, Source: "systemctl",
			Args: []string{"list-units", "--failed", "--no-pager"}, Dest: "services/failed-units.txt"},
		{Name: "journal-ssh", Kind: KindChannelExport, Source: "ssh.service", Dest: "journal/ssh.log"},
		{Name: "journal-cron", Kind: KindChannelExport, Source: "cron.service", Dest: "journal/cron.log"},
		{Name: "journald-state", Kind: KindServiceState, Source: "systemd-journald.service",
			Dest: "services/systemd-journald.yaml"},
		{Name: "update-history", Kind: KindCommandCapture, Source: "journalctl",
			Args: []string{"--merge", "-t", "dpkg", "--no-pager"},
			Dest: "logs/update-history.txt", Gate: GateUpdateHistory},
		{Name: "support-bundle", Kind: KindToolInvocation, Source: "nvidia-bug-report.sh",
			Args:     []string{"--output-file", "{dest}/nvidia-bug-report.log.gz"},
			Dest:     "support", Artifact: "nvidia-bug-report.log.gz",
			Gate: GateSupportBundle},
	}
}

// catalogFile is the YAML document shape accepted by Load.
type catalogFile struct {
	Tasks []Task `yaml:"tasks"`
}

// Load reads a task catalog from a YAML file and validates it.
func Load(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "cannot read catalog file", err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "cannot parse catalog file", err)
	}
	if len(doc.Tasks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "catalog contains no tasks")
	}
	if err := Validate(doc.Tasks); err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// Validate checks a catalog for structural problems: duplicate or empty
// names, unknown kinds, missing sources, and destination paths that would
// escape the workspace.
func Validate(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.Name == "" {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("task %d has no name", i))
		}
		if seen[t.Name] {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate task name %q", t.Name))
		}
		seen[t.Name] = true

		switch t.Kind {
		case KindFileCopy, KindTreeCopy, KindCommandCapture,
			KindChannelExport, KindToolInvocation, KindServiceState:
		default:
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("task %q has unknown kind %q", t.Name, t.Kind))
		}

		if t.Source == "" {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("task %q has no source", t.Name))
		}
		if err := validateDest(t.Name, t.Dest); err != nil {
			return err
		}
		if t.Artifact != "" && t.Kind != KindToolInvocation {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("task %q sets artifact but is not a tool invocation", t.Name))
		}
	}
	return nil
}

// validateDest rejects destinations that are empty, absolute, or would
// escape the workspace root.
func validateDest(name, dest string) error {
	if dest == "" {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("task %q has no destination", name))
	}
	if filepath.IsAbs(dest) {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("task %q destination must be workspace-relative", name))
	}
	clean := filepath.Clean(dest)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("task %q destination escapes the workspace", name))
	}
	return nil
}
