/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// FileCollector copies files and directory trees into the workspace. The
// task source may contain glob wildcards; a source matching nothing is an
// expected, non-fatal absence.
type FileCollector struct{}

// Collect implements the Collector interface.
func (c *FileCollector) Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome {
	if err := ctx.Err(); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed, err.Error())
	}

	matches, err := filepath.Glob(task.Source)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("invalid source pattern %q: %v", task.Source, err))
	}
	if len(matches) == 0 {
		return catalog.NewOutcome(task.Name, catalog.StatusNotFound,
			fmt.Sprintf("no match for %s", task.Source))
	}

	dest := ws.Resolve(task.Dest)

	// A single-file copy writes the destination as a file; everything
	// else lands under the destination directory by base name.
	if task.Kind == catalog.KindFileCopy && len(matches) == 1 {
		info, err := os.Stat(matches[0])
		if err != nil {
			return catalog.NewOutcome(task.Name, catalog.StatusFailed, err.Error())
		}
		if info.Mode().IsRegular() {
			if err := copyFile(matches[0], dest); err != nil {
				return catalog.NewOutcome(task.Name, catalog.StatusFailed, err.Error())
			}
			return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
		}
	}

	copied := 0
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return catalog.NewOutcome(task.Name, catalog.StatusFailed, err.Error())
		}
		target := filepath.Join(dest, filepath.Base(match))
		if err := copyEntry(match, target); err != nil {
			return catalog.NewOutcome(task.Name, catalog.StatusFailed, err.Error())
		}
		copied++
	}
	return catalog.NewOutcome(task.Name, catalog.StatusCollected,
		fmt.Sprintf("%d entries", copied))
}

// copyEntry copies a file or recurses into a directory, preserving
// relative structure under dst.
func copyEntry(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(src, dst)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// copyFile copies one regular file, creating parent directories.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
