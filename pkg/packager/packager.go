/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package packager

import (
	"archive/zip"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/diagpack/diagpack/pkg/errors"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// ArchiveExt is the bundle file extension.
const ArchiveExt = ".zip"

// fixedTime keeps the archive byte-stable across repeated packaging of
// the same tree.
var fixedTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Package compresses the entire workspace tree into a sibling archive
// named <workspace-name>.zip, overwriting any pre-existing archive with
// that exact name. It returns the bundle path. Any failure here is
// terminal for the run.
func Package(ws *workspace.Workspace) (string, error) {
	if err := WriteChecksums(ws); err != nil {
		// The checksum inventory is derived documentation; a bundle
		// without it is still deliverable.
		slog.Warn("checksum generation failed, bundling without inventory", "error", err)
	}

	entries, err := listEntries(ws.Path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnavailable, "cannot enumerate workspace", err)
	}

	bundlePath := ws.Path + ArchiveExt
	f, err := os.Create(bundlePath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnavailable, "cannot create bundle archive", err)
	}

	zw := zip.NewWriter(f)
	for _, entry := range entries {
		if err := addEntry(zw, ws.Path, entry); err != nil {
			_ = zw.Close()
			_ = f.Close()
			return "", errors.WrapWithContext(errors.ErrCodeUnavailable,
				"cannot write bundle archive", err, map[string]any{"entry": entry})
		}
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return "", errors.Wrap(errors.ErrCodeUnavailable, "cannot finalize bundle archive", err)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeUnavailable, "cannot finalize bundle archive", err)
	}

	slog.Debug("bundle written", "path", bundlePath, "entries", len(entries))
	return bundlePath, nil
}

// listEntries returns every path under root, workspace-relative, sorted
// for deterministic archive layout. Directories are included so empty
// categories survive the round trip.
func listEntries(root string) ([]string, error) {
	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}

// addEntry writes one file or directory entry with normalized header
// fields.
func addEntry(zw *zip.Writer, root, rel string) error {
	abs := filepath.Join(root, rel)
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	name := filepath.ToSlash(rel)
	if info.IsDir() {
		h := &zip.FileHeader{Name: name + "/", Modified: fixedTime}
		h.SetMode(0o755 | os.ModeDir)
		_, err := zw.CreateHeader(h)
		return err
	}

	h := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: fixedTime}
	h.SetMode(normalizeMode(info.Mode()))
	w, err := zw.CreateHeader(h)
	if err != nil {
		return err
	}

	in, err := os.Open(abs)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(w, in)
	return err
}

func normalizeMode(mode os.FileMode) os.FileMode {
	if mode&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
