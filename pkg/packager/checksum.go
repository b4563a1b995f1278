/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package packager

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/diagpack/diagpack/pkg/workspace"
)

// ChecksumFileName is the checksum inventory file inside the workspace.
const ChecksumFileName = "checksums.txt"

// WriteChecksums creates a checksums.txt in the workspace containing the
// SHA256 of every collected file, one "<digest>  <relative path>" line
// per file in sorted order. The inventory never includes itself.
func WriteChecksums(ws *workspace.Workspace) error {
	var files []string
	err := filepath.WalkDir(ws.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(path) == ChecksumFileName {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to enumerate workspace for checksums: %w", err)
	}
	sort.Strings(files)

	lines := make([]string, 0, len(files))
	for _, file := range files {
		digest, err := fileDigest(file)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", file, err)
		}
		rel, err := filepath.Rel(ws.Path, file)
		if err != nil {
			rel = file
		}
		lines = append(lines, fmt.Sprintf("%s  %s", digest, filepath.ToSlash(rel)))
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(ws.Resolve(ChecksumFileName), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write checksums: %w", err)
	}
	return nil
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
