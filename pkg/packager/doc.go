// Package packager turns a finished workspace into a single compressed
// bundle for offline analysis.
//
// The archive is written next to the workspace as <workspace-name>.zip
// and is deterministic for a given tree: entries are sorted, timestamps
// fixed, and modes normalized, so packaging the same run twice overwrites
// the prior archive with identical bytes. A checksum inventory of every
// collected file is generated into the workspace before archiving.
//
// Packaging is one of the two operations allowed to fail the whole
// pipeline: a bundle that cannot be written makes the run valueless to
// the caller.
package packager
