// Package cli implements the command-line interface for diagpack.
//
// # Overview
//
// The diagpack CLI collects a best-effort set of diagnostic artifacts
// from the local host into a timestamped workspace and packages the
// workspace into a single zip bundle for offline analysis. Collection
// never mutates host state; absent sources are recorded and skipped, and
// no single task failure stops a run.
//
// # Commands
//
// collect - Run the collection pipeline:
//
//	diagpack collect [--output DIR] [--catalog FILE]
//	                 [--skip-update-history] [--skip-support-bundle]
//	                 [--quiet]
//
// On success the final bundle path is printed to stdout and the exit
// status is 0. Only two conditions exit non-zero: the workspace cannot
// be created, or the bundle cannot be written.
//
// # Global Flags
//
//	--log-level    Structured log level: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
package cli
