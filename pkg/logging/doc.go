// Package logging provides structured logging utilities for diagpack.
//
// # Overview
//
// This package wraps the standard library slog package with diagpack
// defaults: JSON output to stderr, environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("diagpack", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("collection started", "workspace", ws.Path)
//	    slog.Error("task failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("diagpack", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug diagpack collect
//
// If LOG_LEVEL is not set, defaults to INFO.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "collection started",
//	    "module": "diagpack",
//	    "version": "v1.0.0"
//	}
//
// The structured log is operator telemetry; it is distinct from the audit
// log written inside each workspace (see pkg/audit), which is itself a
// collected artifact.
package logging
