// Package audit provides the append-only record of every action a
// collection run takes, and its outcome.
//
// The audit log lives inside the workspace it describes, so it travels
// with the bundle and is the authoritative record for triaging why an
// artifact is missing. Entries are timestamped and appear in the file in
// the exact order Record was called. Unless quiet mode is requested,
// every entry is mirrored to an interactive console writer.
//
// Audit logging must never abort collection: if the log file cannot be
// opened or written, the log degrades to console-only output and the run
// continues.
package audit
