// Package collector implements the per-task collection capabilities:
// file and tree copies, command output capture, log channel export,
// external diagnostic tool invocation, and systemd unit state capture.
//
// Every collector shares one contract: given a workspace and a task, it
// returns exactly one catalog.Outcome and never an error. Anything that
// goes wrong underneath (missing source, permission denied, non-zero
// exit, absent channel, uninstalled tool) is translated into the outcome
// status and detail. This is the isolation boundary that lets the
// orchestrator run every task regardless of what happened to the
// previous one.
//
// Absence is classified separately from failure wherever the two can be
// told apart, because an operator triaging a bundle needs to know whether
// an artifact is missing because the host does not have it or because
// collection broke:
//
//   - a source path or glob matching nothing is not-found
//   - an unloaded systemd unit is not-found
//   - an absent journal channel is failed with detail "channel absent"
//   - a tool missing from the search path is failed with detail
//     "tool unavailable", distinct from a tool that ran but produced no
//     output artifact
//
// External commands and tools are invoked through the task's context; the
// pipeline sets no timeout of its own, so a hung tool hangs the run
// unless the caller supplies a deadline.
package collector
