/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import "time"

// Kind identifies the collection capability a task exercises.
type Kind string

const (
	// KindFileCopy copies a single file (the source may be a glob).
	KindFileCopy Kind = "file-copy"
	// KindTreeCopy copies a directory tree or every glob match recursively.
	KindTreeCopy Kind = "tree-copy"
	// KindCommandCapture runs a read-only command and captures its stdout.
	KindCommandCapture Kind = "command-capture"
	// KindChannelExport exports a named log channel to a file.
	KindChannelExport Kind = "channel-export"
	// KindToolInvocation runs an external diagnostic tool and verifies
	// its expected output artifact.
	KindToolInvocation Kind = "tool-invocation"
	// KindServiceState captures the properties of a systemd unit.
	KindServiceState Kind = "service-state"
)

// Gate names the collection option that can skip a task. An empty gate
// means the task always runs.
type Gate string

const (
	// GateUpdateHistory gates tasks behind the update-history option.
	GateUpdateHistory Gate = "update-history"
	// GateSupportBundle gates tasks behind the support-bundle option.
	GateSupportBundle Gate = "support-bundle"
)

// Task is one named unit of collection work. Tasks are immutable values
// built at catalog construction time and never mutated by the pipeline.
type Task struct {
	// Name uniquely identifies the task within a catalog.
	Name string `yaml:"name"`

	// Kind selects the collector capability.
	Kind Kind `yaml:"kind"`

	// Source is the kind-specific locator: a path or glob for copies, the
	// program for command capture, the channel name for channel export,
	// the tool name for tool invocation, or the unit name for service
	// state.
	Source string `yaml:"source"`

	// Args are extra arguments for command capture and tool invocation.
	// The token {dest} expands to the task's absolute destination
	// directory inside the workspace.
	Args []string `yaml:"args,omitempty"`

	// Dest is the destination path relative to the workspace root.
	Dest string `yaml:"dest"`

	// Artifact is the output file a tool invocation is expected to
	// produce, relative to Dest. Only meaningful for KindToolInvocation.
	Artifact string `yaml:"artifact,omitempty"`

	// Gate optionally names the collection option that can skip the task.
	Gate Gate `yaml:"gate,omitempty"`
}

// Status classifies the result of running one task.
type Status string

const (
	// StatusCollected means the artifact was gathered.
	StatusCollected Status = "collected"
	// StatusNotFound means the source is not present on this host. This
	// is an expected, non-fatal condition.
	StatusNotFound Status = "not-found"
	// StatusSkipped means a collection option excluded the task.
	StatusSkipped Status = "skipped"
	// StatusFailed means the source is present but collection errored.
	StatusFailed Status = "failed"
)

// Outcome is the result of running one task. Exactly one outcome is
// produced per task per run.
type Outcome struct {
	Task      string    `yaml:"task" json:"task"`
	Status    Status    `yaml:"status" json:"status"`
	Detail    string    `yaml:"detail,omitempty" json:"detail,omitempty"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
}

// NewOutcome builds an outcome for a task, stamped now.
func NewOutcome(task string, status Status, detail string) Outcome {
	return Outcome{
		Task:      task,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}
