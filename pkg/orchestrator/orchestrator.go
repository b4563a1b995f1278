/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diagpack/diagpack/pkg/audit"
	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/collector"
	"github.com/diagpack/diagpack/pkg/report"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// CollectionOptions gates the optional, slow parts of the catalog and
// controls console verbosity.
type CollectionOptions struct {
	// IncludeUpdateHistory enables the merged update history capture.
	IncludeUpdateHistory bool
	// IncludeSupportBundle enables the external support bundle tool.
	IncludeSupportBundle bool
	// Verbose raises per-task narration from debug to info level.
	Verbose bool
}

// includes reports whether a gated task should run under these options.
func (o CollectionOptions) includes(gate catalog.Gate) bool {
	switch gate {
	case catalog.GateUpdateHistory:
		return o.IncludeUpdateHistory
	case catalog.GateSupportBundle:
		return o.IncludeSupportBundle
	default:
		return true
	}
}

// Orchestrator runs a task catalog against a workspace.
type Orchestrator struct {
	// Factory supplies collectors per task kind. If nil, the default
	// factory is used.
	Factory collector.Factory

	// Audit receives one entry per task outcome. If nil, audit recording
	// is skipped.
	Audit *audit.Log
}

// Run executes every catalog task in order and returns the run report.
// A failure or absence in any single task never stops iteration; Run has
// no error return by design. The workspace must already exist.
func (o *Orchestrator) Run(ctx context.Context, ws *workspace.Workspace, tasks []catalog.Task, opts CollectionOptions) *report.RunReport {
	if o.Factory == nil {
		o.Factory = collector.NewDefaultFactory()
	}

	rep := &report.RunReport{
		RunID:     ws.RunID,
		StartedAt: time.Now().UTC(),
	}
	rep.Outcomes = make([]catalog.Outcome, 0, len(tasks))

	o.record("run %s started (%d tasks)", ws.RunID, len(tasks))

	for _, task := range tasks {
		var out catalog.Outcome
		switch {
		case !opts.includes(task.Gate):
			out = catalog.NewOutcome(task.Name, catalog.StatusSkipped, "skipped by option")
		default:
			out = o.collectOne(ctx, ws, task)
		}

		rep.Append(out)
		o.record("%s: %s%s", out.Task, out.Status, detailSuffix(out.Detail))

		level := slog.LevelDebug
		if opts.Verbose {
			level = slog.LevelInfo
		}
		slog.Log(ctx, level, "task finished",
			"task", out.Task, "status", string(out.Status), "detail", out.Detail)
	}

	rep.FinishedAt = time.Now().UTC()
	rep.Compute()
	o.record("run %s finished: %s", ws.RunID, rep.Summary())
	return rep
}

// collectOne runs one task through its collector, recovering any panic
// into a failed outcome. This keeps the never-stop guarantee intact even
// against a collector that violates its own no-fault contract.
func (o *Orchestrator) collectOne(ctx context.Context, ws *workspace.Workspace, task catalog.Task) (out catalog.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = catalog.NewOutcome(task.Name, catalog.StatusFailed,
				fmt.Sprintf("panic during collection: %v", r))
		}
	}()

	c, ok := o.Factory.ForKind(task.Kind)
	if !ok {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("no collector for kind %q", task.Kind))
	}
	return c.Collect(ctx, ws, task)
}

func (o *Orchestrator) record(format string, args ...any) {
	if o.Audit != nil {
		o.Audit.Recordf(format, args...)
	}
}

func detailSuffix(detail string) string {
	if detail == "" {
		return ""
	}
	return " (" + detail + ")"
}
