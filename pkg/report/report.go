/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report provides types for tracking collection run results.
//
// A RunReport aggregates the per-task outcomes of one run, with computed
// counters and a human-readable summary. It is also serialized into the
// workspace as report.yaml for machine consumption.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diagpack/diagpack/pkg/catalog"
)

// FileName is the machine-readable report file name inside the workspace.
const FileName = "report.yaml"

// RunReport aggregates every task outcome of one collection run, in
// catalog order.
type RunReport struct {
	RunID      string            `yaml:"runId"`
	Outcomes   []catalog.Outcome `yaml:"outcomes"`
	StartedAt  time.Time         `yaml:"startedAt"`
	FinishedAt time.Time         `yaml:"finishedAt"`

	// Computed counters, populated by Compute.
	Collected int `yaml:"collected"`
	NotFound  int `yaml:"notFound"`
	Skipped   int `yaml:"skipped"`
	Failed    int `yaml:"failed"`
}

// Append records one task outcome.
func (r *RunReport) Append(o catalog.Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Compute populates the per-status counters from the outcome sequence.
func (r *RunReport) Compute() {
	r.Collected, r.NotFound, r.Skipped, r.Failed = 0, 0, 0, 0
	for _, o := range r.Outcomes {
		switch o.Status {
		case catalog.StatusCollected:
			r.Collected++
		case catalog.StatusNotFound:
			r.NotFound++
		case catalog.StatusSkipped:
			r.Skipped++
		case catalog.StatusFailed:
			r.Failed++
		}
	}
}

// Summary returns a one-line human-readable digest of the run.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("ran %d tasks (%d collected, %d not found, %d skipped, %d failed) in %s",
		len(r.Outcomes), r.Collected, r.NotFound, r.Skipped, r.Failed,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
}

// WriteFile serializes the report as YAML to the given path.
func (r *RunReport) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}
