/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package orchestrator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagpack/diagpack/pkg/audit"
	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/collector"
	"github.com/diagpack/diagpack/pkg/orchestrator"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// stubCollector returns a fixed status, fails with an error detail, or
// panics, depending on the task source.
type stubCollector struct{}

func (s *stubCollector) Collect(_ context.Context, _ *workspace.Workspace, task catalog.Task) catalog.Outcome {
	switch task.Source {
	case "panic":
		panic("stub exploded")
	case "absent":
		return catalog.NewOutcome(task.Name, catalog.StatusNotFound, "no match")
	case "broken":
		return catalog.NewOutcome(task.Name, catalog.StatusFailed, "boom")
	default:
		return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
	}
}

// stubFactory serves the stub for every kind.
type stubFactory struct{}

func (f *stubFactory) ForKind(catalog.Kind) (collector.Collector, bool) {
	return &stubCollector{}, true
}

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	m := &workspace.Manager{}
	ws, err := m.Create(t.TempDir())
	require.NoError(t, err)
	return ws
}

func task(name, source string, gate catalog.Gate) catalog.Task {
	return catalog.Task{
		Name: name, Kind: catalog.KindFileCopy, Source: source,
		Dest: "out/" + name, Gate: gate,
	}
}

func TestRunOneOutcomePerTaskInOrder(t *testing.T) {
	ws := newWorkspace(t)
	tasks := []catalog.Task{
		task("a", "ok", ""),
		task("b", "absent", ""),
		task("c", "broken", ""),
		task("d", "ok", ""),
	}

	o := &orchestrator.Orchestrator{Factory: &stubFactory{}}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{})

	require.Len(t, rep.Outcomes, len(tasks))
	for i, task := range tasks {
		assert.Equal(t, task.Name, rep.Outcomes[i].Task)
	}
	assert.Equal(t, 2, rep.Collected)
	assert.Equal(t, 1, rep.NotFound)
	assert.Equal(t, 1, rep.Failed)
}

func TestRunSurvivesPanickingCollector(t *testing.T) {
	ws := newWorkspace(t)
	tasks := []catalog.Task{
		task("before", "ok", ""),
		task("explosive", "panic", ""),
		task("after", "ok", ""),
	}

	o := &orchestrator.Orchestrator{Factory: &stubFactory{}}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{})

	require.Len(t, rep.Outcomes, 3)
	assert.Equal(t, catalog.StatusFailed, rep.Outcomes[1].Status)
	assert.Contains(t, rep.Outcomes[1].Detail, "stub exploded")
	assert.Equal(t, catalog.StatusCollected, rep.Outcomes[2].Status)
}

func TestRunGatedTasksSkipped(t *testing.T) {
	ws := newWorkspace(t)
	tasks := []catalog.Task{
		task("always", "ok", ""),
		task("updates", "ok", catalog.GateUpdateHistory),
		task("support", "ok", catalog.GateSupportBundle),
	}

	o := &orchestrator.Orchestrator{Factory: &stubFactory{}}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{
		IncludeSupportBundle: true,
	})

	require.Len(t, rep.Outcomes, 3)
	assert.Equal(t, catalog.StatusCollected, rep.Outcomes[0].Status)
	assert.Equal(t, catalog.StatusSkipped, rep.Outcomes[1].Status)
	assert.Equal(t, "skipped by option", rep.Outcomes[1].Detail)
	assert.Equal(t, catalog.StatusCollected, rep.Outcomes[2].Status)
}

func TestRunUnknownKindFails(t *testing.T) {
	ws := newWorkspace(t)
	tasks := []catalog.Task{
		{Name: "odd", Kind: catalog.Kind("teleport"), Source: "x", Dest: "out/odd"},
	}

	o := &orchestrator.Orchestrator{Factory: collector.NewDefaultFactory()}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{})

	require.Len(t, rep.Outcomes, 1)
	assert.Equal(t, catalog.StatusFailed, rep.Outcomes[0].Status)
	assert.Contains(t, rep.Outcomes[0].Detail, "no collector for kind")
}

func TestRunWritesAuditEntries(t *testing.T) {
	ws := newWorkspace(t)
	var console bytes.Buffer
	log := audit.New(filepath.Join(ws.Path, audit.FileName), &console, false)
	defer log.Close()

	tasks := []catalog.Task{
		task("a", "ok", ""),
		task("b", "broken", ""),
	}

	o := &orchestrator.Orchestrator{Factory: &stubFactory{}, Audit: log}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{})

	text := console.String()
	assert.Contains(t, text, "a: collected")
	assert.Contains(t, text, "b: failed (boom)")
	assert.Contains(t, text, rep.Summary())
}

func TestRunRealFactoryEndToEnd(t *testing.T) {
	ws := newWorkspace(t)

	// One real file to collect, one missing, one failing command.
	src := filepath.Join(t.TempDir(), "present.txt")
	require.NoError(t, writeFile(src, "data"))

	tasks := []catalog.Task{
		{Name: "present", Kind: catalog.KindFileCopy, Source: src, Dest: "files/present.txt"},
		{Name: "missing", Kind: catalog.KindFileCopy, Source: src + ".nope", Dest: "files/missing.txt"},
		{Name: "failing", Kind: catalog.KindCommandCapture, Source: "sh",
			Args: []string{"-c", "exit 9"}, Dest: "cmd/failing.txt"},
	}

	o := &orchestrator.Orchestrator{}
	rep := o.Run(t.Context(), ws, tasks, orchestrator.CollectionOptions{})

	require.Len(t, rep.Outcomes, 3)
	assert.Equal(t, catalog.StatusCollected, rep.Outcomes[0].Status)
	assert.Equal(t, catalog.StatusNotFound, rep.Outcomes[1].Status)
	assert.Equal(t, catalog.StatusFailed, rep.Outcomes[2].Status)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
