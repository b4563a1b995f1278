/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coreos/go-systemd/v22/dbus"
	"gopkg.in/yaml.v3"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// ServiceStateCollector captures the properties of a systemd unit into
// the workspace as YAML. The task source is the unit name.
type ServiceStateCollector struct{}

// unitState is the document written per unit.
type unitState struct {
	Unit       string         `yaml:"unit"`
	Properties map[string]any `yaml:"properties"`
}

// Collect implements the Collector interface.
func (c *ServiceStateCollector) Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome {
	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot connect to systemd: %v", err))
	}
	defer conn.Close()

	props, err := conn.GetAllPropertiesContext(ctx, task.Source)
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot read unit properties: %v", err))
	}

	// systemd answers for unknown units with LoadState not-found rather
	// than an error.
	if state, ok := props["LoadState"].(string); ok && state == "not-found" {
		return catalog.NewOutcome(task.Name, catalog.StatusNotFound,
			fmt.Sprintf("unit %s not loaded on this host", task.Source))
	}

	data, err := yaml.Marshal(unitState{Unit: task.Source, Properties: props})
	if err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot encode unit properties: %v", err))
	}

	dest := ws.Resolve(task.Dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot create destination: %v", err))
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return catalog.NewOutcome(task.Name, catalog.StatusFailed,
			fmt.Sprintf("cannot write unit properties: %v", err))
	}
	return catalog.NewOutcome(task.Name, catalog.StatusCollected, "")
}
