/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package collector

import (
	"context"

	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/workspace"
)

// Collector performs one collection task against a workspace. It always
// returns an outcome; no error from the underlying operation escapes.
type Collector interface {
	Collect(ctx context.Context, ws *workspace.Workspace, task catalog.Task) catalog.Outcome
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	ForKind(kind catalog.Kind) (Collector, bool)
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// Exporter is the log channel exporter binary. Defaults to journalctl.
	Exporter string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		Exporter: defaultExporter,
	}
}

// ForKind returns the collector for a task kind.
func (f *DefaultFactory) ForKind(kind catalog.Kind) (Collector, bool) {
	switch kind {
	case catalog.KindFileCopy, catalog.KindTreeCopy:
		return f.CreateFileCollector(), true
	case catalog.KindCommandCapture:
		return f.CreateCommandCollector(), true
	case catalog.KindChannelExport:
		return f.CreateChannelCollector(), true
	case catalog.KindToolInvocation:
		return f.CreateToolCollector(), true
	case catalog.KindServiceState:
		return f.CreateServiceStateCollector(), true
	default:
		return nil, false
	}
}

// CreateFileCollector creates a file and tree copy collector.
func (f *DefaultFactory) CreateFileCollector() Collector {
	return &FileCollector{}
}

// CreateCommandCollector creates a command output capture collector.
func (f *DefaultFactory) CreateCommandCollector() Collector {
	return &CommandCollector{}
}

// CreateChannelCollector creates a log channel export collector.
func (f *DefaultFactory) CreateChannelCollector() Collector {
	exporter := f.Exporter
	if exporter == "" {
		exporter = defaultExporter
	}
	return &ChannelCollector{Exporter: exporter}
}

// CreateToolCollector creates an external diagnostic tool collector.
func (f *DefaultFactory) CreateToolCollector() Collector {
	return &ToolCollector{}
}

// CreateServiceStateCollector creates a systemd unit state collector.
func (f *DefaultFactory) CreateServiceStateCollector() Collector {
	return &ServiceStateCollector{}
}
