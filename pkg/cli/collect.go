/*
Copyright © 2025 Diagpack Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/diagpack/diagpack/pkg/audit"
	"github.com/diagpack/diagpack/pkg/catalog"
	"github.com/diagpack/diagpack/pkg/collector"
	"github.com/diagpack/diagpack/pkg/orchestrator"
	"github.com/diagpack/diagpack/pkg/packager"
	"github.com/diagpack/diagpack/pkg/workspace"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Collect diagnostic artifacts and package them into a bundle",
		Description: `Runs every task in the collection catalog against the local host,
writing each artifact into a fresh timestamped workspace, then packages
the workspace into a sibling zip bundle.

Collection is best effort: sources that do not exist on this host are
recorded as not found, individual task failures are recorded and the run
continues. Only two conditions fail the command: the workspace cannot be
created, or the final bundle cannot be written.

Every action is recorded in an audit log inside the workspace
(collection.log) and mirrored to the console unless --quiet is given.
The workspace also receives a human-readable MANIFEST.txt and a
machine-readable report.yaml.

# Examples

Collect with the built-in catalog:
  diagpack collect --output /var/tmp/diagnostics

Collect quietly, skipping the slow optional tasks:
  diagpack collect -o /var/tmp/diagnostics -q \
    --skip-update-history --skip-support-bundle

Collect with a custom task catalog:
  diagpack collect --catalog ./catalog.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output root directory for workspace and bundle",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Path to a YAML task catalog replacing the built-in one",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Workspace and bundle name prefix",
				Value: workspace.DefaultPrefix,
			},
			&cli.BoolFlag{
				Name:  "skip-update-history",
				Usage: "Skip the merged update history capture",
			},
			&cli.BoolFlag{
				Name:  "skip-support-bundle",
				Usage: "Skip the external support bundle tool",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress console narration (the audit log is still written)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every task outcome at info level",
			},
		},
		Action: runCollect,
	}
}

func runCollect(ctx context.Context, cmd *cli.Command) error {
	tasks := catalog.Default()
	if path := cmd.String("catalog"); path != "" {
		var err error
		tasks, err = catalog.Load(path)
		if err != nil {
			return err
		}
	}

	opts := orchestrator.CollectionOptions{
		IncludeUpdateHistory: !cmd.Bool("skip-update-history"),
		IncludeSupportBundle: !cmd.Bool("skip-support-bundle"),
		Verbose:              cmd.Bool("verbose"),
	}
	quiet := cmd.Bool("quiet")

	manager := &workspace.Manager{Prefix: cmd.String("prefix")}

	// Fatal precondition one: nowhere to write.
	ws, err := manager.Create(cmd.String("output"))
	if err != nil {
		return err
	}
	slog.Info("workspace created", "path", ws.Path, "run", ws.RunID)

	auditLog := audit.New(ws.Resolve(audit.FileName), os.Stderr, quiet)
	defer auditLog.Close()

	orch := &orchestrator.Orchestrator{
		Factory: collector.NewDefaultFactory(),
		Audit:   auditLog,
	}
	rep := orch.Run(ctx, ws, tasks, opts)

	host := workspace.CollectHostInfo()
	if err := manager.WriteManifest(ws, rep, host); err != nil {
		slog.Warn("manifest write failed", "error", err)
		auditLog.Recordf("manifest write failed: %v", err)
	}
	if err := manager.WriteReport(ws, rep); err != nil {
		slog.Warn("report write failed", "error", err)
		auditLog.Recordf("report write failed: %v", err)
	}

	// Fatal precondition two: nothing deliverable.
	bundle, err := packager.Package(ws)
	if err != nil {
		auditLog.Recordf("packaging failed: %v", err)
		return err
	}
	auditLog.Recordf("bundle written: %s", bundle)

	fmt.Fprintln(cmd.Root().Writer, bundle)
	return nil
}
