// Package workspace owns the lifecycle of the per-run working directory:
// creation, path layout, manifest generation, and handoff to packaging.
//
// A workspace is created once per run under the caller's output root,
// named from a prefix and a UTC timestamp so two runs never collide. Every
// collector writes into a distinct subpath of the workspace; the pipeline
// itself never deletes a workspace.
//
// Workspace creation is one of only two operations in the pipeline that
// may fail the whole run: without a writable workspace there is nowhere
// for anything downstream to write.
package workspace
