// Package orchestrator drives the ordered task catalog through the
// collectors, one task at a time.
//
// The orchestrator is the failure boundary for the whole run: a fault in
// any single task — including a panic escaping a collector — is converted
// into a failed outcome and iteration continues. Run always completes and
// always returns one report with exactly one outcome per catalog task; it
// has no error return. The only failures that can stop a pipeline are
// outside this package: workspace creation before the run, and packaging
// after it.
package orchestrator
