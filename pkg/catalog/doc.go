// Package catalog defines the declarative, ordered set of collection
// tasks a run performs, and the outcome records produced for them.
//
// The task set is data, not control flow: the built-in catalog returned by
// Default can be replaced wholesale from a YAML file via Load without
// touching orchestration logic. Order matters only for log readability;
// tasks are independent of each other and write to disjoint destination
// subpaths inside the workspace.
package catalog
