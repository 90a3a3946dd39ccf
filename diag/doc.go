// Package diag provides read-only inspection tooling for chunkconn's
// per-chunk component graphs: ExportComponentGraph renders a region's
// components and cross-chunk neighbor links into a small adjacency-map
// graph, CrossCheckReachability breadth-first-walks it as an independent
// oracle for chunkconn's own flood-fill reachability, and
// DetectRedundantLinks depth-first-walks it looking for cross-chunk
// neighbor cycles.
//
// diag defines no file format, wire protocol, or CLI of its own (spec.md
// §6); it exists for tests and ad-hoc development tooling that want to look
// at a region's component graph from the outside. Nothing here mutates
// grid state: ExportComponentGraph renders a snapshot, and the two checks
// only report on it.
package diag
