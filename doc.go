// Package tilegrid is a tile-grid connectivity engine: per-chunk flood-fill
// components, cross-chunk neighbor linking, maximal-component splitting for
// grids that have lost a connection, and a dynamic AABB tree for broad-phase
// spatial queries over chunk and entity bounds.
//
// Everything lives under five core subpackages plus an ambient diagnostics layer:
//
//	coord/     — chunk/tile coordinate types, directions, border-edge indices
//	sparseset/ — O(1) dense/sparse membership set backing component bookkeeping
//	chunkconn/ — per-chunk flood-fill components and cross-chunk neighbor links
//	splitter/  — priority-frontier + union-find maximal-component detection
//	aabbtree/  — dynamic bounding-volume hierarchy for spatial queries
//	diag/      — read-only graph export and cross-checking for the above, over
//	             a purpose-built adjacency-map graph sized to what it needs
//
// None of the five core packages define a file format, wire protocol, or
// CLI; they are library primitives meant to be wired into a host grid/game
// engine's own tick loop and storage.
package tilegrid
