// Package aabbtree implements AabbTree: a dynamic bounding-volume hierarchy
// over axis-aligned rectangles, used to broad-phase-cull chunk and grid
// bounds for spatial queries.
//
// Internal nodes hold the union AABB of their two children; leaves hold a
// caller rectangle and an opaque UserData value. Nodes are addressed by
// integer index into an owned slice rather than by pointer, with -1 as the
// "invalid" sentinel, matching this codebase's general preference for
// index-addressed mutable structures over reference graphs. Insertion picks
// a sibling with the surface-area heuristic; rotations keep the tree height
// balanced; Modify fattens moved leaves by a configurable margin (optionally
// biased by a reported velocity) so small movements can skip a full
// remove+reinsert.
package aabbtree
