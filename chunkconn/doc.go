// Package chunkconn implements ChunkConnectivity (spec.md §4.2): per-chunk
// flood fill of an N×N tile grid into connected components, bookkeeping of
// which chunk-border edges each component touches and with what directional
// mask, and a cross-chunk pairing operator that links each chunk's
// components to the neighbor-chunk components they share a border-edge
// connection with.
//
// Two entry points cover spec.md's "full" and "single" output modes
// (ComputeComponents and ComputeSingleComponents) rather than one generic
// entry point with a dynamically-dispatched sink, per spec.md §9's guidance
// to keep the flood-fill inner loop monomorphic.
//
// The flood fill itself follows a familiar connected-components shape (row-
// major scan, explicit BFS queue, injected visited bitmap), adapted from a
// flat single-value grid to chunked cells with bilateral-mask adjacency and
// border-edge recording.
package chunkconn
