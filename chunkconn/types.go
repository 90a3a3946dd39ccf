package chunkconn

import (
	"errors"

	"github.com/gridkit/tilegrid/coord"
)

// ErrInvalidChunkSide is the value NewChunkComponents panics with when a
// chunk side N <= 0 is supplied.
var ErrInvalidChunkSide = errors.New("chunkconn: chunk side N must be > 0")

// ComponentIndex indexes a Component within a ChunkComponents' Components
// slice. Stable only until the next mutation of that chunk's component
// list (spec.md §3) — callers must re-resolve after any Remove/Move.
type ComponentIndex int

// InvalidComponentIndex is the sentinel "no component" value.
const InvalidComponentIndex ComponentIndex = ComponentIndex(coord.InvalidComponentIndex)

// EdgeInfo pairs a border-edge index with the outward-facing connectivity
// mask recorded there (spec.md's ComponentEdgeInfo).
type EdgeInfo struct {
	Edge coord.BorderEdgeIndex
	Mask coord.TileEdgeConnectivity
}

// Component is a maximal set of cells within one chunk connected by the
// bilateral-mask adjacency relation: its tile list (in discovery order),
// its tight bounding rectangle, and the chunk-border edges it owns.
type Component struct {
	Tiles       []coord.InChunkCoord
	Bounds      coord.InChunkRect
	BorderEdges []EdgeInfo
}

// borderSlot is one entry of the reverse border-edge index: either
// (component, mask) or the empty (InvalidComponentIndex, 0).
type borderSlot struct {
	Component ComponentIndex
	Mask      coord.TileEdgeConnectivity
}

// ChunkComponents is the full per-chunk connectivity record: every
// component, the reverse border-edge index, and (once paired via
// ComputeConnectivityBetweenChunks) the cross-chunk neighbor lists.
//
// Invariant: borderEdgeInfo[e].Component == c iff component c records e in
// its BorderEdges (spec.md §3, §8).
type ChunkComponents struct {
	n          int
	Components []Component

	borderEdgeInfo []borderSlot

	// neighbors[d][c] lists the component indices in the chunk adjacent in
	// direction d that share at least one border edge with component c.
	// Populated only by ComputeConnectivityBetweenChunks; zero value is
	// "unpaired", not "no neighbors".
	neighbors [4][][]ComponentIndex
}

// NewChunkComponents allocates an empty record sized for an n-side chunk.
func NewChunkComponents(n int) *ChunkComponents {
	if n <= 0 {
		panic(ErrInvalidChunkSide)
	}
	cc := &ChunkComponents{n: n}
	cc.borderEdgeInfo = make([]borderSlot, coord.NumBorderEdges(n))
	for i := range cc.borderEdgeInfo {
		cc.borderEdgeInfo[i] = borderSlot{Component: InvalidComponentIndex}
	}

	return cc
}

// N returns the chunk side this record was built for.
func (cc *ChunkComponents) N() int {
	return cc.n
}

// NumComponents returns the number of components currently recorded.
func (cc *ChunkComponents) NumComponents() int {
	return len(cc.Components)
}

// BorderEdgeComponent returns the (component, mask) recorded at border-edge
// e, or (InvalidComponentIndex, 0) if no component owns e.
func (cc *ChunkComponents) BorderEdgeComponent(e coord.BorderEdgeIndex) (ComponentIndex, coord.TileEdgeConnectivity) {
	slot := cc.borderEdgeInfo[e]
	return slot.Component, slot.Mask
}

// NeighborComponents returns the component indices in the chunk adjacent in
// direction d that share a border edge with component c. Returns nil before
// pairing has ever run for direction d.
func (cc *ChunkComponents) NeighborComponents(d coord.Direction, c ComponentIndex) []ComponentIndex {
	if int(c) >= len(cc.neighbors[d]) {
		return nil
	}
	return cc.neighbors[d][c]
}

// GetNumConnections returns Σ_d |neighbor_components[d][c]|, spec.md §4.2's
// tie-breaker used by the splitter's priority ordering.
func (cc *ChunkComponents) GetNumConnections(c ComponentIndex) int {
	total := 0
	for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
		total += len(cc.NeighborComponents(d, c))
	}

	return total
}

func (cc *ChunkComponents) resizeNeighbors(d coord.Direction, numComponents int) {
	if cap(cc.neighbors[d]) < numComponents {
		grown := make([][]ComponentIndex, numComponents)
		copy(grown, cc.neighbors[d])
		cc.neighbors[d] = grown
	} else {
		cc.neighbors[d] = cc.neighbors[d][:numComponents]
	}
}

func (cc *ChunkComponents) clearBorderFootprint(c ComponentIndex) {
	for _, ei := range cc.Components[c].BorderEdges {
		cc.borderEdgeInfo[ei.Edge] = borderSlot{Component: InvalidComponentIndex}
	}
}

func (cc *ChunkComponents) setBorderFootprint(c ComponentIndex) {
	for _, ei := range cc.Components[c].BorderEdges {
		cc.borderEdgeInfo[ei.Edge] = borderSlot{Component: c, Mask: ei.Mask}
	}
}
