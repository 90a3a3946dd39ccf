package splitter

import (
	"github.com/gridkit/tilegrid/chunkconn"
	"github.com/gridkit/tilegrid/coord"
)

// ComponentCoords identifies one per-chunk component inside a grid: the
// chunk it lives in, plus its ComponentIndex within that chunk's
// ChunkComponents.
type ComponentCoords struct {
	Chunk     coord.ChunkCoord
	Component chunkconn.ComponentIndex
}

// GlobalComponentIndex indexes into a Splitter run's component list; it
// carries union-find semantics via componentInfo.canonical.
type GlobalComponentIndex int

// InvalidGlobalComponentIndex is the sentinel "no component" value.
const InvalidGlobalComponentIndex GlobalComponentIndex = -1

// GetChunkFunc resolves a chunk coordinate to its ChunkComponents, by
// reference, for Step to read neighbor lists from. Returning nil means the
// chunk is not currently loaded; Step treats it as having no neighbors.
type GetChunkFunc func(coord.ChunkCoord) *chunkconn.ChunkComponents

// componentInfo is one run-scoped component descriptor. canonical implements
// union-find: a representative has canonical == its own index. When a
// representative is merged into another, unvisited/bounds/contents are
// folded into the winner and zeroed here, and canonical is redirected to the
// winner; origin is never cleared, since the priority heap's distance key
// must keep resolving to each seed's own original chunk regardless of later
// merges.
type componentInfo struct {
	canonical GlobalComponentIndex
	origin    coord.ChunkCoord
	unvisited int
	bounds    coord.ChunkRect
	contents  []ComponentCoords
}

// frontierEntry is one node of the splitter's priority frontier: a
// per-chunk component to visit, together with the seed it was discovered
// from. distSq and numConn are snapshotted at push time (spec.md §4.3: the
// distance key uses the seed's origin chunk, which never changes, and
// get_num_connections of a per-chunk component is stable for the lifetime of
// one splitter run since chunks are only read, never mutated, during a run).
type frontierEntry struct {
	coords  ComponentCoords
	seed    GlobalComponentIndex
	distSq  int
	numConn int
}

// frontierHeap is a container/heap min-heap of *frontierEntry, ordered by
// (distSq, numConn) ascending — the usual slice-of-pointer-items
// container/heap shape, with a two-key comparator (spec.md §4.3) in place
// of a single distance key.
type frontierHeap []*frontierEntry

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].distSq != h[j].distSq {
		return h[i].distSq < h[j].distSq
	}
	return h[i].numConn < h[j].numConn
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) {
	*h = append(*h, x.(*frontierEntry))
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

func squaredChunkDistance(a, b coord.ChunkCoord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}
