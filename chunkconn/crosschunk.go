package chunkconn

import "github.com/gridkit/tilegrid/coord"

// Axis names the pair of cardinal directions two adjacent chunks meet
// along: Horizontal means a is west of b (a's +X border touches b's -X
// border); Vertical means a is north of b (a's +Y border touches b's -Y
// border).
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// directions returns (direction from a toward b, direction from b toward a).
func (ax Axis) directions() (aToB, bToA coord.Direction) {
	if ax == Horizontal {
		return coord.DirPlusX, coord.DirMinusX
	}
	return coord.DirPlusY, coord.DirMinusY
}

// pairKey identifies one (a-component, b-component) neighbor pair for
// PairScratch's seen-set.
type pairKey struct {
	a, b ComponentIndex
}

// PairScratch is the reusable "seen pairs" scratch set
// ComputeConnectivityBetweenChunks needs to add each neighbor pair exactly
// once, per spec.md §4.2.
type PairScratch struct {
	seen map[pairKey]bool
}

// NewPairScratch allocates an empty PairScratch.
func NewPairScratch() *PairScratch {
	return &PairScratch{seen: make(map[pairKey]bool)}
}

func (s *PairScratch) reset() {
	clear(s.seen)
}

// ComputeConnectivityBetweenChunks pairs two adjacent chunks a and b along
// axis, clearing and refilling the neighbor-component lists in the
// direction each faces the other. Neighbor pairs are added in order of
// their shared border coordinate (spec.md §5's ordering guarantee).
//
// Either a or b may be nil to mean "no chunk loaded there": the present
// chunk's relevant direction array is zeroed and nothing else happens.
// Both nil is a no-op.
func ComputeConnectivityBetweenChunks(a, b *ChunkComponents, axis Axis, scratch *PairScratch) {
	aToB, bToA := axis.directions()

	switch {
	case a == nil && b == nil:
		return
	case a == nil:
		zeroNeighborDirection(b, bToA)
		return
	case b == nil:
		zeroNeighborDirection(a, aToB)
		return
	}

	if a.n != b.n {
		panic("chunkconn: ComputeConnectivityBetweenChunks: mismatched chunk sides")
	}
	n := a.n

	zeroNeighborDirection(a, aToB)
	zeroNeighborDirection(b, bToA)

	scratch.reset()
	for offset := 0; offset < n; offset++ {
		aEdge := coord.PackBorderEdge(aToB, offset, n)
		bEdge := coord.PackBorderEdge(bToA, offset, n)

		aComp, aMask := a.BorderEdgeComponent(aEdge)
		bComp, bMask := b.BorderEdgeComponent(bEdge)
		if aComp == InvalidComponentIndex || bComp == InvalidComponentIndex {
			continue
		}
		if !aMask.Connects(bMask) {
			continue
		}

		key := pairKey{a: aComp, b: bComp}
		if scratch.seen[key] {
			continue
		}
		scratch.seen[key] = true

		a.neighbors[aToB][aComp] = append(a.neighbors[aToB][aComp], bComp)
		b.neighbors[bToA][bComp] = append(b.neighbors[bToA][bComp], aComp)
	}
}

// zeroNeighborDirection resizes cc's direction-d neighbor list to match its
// current component count and truncates every entry to empty, reusing
// backing arrays across calls.
func zeroNeighborDirection(cc *ChunkComponents, d coord.Direction) {
	cc.resizeNeighbors(d, len(cc.Components))
	for i := range cc.neighbors[d] {
		cc.neighbors[d][i] = cc.neighbors[d][i][:0]
	}
}
