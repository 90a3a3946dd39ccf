package chunkconn

import "github.com/gridkit/tilegrid/coord"

// TileExistsFunc reports whether the cell at pos is present. Default-
// constructed (empty) cells must return false, per spec.md §4.2. The host's
// Cell storage is opaque to this package — callers close over their own
// grid when constructing this function (spec.md §6's cell_is_non_empty).
type TileExistsFunc func(pos coord.InChunkCoord) bool

// TileConnectivityFunc returns the connectivity mask the cell at pos
// presents facing direction d (spec.md §6's cell_connectivity).
type TileConnectivityFunc func(pos coord.InChunkCoord, d coord.Direction) coord.TileEdgeConnectivity

// ComputeComponents floods an N×N chunk (N = n; scratch is resized to it) into a full
// ChunkComponents record: every component, its tiles, bounds, and
// chunk-border-edge footprint, plus the reverse border-edge index.
//
// Cells are visited in row-major order; within a component, tiles appear in
// BFS discovery order (spec.md §5's ordering guarantee). onComponentDone,
// if non-nil, is invoked after each component is fully recorded — it may
// inspect (but must not retain references into, beyond the call) the
// component, matching spec.md's "callback fires after each component
// completes" note for the single-output mode, generalized to full mode too.
//
// Complexity: O(N²) time (every cell visited once, 4 neighbor checks each),
// O(N²) memory for the scratch.
func ComputeComponents(
	n int,
	exists TileExistsFunc,
	connectivity TileConnectivityFunc,
	scratch *Scratch,
	onComponentDone func(ComponentIndex, *Component),
) *ChunkComponents {
	cc := NewChunkComponents(n)
	scratch.reset(n)

	w := &walker{n: n, exists: exists, connectivity: connectivity, scratch: scratch}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			start := coord.InChunkCoord{X: x, Y: y}
			idx := y*n + x
			if scratch.visited[idx] || !exists(start) {
				continue
			}
			comp := w.floodFrom(start)
			ci := ComponentIndex(len(cc.Components))
			cc.Components = append(cc.Components, comp)
			cc.setBorderFootprint(ci)
			if onComponentDone != nil {
				onComponentDone(ci, &cc.Components[ci])
			}
		}
	}

	return cc
}

// ComputeSingleComponents is spec.md's "single" output mode: rather than
// accumulating every component into one ChunkComponents, it emits each
// Component one at a time into out, invoking onComponentDone to let the
// caller harvest it before the next component overwrites out. Used when a
// caller only needs to stream components (e.g. to move them elsewhere)
// without paying for a full ChunkComponents allocation.
func ComputeSingleComponents(
	n int,
	exists TileExistsFunc,
	connectivity TileConnectivityFunc,
	scratch *Scratch,
	out *Component,
	onComponentDone func(*Component),
) {
	scratch.reset(n)
	w := &walker{n: n, exists: exists, connectivity: connectivity, scratch: scratch}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			start := coord.InChunkCoord{X: x, Y: y}
			idx := y*n + x
			if scratch.visited[idx] || !exists(start) {
				continue
			}
			*out = w.floodFrom(start)
			if onComponentDone != nil {
				onComponentDone(out)
			}
		}
	}
}

// walker carries the fixed parameters of one flood-fill pass.
type walker struct {
	n            int
	exists       TileExistsFunc
	connectivity TileConnectivityFunc
	scratch      *Scratch
}

// floodFrom runs one BFS flood fill seeded at start, which must be
// unvisited and existing. Marks every reached cell visited and returns the
// resulting Component, including its chunk-border-edge footprint.
func (w *walker) floodFrom(start coord.InChunkCoord) Component {
	n := w.n
	idxOf := func(p coord.InChunkCoord) int { return p.Y*n + p.X }

	startIdx := idxOf(start)
	w.scratch.visited[startIdx] = true
	queue := w.scratch.queue[:0]
	queue = append(queue, startIdx)

	comp := Component{Bounds: coord.PointRect(start)}
	offsets := coord.Dir4Offsets()

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		p := coord.InChunkCoord{X: idx % n, Y: idx / n}
		if len(comp.Tiles) == 0 {
			comp.Bounds = coord.PointRect(p)
		} else {
			comp.Bounds = comp.Bounds.Extend(p)
		}
		comp.Tiles = append(comp.Tiles, p)
		recordBorderEdges(&comp, p, n, w.connectivity)

		for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
			off := offsets[d]
			np := coord.InChunkCoord{X: p.X + off[0], Y: p.Y + off[1]}
			if !np.InBounds(n) || !w.exists(np) {
				continue
			}
			if !w.connectivity(p, d).Connects(w.connectivity(np, d.Opposite())) {
				continue
			}
			nIdx := idxOf(np)
			if w.scratch.visited[nIdx] {
				continue
			}
			w.scratch.visited[nIdx] = true
			queue = append(queue, nIdx)
		}
	}
	w.scratch.queue = queue

	return comp
}

// recordBorderEdges appends an EdgeInfo to comp for every chunk-border side
// p touches (a corner cell touches two), using p's outward-facing mask.
func recordBorderEdges(comp *Component, p coord.InChunkCoord, n int, connectivity TileConnectivityFunc) {
	if p.X == 0 {
		appendEdge(comp, coord.DirMinusX, p.Y, n, connectivity(p, coord.DirMinusX))
	}
	if p.X == n-1 {
		appendEdge(comp, coord.DirPlusX, p.Y, n, connectivity(p, coord.DirPlusX))
	}
	if p.Y == 0 {
		appendEdge(comp, coord.DirMinusY, p.X, n, connectivity(p, coord.DirMinusY))
	}
	if p.Y == n-1 {
		appendEdge(comp, coord.DirPlusY, p.X, n, connectivity(p, coord.DirPlusY))
	}
}

func appendEdge(comp *Component, d coord.Direction, offset, n int, mask coord.TileEdgeConnectivity) {
	comp.BorderEdges = append(comp.BorderEdges, EdgeInfo{
		Edge: coord.PackBorderEdge(d, offset, n),
		Mask: mask,
	})
}
