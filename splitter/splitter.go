package splitter

import (
	"container/heap"
	"fmt"

	"github.com/gridkit/tilegrid/coord"
	"github.com/gridkit/tilegrid/sparseset"
)

// Splitter implements GridSplitter (spec.md §4.3): seeded with one or more
// per-chunk components known to have been separated from the rest of a
// grid, it walks the cross-chunk neighbor graph and reports the
// strictly-smaller fragments a caller should detach.
//
// A Splitter is reset between runs with Reset; components accumulate during
// a run and are either merged away or emitted.
type Splitter struct {
	components []componentInfo
	frontier   frontierHeap
	known      map[ComponentCoords]GlobalComponentIndex
	live       *sparseset.Set
	emitted    []GlobalComponentIndex
	getChunk   GetChunkFunc
}

// New constructs a Splitter that resolves chunk coordinates via getChunk.
func New(getChunk GetChunkFunc) *Splitter {
	return &Splitter{
		known:    make(map[ComponentCoords]GlobalComponentIndex),
		live:     sparseset.New(0),
		getChunk: getChunk,
	}
}

// Reserve pre-sizes the splitter's containers for a run expected to produce
// up to numComponents components and push up to numNodes frontier entries,
// amortizing allocation across runs.
func (s *Splitter) Reserve(numComponents, numNodes int) {
	if cap(s.components) < numComponents {
		grown := make([]componentInfo, len(s.components), numComponents)
		copy(grown, s.components)
		s.components = grown
	}
	s.live.Reserve(numComponents)
	if cap(s.frontier) < numNodes {
		grown := make(frontierHeap, len(s.frontier), numNodes)
		copy(grown, s.frontier)
		s.frontier = grown
	}
}

// Reset clears all run state but preserves container capacity, so a
// sequence of runs amortizes allocation (spec.md §4.3 "reuse").
func (s *Splitter) Reset() {
	s.components = s.components[:0]
	s.frontier = s.frontier[:0]
	clear(s.known)
	s.live.Clear()
	s.emitted = s.emitted[:0]
}

// find resolves i to its current representative, halving the path by one
// step per iteration: info[i].canonical <- info[info[i].canonical].canonical,
// then i <- info[i].canonical, until a fixed point (spec.md §4.3). No
// recursion, amortised near-constant.
func (s *Splitter) find(i GlobalComponentIndex) GlobalComponentIndex {
	for s.components[i].canonical != i {
		s.components[i].canonical = s.components[s.components[i].canonical].canonical
		i = s.components[i].canonical
	}

	return i
}

// AddInitialComponent registers coords as a new singleton component (its
// own representative, unvisited=1, a 1x1 bounds) and pushes a matching
// frontier entry. Must not be called twice with the same coords.
func (s *Splitter) AddInitialComponent(coords ComponentCoords) GlobalComponentIndex {
	if _, ok := s.known[coords]; ok {
		panic(fmt.Sprintf("splitter: AddInitialComponent called twice for %+v", coords))
	}

	idx := GlobalComponentIndex(len(s.components))
	s.components = append(s.components, componentInfo{
		canonical: idx,
		origin:    coords.Chunk,
		unvisited: 1,
		bounds:    coord.PointChunkRect(coords.Chunk),
		contents:  []ComponentCoords{coords},
	})
	if s.live.Capacity() <= int(idx) {
		s.live.Reserve(int(idx) + 1)
	}
	s.live.Insert(int(idx))
	s.known[coords] = idx

	s.pushFrontier(coords, idx)

	return idx
}

// pushFrontier pushes a frontier entry for coords, attributed to seed,
// snapshotting the priority key spec.md §4.3 describes.
func (s *Splitter) pushFrontier(coords ComponentCoords, seed GlobalComponentIndex) {
	origin := s.components[seed].origin

	numConn := 0
	if chunk := s.getChunk(coords.Chunk); chunk != nil {
		numConn = chunk.GetNumConnections(coords.Component)
	}

	heap.Push(&s.frontier, &frontierEntry{
		coords:  coords,
		seed:    seed,
		distSq:  squaredChunkDistance(coords.Chunk, origin),
		numConn: numConn,
	})
}

// merge folds loser into winner: winner absorbs loser's unvisited count,
// bounds, and contents; loser's canonical is redirected to winner and its
// own bookkeeping fields are zeroed; loser leaves the live set.
func (s *Splitter) merge(loser, winner GlobalComponentIndex) {
	li := &s.components[loser]
	wi := &s.components[winner]

	wi.unvisited += li.unvisited
	wi.bounds = wi.bounds.Union(li.bounds)
	wi.contents = append(wi.contents, li.contents...)

	li.canonical = winner
	li.unvisited = 0
	li.bounds = coord.ChunkRect{}
	li.contents = nil

	s.live.EraseUnordered(int(loser))
}

// Step pops the best frontier entry and processes it, merging any
// already-known neighbor components into the popped entry's (resolved)
// component and pushing frontier entries for newly-discovered neighbors.
// Returns true once the run is done: either the live set has at most one
// element (only the main component remains) or the frontier is empty.
//
// Long-running splits are broken into caller-driven Step increments
// (spec.md §5) so a host can interleave this with other work; callers loop
// `for !s.Step() { }` to run to completion in one go.
func (s *Splitter) Step() bool {
	if s.isDone() {
		return true
	}

	e := heap.Pop(&s.frontier).(*frontierEntry)
	c := s.find(e.seed)

	if chunk := s.getChunk(e.coords.Chunk); chunk != nil {
		for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
			for _, nComp := range chunk.NeighborComponents(d, e.coords.Component) {
				nCoords := ComponentCoords{Chunk: e.coords.Chunk.Add(d), Component: nComp}

				if existing, ok := s.known[nCoords]; ok {
					if cp := s.find(existing); cp != c {
						s.merge(cp, c)
					}
					continue
				}

				s.known[nCoords] = e.seed
				s.components[c].unvisited++
				s.pushFrontier(nCoords, e.seed)
			}
		}
	}

	s.components[c].unvisited--
	if s.components[c].unvisited == 0 {
		s.live.EraseUnordered(int(c))
		s.emitted = append(s.emitted, c)
	}

	return s.isDone()
}

func (s *Splitter) isDone() bool {
	return s.live.Len() <= 1 || len(s.frontier) == 0
}

// Run steps the splitter to completion, a convenience for callers that do
// not need to interleave work between steps.
func (s *Splitter) Run() {
	for !s.Step() {
	}
}

// NumToEmit returns the number of fragments ready to hand back.
func (s *Splitter) NumToEmit() int {
	return len(s.emitted)
}

// Get returns fragment i's chunk-coord bounding rectangle and the per-chunk
// components it absorbed. The caller is expected to create a new grid
// entity per fragment and move these components over via
// chunkconn.ChunkComponents.MoveFrom + SwapLastAndRemove.
func (s *Splitter) Get(i int) (coord.ChunkRect, []ComponentCoords) {
	ci := s.emitted[i]
	info := &s.components[ci]

	return info.bounds, info.contents
}
