package chunkconn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/tilegrid/coord"
)

// fullMask connects in every direction — used for "solid" test chunks.
const fullMask coord.TileEdgeConnectivity = 0xF

// grid is a small test double for a host's N×N cell storage: present marks
// which cells exist, and every present cell offers fullMask in every
// direction (full-connectivity filled regions) unless overridden per-cell
// via masks.
type grid struct {
	n       int
	present map[coord.InChunkCoord]bool
	masks   map[coord.InChunkCoord]coord.TileEdgeConnectivity
}

func newGrid(n int) *grid {
	return &grid{n: n, present: make(map[coord.InChunkCoord]bool), masks: make(map[coord.InChunkCoord]coord.TileEdgeConnectivity)}
}

func (g *grid) fill(x, y int) *grid {
	g.present[coord.InChunkCoord{X: x, Y: y}] = true
	return g
}

func (g *grid) fillAll() *grid {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			g.fill(x, y)
		}
	}
	return g
}

func (g *grid) exists(p coord.InChunkCoord) bool {
	return g.present[p]
}

func (g *grid) connectivity(p coord.InChunkCoord, _ coord.Direction) coord.TileEdgeConnectivity {
	if m, ok := g.masks[p]; ok {
		return m
	}
	return fullMask
}

func TestComputeComponents_EmptyChunk(t *testing.T) {
	g := newGrid(4)
	cc := ComputeComponents(4, g.exists, g.connectivity, NewScratch(4), nil)
	assert.Equal(t, 0, cc.NumComponents())
}

func TestComputeComponents_SingleTileChunk(t *testing.T) {
	g := newGrid(1).fillAll()
	cc := ComputeComponents(1, g.exists, g.connectivity, NewScratch(1), nil)
	require.Equal(t, 1, cc.NumComponents())

	comp := cc.Components[0]
	assert.Len(t, comp.Tiles, 1)
	assert.Equal(t, coord.InChunkCoord{X: 0, Y: 0}, comp.Tiles[0])
	// n=1: the lone cell touches all four chunk borders.
	assert.Len(t, comp.BorderEdges, 4)
	for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
		edge := coord.PackBorderEdge(d, 0, 1)
		c, mask := cc.BorderEdgeComponent(edge)
		assert.Equal(t, ComponentIndex(0), c)
		assert.Equal(t, fullMask, mask)
	}
}

func TestComputeComponents_IsolatedTiles(t *testing.T) {
	g := newGrid(4)
	// Four isolated present cells, none adjacent to another.
	g.fill(0, 0).fill(3, 0).fill(0, 3).fill(3, 3)
	cc := ComputeComponents(4, g.exists, g.connectivity, NewScratch(4), nil)
	assert.Equal(t, 4, cc.NumComponents())
	for _, comp := range cc.Components {
		assert.Len(t, comp.Tiles, 1)
	}
}

func TestComputeComponents_SolidChunkOneComponentFullBorders(t *testing.T) {
	g := newGrid(4).fillAll()
	cc := ComputeComponents(4, g.exists, g.connectivity, NewScratch(4), nil)
	require.Equal(t, 1, cc.NumComponents())

	comp := cc.Components[0]
	assert.Len(t, comp.Tiles, 16)
	assert.Equal(t, coord.InChunkRect{Min: coord.InChunkCoord{0, 0}, Max: coord.InChunkCoord{3, 3}}, comp.Bounds)

	// Every one of the 4*N=16 border edges is owned by this single
	// component with the full mask (spec.md §8 scenario 1).
	assert.Len(t, comp.BorderEdges, 16)
	for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
		for offset := 0; offset < 4; offset++ {
			edge := coord.PackBorderEdge(d, offset, 4)
			c, mask := cc.BorderEdgeComponent(edge)
			assert.Equal(t, ComponentIndex(0), c)
			assert.Equal(t, fullMask, mask)
		}
	}
}

func TestComputeComponents_NoAdjacencyWithoutMaskOverlap(t *testing.T) {
	g := newGrid(2).fillAll()
	g.masks[coord.InChunkCoord{X: 0, Y: 0}] = 0
	g.masks[coord.InChunkCoord{X: 1, Y: 0}] = 0
	g.masks[coord.InChunkCoord{X: 0, Y: 1}] = 0
	g.masks[coord.InChunkCoord{X: 1, Y: 1}] = 0
	cc := ComputeComponents(2, g.exists, g.connectivity, NewScratch(2), nil)
	// Zero masks never share a bit, so every cell is its own component.
	assert.Equal(t, 4, cc.NumComponents())
}

func TestComputeComponents_OnComponentDoneCallback(t *testing.T) {
	g := newGrid(4)
	g.fill(0, 0).fill(3, 3)
	var seen []ComponentIndex
	cc := ComputeComponents(4, g.exists, g.connectivity, NewScratch(4), func(ci ComponentIndex, c *Component) {
		seen = append(seen, ci)
		assert.Len(t, c.Tiles, 1)
	})
	assert.Equal(t, []ComponentIndex{0, 1}, seen)
	assert.Equal(t, 2, cc.NumComponents())
}

func TestComputeSingleComponents_StreamsOneAtATime(t *testing.T) {
	g := newGrid(3)
	g.fill(0, 0).fill(2, 2).fill(1, 1)
	var out Component
	var sizes []int
	ComputeSingleComponents(3, g.exists, g.connectivity, NewScratch(3), &out, func(c *Component) {
		sizes = append(sizes, len(c.Tiles))
	})
	assert.Equal(t, []int{1, 1, 1}, sizes)
}

func TestSwapLastAndRemove(t *testing.T) {
	g := newGrid(4)
	g.fill(0, 0).fill(3, 3).fill(0, 3)
	cc := ComputeComponents(4, g.exists, g.connectivity, NewScratch(4), nil)
	require.Equal(t, 3, cc.NumComponents())

	// Remove the middle component (index 1); the last component (index 2)
	// should be swapped into its place and its border edges re-pointed.
	lastTile := cc.Components[2].Tiles[0]
	cc.SwapLastAndRemove(1, false)
	assert.Equal(t, 2, cc.NumComponents())
	assert.Equal(t, lastTile, cc.Components[1].Tiles[0])

	edge := coord.PackBorderEdge(coord.DirPlusX, lastTile.Y, 4)
	c, _ := cc.BorderEdgeComponent(edge)
	assert.Equal(t, ComponentIndex(1), c)
}

func TestMoveFromAndSwapLastAndRemove(t *testing.T) {
	src := newGrid(4)
	src.fill(0, 0)
	srcCC := ComputeComponents(4, src.exists, src.connectivity, NewScratch(4), nil)
	require.Equal(t, 1, srcCC.NumComponents())

	dstCC := NewChunkComponents(4)
	newIdx := srcCC.MoveFrom(0, dstCC)
	assert.Equal(t, ComponentIndex(0), newIdx)
	require.Equal(t, 1, dstCC.NumComponents())
	assert.Equal(t, coord.InChunkCoord{X: 0, Y: 0}, dstCC.Components[0].Tiles[0])

	srcCC.SwapLastAndRemove(0, true)
	assert.Equal(t, 0, srcCC.NumComponents())

	// The moved component's border footprint now lives in dst, not src.
	edge := coord.PackBorderEdge(coord.DirMinusX, 0, 4)
	c, _ := dstCC.BorderEdgeComponent(edge)
	assert.Equal(t, ComponentIndex(0), c)
}
