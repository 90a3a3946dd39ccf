package chunkconn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/tilegrid/coord"
)

// TestComputeConnectivityBetweenChunks_TwoSolidChunks covers spec.md §8
// scenario 2: two fully-filled 4×4 chunks laid horizontally adjacent.
func TestComputeConnectivityBetweenChunks_TwoSolidChunks(t *testing.T) {
	a := newGrid(4).fillAll()
	b := newGrid(4).fillAll()
	aCC := ComputeComponents(4, a.exists, a.connectivity, NewScratch(4), nil)
	bCC := ComputeComponents(4, b.exists, b.connectivity, NewScratch(4), nil)
	require.Equal(t, 1, aCC.NumComponents())
	require.Equal(t, 1, bCC.NumComponents())

	ComputeConnectivityBetweenChunks(aCC, bCC, Horizontal, NewPairScratch())

	assert.Equal(t, []ComponentIndex{0}, aCC.NeighborComponents(coord.DirPlusX, 0))
	assert.Equal(t, []ComponentIndex{0}, bCC.NeighborComponents(coord.DirMinusX, 0))
	// No neighbors recorded in the direction facing away from the other chunk.
	assert.Empty(t, aCC.NeighborComponents(coord.DirMinusX, 0))
	assert.Empty(t, bCC.NeighborComponents(coord.DirPlusX, 0))

	assert.Equal(t, 1, aCC.GetNumConnections(0))
	assert.Equal(t, 1, bCC.GetNumConnections(0))
}

func TestComputeConnectivityBetweenChunks_Symmetric(t *testing.T) {
	a := newGrid(4)
	a.fill(3, 0).fill(3, 1)
	b := newGrid(4)
	b.fill(0, 0).fill(0, 1).fill(0, 2)
	aCC := ComputeComponents(4, a.exists, a.connectivity, NewScratch(4), nil)
	bCC := ComputeComponents(4, b.exists, b.connectivity, NewScratch(4), nil)

	ComputeConnectivityBetweenChunks(aCC, bCC, Horizontal, NewPairScratch())

	// Invariant (spec.md §8): c' in A.neighbor[dir][c] iff c in B.neighbor[opp][c'].
	for c := ComponentIndex(0); int(c) < aCC.NumComponents(); c++ {
		for _, cp := range aCC.NeighborComponents(coord.DirPlusX, c) {
			assert.Contains(t, bCC.NeighborComponents(coord.DirMinusX, cp), c)
		}
	}
	for cp := ComponentIndex(0); int(cp) < bCC.NumComponents(); cp++ {
		for _, c := range bCC.NeighborComponents(coord.DirMinusX, cp) {
			assert.Contains(t, aCC.NeighborComponents(coord.DirPlusX, c), cp)
		}
	}
}

func TestComputeConnectivityBetweenChunks_AbsentChunkZeroes(t *testing.T) {
	a := newGrid(4).fillAll()
	aCC := ComputeComponents(4, a.exists, a.connectivity, NewScratch(4), nil)

	ComputeConnectivityBetweenChunks(aCC, nil, Horizontal, NewPairScratch())
	assert.Empty(t, aCC.NeighborComponents(coord.DirPlusX, 0))

	// Both absent is a no-op; must not panic.
	ComputeConnectivityBetweenChunks(nil, nil, Horizontal, NewPairScratch())
}

func TestComputeConnectivityBetweenChunks_UniquePairing(t *testing.T) {
	// A single A-component spans the whole shared edge and should be paired
	// with B's single component exactly once, not N times.
	a := newGrid(4).fillAll()
	b := newGrid(4).fillAll()
	aCC := ComputeComponents(4, a.exists, a.connectivity, NewScratch(4), nil)
	bCC := ComputeComponents(4, b.exists, b.connectivity, NewScratch(4), nil)

	ComputeConnectivityBetweenChunks(aCC, bCC, Horizontal, NewPairScratch())
	assert.Len(t, aCC.NeighborComponents(coord.DirPlusX, 0), 1)
}
