package diag

import (
	"fmt"

	"github.com/gridkit/tilegrid/chunkconn"
	"github.com/gridkit/tilegrid/coord"
	"github.com/gridkit/tilegrid/splitter"
)

// vertexID encodes a ComponentCoords into a stable, human-readable graph
// vertex ID, e.g. "3,-2:0" for component 0 of chunk (3,-2).
func vertexID(c splitter.ComponentCoords) string {
	return fmt.Sprintf("%d,%d:%d", c.Chunk.X, c.Chunk.Y, c.Component)
}

// ExportComponentGraph renders the per-chunk components in chunks, plus the
// cross-chunk neighbor links already recorded on each ChunkComponents, into
// an undirected graph whose vertices are ComponentCoords and whose edges are
// neighbor links. chunks missing from the map are treated as unloaded: a
// recorded neighbor link pointing at a chunk absent from the map is skipped,
// so no edge or vertex for an unloaded chunk is ever added.
func ExportComponentGraph(chunks map[coord.ChunkCoord]*chunkconn.ChunkComponents) *ComponentGraph {
	g := newComponentGraph()

	for at, cc := range chunks {
		for c := chunkconn.ComponentIndex(0); int(c) < cc.NumComponents(); c++ {
			g.addVertex(vertexID(splitter.ComponentCoords{Chunk: at, Component: c}))
		}
	}

	for at, cc := range chunks {
		for c := chunkconn.ComponentIndex(0); int(c) < cc.NumComponents(); c++ {
			from := vertexID(splitter.ComponentCoords{Chunk: at, Component: c})
			for d := coord.DirPlusX; d <= coord.DirMinusY; d++ {
				neighborAt := at.Add(d)
				if _, loaded := chunks[neighborAt]; !loaded {
					continue
				}
				for _, nComp := range cc.NeighborComponents(d, c) {
					to := vertexID(splitter.ComponentCoords{Chunk: neighborAt, Component: nComp})
					g.addEdge(from, to)
				}
			}
		}
	}

	return g
}
