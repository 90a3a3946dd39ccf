package diag

import (
	"fmt"

	"github.com/gridkit/tilegrid/chunkconn"
	"github.com/gridkit/tilegrid/coord"
	"github.com/gridkit/tilegrid/splitter"
)

// parseVertexID reverses vertexID, for decoding a reachability/cycle walk's
// results back into ComponentCoords.
func parseVertexID(id string) (splitter.ComponentCoords, error) {
	var x, y, c int
	if _, err := fmt.Sscanf(id, "%d,%d:%d", &x, &y, &c); err != nil {
		return splitter.ComponentCoords{}, fmt.Errorf("diag: malformed vertex id %q: %w", id, err)
	}
	return splitter.ComponentCoords{
		Chunk:     coord.ChunkCoord{X: x, Y: y},
		Component: chunkconn.ComponentIndex(c),
	}, nil
}

// CrossCheckReachability exports chunks into a component graph and breadth-
// first-walks it from start, returning the set of components it finds
// reachable. This is an independent oracle for chunkconn's own flood-fill-
// derived reachability (the set a caller tracks via splitter's union-find as
// one component): the two should always agree, and a test that finds them
// disagreeing has found a bug in one or the other.
func CrossCheckReachability(
	chunks map[coord.ChunkCoord]*chunkconn.ChunkComponents,
	start splitter.ComponentCoords,
) (map[splitter.ComponentCoords]bool, error) {
	g := ExportComponentGraph(chunks)
	startID := vertexID(start)
	if _, ok := g.adjacency[startID]; !ok {
		return nil, fmt.Errorf("diag: start component %v not present in exported graph", start)
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(id) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	reachable := make(map[splitter.ComponentCoords]bool, len(visited))
	for id := range visited {
		cc, err := parseVertexID(id)
		if err != nil {
			return nil, err
		}
		reachable[cc] = true
	}

	return reachable, nil
}
