package diag

import (
	"github.com/gridkit/tilegrid/chunkconn"
	"github.com/gridkit/tilegrid/coord"
	"github.com/gridkit/tilegrid/splitter"
)

// cycleFinder carries the state for one depth-first cycle search over a
// ComponentGraph: which vertices are on the current path, and each visited
// vertex's parent in the DFS tree (to tell a genuine back edge from simply
// walking back along the edge just arrived on).
type cycleFinder struct {
	g       *ComponentGraph
	visited map[string]bool
	parent  map[string]string
	onStack map[string]bool
	stack   []string
	cycles  [][]string
}

// DetectRedundantLinks exports chunks into a component graph and depth-
// first-walks it looking for back edges, i.e. cross-chunk neighbor cycles:
// more than one independent path between two components. Each reported
// cycle is decoded back into ComponentCoords in path order. This is purely
// a diagnostic signal for a host to act on (or not); it never mutates
// chunks or removes a link itself.
func DetectRedundantLinks(chunks map[coord.ChunkCoord]*chunkconn.ChunkComponents) ([][]splitter.ComponentCoords, error) {
	g := ExportComponentGraph(chunks)

	f := &cycleFinder{
		g:       g,
		visited: make(map[string]bool),
		parent:  make(map[string]string),
		onStack: make(map[string]bool),
	}
	for _, id := range g.Vertices() {
		if !f.visited[id] {
			f.visit(id, "")
		}
	}
	if len(f.cycles) == 0 {
		return nil, nil
	}

	out := make([][]splitter.ComponentCoords, 0, len(f.cycles))
	for _, cycle := range f.cycles {
		decoded := make([]splitter.ComponentCoords, 0, len(cycle))
		for _, id := range cycle {
			cc, err := parseVertexID(id)
			if err != nil {
				return nil, err
			}
			decoded = append(decoded, cc)
		}
		out = append(out, decoded)
	}

	return out, nil
}

func (f *cycleFinder) visit(id, parent string) {
	f.visited[id] = true
	f.onStack[id] = true
	f.parent[id] = parent
	f.stack = append(f.stack, id)

	for _, n := range f.g.Neighbors(id) {
		if n == parent {
			continue
		}
		if !f.visited[n] {
			f.visit(n, id)
			continue
		}
		if f.onStack[n] {
			f.cycles = append(f.cycles, f.extractCycle(n))
		}
	}

	f.onStack[id] = false
	f.stack = f.stack[:len(f.stack)-1]
}

// extractCycle reads the current DFS stack back from its top (the vertex
// whose neighbor scan found the back edge) down to ancestor, returning the
// cycle in path order, ancestor first.
func (f *cycleFinder) extractCycle(ancestor string) []string {
	var cycle []string
	for i := len(f.stack) - 1; i >= 0; i-- {
		cycle = append(cycle, f.stack[i])
		if f.stack[i] == ancestor {
			break
		}
	}
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}
