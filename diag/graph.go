package diag

import "sort"

// ComponentGraph is an undirected adjacency-map graph over string vertex
// IDs, purpose-built for the handful of operations this package's callers
// need: add a vertex, add an edge, check for one, list neighbors. It
// carries no directed/mixed/weighted/multi-edge modes, no locking, and no
// traversal algorithms of its own — CrossCheckReachability and
// DetectRedundantLinks walk it directly.
type ComponentGraph struct {
	adjacency map[string]map[string]bool
}

func newComponentGraph() *ComponentGraph {
	return &ComponentGraph{adjacency: make(map[string]map[string]bool)}
}

func (g *ComponentGraph) addVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]bool)
	}
}

// addEdge links a and b both ways, adding either endpoint as a vertex if
// it isn't already one.
func (g *ComponentGraph) addEdge(a, b string) {
	g.addVertex(a)
	g.addVertex(b)
	g.adjacency[a][b] = true
	g.adjacency[b][a] = true
}

// HasEdge reports whether a and b are directly linked.
func (g *ComponentGraph) HasEdge(a, b string) bool {
	return g.adjacency[a][b]
}

// Neighbors returns id's neighbor IDs in sorted order, for deterministic
// traversal.
func (g *ComponentGraph) Neighbors(id string) []string {
	out := make([]string, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Vertices returns every vertex ID in sorted order.
func (g *ComponentGraph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VertexCount returns the number of vertices in the graph.
func (g *ComponentGraph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *ComponentGraph) EdgeCount() int {
	n := 0
	for _, neighbors := range g.adjacency {
		n += len(neighbors)
	}
	return n / 2
}
