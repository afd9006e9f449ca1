// File: api.go
// Role: Thin read-only facade: Stats snapshot and the isolated-vertex query.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a value snapshot of catalog sizes used for diagnostics and
// run admission checks.
type GraphStats struct {
	VertexCount   int    // number of vertices
	EdgeCount     int    // number of edges
	Start         string // start vertex ID ("" if none)
	TotalInterest int64  // sum of all vertex interests
	TotalWeight   int64  // sum of all edge weights
	Isolated      int    // vertices without incident edges
}

// Stats produces a deterministic, read-only snapshot of the graph.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot vertex count, start and interests.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot edge count, weights and isolation.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	stats := GraphStats{VertexCount: len(g.vertices)}
	if _, ok := g.vertices[g.start]; ok {
		stats.Start = g.start
	}
	for _, v := range g.vertices {
		stats.TotalInterest += v.Interest
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	for id := range g.vertices {
		if len(g.adjacencyList[id]) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return g.VertexCount() == 0 }
