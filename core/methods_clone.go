// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID and insertion order.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: start vertex, vertices (in
// insertion order), edges with their used flags, and adjacency.
// Metadata maps are shared, not copied.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithStart(g.start))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
		clone.adjacencyList[id] = make(map[string]string, len(g.adjacencyList[id]))
		for nbr, eid := range g.adjacencyList[id] {
			clone.adjacencyList[id][nbr] = eid
		}
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}

	return clone
}

// Clear removes all vertices and edges, resets the edge ID counter and
// forgets the start vertex designation.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.start = ""
	g.vertices = make(map[string]*Vertex)
	g.order = nil
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
