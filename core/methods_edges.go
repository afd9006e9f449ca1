// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/
//       EdgeCount/ConnectingEdge, the visualization flag, and nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e2" before "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between two existing vertices.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Check both endpoints exist (muVert read lock).
//  3. Lock muEdgeAdj, reject a second edge between the same pair.
//  4. Generate eid atomically, store the edge, mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight (weight <= 0), ErrLoopNotAllowed,
//     ErrVertexNotFound, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight <= 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacencyList[e.From], e.To)
	delete(g.adjacencyList[e.To], e.From)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether an edge joins a and b (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[a][b]

	return ok
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e.snapshot(), nil
}

// ConnectingEdge returns the edge joining a and b.
//
// Callers only ask for graph-adjacent pairs; ErrEdgeNotFound therefore
// signals a broken precondition rather than a routine miss.
//
// Complexity: O(1).
func (g *Graph) ConnectingEdge(a, b string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[a][b]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid].snapshot(), nil
}

// Edges returns copies of all edges sorted by creation sequence. The Used
// flags are read under the edge lock, so the result is a consistent view.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// MarkUsed flags exactly the given edges as used and every other edge as
// unused. Unknown IDs are ignored.
// Complexity: O(E + len(eids)).
func (g *Graph) MarkUsed(eids []string) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for _, e := range g.edges {
		e.Used = false
	}
	for _, eid := range eids {
		if e, ok := g.edges[eid]; ok {
			e.Used = true
		}
	}
}

// ClearUsed marks every edge unused.
func (g *Graph) ClearUsed() { g.MarkUsed(nil) }

// UsedEdges returns the IDs of edges currently flagged used, in sequence order.
func (g *Graph) UsedEdges() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []string
	for _, e := range g.edges {
		if e.Used {
			out = append(out, e.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i]) < edgeSeq(out[j]) })

	return out
}

// nextEdgeID returns a new unique edge ID ("e1", "e2", ...).
// Must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an edge ID; foreign IDs sort first.
func edgeSeq(eid string) uint64 {
	if len(eid) < 2 || eid[0] != edgeIDPrefix {
		return 0
	}
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
