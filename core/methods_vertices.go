// File: methods_vertices.go
// Role: Vertex lifecycle & queries, start vertex designation.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; the first vertex is the
//     default start vertex, matching saved map documents.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

// AddVertex inserts a vertex with the given reward.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and non-negative interest.
//   - Stage 2: Under muVert write lock, register the vertex if missing.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Behavior highlights:
//   - Idempotent on ID: adding an existing vertex is a no-op and keeps the
//     original interest and attributes.
//   - The first vertex ever added becomes the start vertex unless WithStart
//     or SetStart designated another one.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrNegativeInterest: if interest < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, interest int64, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if interest < 0 {
		return ErrNegativeInterest
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}

	v := &Vertex{ID: id, Interest: interest, Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.order = append(g.order, id)
	if g.start == "" {
		g.start = id
	}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
// The returned pointer must be treated as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V) time and space.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Start returns the start vertex ID, or "" when the designated start vertex
// has not been added (or the graph is empty).
func (g *Graph) Start() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[g.start]; !ok {
		return ""
	}

	return g.start
}

// SetStart designates an existing vertex as the start vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) SetStart(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	g.start = id

	return nil
}

// TotalInterest returns the sum of every vertex's interest: the theoretical
// maximum a single walk could collect.
// Complexity: O(V).
func (g *Graph) TotalInterest() int64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	var sum int64
	for _, v := range g.vertices {
		sum += v.Interest
	}

	return sum
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[id]), nil
}
