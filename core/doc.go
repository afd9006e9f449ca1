// Package core provides the thread-safe in-memory map used by the
// orienteering search: vertices carrying a non-negative interest and
// undirected roads carrying a positive travel time.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; adjacency is mirrored (adjacencyList[a][b] == adjacencyList[b][a]).
//   - Weighted edges only; every weight is strictly positive.
//   - No self-loops, no parallel edges: ConnectingEdge(a,b) is unique.
//   - A designated start vertex (the first vertex added, or WithStart / SetStart).
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, interest int64, opts ...VertexOption) error // O(1)
//	HasVertex(id string) bool                                        // O(1)
//	Vertex(id string) (*Vertex, error)                               // O(1)
//	Start() string / SetStart(id string) error                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                                   // O(1)
//	HasEdge(a, b string) bool                                         // O(1)
//	ConnectingEdge(a, b string) (*Edge, error)                        // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // insertion order
//	Edges() []*Edge                          // creation order
//	TotalInterest() int64                    // theoretical maximum reward
//
//	// Visualization hook
//	MarkUsed(edgeIDs []string) / ClearUsed() / UsedEdges()
//
//	// Maintenance
//	Clone() *Graph / Clear() / Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge, or non-adjacent pair in ConnectingEdge
//	ErrBadWeight           – weight <= 0
//	ErrNegativeInterest    – interest < 0
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
