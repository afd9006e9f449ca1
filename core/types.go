// Package core defines the central Graph, Vertex, and Edge types of an
// orienteering map and provides thread-safe primitives for building and
// querying it.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - edge weight is not strictly positive.
//	ErrNegativeInterest    - vertex interest is negative.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - a second edge between the same pair of vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge,
	// including a connecting-edge query for two vertices that are not adjacent.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrNegativeInterest indicates a negative vertex reward.
	ErrNegativeInterest = errors.New("core: vertex interest must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a point of interest on the map.
//
// Interest is collected once per distinct visit of a walk. X, Y and Label are
// display attributes that travel with the vertex through persistence; the
// search never reads them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Interest is the non-negative reward for visiting this vertex.
	Interest int64

	// X and Y are the map position of the vertex.
	X, Y float64

	// Label is the short text drawn on the vertex ("S" for the start).
	Label string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an undirected road between two vertices.
//
// From and To carry no orientation; "first" and "second" are only the order
// in which the endpoints were supplied. Weight is the travel time.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint ID.
	From string

	// To is the second endpoint ID.
	To string

	// Weight is the strictly positive travel time of the edge.
	Weight int64

	// Used marks the edge as part of the currently displayed best path.
	Used bool
}

// snapshot returns a detached copy of e. Callers must hold muEdgeAdj.
func (e *Edge) snapshot() *Edge {
	cp := *e

	return &cp
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return ""
}

// Connects reports whether the edge joins a and b in either order.
func (e *Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithStart designates the start vertex. The vertex does not need to exist
// yet; Start() reports it once it has been added.
func WithStart(id string) GraphOption {
	return func(g *Graph) { g.start = id }
}

// VertexOption configures display attributes of a vertex when added.
type VertexOption func(*Vertex)

// WithPosition sets the map position of the vertex.
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) { v.X, v.Y = x, y }
}

// WithLabel sets the display label of the vertex.
func WithLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// Graph is the in-memory orienteering map.
//
// It is always undirected and weighted, without loops or parallel edges.
// muVert protects vertices, order and start; muEdgeAdj protects edges and
// adjacencyList. Lock order is muVert -> muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order, start
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	start string // designated start vertex ID ("" ⇒ first inserted)

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // insertion order of vertex IDs
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[a][b] = edge ID, mirrored for b→a.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
