// File: network.go
// Role: Immutable index-based view of a prepared map plus read accessors.
// Concurrency:
//   - A Network is never mutated after Prepare returns; all accessors are
//     safe for unlimited concurrent readers.

package prepare

import "math"

// Infinity is the distance label of vertices unreachable from the start.
// Chosen so that Infinity+weight never overflows int64.
const Infinity int64 = math.MaxInt64 / 4

// Arc is one outgoing road in the compiled adjacency.
type Arc struct {
	To     int   // neighbour vertex index
	Edge   int   // edge index
	Weight int64 // travel time
}

// Network is the compiled, labelled map used by the search.
type Network struct {
	ids      []string
	index    map[string]int
	interest []int64

	dist    []int64
	depth   []int
	measure []float64

	arcs     [][]Arc
	edgeIDs  []string
	edgeEnds [][2]int
	edgeW    []int64

	start       int
	maxInterest int64
	unreachable []int
}

// N returns the number of vertices.
func (n *Network) N() int { return len(n.ids) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edgeIDs) }

// Start returns the start vertex index.
func (n *Network) Start() int { return n.start }

// ID returns the external ID of vertex v.
func (n *Network) ID(v int) string { return n.ids[v] }

// IDs maps vertex indices to external IDs.
func (n *Network) IDs(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = n.ids[v]
	}

	return out
}

// Index returns the vertex index for an external ID.
func (n *Network) Index(id string) (int, bool) {
	v, ok := n.index[id]

	return v, ok
}

// Interest returns the reward of vertex v.
func (n *Network) Interest(v int) int64 { return n.interest[v] }

// Distance returns the shortest travel time from the start to v, or Infinity.
func (n *Network) Distance(v int) int64 { return n.dist[v] }

// Depth returns the hop count from the start to v, or N() if unreachable.
func (n *Network) Depth(v int) int { return n.depth[v] }

// Measure returns the ordering heuristic of v.
func (n *Network) Measure(v int) float64 { return n.measure[v] }

// Arcs returns v's adjacency ordered by descending neighbour measure.
// The slice is shared; callers must not modify it.
func (n *Network) Arcs(v int) []Arc { return n.arcs[v] }

// Connecting returns the arc from u to v.
func (n *Network) Connecting(u, v int) (Arc, bool) {
	for _, a := range n.arcs[u] {
		if a.To == v {
			return a, true
		}
	}

	return Arc{}, false
}

// EdgeID returns the external ID of edge e.
func (n *Network) EdgeID(e int) string { return n.edgeIDs[e] }

// EdgeIDs maps edge indices to external IDs.
func (n *Network) EdgeIDs(es []int) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = n.edgeIDs[e]
	}

	return out
}

// EdgeEnds returns the two endpoint indices of edge e.
func (n *Network) EdgeEnds(e int) (int, int) { return n.edgeEnds[e][0], n.edgeEnds[e][1] }

// EdgeWeight returns the travel time of edge e.
func (n *Network) EdgeWeight(e int) int64 { return n.edgeW[e] }

// MaxInterest is the sum of every vertex interest, the theoretical upper
// bound on a tour's reward.
func (n *Network) MaxInterest() int64 { return n.maxInterest }

// Reachable reports the vertices whose round trip from the start fits in
// budget (2·distance <= budget), in index order.
func (n *Network) Reachable(budget int64) []int {
	var out []int
	for v, d := range n.dist {
		if d != Infinity && 2*d <= budget {
			out = append(out, v)
		}
	}

	return out
}

// Unreachable returns the vertices in a different connected component than
// the start, in index order.
func (n *Network) Unreachable() []int {
	out := make([]int, len(n.unreachable))
	copy(out, n.unreachable)

	return out
}
