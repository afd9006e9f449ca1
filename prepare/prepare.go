// File: prepare.go
// Role: Prepare entry point: validate, compile and label a core.Graph.

package prepare

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orienteer/core"
	"github.com/sirupsen/logrus"
)

// Prepare validates g and compiles it into a labelled Network.
//
// Steps:
//  1. Validate graph, start vertex and start connectivity.
//  2. Assign vertex indices in insertion order, edge indices in creation order.
//  3. Label distance, depth and measure.
//  4. Sort every adjacency by descending neighbour measure (ties: lower index).
//  5. Record vertices outside the start's component.
//
// Complexity: O(V·E) for the distance passes, O(V+E) otherwise.
func Prepare(g *core.Graph, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	start := g.Start()
	if start == "" {
		return nil, ErrNoStart
	}

	n, err := compile(g, start)
	if err != nil {
		return nil, err
	}
	if len(n.ids) > 1 && len(n.arcs[n.start]) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrIsolatedStart, start)
	}

	n.dist = distances(n)
	n.depth = depths(n)
	n.measure = measures(n)
	n.sortArcs()
	n.unreachable = unreachable(n)

	log := o.Logger.WithFields(logrus.Fields{
		"vertices": len(n.ids),
		"edges":    len(n.edgeIDs),
		"start":    start,
	})
	if len(n.unreachable) > 0 {
		log.WithField("unreachable", n.IDs(n.unreachable)).Warn("vertices cannot be reached from start")
	}
	log.WithField("maxInterest", n.maxInterest).Debug("network prepared")

	return n, nil
}

// compile copies topology out of g into index-based slices.
func compile(g *core.Graph, start string) (*Network, error) {
	ids := g.Vertices()
	n := &Network{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		interest: make([]int64, len(ids)),
		arcs:     make([][]Arc, len(ids)),
	}
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("prepare: vertex %q: %w", id, err)
		}
		n.index[id] = i
		n.interest[i] = v.Interest
		n.maxInterest += v.Interest
	}
	n.start = n.index[start]

	edges := g.Edges()
	n.edgeIDs = make([]string, len(edges))
	n.edgeEnds = make([][2]int, len(edges))
	n.edgeW = make([]int64, len(edges))
	for ei, e := range edges {
		u, okU := n.index[e.From]
		v, okV := n.index[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("prepare: edge %s: %w", e.ID, core.ErrVertexNotFound)
		}
		n.edgeIDs[ei] = e.ID
		n.edgeEnds[ei] = [2]int{u, v}
		n.edgeW[ei] = e.Weight
		n.arcs[u] = append(n.arcs[u], Arc{To: v, Edge: ei, Weight: e.Weight})
		n.arcs[v] = append(n.arcs[v], Arc{To: u, Edge: ei, Weight: e.Weight})
	}

	return n, nil
}

// sortArcs orders each adjacency best-first by neighbour measure.
func (n *Network) sortArcs() {
	for v := range n.arcs {
		arcs := n.arcs[v]
		sort.SliceStable(arcs, func(i, j int) bool {
			mi, mj := n.measure[arcs[i].To], n.measure[arcs[j].To]
			if mi != mj {
				return mi > mj
			}

			return arcs[i].To < arcs[j].To
		})
	}
}
