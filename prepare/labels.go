// File: labels.go
// Role: The three vertex labellings computed by Prepare.
// Determinism:
//   - All passes iterate vertices and edges in index order.

package prepare

// distances relaxes every edge in both directions for |V| full passes,
// starting from 0 at the start vertex.
func distances(n *Network) []int64 {
	dist := make([]int64, len(n.ids))
	for i := range dist {
		dist[i] = Infinity
	}
	dist[n.start] = 0

	for pass := 0; pass < len(n.ids); pass++ {
		changed := false
		for ei, ends := range n.edgeEnds {
			weight := n.edgeW[ei]
			u, v := ends[0], ends[1]
			if dist[u] != Infinity && dist[u]+weight < dist[v] {
				dist[v] = dist[u] + weight
				changed = true
			}
			if dist[v] != Infinity && dist[v]+weight < dist[u] {
				dist[u] = dist[v] + weight
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// depths computes hop counts by breadth-first spread from the start.
// Unreachable vertices keep depth |V|.
func depths(n *Network) []int {
	w := &walker{
		n:     n,
		depth: make([]int, len(n.ids)),
		queue: make([]int, 0, len(n.ids)),
	}
	for i := range w.depth {
		w.depth[i] = len(n.ids)
	}
	w.run()

	return w.depth
}

// walker encapsulates the BFS state used by depths.
type walker struct {
	n     *Network
	depth []int
	queue []int
}

func (w *walker) run() {
	w.depth[w.n.start] = 0
	w.queue = append(w.queue, w.n.start)
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		for _, a := range w.n.arcs[u] {
			if w.depth[a.To] > w.depth[u]+1 {
				w.depth[a.To] = w.depth[u] + 1
				w.queue = append(w.queue, a.To)
			}
		}
	}
}

// measures spreads reward density layer by layer from the start outward.
//
// For layer d, every vertex c at depth d (index order) visits its arcs:
//   - same-layer neighbour e: the endpoint with the lower current measure p
//     is raised to max(measure(p), interest(p)/w + measure(r)) where r is the
//     other endpoint;
//   - deeper neighbour x: measure(x) = max(measure(x), interest(x)/w + measure(c)).
//
// Shallower neighbours are ignored.
func measures(n *Network) []float64 {
	m := make([]float64, len(n.ids))
	maxDepth := 0
	for _, d := range n.depth {
		if d > maxDepth {
			maxDepth = d
		}
	}

	layers := make([][]int, maxDepth+1)
	for v, d := range n.depth {
		layers[d] = append(layers[d], v)
	}

	for d, layer := range layers {
		for _, c := range layer {
			for _, a := range n.arcs[c] {
				w := float64(a.Weight)
				switch n.depth[a.To] {
				case d:
					p, r := a.To, c
					if m[c] < m[a.To] {
						p, r = c, a.To
					}
					if cand := float64(n.interest[p])/w + m[r]; cand > m[p] {
						m[p] = cand
					}
				case d + 1:
					if cand := float64(n.interest[a.To])/w + m[c]; cand > m[a.To] {
						m[a.To] = cand
					}
				}
			}
		}
	}

	return m
}
