// File: components.go
// Role: Connected-component detection with a disjoint-set forest.

package prepare

import "github.com/spakin/disjoint"

// unreachable returns the vertices whose disjoint-set representative differs
// from the start's, in index order.
func unreachable(n *Network) []int {
	sets := make([]*disjoint.Element, len(n.ids))
	for i := range sets {
		sets[i] = disjoint.NewElement()
		sets[i].Data = i
	}
	for _, ends := range n.edgeEnds {
		disjoint.Union(sets[ends[0]], sets[ends[1]])
	}

	root := sets[n.start].Find()
	var out []int
	for i, s := range sets {
		if s.Find() != root {
			out = append(out, i)
		}
	}

	return out
}
