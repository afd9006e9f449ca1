// Package prepare compiles a core.Graph into an immutable, index-based
// Network labelled for the orienteering search.
//
// Prepare runs once per graph instance and computes:
//
//   - distance-from-start: minimum total edge weight from the start vertex,
//     by relaxing every edge in both directions for |V| full passes
//     (Infinity for unreachable vertices);
//   - depth: hop count from the start vertex by breadth-first spread
//     (|V| for unreachable vertices);
//   - measure: a reward-density score pushed layer by layer from the start
//     outward, used only to order neighbours best-first.
//
// The Network keeps per-vertex adjacency (Arcs) sorted by descending
// measure, so the search explores the most promising neighbour first.
// Measures never prune; they only make good tours appear early, which
// tightens the search's memo-based pruning.
//
// Configuration errors are returned synchronously:
//
//	ErrNilGraph      – nil graph
//	ErrEmptyGraph    – graph without vertices
//	ErrNoStart       – designated start vertex missing
//	ErrIsolatedStart – start vertex has no edge while other vertices exist
package prepare
