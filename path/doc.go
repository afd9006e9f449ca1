// Package path implements the candidate walk explored by the orienteering
// search.
//
// A Path is an ordered sequence of vertex indices starting at the start
// vertex, together with:
//
//   - Time: the running sum of traversed edge weights;
//   - Interest: the sum of rewards over *distinct* vertices (a revisited
//     vertex is not paid twice);
//   - per-edge traversal counts.
//
// Paths are persistent: Extend never mutates the receiver, it returns a new
// Path sharing the prefix with its parent (benbjohnson/immutable lists and
// maps). Concurrent branches that start from a common prefix therefore never
// observe each other's extensions, and no defensive copying is needed when a
// branch is handed to another goroutine.
//
// Cycle rule: an edge may be traversed at most twice (there and back). A
// third traversal is a defect in the caller; Extend panics with an
// *InvariantError wrapping ErrEdgeOveruse. Callers guard with WouldOveruse.
package path
