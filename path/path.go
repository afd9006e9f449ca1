package path

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/immutable"
)

// MaxEdgeUses is the number of times a single edge may appear in a walk.
const MaxEdgeUses = 2

var (
	// ErrEdgeOveruse indicates a third traversal of the same edge.
	ErrEdgeOveruse = errors.New("path: edge traversed more than twice")

	// ErrEmptyPath indicates an extension of a path with no vertices.
	ErrEmptyPath = errors.New("path: extend on empty path")
)

// InvariantError reports a broken precondition detected by a Path.
// It is raised with panic; the search recovers it at the task boundary.
type InvariantError struct {
	Op   string // operation that detected the violation
	Edge int    // offending edge index, -1 if not applicable
	Err  error  // sentinel
}

func (e *InvariantError) Error() string {
	if e.Edge < 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s edge %d: %v", e.Op, e.Edge, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Hop is one extension step: move over Edge (of Weight) to vertex To, whose
// reward is Reward.
type Hop struct {
	To     int
	Edge   int
	Weight int64
	Reward int64
}

// Path is an immutable walk. The zero value is not usable; use New or Seed.
type Path struct {
	vertices *immutable.List[int]
	edges    *immutable.List[int] // distinct edges, first-use order
	visited  *immutable.Map[int, struct{}]
	uses     *immutable.Map[int, int]
	time     int64
	interest int64
}

// New returns an empty path.
func New() *Path {
	return &Path{
		vertices: immutable.NewList[int](),
		edges:    immutable.NewList[int](),
		visited:  immutable.NewMap[int, struct{}](nil),
		uses:     immutable.NewMap[int, int](nil),
	}
}

// Seed returns a single-vertex path at v collecting reward.
func Seed(v int, reward int64) *Path {
	p := New()
	p.vertices = p.vertices.Append(v)
	p.visited = p.visited.Set(v, struct{}{})
	p.interest = reward

	return p
}

// Extend returns a new path with h appended. The receiver is unchanged.
//
// Time grows by h.Weight, the edge count of h.Edge grows by one and
// h.Reward is added only when h.To has not been visited before.
//
// Panics with *InvariantError when the path is empty or when h.Edge has
// already been traversed MaxEdgeUses times.
func (p *Path) Extend(h Hop) *Path {
	if p.vertices.Len() == 0 {
		panic(&InvariantError{Op: "extend", Edge: -1, Err: ErrEmptyPath})
	}
	n, seen := p.uses.Get(h.Edge)
	if n >= MaxEdgeUses {
		panic(&InvariantError{Op: "extend", Edge: h.Edge, Err: ErrEdgeOveruse})
	}

	next := *p
	next.vertices = p.vertices.Append(h.To)
	next.uses = p.uses.Set(h.Edge, n+1)
	if !seen {
		next.edges = p.edges.Append(h.Edge)
	}
	next.time = p.time + h.Weight
	if _, ok := p.visited.Get(h.To); !ok {
		next.visited = p.visited.Set(h.To, struct{}{})
		next.interest = p.interest + h.Reward
	}

	return &next
}

// WouldOveruse reports whether traversing edge once more would break the
// cycle rule.
func (p *Path) WouldOveruse(edge int) bool {
	n, _ := p.uses.Get(edge)

	return n >= MaxEdgeUses
}

// Contains reports whether v appears anywhere in the path.
func (p *Path) Contains(v int) bool {
	_, ok := p.visited.Get(v)

	return ok
}

// EdgeUses returns how many times edge has been traversed.
func (p *Path) EdgeUses(edge int) int {
	n, _ := p.uses.Get(edge)

	return n
}

// Len returns the number of vertices in the walk (revisits included).
func (p *Path) Len() int { return p.vertices.Len() }

// Distinct returns the number of distinct vertices visited.
func (p *Path) Distinct() int { return p.visited.Len() }

// At returns the i-th vertex of the walk.
func (p *Path) At(i int) int { return p.vertices.Get(i) }

// First returns the first vertex, or -1 for an empty path.
func (p *Path) First() int {
	if p.vertices.Len() == 0 {
		return -1
	}

	return p.vertices.Get(0)
}

// Last returns the current (last) vertex, or -1 for an empty path.
func (p *Path) Last() int {
	if p.vertices.Len() == 0 {
		return -1
	}

	return p.vertices.Get(p.vertices.Len() - 1)
}

// Vertices returns the walk as a fresh slice.
func (p *Path) Vertices() []int {
	out := make([]int, p.vertices.Len())
	for i := range out {
		out[i] = p.vertices.Get(i)
	}

	return out
}

// Edges returns the distinct traversed edges in first-use order.
func (p *Path) Edges() []int {
	out := make([]int, p.edges.Len())
	for i := range out {
		out[i] = p.edges.Get(i)
	}

	return out
}

// Time returns the total traversed weight.
func (p *Path) Time() int64 { return p.time }

// Interest returns the reward collected over distinct vertices.
func (p *Path) Interest() int64 { return p.interest }

// IsClosed reports whether the walk starts and ends at start.
func (p *Path) IsClosed(start int) bool {
	return p.vertices.Len() > 0 && p.First() == start && p.Last() == start
}

// Better reports whether p should replace best under the acceptance rule:
// strictly more interest, or equal interest in strictly less time.
// A nil or empty best is always replaced.
func (p *Path) Better(best *Path) bool {
	if best == nil || best.Len() == 0 {
		return true
	}
	if p.interest != best.interest {
		return p.interest > best.interest
	}

	return p.time < best.time
}
