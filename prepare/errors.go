package prepare

import "errors"

// Sentinel errors returned by Prepare.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Prepare.
	ErrNilGraph = errors.New("prepare: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("prepare: graph is empty")

	// ErrNoStart indicates that the designated start vertex does not exist.
	ErrNoStart = errors.New("prepare: start vertex not found")

	// ErrIsolatedStart indicates a start vertex without incident edges in a
	// graph that has other vertices to visit.
	ErrIsolatedStart = errors.New("prepare: start vertex has no edges")
)
