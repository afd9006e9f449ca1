package mapio

import "errors"

var (
	// ErrEmptyDocument indicates a document without vertices.
	ErrEmptyDocument = errors.New("mapio: document has no vertices")

	// ErrDuplicateVertex indicates two vertices with the same name.
	ErrDuplicateVertex = errors.New("mapio: duplicate vertex name")

	// ErrUnknownVertex indicates an edge endpoint that names no vertex.
	ErrUnknownVertex = errors.New("mapio: edge references unknown vertex")

	// ErrUnknownFormat indicates a file extension with no codec.
	ErrUnknownFormat = errors.New("mapio: unknown document format")

	// ErrNilGraph indicates a nil *core.Graph passed to FromGraph.
	ErrNilGraph = errors.New("mapio: graph is nil")
)
