package mapio

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

// ToGraph validates doc and builds the graph it describes. The first vertex
// becomes the start vertex; edges keep document order.
//
// Errors: ErrEmptyDocument, ErrDuplicateVertex, ErrUnknownVertex, and core
// validation errors (empty name, negative interest, non-positive weight).
func ToGraph(doc *Document) (*core.Graph, error) {
	if doc == nil || len(doc.Vertices) == 0 {
		return nil, ErrEmptyDocument
	}

	g := core.NewGraph(core.WithStart(doc.Start()))
	for i, v := range doc.Vertices {
		if g.HasVertex(v.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v.Name)
		}
		opts := []core.VertexOption{core.WithPosition(v.X, v.Y)}
		if v.ChildText != "" {
			opts = append(opts, core.WithLabel(v.ChildText))
		}
		if err := g.AddVertex(v.Name, v.Interest, opts...); err != nil {
			return nil, fmt.Errorf("mapio: vertex %d (%q): %w", i, v.Name, err)
		}
	}
	for i, e := range doc.Edges {
		for _, end := range [2]string{e.FirstVertexName, e.SecondVertexName} {
			if !g.HasVertex(end) {
				return nil, fmt.Errorf("%w: edge %d names %q", ErrUnknownVertex, i, end)
			}
		}
		if _, err := g.AddEdge(e.FirstVertexName, e.SecondVertexName, e.Weight); err != nil {
			return nil, fmt.Errorf("mapio: edge %d (%s-%s): %w", i, e.FirstVertexName, e.SecondVertexName, err)
		}
	}

	return g, nil
}

// FromGraph converts g into a Document with the start vertex first.
func FromGraph(g *core.Graph, spawnRate float64) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	start := g.Start()
	ids := g.Vertices()
	doc := &Document{
		SpawnRate: spawnRate,
		Vertices:  make([]VertexDoc, 0, len(ids)),
		Edges:     make([]EdgeDoc, 0, g.EdgeCount()),
	}
	add := func(id string) error {
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("mapio: vertex %q: %w", id, err)
		}
		doc.Vertices = append(doc.Vertices, VertexDoc{
			Name:      v.ID,
			Interest:  v.Interest,
			X:         v.X,
			Y:         v.Y,
			ChildText: v.Label,
		})

		return nil
	}
	if start != "" {
		if err := add(start); err != nil {
			return nil, err
		}
	}
	for _, id := range ids {
		if id == start {
			continue
		}
		if err := add(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Weight:           e.Weight,
			FirstVertexName:  e.From,
			SecondVertexName: e.To,
		})
	}

	return doc, nil
}
