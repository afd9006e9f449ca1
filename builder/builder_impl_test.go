package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeSet returns the endpoint pairs of g in emission order.
func edgeSet(g *core.Graph) []edgeKey {
	out := make([]edgeKey, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, edgeKey{U: e.From, V: e.To})
	}

	return out
}

// reachable counts vertices connected to the start.
func reachable(t *testing.T, g *core.Graph) int {
	t.Helper()
	seen := map[string]bool{g.Start(): true}
	queue := []string{g.Start()}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbs, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, v := range nbs {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen)
}

// TestBuilders_Functional runs table-driven topology checks for the
// deterministic constructors.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []edgeKey{{"S", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "S"}}, edgeSet(g))
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []edgeKey{{"S", "1"}, {"1", "2"}, {"2", "3"}}, edgeSet(g))
				v, err := g.Vertex("3")
				require.NoError(t, err)
				assert.Equal(t, 3.0, v.X)
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				deg, err := g.Degree("S")
				require.NoError(t, err)
				assert.Equal(t, 4, deg)
				hub, err := g.Vertex("S")
				require.NoError(t, err)
				assert.Zero(t, hub.X)
				assert.Zero(t, hub.Y)
			},
		},
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					deg, err := g.Degree(id)
					require.NoError(t, err)
					assert.Equal(t, 4, deg, id)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, "S", g.Start())
			assert.Equal(t, tc.wantV, reachable(t, g))

			start, err := g.Vertex("S")
			require.NoError(t, err)
			assert.Zero(t, start.Interest)
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestRandomMap_Shape checks the tree invariants and value ranges of a
// sampled map.
func TestRandomMap_Shape(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomMap(5))
		require.NoError(t, err)

		assert.Equal(t, g.VertexCount()-1, g.EdgeCount(), "seed %d", seed)
		assert.Equal(t, g.VertexCount(), reachable(t, g), "seed %d", seed)
		assert.LessOrEqual(t, g.VertexCount(), 26)

		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.LessOrEqual(t, e.Weight, int64(6))
		}
		for _, id := range g.Vertices() {
			v, err := g.Vertex(id)
			require.NoError(t, err)
			if id == "S" {
				assert.Zero(t, v.Interest)
				assert.Zero(t, v.X)
				continue
			}
			assert.GreaterOrEqual(t, v.Interest, int64(1))
			assert.LessOrEqual(t, v.Interest, int64(9))
			assert.Equal(t, 1, int(v.X)%2, "cells sit on odd coordinates")
			assert.Equal(t, 1, int(v.Y)%2, "cells sit on odd coordinates")
		}
	}
}

// TestRandomMap_Determinism checks that equal seeds yield identical maps.
func TestRandomMap_Determinism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomMap(6))
		require.NoError(t, err)

		return g
	}

	a, b := build(77), build(77)
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, edgeSet(a), edgeSet(b))
	for i, e := range a.Edges() {
		assert.Equal(t, e.Weight, b.Edges()[i].Weight)
	}
}

// TestRandomMap_SpawnRate checks the two extreme spawn rates.
func TestRandomMap_SpawnRate(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3), builder.WithSpawnRate(1)}, builder.RandomMap(4))
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3), builder.WithSpawnRate(0)}, builder.RandomMap(4))
	require.NoError(t, err)
	assert.Equal(t, 17, g.VertexCount())
	assert.Equal(t, 16, g.EdgeCount())
}

// TestBuilders_Errors checks sentinel errors for bad parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomMap(0)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomMap(0), builder.ErrTooFewVertices},
		{"RandomMap_noRNG", nil, builder.RandomMap(3), builder.ErrNeedRandSource},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}
