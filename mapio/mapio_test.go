package mapio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/mapio"
)

// fixture is S(0) -2- 1(5) -4- 2(3).
func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("S", 0, core.WithPosition(0, 0), core.WithLabel("Start")))
	require.NoError(t, g.AddVertex("1", 5, core.WithPosition(1, 1)))
	require.NoError(t, g.AddVertex("2", 3, core.WithPosition(1, 3)))
	_, err := g.AddEdge("S", "1", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 4)
	require.NoError(t, err)

	return g
}

func TestEncodeJSON_Golden(t *testing.T) {
	doc, err := mapio.FromGraph(fixture(t), 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mapio.EncodeJSON(&buf, doc))
	goldie.New(t).Assert(t, "fixture_json", buf.Bytes())
}

func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := mapio.Load(filepath.Join("testdata", "fixture.json"))
	require.NoError(t, err)
	fromYAML, err := mapio.Load(filepath.Join("testdata", "fixture.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "S", fromJSON.Start())
	assert.Equal(t, int64(8), fromJSON.TotalInterest())
}

func TestToGraph(t *testing.T) {
	doc, err := mapio.Load(filepath.Join("testdata", "fixture.json"))
	require.NoError(t, err)

	g, err := mapio.ToGraph(doc)
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start())
	assert.Equal(t, []string{"S", "1", "2"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	e, err := g.ConnectingEdge("2", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.Weight)

	s, err := g.Vertex("S")
	require.NoError(t, err)
	assert.Equal(t, "Start", s.Label)
	v, err := g.Vertex("2")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Y)
}

func TestToGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  *mapio.Document
		want error
	}{
		{"nil", nil, mapio.ErrEmptyDocument},
		{"empty", &mapio.Document{}, mapio.ErrEmptyDocument},
		{
			"duplicate",
			&mapio.Document{Vertices: []mapio.VertexDoc{{Name: "S"}, {Name: "S"}}},
			mapio.ErrDuplicateVertex,
		},
		{
			"unknown endpoint",
			&mapio.Document{
				Vertices: []mapio.VertexDoc{{Name: "S"}},
				Edges:    []mapio.EdgeDoc{{Weight: 1, FirstVertexName: "S", SecondVertexName: "X"}},
			},
			mapio.ErrUnknownVertex,
		},
		{
			"zero weight",
			&mapio.Document{
				Vertices: []mapio.VertexDoc{{Name: "S"}, {Name: "A", Interest: 1}},
				Edges:    []mapio.EdgeDoc{{Weight: 0, FirstVertexName: "S", SecondVertexName: "A"}},
			},
			core.ErrBadWeight,
		},
		{
			"negative interest",
			&mapio.Document{Vertices: []mapio.VertexDoc{{Name: "S", Interest: -1}}},
			core.ErrNegativeInterest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := mapio.ToGraph(tc.doc)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestSaveLoad_GeneratedMap(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomMap(4))
	require.NoError(t, err)
	doc, err := mapio.FromGraph(g, 0.5)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"map.json", "map.yml"} {
		p := filepath.Join(dir, name)
		require.NoError(t, mapio.Save(p, doc))
		back, err := mapio.Load(p)
		require.NoError(t, err, name)
		assert.Equal(t, doc, back, name)

		rebuilt, err := mapio.ToGraph(back)
		require.NoError(t, err)
		assert.Equal(t, g.Vertices(), rebuilt.Vertices())
		assert.Equal(t, g.EdgeCount(), rebuilt.EdgeCount())
		assert.Equal(t, g.TotalInterest(), rebuilt.TotalInterest())
	}
}

func TestFormatOf(t *testing.T) {
	f, err := mapio.FormatOf("a/B.YAML")
	require.NoError(t, err)
	assert.Equal(t, mapio.FormatYAML, f)

	_, err = mapio.FormatOf("map.txt")
	assert.ErrorIs(t, err, mapio.ErrUnknownFormat)

	_, err = mapio.DecodeJSON(strings.NewReader(`{"Bogus":1}`))
	assert.Error(t, err)

	_, err = mapio.FromGraph(nil, 0)
	assert.ErrorIs(t, err, mapio.ErrNilGraph)
}
