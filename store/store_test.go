package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/mapio"
	"github.com/katalvlaran/orienteer/run"
	"github.com/katalvlaran/orienteer/store"
)

func open(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "nested", "orienteer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })

	return s
}

func doc(names ...string) *mapio.Document {
	d := &mapio.Document{SpawnRate: 0.5}
	for i, n := range names {
		d.Vertices = append(d.Vertices, mapio.VertexDoc{Name: n, Interest: int64(i)})
		if i > 0 {
			d.Edges = append(d.Edges, mapio.EdgeDoc{Weight: 1, FirstVertexName: names[0], SecondVertexName: n})
		}
	}

	return d
}

func TestMaps(t *testing.T) {
	s := open(t)

	require.NoError(t, s.SaveMap("zeta", doc("S", "A")))
	require.NoError(t, s.SaveMap("alpha", doc("S", "A", "B")))
	require.NoError(t, s.SaveMap("zeta", doc("S", "A", "B", "C")))
	assert.ErrorIs(t, s.SaveMap("", doc("S")), store.ErrEmptyName)

	got, err := s.LoadMap("zeta")
	require.NoError(t, err)
	assert.Equal(t, doc("S", "A", "B", "C"), got)

	recs, err := s.ListMaps()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "alpha", recs[0].Name)
	assert.Equal(t, "zeta", recs[1].Name)
	assert.Equal(t, 4, recs[1].Vertices)
	assert.Equal(t, 3, recs[1].Edges)

	_, err = s.LoadMap("missing")
	assert.ErrorIs(t, err, store.ErrMapNotFound)
}

func TestRuns(t *testing.T) {
	s := open(t)
	require.NoError(t, s.SaveMap("m", doc("S", "A")))
	require.NoError(t, s.SaveMap("other", doc("S")))

	for i := int64(1); i <= 3; i++ {
		rec := store.NewRunRecord("m", run.Params{Budget: 10 * i, Parallel: i%2 == 0}, run.Summary{
			Run:      i,
			Interest: i,
			Time:     2 * i,
			Vertices: []string{"S", "A", "S"},
			Elapsed:  time.Duration(i) * time.Millisecond,
		})
		require.NoError(t, s.RecordRun(rec))
		assert.NotZero(t, rec.ID)
	}
	require.NoError(t, s.RecordRun(store.NewRunRecord("other", run.Params{Budget: 1}, run.Summary{Vertices: []string{"S"}})))

	runs, err := s.Runs("m", 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(30), runs[0].Budget, "newest first")
	assert.Equal(t, []string{"S", "A", "S"}, runs[0].Path)
	assert.Equal(t, 3*time.Millisecond, runs[0].Elapsed)

	runs, err = s.Runs("m", 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = s.Runs("", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 4)

	require.NoError(t, s.DeleteMap("m"))
	runs, err = s.Runs("m", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.ErrorIs(t, s.DeleteMap("m"), store.ErrMapNotFound)

	runs, err = s.Runs("", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
