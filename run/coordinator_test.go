package run_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/orienteer/builder"
	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/pool"
	"github.com/katalvlaran/orienteer/prepare"
	"github.com/katalvlaran/orienteer/run"
)

type vtx struct {
	id       string
	interest int64
}

type road struct {
	a, b string
	w    int64
}

func graph(t *testing.T, vs []vtx, rs []road) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v.id, v.interest))
	}
	for _, r := range rs {
		_, err := g.AddEdge(r.a, r.b, r.w)
		require.NoError(t, err)
	}

	return g
}

func prepared(t *testing.T, g *core.Graph) *prepare.Network {
	t.Helper()
	n, err := prepare.Prepare(g)
	require.NoError(t, err)

	return n
}

// complete returns K_n with seeded weights 1..3 and interests 0..4.
func complete(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(int64(n)),
		builder.WithSymbNumb("v"),
		builder.WithUniformWeight(1, 3),
		builder.WithUniformInterest(0, 4),
	}, builder.Complete(n))
	require.NoError(t, err)

	return g
}

// endless is K_9 plus an isolated vertex, so the maximum interest is never
// reached and a generous budget keeps the search busy until cancelled.
func endless(t *testing.T) *core.Graph {
	t.Helper()
	g := complete(t, 9)
	require.NoError(t, g.AddVertex("island", 100))

	return g
}

type recorder struct {
	mu                          sync.Mutex
	started, improved, finished []run.Summary
}

func (r *recorder) RunStarted(s run.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, s)
}

func (r *recorder) Improved(s run.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.improved = append(r.improved, s)
}

func (r *recorder) RunFinished(s run.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, s)
}

type CoordinatorSuite struct {
	suite.Suite
	pool *pool.Pool
}

func (s *CoordinatorSuite) SetupSuite()    { s.pool = pool.New(4) }
func (s *CoordinatorSuite) TearDownSuite() { s.pool.Close() }

func TestCoordinatorSuite(t *testing.T) { suite.Run(t, new(CoordinatorSuite)) }

// solve runs one search to completion in the given mode.
func (s *CoordinatorSuite) solve(g *core.Graph, budget int64, parallel bool) (*run.Coordinator, *recorder) {
	rec := &recorder{}
	c := run.New(prepared(s.T(), g), run.WithPool(s.pool), run.WithReporter(rec))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Require().NoError(c.Start(ctx, run.Params{Budget: budget, Parallel: parallel}))
	s.Require().NoError(c.Wait(ctx))
	s.True(c.IsComplete())
	s.False(c.Active())
	s.Zero(c.LiveTasks())

	return c, rec
}

func (s *CoordinatorSuite) bothModes(fn func(parallel bool)) {
	for _, parallel := range []bool{false, true} {
		s.Run(fmt.Sprintf("parallel=%v", parallel), func() { fn(parallel) })
	}
}

func (s *CoordinatorSuite) TestScenarioA_SingleVertex() {
	s.bothModes(func(parallel bool) {
		g := graph(s.T(), []vtx{{"S", 0}}, nil)
		c, rec := s.solve(g, 5, parallel)

		res := c.BestPath()
		s.Equal([]string{"S"}, res.Vertices)
		s.Empty(res.Edges)
		s.Zero(res.Interest)
		s.Zero(res.Time)
		s.Len(rec.started, 1)
		s.Len(rec.finished, 1)
		s.Empty(rec.improved)
	})
}

func (s *CoordinatorSuite) TestScenarioB_ThereAndBack() {
	s.bothModes(func(parallel bool) {
		g := graph(s.T(), []vtx{{"S", 0}, {"A", 4}}, []road{{"S", "A", 3}})
		c, rec := s.solve(g, 6, parallel)

		res := c.BestPath()
		s.Equal([]string{"S", "A", "S"}, res.Vertices)
		s.Equal([]string{"e1"}, res.Edges)
		s.Equal(int64(4), res.Interest)
		s.Equal(int64(6), res.Time)
		s.Equal(int64(4), c.BestInterest())
		s.Equal(int64(6), c.BestTime())

		s.Require().Len(rec.finished, 1)
		fin := rec.finished[0]
		s.False(fin.Cancelled, "reaching the maximum is not a cancellation")
		s.Equal(res.Vertices, fin.Vertices)
		s.Equal(c.Iterations(), fin.Iterations)
		s.Equal(c.Elapsed(), fin.Elapsed)

		c.MarkBestPath(g)
		s.Equal([]string{"e1"}, g.UsedEdges())
	})
}

func (s *CoordinatorSuite) TestScenarioC_Triangle() {
	cases := []struct {
		budget   int64
		visits   []string
		interest int64
		time     int64
	}{
		{6, []string{"S", "A", "B", "S"}, 8, 6},
		{4, []string{"S", "A", "S"}, 5, 4},
		{2, []string{"S"}, 0, 0},
	}
	s.bothModes(func(parallel bool) {
		for _, tc := range cases {
			g := graph(s.T(),
				[]vtx{{"S", 0}, {"A", 5}, {"B", 3}},
				[]road{{"S", "A", 2}, {"A", "B", 2}, {"B", "S", 2}})
			c, _ := s.solve(g, tc.budget, parallel)

			res := c.BestPath()
			s.Equal(tc.interest, res.Interest, "budget %d", tc.budget)
			s.Equal(tc.time, res.Time, "budget %d", tc.budget)
			if !parallel || tc.budget != 6 {
				s.Equal(tc.visits, res.Vertices, "budget %d", tc.budget)
			}
		}
	})
}

func (s *CoordinatorSuite) TestScenarioD_StarRejectsExpensiveLeaf() {
	s.bothModes(func(parallel bool) {
		g := graph(s.T(),
			[]vtx{{"S", 0}, {"cheap", 9}, {"far", 2}},
			[]road{{"S", "cheap", 1}, {"S", "far", 20}})
		c, _ := s.solve(g, 8, parallel)

		s.Equal([]string{"S", "cheap", "S"}, c.BestPath().Vertices)
		s.Equal(int64(9), c.BestInterest())
		s.Equal(int64(2), c.BestTime())
	})
}

func (s *CoordinatorSuite) TestSequentialMatchesParallel() {
	build := func() *core.Graph {
		return graph(s.T(),
			[]vtx{{"S", 0}, {"L1", 9}, {"L2", 1}, {"L3", 4}, {"L4", 6}},
			[]road{{"S", "L1", 1}, {"S", "L2", 10}, {"S", "L3", 2}, {"S", "L4", 3}})
	}
	for _, budget := range []int64{1, 2, 4, 6, 20, 40} {
		seq, _ := s.solve(build(), budget, false)
		par, _ := s.solve(build(), budget, true)
		s.Equal(seq.BestInterest(), par.BestInterest(), "budget %d", budget)
		s.Equal(seq.BestTime(), par.BestTime(), "budget %d", budget)
	}

	for seed := int64(1); seed <= 5; seed++ {
		star := func() *core.Graph {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Star(7))
			s.Require().NoError(err)

			return g
		}
		seq, _ := s.solve(star(), 15, false)
		par, _ := s.solve(star(), 15, true)
		s.Equal(seq.BestInterest(), par.BestInterest(), "seed %d", seed)
		s.Equal(seq.BestTime(), par.BestTime(), "seed %d", seed)
	}
}

func (s *CoordinatorSuite) TestImprovementsAreMonotonic() {
	s.bothModes(func(parallel bool) {
		_, rec := s.solve(complete(s.T(), 5), 8, parallel)

		s.Require().NotEmpty(rec.improved)
		for i := 1; i < len(rec.improved); i++ {
			prev, cur := rec.improved[i-1], rec.improved[i]
			s.True(cur.Interest > prev.Interest || (cur.Interest == prev.Interest && cur.Time < prev.Time),
				"improvement %d does not improve on %d", i, i-1)
		}
	})
}

func (s *CoordinatorSuite) TestEarlyTerminationAtMaximum() {
	s.bothModes(func(parallel bool) {
		g := complete(s.T(), 7)
		c, rec := s.solve(g, 1000, parallel)

		s.Equal(g.TotalInterest(), c.BestInterest())
		s.Require().Len(rec.finished, 1)
		s.False(rec.finished[0].Cancelled)
	})
}

// TestParallelWithFewerWorkersThanBranches runs complete maps whose start
// has more branches than the pool has workers.
func TestParallelWithFewerWorkersThanBranches(t *testing.T) {
	for _, n := range []int{7, 8} {
		wp := pool.New(2)
		g := complete(t, n)
		c := run.New(prepared(t, g), run.WithPool(wp), run.WithReporter(&recorder{}))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		require.NoError(t, c.Start(ctx, run.Params{Budget: 1000, Parallel: true}))
		require.NoError(t, c.Wait(ctx), "K%d", n)
		cancel()

		assert.Equal(t, g.TotalInterest(), c.BestInterest(), "K%d", n)
		assert.False(t, c.Summary().Cancelled)
		assert.Positive(t, c.Iterations())
		st := wp.Stats()
		assert.LessOrEqual(t, st.Submitted, int64(n), "root task plus one per start branch")
		assert.Zero(t, st.Queued)
		wp.Close()
	}
}

// TestRewardOnlyAtStart covers a map whose maximum interest is already held
// by the start vertex: the run completes without exploring.
func TestRewardOnlyAtStart(t *testing.T) {
	g := graph(t, []vtx{{"S", 4}, {"A", 0}, {"B", 0}}, []road{{"S", "A", 1}, {"A", "B", 1}, {"B", "S", 1}})
	c := run.New(prepared(t, g), run.WithReporter(&recorder{}))
	defer c.Close()

	require.NoError(t, c.Start(context.Background(), run.Params{Budget: 10, Parallel: true}))
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, int64(4), c.BestInterest())
	assert.Equal(t, []string{"S"}, c.BestPath().Vertices)
	assert.Zero(t, c.Iterations())
	assert.False(t, c.Summary().Cancelled)
}

func (s *CoordinatorSuite) TestCancel() {
	rec := &recorder{}
	c := run.New(prepared(s.T(), endless(s.T())), run.WithPool(s.pool), run.WithReporter(rec))
	s.Require().NoError(c.Start(context.Background(), run.Params{Budget: 60, Parallel: true}))
	c.Cancel()
	c.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Require().NoError(c.Wait(ctx))
	s.True(c.IsComplete())
	s.Require().Len(rec.finished, 1)
	s.True(rec.finished[0].Cancelled)
	s.LessOrEqual(c.BestTime(), int64(60))
}

func (s *CoordinatorSuite) TestContextCancelStopsRun() {
	rec := &recorder{}
	c := run.New(prepared(s.T(), endless(s.T())), run.WithPool(s.pool), run.WithReporter(rec))
	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(c.Start(ctx, run.Params{Budget: 60}))
	cancel()

	wctx, wcancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer wcancel()
	s.Require().NoError(c.Wait(wctx))
	s.Require().Len(rec.finished, 1)
	s.True(rec.finished[0].Cancelled)
}

func (s *CoordinatorSuite) TestRestartCancelsPrevious() {
	rec := &recorder{}
	c := run.New(prepared(s.T(), endless(s.T())), run.WithPool(s.pool), run.WithReporter(rec))
	s.Require().NoError(c.Start(context.Background(), run.Params{Budget: 60, Parallel: true}))
	s.Require().NoError(c.Start(context.Background(), run.Params{Budget: 3}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Require().NoError(c.Wait(ctx))

	s.Len(rec.started, 2)
	s.Len(rec.finished, 2)
	s.Equal(int64(1), rec.finished[0].Run)
	s.True(rec.finished[0].Cancelled)
	s.Equal(int64(2), rec.finished[1].Run)
	s.False(rec.finished[1].Cancelled)
	s.LessOrEqual(c.BestTime(), int64(3))
}

func (s *CoordinatorSuite) TestPanickingTaskStillFinishes() {
	log, hook := test.NewNullLogger()
	c := run.New(
		prepared(s.T(), graph(s.T(), []vtx{{"S", 0}, {"A", 4}}, []road{{"S", "A", 3}})),
		run.WithPool(s.pool), run.WithLogger(log), run.WithReporter(panicky{}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Require().NoError(c.Start(ctx, run.Params{Budget: 6}))
	s.Require().NoError(c.Wait(ctx))

	s.True(c.IsComplete())
	s.Equal(int64(1), c.Summary().Panics)
	s.Equal(int64(4), c.BestInterest(), "the walk was accepted before the hook failed")

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Message == "search task panicked" {
			warned = true
		}
	}
	s.True(warned)
}

type panicky struct{}

func (panicky) RunStarted(run.Summary)  {}
func (panicky) Improved(run.Summary)    { panic("reporter failure") }
func (panicky) RunFinished(run.Summary) {}

func TestStart_ConfigurationErrors(t *testing.T) {
	n := prepared(t, graph(t, []vtx{{"S", 0}, {"A", 1}}, []road{{"S", "A", 1}}))
	c := run.New(n, run.WithReporter(&recorder{}))
	defer c.Close()

	assert.ErrorIs(t, c.Start(context.Background(), run.Params{Budget: 0}), run.ErrBadBudget)
	assert.ErrorIs(t, c.Start(context.Background(), run.Params{Budget: -3}), run.ErrBadBudget)
	assert.True(t, c.IsComplete(), "a misconfigured run does not start")
	assert.Equal(t, run.Result{}, c.BestPath())

	assert.ErrorIs(t, run.New(nil).Start(context.Background(), run.Params{Budget: 1}), run.ErrNilNetwork)
}

func TestCoordinator_OwnPool(t *testing.T) {
	n := prepared(t, graph(t, []vtx{{"S", 0}, {"A", 1}}, []road{{"S", "A", 1}}))
	c := run.New(n, run.WithReporter(&recorder{}))
	defer c.Close()

	require.NoError(t, c.Start(context.Background(), run.Params{Budget: 2, Parallel: true}))
	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, []string{"S", "A", "S"}, c.BestPath().Vertices)
}

func TestLogReporter_Fields(t *testing.T) {
	log, hook := test.NewNullLogger()
	run.LogReporter{Log: log}.RunFinished(run.Summary{Run: 3, Interest: 8, Time: 6, Vertices: []string{"S", "A", "S"}})

	e := hook.LastEntry()
	require.NotNil(t, e)
	assert.Equal(t, int64(6), e.Data["walkTime"])
	assert.Equal(t, int64(8), e.Data["interest"])
	assert.NotContains(t, e.Data, "time", "must not shadow the entry timestamp")
}
