// File: coordinator.go
// Role: Run lifecycle: Start/Cancel/Wait, polling accessors and the
//       visualization hook.
// Concurrency:
//   - Start calls are serialized by mu; the active run is published through
//     an atomic pointer so accessors never wait behind a Start.

package run

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/internal/logger"
	"github.com/katalvlaran/orienteer/path"
	"github.com/katalvlaran/orienteer/pool"
	"github.com/katalvlaran/orienteer/prepare"
	"github.com/katalvlaran/orienteer/search"
)

// Params are the per-run parameters.
type Params struct {
	Budget   int64
	Parallel bool
}

// Result is the best closed walk of a run in external IDs.
type Result struct {
	Vertices []string
	Edges    []string
	Interest int64
	Time     int64
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPool runs search tasks on p. Without it the Coordinator creates its
// own pool on first Start and closes it in Close.
func WithPool(p *pool.Pool) Option {
	return func(c *Coordinator) { c.pool = p }
}

// WithLogger sets the logger. Defaults to the logger carried by Start's ctx.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithReporter sets the progress reporter. Defaults to LogReporter.
func WithReporter(r Reporter) Option {
	return func(c *Coordinator) { c.reporter = r }
}

// Coordinator runs searches over one Network, one run at a time.
type Coordinator struct {
	net      *prepare.Network
	pool     *pool.Pool
	ownsPool bool
	log      logrus.FieldLogger
	reporter Reporter
	memo     *search.Memo

	mu   sync.Mutex
	cur  atomic.Pointer[runState]
	runs atomic.Int64
}

// New returns a Coordinator for net.
func New(net *prepare.Network, opts ...Option) *Coordinator {
	c := &Coordinator{net: net}
	for _, opt := range opts {
		opt(c)
	}
	if net != nil {
		c.memo = search.NewMemo(net.N())
	}

	return c
}

// Start validates p, cancels and awaits any previous run, resets the
// per-vertex memo and the best path, and launches a new run from the start
// vertex. It returns as soon as the root task is scheduled. Cancelling ctx
// cancels the run.
//
// Errors:
//   - ErrNilNetwork, ErrBadBudget. The run does not start.
func (c *Coordinator) Start(ctx context.Context, p Params) error {
	if c.net == nil {
		return ErrNilNetwork
	}
	if p.Budget <= 0 {
		return fmt.Errorf("%w: %d", ErrBadBudget, p.Budget)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev := c.cur.Load(); prev != nil {
		prev.cancel()
		<-prev.done
	}

	log := c.log
	if log == nil {
		log = logger.FromContext(ctx)
	}
	if c.pool == nil {
		c.pool = pool.New(0, pool.WithLogger(log))
		c.ownsPool = true
	}
	reporter := c.reporter
	if reporter == nil {
		reporter = LogReporter{Log: log}
	}

	id := c.runs.Add(1)
	rs := &runState{
		id:       id,
		params:   p,
		pool:     c.pool,
		reporter: reporter,
		log: log.WithFields(logrus.Fields{
			"run":      id,
			"budget":   p.Budget,
			"parallel": p.Parallel,
		}),
		net:   c.net,
		live:  make(map[uint64]struct{}),
		done:  make(chan struct{}),
		token: search.NewToken(),
	}

	c.memo.Reset()
	start := c.net.Start()
	rs.best = search.NewBest(path.Seed(start, c.net.Interest(start)), c.net.MaxInterest(),
		search.OnImprove(func(bp *path.Path) { rs.reporter.Improved(rs.summaryOf(bp)) }),
		search.OnComplete(func() {
			rs.log.Debug("maximum interest reached")
			rs.token.Cancel()
		}),
	)
	opts := []search.Option{search.WithToken(rs.token), search.WithBest(rs.best), search.WithMemo(c.memo)}
	if p.Parallel {
		opts = append(opts, search.WithSpawner(search.SpawnerFunc(rs.spawn)))
	}
	rs.engine = search.NewEngine(c.net, p.Budget, opts...)

	rs.started = time.Now()
	c.cur.Store(rs)
	rs.reporter.RunStarted(rs.summary())

	go func() {
		select {
		case <-ctx.Done():
			rs.cancel()
		case <-rs.done:
		}
	}()
	rs.spawn(rs.engine.Run)

	return nil
}

// Cancel stops the current run at its tasks' next check. Idempotent.
func (c *Coordinator) Cancel() {
	if rs := c.cur.Load(); rs != nil {
		rs.cancel()
	}
}

// Wait blocks until the current run has no live tasks or ctx is done.
func (c *Coordinator) Wait(ctx context.Context) error {
	rs := c.cur.Load()
	if rs == nil {
		return nil
	}
	select {
	case <-rs.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels and awaits the current run and closes the pool if the
// Coordinator created it.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rs := c.cur.Load(); rs != nil {
		rs.cancel()
		<-rs.done
	}
	if c.ownsPool && c.pool != nil {
		c.pool.Close()
		c.pool, c.ownsPool = nil, false
	}
}

// IsComplete reports whether the live-task registry is empty.
func (c *Coordinator) IsComplete() bool { return c.LiveTasks() == 0 }

// Active reports whether a run still has live tasks.
func (c *Coordinator) Active() bool { return !c.IsComplete() }

// LiveTasks returns the number of registered, unfinished tasks.
func (c *Coordinator) LiveTasks() int {
	rs := c.cur.Load()
	if rs == nil {
		return 0
	}

	return rs.liveTasks()
}

// BestInterest returns the interest of the current best walk.
func (c *Coordinator) BestInterest() int64 {
	if rs := c.cur.Load(); rs != nil {
		return rs.best.Interest()
	}

	return 0
}

// BestTime returns the travel time of the current best walk.
func (c *Coordinator) BestTime() int64 {
	if rs := c.cur.Load(); rs != nil {
		return rs.best.Time()
	}

	return 0
}

// BestPath returns the current best walk. Zero Result before the first run.
func (c *Coordinator) BestPath() Result {
	rs := c.cur.Load()
	if rs == nil {
		return Result{}
	}
	bp := rs.best.Path()

	return Result{
		Vertices: c.net.IDs(bp.Vertices()),
		Edges:    c.net.EdgeIDs(bp.Edges()),
		Interest: bp.Interest(),
		Time:     bp.Time(),
	}
}

// Iterations returns how many closed walks reached the start in this run.
func (c *Coordinator) Iterations() int64 {
	if rs := c.cur.Load(); rs != nil {
		return rs.engine.Iterations()
	}

	return 0
}

// Elapsed returns the run time, frozen once the run is finalized.
func (c *Coordinator) Elapsed() time.Duration {
	if rs := c.cur.Load(); rs != nil {
		return rs.elapsed()
	}

	return 0
}

// Summary returns the current progress record.
func (c *Coordinator) Summary() Summary {
	if rs := c.cur.Load(); rs != nil {
		return rs.summary()
	}

	return Summary{}
}

// MarkBestPath flags the best walk's edges used and every other edge of g
// unused. g must be the graph the Network was prepared from.
func (c *Coordinator) MarkBestPath(g *core.Graph) {
	g.MarkUsed(c.BestPath().Edges)
}
