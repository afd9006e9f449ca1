// File: registry.go
// Role: Per-run state and the live-task registry.

package run

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/orienteer/path"
	"github.com/katalvlaran/orienteer/pool"
	"github.com/katalvlaran/orienteer/prepare"
	"github.com/katalvlaran/orienteer/search"
)

// runState is everything one run owns. It is never reused.
type runState struct {
	id       int64
	params   Params
	pool     *pool.Pool
	reporter Reporter
	log      logrus.FieldLogger
	net      *prepare.Network

	engine  *search.Engine
	token   *search.Token
	best    *search.Best
	started time.Time

	cancelled atomic.Bool
	panics    atomic.Int64

	mu       sync.Mutex
	live     map[uint64]struct{}
	nextTask uint64
	finished time.Time
	done     chan struct{}
}

// spawn registers task and hands it to the pool.
func (rs *runState) spawn(task func()) {
	rs.mu.Lock()
	id := rs.nextTask
	rs.nextTask++
	rs.live[id] = struct{}{}
	n := len(rs.live)
	rs.mu.Unlock()

	rs.log.WithFields(logrus.Fields{"task": id, "tasks": n}).Debug("task registered")
	if err := rs.pool.Submit(func() { rs.execute(id, task) }); err != nil {
		rs.log.WithError(err).WithField("task", id).Warn("task rejected")
		rs.finish(id)
	}
}

// execute runs task, converting a panic into the task's early completion.
func (rs *runState) execute(id uint64, task func()) {
	defer rs.finish(id)
	defer func() {
		if r := recover(); r != nil {
			rs.panics.Add(1)
			rs.log.WithFields(logrus.Fields{"task": id, "panic": r}).Warn("search task panicked")
		}
	}()
	task()
}

// finish deregisters id; the task that empties the registry finalizes the run.
func (rs *runState) finish(id uint64) {
	rs.mu.Lock()
	delete(rs.live, id)
	last := len(rs.live) == 0
	if last {
		rs.finished = time.Now()
	}
	rs.mu.Unlock()

	if !last {
		return
	}
	rs.reporter.RunFinished(rs.summary())
	close(rs.done)
}

func (rs *runState) cancel() {
	rs.cancelled.Store(true)
	rs.token.Cancel()
}

func (rs *runState) liveTasks() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	return len(rs.live)
}

func (rs *runState) elapsed() time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.finished.IsZero() {
		return time.Since(rs.started)
	}

	return rs.finished.Sub(rs.started)
}

func (rs *runState) summary() Summary { return rs.summaryOf(rs.best.Path()) }

func (rs *runState) summaryOf(p *path.Path) Summary {
	return Summary{
		Run:        rs.id,
		Interest:   p.Interest(),
		Time:       p.Time(),
		Vertices:   rs.net.IDs(p.Vertices()),
		Iterations: rs.engine.Iterations(),
		Elapsed:    rs.elapsed(),
		Cancelled:  rs.cancelled.Load(),
		Panics:     rs.panics.Load(),
	}
}
