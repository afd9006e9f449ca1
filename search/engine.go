// File: engine.go
// Role: Outbound/inbound recursion over a prepared Network.
// Concurrency:
//   - Engine fields are read-only during a search; all shared mutation goes
//     through Token, Memo, Best and the atomic iteration counter.

package search

import (
	"sync/atomic"

	"github.com/katalvlaran/orienteer/path"
	"github.com/katalvlaran/orienteer/prepare"
)

// Spawner schedules a unit of search work as a separate task.
// Spawn must not block waiting for task completion.
type Spawner interface {
	Spawn(task func())
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(task func())

// Spawn calls f(task).
func (f SpawnerFunc) Spawn(task func()) { f(task) }

// Option configures an Engine.
type Option func(*Engine)

// WithToken shares an existing cancellation token.
func WithToken(t *Token) Option { return func(e *Engine) { e.token = t } }

// WithBest shares an existing best-path record.
func WithBest(b *Best) Option { return func(e *Engine) { e.best = b } }

// WithMemo shares an existing memo table.
func WithMemo(m *Memo) Option { return func(e *Engine) { e.memo = m } }

// WithSpawner switches the engine to parallel mode.
func WithSpawner(s Spawner) Option { return func(e *Engine) { e.spawner = s } }

// Engine runs one search of one budget over one Network.
type Engine struct {
	net    *prepare.Network
	budget int64

	token   *Token
	best    *Best
	memo    *Memo
	spawner Spawner

	iterations atomic.Int64
}

// NewEngine returns an engine for net and budget. Unset collaborators
// default to a fresh token, a best record seeded with the start vertex and
// a zeroed memo.
func NewEngine(net *prepare.Network, budget int64, opts ...Option) *Engine {
	e := &Engine{net: net, budget: budget}
	for _, opt := range opts {
		opt(e)
	}
	if e.token == nil {
		e.token = NewToken()
	}
	if e.best == nil {
		e.best = NewBest(e.SeedPath(), net.MaxInterest())
	}
	if e.memo == nil {
		e.memo = NewMemo(net.N())
	}

	return e
}

// SeedPath returns the single-vertex walk at the start vertex.
func (e *Engine) SeedPath() *path.Path {
	s := e.net.Start()

	return path.Seed(s, e.net.Interest(s))
}

// Run starts the outbound phase from the start vertex. In sequential mode
// it returns when the search is exhausted or cancelled; in parallel mode it
// returns once the root task's inline work is done.
func (e *Engine) Run() {
	e.DepthSearch(e.net.Start(), e.SeedPath())
}

// Token returns the engine's cancellation token.
func (e *Engine) Token() *Token { return e.token }

// Best returns the engine's best-path record.
func (e *Engine) Best() *Best { return e.best }

// Iterations returns the number of closed walks that reached the start.
func (e *Engine) Iterations() int64 { return e.iterations.Load() }

// DepthSearch is the outbound phase at vertex v with walk p ending at v.
func (e *Engine) DepthSearch(v int, p *path.Path) {
	if e.token.Cancelled() {
		return
	}
	arcs := e.net.Arcs(v)
	if e.allVisited(arcs, p) {
		e.turnBack(v, p)
		return
	}

	back := false
	for _, a := range arcs {
		if e.token.Cancelled() {
			return
		}
		if !e.feasible(a, p) || p.WouldOveruse(a.Edge) {
			back = true
			continue
		}
		next := p.Extend(e.hop(a))
		if e.spawner != nil && p.Len() == 1 {
			to := a.To
			e.spawner.Spawn(func() { e.DepthSearch(to, next) })
			continue
		}
		e.DepthSearch(a.To, next)
	}
	if back {
		e.turnBack(v, p)
	}
}

// BackPath is the inbound phase at vertex v with walk p ending at v.
func (e *Engine) BackPath(v int, p *path.Path) {
	if e.token.Cancelled() {
		return
	}
	if !e.memo.Admit(v, p.Interest(), p.Time()) {
		return
	}
	if v == e.net.Start() {
		e.iterations.Add(1)
		e.best.Offer(p)
		return
	}

	for _, a := range e.net.Arcs(v) {
		if e.token.Cancelled() {
			return
		}
		if p.WouldOveruse(a.Edge) || !e.feasible(a, p) {
			continue
		}
		e.BackPath(a.To, p.Extend(e.hop(a)))
	}
}

// turnBack performs the outbound→inbound transition inside the current
// task, so parallel fan-out stays bounded by the start vertex's degree.
func (e *Engine) turnBack(v int, p *path.Path) {
	e.BackPath(v, p)
}

// feasible reports whether crossing a still leaves enough budget to return.
func (e *Engine) feasible(a prepare.Arc, p *path.Path) bool {
	return e.net.Distance(a.To)+p.Time()+a.Weight <= e.budget
}

func (e *Engine) allVisited(arcs []prepare.Arc, p *path.Path) bool {
	for _, a := range arcs {
		if !p.Contains(a.To) {
			return false
		}
	}

	return true
}

func (e *Engine) hop(a prepare.Arc) path.Hop {
	return path.Hop{To: a.To, Edge: a.Edge, Weight: a.Weight, Reward: e.net.Interest(a.To)}
}
