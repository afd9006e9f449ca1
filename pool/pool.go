// Package pool provides a fixed set of workers draining an unbounded FIFO of
// tasks. Submit never blocks, so tasks may freely submit more tasks.
//
// Every task runs under recover: a panicking task is logged, counted and
// reported to the optional panic handler; the worker keeps running.
package pool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("pool: closed")

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for panicked tasks.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// WithPanicHandler registers fn to receive the value of every recovered panic.
func WithPanicHandler(fn func(v any)) Option {
	return func(p *Pool) { p.onPanic = fn }
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Workers   int
	Submitted int64
	Completed int64
	Panicked  int64
	Queued    int
}

// Pool is a fixed-size worker pool.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  *linkedlistqueue.Queue
	closed bool
	wg     sync.WaitGroup

	workers int
	log     logrus.FieldLogger
	onPanic func(v any)

	submitted atomic.Int64
	completed atomic.Int64
	panicked  atomic.Int64
}

// New starts a pool of workers goroutines; workers <= 0 means runtime.NumCPU().
func New(workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		queue:   linkedlistqueue.New(),
		workers: workers,
		log:     logrus.StandardLogger(),
	}
	p.cond = sync.NewCond(&p.mu)
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}

	return p
}

// Submit enqueues task. It never blocks.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.queue.Enqueue(task)
	p.submitted.Add(1)
	p.cond.Signal()

	return nil
}

// Close stops accepting tasks, lets workers drain the queue and waits for
// them to exit. Idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	queued := p.queue.Size()
	p.mu.Unlock()

	return Stats{
		Workers:   p.workers,
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
		Queued:    queued,
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		task, ok := p.next()
		if !ok {
			return
		}
		p.run(task)
	}
}

// next blocks until a task is available or the pool is closed and drained.
func (p *Pool) next() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.queue.Empty() && !p.closed {
		p.cond.Wait()
	}
	v, ok := p.queue.Dequeue()
	if !ok {
		return nil, false
	}

	return v.(func()), true
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.log.WithField("panic", r).Warn("pool task panicked")
			if p.onPanic != nil {
				p.onPanic(r)
			}
		}
		p.completed.Add(1)
	}()
	task()
}
