// File: best.go
// Role: The incumbent closed walk of a run and its acceptance rule.

package search

import (
	"sync"

	"github.com/katalvlaran/orienteer/path"
)

// BestOption configures Best.
type BestOption func(*Best)

// OnImprove registers a hook called, under Best's lock, for every accepted
// walk. Hooks must not call back into Best.
func OnImprove(fn func(*path.Path)) BestOption {
	return func(b *Best) { b.onImprove = fn }
}

// OnComplete registers a hook called once, after the lock is released, when
// an accepted walk collects the maximum interest.
func OnComplete(fn func()) BestOption {
	return func(b *Best) { b.onComplete = fn }
}

// Best guards the best closed walk found so far.
type Best struct {
	mu       sync.Mutex
	path     *path.Path
	max      int64
	complete bool

	onImprove  func(*path.Path)
	onComplete func()
}

// NewBest returns a record seeded with seed. max is the interest at which
// the run is complete; a seed that already holds it completes the record
// immediately and fires OnComplete.
func NewBest(seed *path.Path, max int64, opts ...BestOption) *Best {
	b := &Best{path: seed, max: max}
	for _, opt := range opts {
		opt(b)
	}
	if seed.Interest() >= max {
		b.complete = true
		if b.onComplete != nil {
			b.onComplete()
		}
	}

	return b
}

// Offer replaces the incumbent with p when p has strictly more interest, or
// equal interest in strictly less time. It reports whether p was accepted.
func (b *Best) Offer(p *path.Path) bool {
	accepted, done := b.offer(p)
	if done && b.onComplete != nil {
		b.onComplete()
	}

	return accepted
}

func (b *Best) offer(p *path.Path) (accepted, done bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !p.Better(b.path) {
		return false, false
	}
	b.path = p
	if b.onImprove != nil {
		b.onImprove(p)
	}
	if !b.complete && p.Interest() >= b.max {
		b.complete = true
		done = true
	}

	return true, done
}

// Reset installs seed as the incumbent. The complete flag is cleared unless
// seed already holds the maximum interest, in which case OnComplete fires.
func (b *Best) Reset(seed *path.Path) {
	if b.reset(seed) && b.onComplete != nil {
		b.onComplete()
	}
}

func (b *Best) reset(seed *path.Path) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.path = seed
	b.complete = seed.Interest() >= b.max

	return b.complete
}

// Path returns the incumbent walk.
func (b *Best) Path() *path.Path {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.path
}

// Interest returns the incumbent's interest.
func (b *Best) Interest() int64 { return b.Path().Interest() }

// Time returns the incumbent's travel time.
func (b *Best) Time() int64 { return b.Path().Time() }

// Complete reports whether the maximum interest has been reached.
func (b *Best) Complete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.complete
}
