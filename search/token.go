package search

import "sync/atomic"

// Token is the cancellation flag shared by every task of one run.
type Token struct {
	cancelled atomic.Bool
}

// NewToken returns an uncancelled token.
func NewToken() *Token { return &Token{} }

// Cancel sets the token. Idempotent.
func (t *Token) Cancel() { t.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (t *Token) Cancelled() bool { return t.cancelled.Load() }
