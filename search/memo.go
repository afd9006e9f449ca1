// File: memo.go
// Role: Per-vertex record of the best (interest, time) seen while
//       backtracking, one mutex per vertex.

package search

import "sync"

type memoEntry struct {
	mu       sync.Mutex
	interest int64
	time     int64
}

// Memo is the run-scoped dominance table of the inbound phase.
type Memo struct {
	entries []memoEntry
}

// NewMemo returns a zeroed memo for n vertices.
func NewMemo(n int) *Memo {
	return &Memo{entries: make([]memoEntry, n)}
}

// Admit reports whether a backtrack reaching v with (interest, time) is
// worth continuing, and records it if so.
//
// A branch is dominated when the recorded entry has more interest, or equal
// interest in strictly less time. Entries with zero time count as unset.
// Equal interest in equal time is not dominated.
func (m *Memo) Admit(v int, interest, time int64) bool {
	e := &m.entries[v]
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.time > 0 && (e.interest > interest || (e.interest == interest && e.time < time)) {
		return false
	}
	e.interest, e.time = interest, time

	return true
}

// Get returns the recorded entry of v.
func (m *Memo) Get(v int) (interest, time int64) {
	e := &m.entries[v]
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.interest, e.time
}

// Reset zeroes every entry. Must not run concurrently with a search.
func (m *Memo) Reset() {
	for i := range m.entries {
		e := &m.entries[i]
		e.mu.Lock()
		e.interest, e.time = 0, 0
		e.mu.Unlock()
	}
}
