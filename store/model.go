package store

import (
	"time"

	"github.com/katalvlaran/orienteer/mapio"
	"github.com/katalvlaran/orienteer/run"
)

// MapRecord is a stored map.
type MapRecord struct {
	Name     string         `json:"name" boltholdKey:"Name"`
	Document mapio.Document `json:"document"`
	Vertices int            `json:"vertices"`
	Edges    int            `json:"edges"`
	SavedAt  int64          `json:"savedAt" boltholdIndex:"SavedAt"`
}

// RunRecord is the outcome of one solved run.
type RunRecord struct {
	ID         uint64        `json:"id" boltholdKey:"ID"`
	Map        string        `json:"map" boltholdIndex:"Map"`
	Budget     int64         `json:"budget"`
	Parallel   bool          `json:"parallel"`
	Interest   int64         `json:"interest"`
	Time       int64         `json:"time"`
	Path       []string      `json:"path"`
	Iterations int64         `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed"`
	Cancelled  bool          `json:"cancelled"`
	Panics     int64         `json:"panics"`
	CreatedAt  int64         `json:"createdAt" boltholdIndex:"CreatedAt"`
}

// NewRunRecord captures a finished run of the named map.
func NewRunRecord(mapName string, p run.Params, s run.Summary) *RunRecord {
	return &RunRecord{
		Map:        mapName,
		Budget:     p.Budget,
		Parallel:   p.Parallel,
		Interest:   s.Interest,
		Time:       s.Time,
		Path:       s.Vertices,
		Iterations: s.Iterations,
		Elapsed:    s.Elapsed,
		Cancelled:  s.Cancelled,
		Panics:     s.Panics,
	}
}
