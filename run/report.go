package run

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Summary is the progress record emitted at run start, on every accepted
// improvement and at run completion.
type Summary struct {
	Run        int64
	Interest   int64
	Time       int64
	Vertices   []string
	Iterations int64
	Elapsed    time.Duration
	Cancelled  bool
	Panics     int64
}

// Reporter receives run progress. Improved is called while the best-path
// lock is held and must not call back into the Coordinator.
type Reporter interface {
	RunStarted(s Summary)
	Improved(s Summary)
	RunFinished(s Summary)
}

// LogReporter writes progress as logrus entries.
type LogReporter struct {
	Log logrus.FieldLogger
}

func (r LogReporter) fields(s Summary) logrus.FieldLogger {
	return r.Log.WithFields(logrus.Fields{
		"run":        s.Run,
		"interest":   s.Interest,
		"walkTime":   s.Time,
		"iterations": s.Iterations,
	})
}

// RunStarted implements Reporter.
func (r LogReporter) RunStarted(s Summary) {
	r.fields(s).Info("run started")
}

// Improved implements Reporter.
func (r LogReporter) Improved(s Summary) {
	r.fields(s).WithField("path", s.Vertices).Info("best path improved")
}

// RunFinished implements Reporter.
func (r LogReporter) RunFinished(s Summary) {
	l := r.fields(s).WithFields(logrus.Fields{
		"elapsed":   s.Elapsed,
		"cancelled": s.Cancelled,
		"path":      s.Vertices,
	})
	if s.Panics > 0 {
		l.WithField("panics", s.Panics).Warn("run finished with failed tasks")
		return
	}
	l.Info("run finished")
}
