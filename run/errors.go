package run

import "errors"

// Sentinel errors returned by Start.
var (
	// ErrBadBudget indicates a non-positive budget.
	ErrBadBudget = errors.New("run: budget must be positive")

	// ErrNilNetwork indicates a Coordinator built without a network.
	ErrNilNetwork = errors.New("run: network is nil")
)
