// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn        = DefaultIDFn        ("1","2",... for non-start vertices)
//   - startID     = "S"
//   - rng         = nil                (pure/deterministic unless seeded)
//   - weightFn    = UniformWeightFn(1,6)   (DefaultEdgeWeight without rng)
//   - interestFn  = UniformInterestFn(1,9) (DefaultInterest without rng)
//   - spawnRate   = 0.5

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn       IDFn
	startID    string
	rng        *rand.Rand
	weightFn   WeightFn
	interestFn InterestFn
	spawnRate  float64
}

const (
	defaultStartID   = "S"
	startLabel       = "Start"
	defaultSpawnRate = 0.5

	defaultMinWeight   = 1
	defaultMaxWeight   = 6
	defaultMinInterest = 1
	defaultMaxInterest = 9
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		startID:    defaultStartID,
		weightFn:   UniformWeightFn(defaultMinWeight, defaultMaxWeight),
		interestFn: UniformInterestFn(defaultMinInterest, defaultMaxInterest),
		spawnRate:  defaultSpawnRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
