// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator for non-start vertices.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithStartID sets the ID of the start vertex. Panics on "".
func WithStartID(id string) BuilderOption {
	if id == "" {
		panic("builder: WithStartID(\"\")")
	}
	return func(c *builderConfig) { c.startID = id }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithInterestFn overrides the per-vertex interest generator. Panics on nil.
func WithInterestFn(fn InterestFn) BuilderOption {
	if fn == nil {
		panic("builder: WithInterestFn(nil)")
	}
	return func(c *builderConfig) { c.interestFn = fn }
}

// WithSpawnRate sets the probability that a RandomMap grid cell stays
// empty. Panics outside [0,1].
func WithSpawnRate(rate float64) BuilderOption {
	if rate < 0 || rate > 1 {
		panic(fmt.Sprintf("builder: WithSpawnRate(%g) not in [0,1]", rate))
	}
	return func(c *builderConfig) { c.spawnRate = rate }
}
