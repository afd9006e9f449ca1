// Package builder provides internal helper functions and types
// for configuring edge-weight and vertex-interest distributions.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight drawn by the default WeightFn without an RNG.
const DefaultEdgeWeight int64 = 1

// DefaultInterest is the interest drawn by the default InterestFn without an RNG.
const DefaultInterest int64 = 1

// WeightFn produces a positive edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) int64

// InterestFn produces a non-negative vertex interest from an optional RNG.
type InterestFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Panics if value <= 0.
func ConstantWeightFn(value int64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly in [min, max] inclusive. Panics unless
// 0 < min <= max. Without an RNG it yields DefaultEdgeWeight.
func UniformWeightFn(min, max int64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return min + rng.Int63n(max-min+1)
	}
}

// ConstantInterestFn always yields value. Panics if value < 0.
func ConstantInterestFn(value int64) InterestFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantInterestFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformInterestFn samples uniformly in [min, max] inclusive. Panics unless
// 0 <= min <= max. Without an RNG it yields DefaultInterest.
func UniformInterestFn(min, max int64) InterestFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformInterestFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultInterest
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithConstantInterest sets a fixed vertex interest via ConstantInterestFn.
func WithConstantInterest(v int64) BuilderOption {
	return WithInterestFn(ConstantInterestFn(v))
}

// WithUniformInterest sets interests ∼ U[min,max] via UniformInterestFn.
func WithUniformInterest(min, max int64) BuilderOption {
	return WithInterestFn(UniformInterestFn(min, max))
}
