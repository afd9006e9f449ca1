// Package builder assembles orienteering maps from composable constructors.
//
// BuildGraph creates a core.Graph and applies Constructors in order, all
// reading one immutable builderConfig resolved from BuilderOptions:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithSpawnRate(0.4)},
//		builder.RandomMap(10))
//
// Every constructor adds the start vertex first (ID "S" unless WithStartID,
// interest 0) so it becomes the graph's start; the remaining vertices take
// IDs from the configured IDFn and interests from the InterestFn.
//
// Constructors:
//
//	RandomMap(size) – grid cells spawn with probability 1-spawnRate, then a
//	                  random spanning tree joins them to the start
//	Star(n)         – start hub with n-1 leaves
//	Path(n)         – start followed by a chain of n-1 vertices
//	Cycle(n)        – ring of n vertices through the start
//	Complete(n)     – K_n including the start
//
// Defaults are deterministic: without an RNG every weight is
// DefaultEdgeWeight and every interest DefaultInterest. Stochastic
// constructors return ErrNeedRandSource unless WithSeed or WithRand is set.
//
// Option constructors panic on meaningless input; constructors never panic
// and return sentinel errors wrapped with the constructor name.
package builder
