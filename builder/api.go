// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// api.go - public entry point and shared vertex helpers.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orienteer/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addStart inserts the start vertex (interest 0) at (x, y).
func addStart(g *core.Graph, cfg builderConfig, method string, x, y float64) error {
	if err := g.AddVertex(cfg.startID, 0, core.WithPosition(x, y), core.WithLabel(startLabel)); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.startID, err)
	}
	if err := g.SetStart(cfg.startID); err != nil {
		return fmt.Errorf("%s: SetStart(%s): %w", method, cfg.startID, err)
	}

	return nil
}

// addVertex inserts a vertex with a drawn interest at (x, y).
func addVertex(g *core.Graph, cfg builderConfig, method, id string, x, y float64) error {
	interest := cfg.interestFn(cfg.rng)
	if err := g.AddVertex(id, interest, core.WithPosition(x, y)); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addRoad joins u and v with a drawn weight.
func addRoad(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// ringIDs returns the start ID followed by idFn(1..n-1).
func ringIDs(cfg builderConfig, n int) []string {
	ids := make([]string, n)
	ids[0] = cfg.startID
	for i := 1; i < n; i++ {
		ids[i] = cfg.idFn(i)
	}

	return ids
}

// onCircle returns the position of point i of n on a circle of radius r.
func onCircle(i, n int, r float64) (float64, float64) {
	a := 2 * math.Pi * float64(i) / float64(n)

	return r * math.Cos(a), r * math.Sin(a)
}
