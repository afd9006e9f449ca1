// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices start, idFn(1..n-1) are placed on a circle of radius n.
//   - Edges i—(i+1)%n are emitted for i=0..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex ring C_n through the
// start vertex.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := ringIDs(cfg, n)
		x, y := onCircle(0, n, float64(n))
		if err := addStart(g, cfg, methodCycle, x, y); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			x, y = onCircle(i, n, float64(n))
			if err := addVertex(g, cfg, methodCycle, ids[i], x, y); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addRoad(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
