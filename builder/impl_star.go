// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The start vertex is the hub at the origin.
//   - Leaves idFn(1..n-1) sit on a circle of radius n around the hub.
//   - Spokes are emitted hub—leaf in increasing leaf index.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with the start vertex as hub
// and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addStart(g, cfg, methodStar, 0, 0); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			x, y := onCircle(i-1, n-1, float64(n))
			if err := addVertex(g, cfg, methodStar, leaf, x, y); err != nil {
				return err
			}
			if err := addRoad(g, cfg, methodStar, cfg.startID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
