// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The start vertex is one end of the chain; the rest are idFn(1..n-1).
//   - Vertices lie on the x axis at x = index.
//   - Edges (i-1)—i are emitted for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple chain P_n starting at the
// start vertex.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := ringIDs(cfg, n)
		if err := addStart(g, cfg, methodPath, 0, 0); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addVertex(g, cfg, methodPath, ids[i], float64(i), 0); err != nil {
				return err
			}
			if err := addRoad(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
