// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Complete(1) is the lone start vertex.
//   - Vertices start, idFn(1..n-1) are placed on a circle of radius n.
//   - Each unordered pair {i,j}, i<j, is emitted once in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n
// including the start vertex.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := ringIDs(cfg, n)
		x, y := onCircle(0, n, float64(n))
		if err := addStart(g, cfg, methodComplete, x, y); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			x, y = onCircle(i, n, float64(n))
			if err := addVertex(g, cfg, methodComplete, ids[i], x, y); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addRoad(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
