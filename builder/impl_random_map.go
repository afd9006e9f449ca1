// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// impl_random_map.go - implementation of RandomMap(size) constructor.
//
// Model:
//   - The start vertex sits at (0,0) with interest 0.
//   - A size×size grid of cells at odd coordinates (1,1), (1,3), ...,
//     (2·size-1, 2·size-1) is scanned row-major; a cell receives a vertex
//     when rng.Float64() > spawnRate. Vertex IDs are idFn(k) where k is the
//     vertex count at insertion time (1, 2, ...).
//   - A random spanning tree connects everything to the start: repeatedly
//     pick a random unlinked vertex and attach it to a random linked vertex
//     other than the most recently linked one (unless only the start is
//     linked).
//
// Contract:
//   - size ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity: O(size²) cells + O(V²) tree assembly (slice removal).
//
// Determinism: fixed scan and draw order; identical maps for equal seeds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orienteer/core"
)

const (
	methodRandomMap   = "RandomMap"
	minRandomMapSize  = 1
	randomMapCellStep = 2
)

// RandomMap returns a Constructor that samples a random tree-shaped map on
// a size×size grid.
func RandomMap(size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if size < minRandomMapSize {
			return fmt.Errorf("%s: size=%d < min=%d: %w", methodRandomMap, size, minRandomMapSize, ErrTooFewVertices)
		}
		if cfg.spawnRate < 0 || cfg.spawnRate > 1 {
			return fmt.Errorf("%s: spawnRate=%g: %w", methodRandomMap, cfg.spawnRate, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomMap, ErrNeedRandSource)
		}

		if err := addStart(g, cfg, methodRandomMap, 0, 0); err != nil {
			return err
		}
		unlinked := make([]string, 0, size*size)
		limit := size * randomMapCellStep
		for i := 1; i < limit; i += randomMapCellStep {
			for j := 1; j < limit; j += randomMapCellStep {
				if cfg.rng.Float64() <= cfg.spawnRate {
					continue
				}
				id := cfg.idFn(len(unlinked) + 1)
				if err := addVertex(g, cfg, methodRandomMap, id, float64(i), float64(j)); err != nil {
					return err
				}
				unlinked = append(unlinked, id)
			}
		}

		linked := []string{cfg.startID}
		for len(unlinked) > 0 {
			k := cfg.rng.Intn(len(unlinked))
			next := unlinked[k]
			span := len(linked) - 1
			if span < 1 {
				span = 1
			}
			parent := linked[cfg.rng.Intn(span)]
			if err := addRoad(g, cfg, methodRandomMap, parent, next); err != nil {
				return err
			}
			linked = append(linked, next)
			unlinked = append(unlinked[:k], unlinked[k+1:]...)
		}

		return nil
	}
}
