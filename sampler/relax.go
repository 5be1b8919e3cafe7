// SPDX-License-Identifier: MIT
// Package: streetgen/sampler
//
// relax.go — Lloyd relaxation over a bounded rectangle.
//
// Canonical model (per iteration):
//   - Compute the Voronoi diagram of the current point set.
//   - A point whose cell is unbounded or empty keeps its position.
//   - Otherwise the point moves to its cell's centroid, unless the centroid
//     falls outside the rectangle (drift guard: keep the original point).
//
// Contract:
//   - iterations ≥ 0 (else ErrBadIterations); 0 iterations copies the input.
//   - len(points) ≥ voronoi.MinSites, enforced by the diagram computation.
//   - Output cardinality always equals input cardinality.
//   - The input slice is never mutated.
//
// Complexity: O(iterations × n log n).
// Determinism: pure function of the input; no randomness involved.

package sampler

import (
	"fmt"

	"github.com/urbanfabric/streetgen/geom"
	"github.com/urbanfabric/streetgen/voronoi"
)

// DefaultIterations is the relaxation depth used by the full pipeline:
// enough to even out sampling clusters without erasing the center bias.
const DefaultIterations = 3

// Relax runs Lloyd's algorithm for the given number of iterations and
// returns the relaxed point set (same length and order as the input).
func Relax(points []geom.Point, rect geom.Rect, iterations int) ([]geom.Point, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("Relax: iterations=%d: %w", iterations, ErrBadIterations)
	}

	current := make([]geom.Point, len(points))
	copy(current, points)

	for it := 0; it < iterations; it++ {
		d, err := voronoi.Compute(current)
		if err != nil {
			return nil, fmt.Errorf("Relax: iteration %d: %w", it, err)
		}

		next := make([]geom.Point, len(current))
		for i := range current {
			if d.Cells[i].Unbounded {
				next[i] = current[i]
				continue
			}
			centroid, ok := d.Centroid(i)
			if !ok || !rect.Contains(centroid) {
				next[i] = current[i]
				continue
			}
			next[i] = centroid
		}
		current = next
	}

	return current, nil
}
