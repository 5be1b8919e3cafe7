// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// grid.go — the lattice fallback generator.
//
// Canonical model:
//   - cols = ceil(sqrt(n)), nodes laid out row-major with a fixed spacing
//     and optional per-node jitter on both axes; the last row may be
//     partial.
//   - Each node connects to its right and lower neighbor where one exists
//     (4-connected lattice, no diagonals), right before down per node.
//   - One shared layout across modes: every mode sees the same nodes and
//     topology and differs only in facility labels. No pruning on this path.
//
// Contract:
//   - n ≥ 1 (else ErrNonPositiveCount). n = 1 yields one node, no edges.
//   - modes nil → graph.DefaultModes(); empty non-nil → empty network.
//   - Deterministic for a fixed seed: jitter draws happen in node order,
//     label draws in mode order then edge order.
//
// Complexity: O(n + modes·edges).

package netgen

import (
	"fmt"
	"math"

	"github.com/urbanfabric/streetgen/graph"
)

// GenerateGrid builds a Network over a near-square jittered lattice instead
// of the Voronoi pipeline. Useful when organic geometry is not wanted or
// not available (tiny n, screenshot fixtures, benchmarks).
func GenerateGrid(n int, modes []string, opts ...Option) (*graph.Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerateGrid, n, ErrNonPositiveCount)
	}
	cfg := newGenConfig(opts...)
	if modes == nil {
		modes = graph.DefaultModes()
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))

	// Shared layout: one jitter draw sequence, reused by every mode so the
	// sub-graphs stay geometrically aligned.
	layout := make([]graph.Node, 0, n)
	for i := 0; i < n; i++ {
		r, c := i/cols, i%cols
		x := float64(c) * cfg.gridSpacing
		y := float64(r) * cfg.gridSpacing
		if cfg.gridJitter > 0 {
			x += (cfg.rng.Float64()*2 - 1) * cfg.gridJitter
			y += (cfg.rng.Float64()*2 - 1) * cfg.gridJitter
		}
		layout = append(layout, graph.NewNode(i, x, y))
	}

	// Lattice edges in row-major node order: right neighbor, then lower.
	pairs := make([][2]int, 0, 2*n)
	for i := 0; i < n; i++ {
		if c := i % cols; c+1 < cols && i+1 < n {
			pairs = append(pairs, [2]int{i, i + 1})
		}
		if i+cols < n {
			pairs = append(pairs, [2]int{i, i + cols})
		}
	}

	net := graph.NewNetwork()
	for _, mode := range modes {
		types := cfg.facilityTypesFor(mode)
		mg := &graph.ModeGraph{
			Mode:  mode,
			Nodes: copyNodes(layout),
			Edges: make([]graph.Edge, 0, len(pairs)),
		}
		for id, p := range pairs {
			facility := types[cfg.rng.Intn(len(types))]
			mg.Edges = append(mg.Edges, graph.NewEdge(id, p[0], p[1], facility))
		}
		net.Graphs[mode] = mg
	}

	return net, nil
}
