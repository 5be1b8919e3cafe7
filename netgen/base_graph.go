// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// base_graph.go — Voronoi ridges → deduplicated planar base graph.
//
// Canonical model:
//   - Every bounded Voronoi ridge whose two vertices lie inside the
//     rectangle becomes an edge candidate; everything touching infinity or
//     the area outside the map is discarded.
//   - Vertex coordinates are quantized to the configured precision, merging
//     numerically-adjacent vertices into one node; candidates that collapse
//     onto themselves (rounded self-loops) are dropped.
//   - Candidates are deduplicated by their unordered quantized endpoint
//     pair, so each physical street segment appears exactly once.
//   - Node ids are assigned in first-seen order; node positions are the
//     quantized coordinates.
//
// Contract:
//   - digits ∈ [0, geom.MaxDigits] (else ErrBadPrecision).
//   - len(points) ≥ voronoi.MinSites (else a wrapped voronoi sentinel).
//   - The result graph has no self-loops and no duplicate unordered pairs.
//
// Complexity: O(n log n) for the diagram + O(ridges) extraction.
// Determinism: pure function of the inputs.

package netgen

import (
	"fmt"

	"github.com/urbanfabric/streetgen/geom"
	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/voronoi"
)

// BaseGraph is the shared, unpruned planar graph every mode derivation
// reads from. Edges hold node-id pairs; ids index Nodes directly.
type BaseGraph struct {
	Nodes []graph.Node
	Edges [][2]int
}

// edgePairKey identifies an edge by its unordered quantized endpoints.
type edgePairKey struct {
	a, b geom.Key
}

// pairKeyOf canonicalizes the endpoint order so (p,q) and (q,p) collide.
func pairKeyOf(a, b geom.Key) edgePairKey {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	return edgePairKey{a: a, b: b}
}

// BuildBaseGraph derives the base graph from a relaxed point set.
func BuildBaseGraph(points []geom.Point, rect geom.Rect, digits int) (*BaseGraph, error) {
	if digits < 0 || digits > geom.MaxDigits {
		return nil, fmt.Errorf("%s: digits=%d: %w", methodBuildBase, digits, ErrBadPrecision)
	}

	d, err := voronoi.Compute(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildBase, err)
	}

	base := &BaseGraph{}
	nodeByKey := make(map[geom.Key]int)
	edgeSeen := make(map[edgePairKey]struct{})

	// ensureNode returns the id for a quantized vertex, registering it with
	// the next id on first sight.
	ensureNode := func(k geom.Key) int {
		if id, ok := nodeByKey[k]; ok {
			return id
		}
		id := len(base.Nodes)
		nodeByKey[k] = id
		p := k.Point(digits)
		base.Nodes = append(base.Nodes, graph.NewNode(id, p.X, p.Y))

		return id
	}

	for _, r := range d.Ridges {
		// Ridges shooting to infinity never become streets.
		if !r.Bounded() {
			continue
		}
		va, vb := d.Vertices[r.Va], d.Vertices[r.Vb]
		// Strictly ignore anything outside the mapped area.
		if !rect.Contains(va) || !rect.Contains(vb) {
			continue
		}

		ka := geom.KeyOf(va, digits)
		kb := geom.KeyOf(vb, digits)
		// Vertices may coincide after quantization; such a ridge would be a
		// self-loop artifact, not a street.
		if ka == kb {
			continue
		}

		pk := pairKeyOf(ka, kb)
		if _, dup := edgeSeen[pk]; dup {
			continue
		}
		edgeSeen[pk] = struct{}{}

		base.Edges = append(base.Edges, [2]int{ensureNode(ka), ensureNode(kb)})
	}

	return base, nil
}

// Recenter translates all node positions so the bounding-box center of the
// graph sits at the origin. A graph without nodes is left untouched.
func (b *BaseGraph) Recenter() {
	if len(b.Nodes) == 0 {
		return
	}

	minX, maxX := b.Nodes[0].Position[0], b.Nodes[0].Position[0]
	minY, maxY := b.Nodes[0].Position[1], b.Nodes[0].Position[1]
	for _, n := range b.Nodes[1:] {
		x, y := n.Position[0], n.Position[1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	for i := range b.Nodes {
		b.Nodes[i].Position[0] -= cx
		b.Nodes[i].Position[1] -= cy
	}
}
