// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// derive.go — per-mode sub-graph derivation from the shared base graph.
//
// Canonical model (one mode, in order):
//   1. Node pruning: remove floor(N·nodeRemoval) distinct nodes, sampled
//      uniformly without replacement, together with every incident edge.
//   2. Edge pruning: remove floor(E·f) distinct surviving edges the same
//      way, where f is the fixed fraction or a per-mode draw from the
//      configured range.
//   3. Reindex: drop isolated nodes, remap ids to 0..k-1.
//   4. Labeling: each surviving edge gets a facility type drawn uniformly
//      from the mode's set; edge ids are assigned 0-based in the surviving
//      edges' original relative order.
//
// Contract:
//   - The base graph is read-only; every mode derivation owns its output.
//   - Derivation cannot fail: it only removes elements. A fraction pair
//     that removes everything yields a valid empty ModeGraph.
//   - Pruning counts are exact floors — deterministic for a fixed seed and
//     candidate order.
//
// Complexity: O(V+E) per mode.

package netgen

import (
	"math/rand"

	"github.com/urbanfabric/streetgen/graph"
)

// deriveMode builds one mode's pruned, reindexed, labeled sub-graph.
func deriveMode(cfg genConfig, mode string, base *BaseGraph) *graph.ModeGraph {
	nodes, edges := pruneNodes(cfg.rng, base.Nodes, base.Edges, cfg.nodeRemoval)

	f := cfg.edgeRemoval
	if cfg.edgeRemovalRanged {
		f = cfg.edgeRemovalMin + cfg.rng.Float64()*(cfg.edgeRemovalMax-cfg.edgeRemovalMin)
	}
	edges = pruneEdges(cfg.rng, edges, f)

	nodes, edges = Reindex(nodes, edges)

	types := cfg.facilityTypesFor(mode)
	mg := &graph.ModeGraph{
		Mode:  mode,
		Nodes: nodes,
		Edges: make([]graph.Edge, 0, len(edges)),
	}
	for i, e := range edges {
		facility := types[cfg.rng.Intn(len(types))]
		mg.Edges = append(mg.Edges, graph.NewEdge(i, e[0], e[1], facility))
	}

	return mg
}

// pruneNodes removes floor(len(nodes)·fraction) nodes chosen uniformly
// without replacement, plus all incident edges. The inputs are copied, not
// mutated.
func pruneNodes(rng *rand.Rand, nodes []graph.Node, edges [][2]int, fraction float64) ([]graph.Node, [][2]int) {
	removeCount := int(float64(len(nodes)) * fraction)
	if len(nodes) == 0 || fraction <= 0 || removeCount == 0 {
		return copyNodes(nodes), copyEdges(edges)
	}

	removed := make(map[int]struct{}, removeCount)
	for _, idx := range rng.Perm(len(nodes))[:removeCount] {
		removed[nodes[idx].ID] = struct{}{}
	}

	keptNodes := make([]graph.Node, 0, len(nodes)-removeCount)
	for _, n := range nodes {
		if _, gone := removed[n.ID]; !gone {
			keptNodes = append(keptNodes, n)
		}
	}
	keptEdges := make([][2]int, 0, len(edges))
	for _, e := range edges {
		if _, gone := removed[e[0]]; gone {
			continue
		}
		if _, gone := removed[e[1]]; gone {
			continue
		}
		keptEdges = append(keptEdges, e)
	}

	return keptNodes, keptEdges
}

// pruneEdges removes floor(len(edges)·fraction) edges chosen uniformly
// without replacement, preserving the survivors' relative order.
func pruneEdges(rng *rand.Rand, edges [][2]int, fraction float64) [][2]int {
	removeCount := int(float64(len(edges)) * fraction)
	if len(edges) == 0 || fraction <= 0 || removeCount == 0 {
		return copyEdges(edges)
	}
	if removeCount > len(edges) {
		removeCount = len(edges)
	}

	removed := make(map[int]struct{}, removeCount)
	for _, idx := range rng.Perm(len(edges))[:removeCount] {
		removed[idx] = struct{}{}
	}

	kept := make([][2]int, 0, len(edges)-removeCount)
	for i, e := range edges {
		if _, gone := removed[i]; !gone {
			kept = append(kept, e)
		}
	}

	return kept
}

func copyNodes(nodes []graph.Node) []graph.Node {
	out := make([]graph.Node, len(nodes))
	copy(out, nodes)

	return out
}

func copyEdges(edges [][2]int) [][2]int {
	out := make([][2]int, len(edges))
	copy(out, edges)

	return out
}
