// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// reindex.go — contiguous node-id remapping after pruning.
//
// Canonical model:
//   - Keep only nodes touched by at least one edge; isolated nodes are
//     never preserved.
//   - Remap kept node ids to 0..k-1 in their original relative order and
//     rewrite every edge endpoint through the mapping.
//   - An empty edge list yields an empty result (no nodes survive).
//
// Contract:
//   - Inputs are never mutated; nodes are copied before their ids change.
//   - Idempotent: reindexing an already-contiguous, fully-connected input
//     returns an identical result.
//
// Complexity: O(V+E) time and space.

package netgen

import "github.com/urbanfabric/streetgen/graph"

// Reindex drops isolated nodes and remaps node ids to a gapless 0-based
// range, rewriting edge endpoints accordingly. Edges referencing an id
// absent from nodes are dropped with their endpoints unmappable.
func Reindex(nodes []graph.Node, edges [][2]int) ([]graph.Node, [][2]int) {
	if len(edges) == 0 {
		return []graph.Node{}, [][2]int{}
	}

	connected := make(map[int]struct{}, len(nodes))
	for _, e := range edges {
		connected[e[0]] = struct{}{}
		connected[e[1]] = struct{}{}
	}

	kept := make([]graph.Node, 0, len(connected))
	idMap := make(map[int]int, len(connected))
	for _, n := range nodes {
		if _, ok := connected[n.ID]; !ok {
			continue
		}
		idMap[n.ID] = len(kept)
		n.ID = len(kept) // n is a copy; the caller's slice is untouched
		kept = append(kept, n)
	}

	remapped := make([][2]int, 0, len(edges))
	for _, e := range edges {
		from, okF := idMap[e[0]]
		to, okT := idMap[e[1]]
		if !okF || !okT {
			continue
		}
		remapped = append(remapped, [2]int{from, to})
	}

	return kept, remapped
}
