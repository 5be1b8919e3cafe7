// SPDX-License-Identifier: MIT
// Package: streetgen/graph
//
// components.go — connected components over a ModeGraph.
//
// Diagnostics helper: pruning can shatter a mode's network into islands,
// and "how many, how big" is the first question about a generated result.
// This is plain BFS over an adjacency list; it is not a routing facility.
//
// Complexity: O(V+E) time, O(V+E) memory.

package graph

// Components returns the connected components of mg as slices of node ids.
// Components appear in order of their lowest node id; ids within a
// component are in BFS visit order. Isolated nodes form singleton
// components. A nil or empty graph yields nil.
func Components(mg *ModeGraph) [][]int {
	if mg == nil || len(mg.Nodes) == 0 {
		return nil
	}

	// Adjacency over dense 0..n-1 ids (the reindex invariant).
	n := len(mg.Nodes)
	adj := make([][]int, n)
	for _, e := range mg.Edges {
		adj[e.FromNode] = append(adj[e.FromNode], e.ToNode)
		adj[e.ToNode] = append(adj[e.ToNode], e.FromNode)
	}

	seen := make([]bool, n)
	var comps [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []int{start}
		seen[start] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
