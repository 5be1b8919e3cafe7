// Package graph defines the transportation-network data model produced by
// the generator and its reference JSON encoding.
//
// What:
//
//   - Node: an intersection with a position and reserved attribute slots.
//   - Edge: an undirected street segment labeled with a mode-specific
//     facility type (e.g. "ProtectedLane", "Sidewalk").
//   - ModeGraph: one mode's view of the network — nodes with contiguous
//     0-based ids and edges referencing them.
//   - Network: the final product, one ModeGraph per requested mode label.
//
// Invariants (established by the netgen package, relied on by consumers):
//
//   - Node ids within a ModeGraph form the gapless range 0..len(Nodes)-1.
//   - Every edge endpoint is a valid node id in the same ModeGraph.
//   - No self-loops; no duplicate unordered endpoint pairs in a base graph.
//   - FacilityType is always drawn from the mode's configured set (or the
//     Generic fallback for unrecognized modes).
//
// The JSON encoding follows the reference layout: a single "graphs" object
// keyed by mode label; see the struct tags on each type. Reserved sequence
// fields encode as [] rather than null — use NewNode/NewEdge.
//
// Components reports connected components over a ModeGraph; it exists for
// diagnostics and tests, not routing.
package graph
