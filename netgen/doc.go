// Package netgen assembles complete multi-modal networks: it orchestrates
// sampling, relaxation and the Voronoi base graph, then derives one pruned,
// facility-labeled sub-graph per requested transport mode.
//
// What:
//
//   - Generate / GenerateWithInfo: the full geometric pipeline — sample →
//     relax → base graph → recenter → per-mode derive → reindex.
//   - GenerateGrid: the lattice fallback — a near-square jittered grid with
//     right/down connections, labeled per mode, never pruned.
//   - BuildBaseGraph: Voronoi ridges → deduplicated planar base graph.
//   - Reindex: drop isolated nodes and remap ids to a gapless 0-based range.
//
// Derivation presets: the observed pruning behaviors are configurations of
// one deriver, not separate algorithms. Defaults remove floor(N·0.10) nodes
// and floor(E·0.20) edges per mode; WithEdgeRemovalRange switches a run to a
// randomized per-mode edge fraction; WithNodeRemoval(0) and WithEdgeRemoval(0)
// disable pruning entirely.
//
// Determinism: one *rand.Rand (WithSeed / WithRand) drives every stochastic
// step in a fixed order — sampling, per-mode pruning, facility draws, grid
// jitter. Equal seeds and options yield identical networks.
//
// Errors:
//
//   - ErrNonPositiveCount:   requested node count < 1.
//   - ErrInsufficientPoints: sampling accepted fewer than voronoi.MinSites
//     points, so no base graph can exist.
//   - ErrBadPrecision:       rounding precision outside [0, geom.MaxDigits].
//
// Mode lists: a nil list means graph.DefaultModes(); an explicit empty list
// is honored and produces a network with no graphs. Unknown mode labels are
// valid and label their edges with graph.GenericFacilityType.
package netgen
