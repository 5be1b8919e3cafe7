// Package streetgen procedurally generates multi-modal transportation
// networks: an organic, street-like planar graph derived from a relaxed
// Voronoi diagram, pruned and labeled per transport mode.
//
// 🚀 What is streetgen?
//
//	A deterministic, seedable generator that turns a handful of knobs into
//	a ready-to-serialize network:
//		• Density-biased point sampling toward the map center
//		• Lloyd relaxation for evenly spaced "city blocks"
//		• Voronoi ridges → deduplicated planar base graph
//		• Per-mode sub-graphs (Bike, Walk, Transit, Car, ...) via random
//		  node/edge pruning and facility-type labeling
//		• A jittered lattice fallback when Voronoi geometry is not wanted
//
// ✨ Why choose streetgen?
//
//   - Reproducible - one seedable RNG threaded through every stochastic step
//   - Honest errors - sentinel errors, errors.Is friendly, no runtime panics
//   - Pure in-memory core - no I/O, no globals, trivially testable
//
// Everything is organized under five subpackages plus one thin CLI:
//
//	geom/     — points, rectangles, fixed-precision coordinate keys
//	voronoi/  — bounded-plane Voronoi diagrams (Delaunay dual)
//	sampler/  — center-biased rejection sampling + Lloyd relaxation
//	graph/    — Node/Edge/ModeGraph/Network model and JSON encoding
//	netgen/   — mode derivation, reindexing, grid fallback, assembly
//	cmd/streetgen — command-line generator emitting the JSON encoding
//
// Quick ASCII intuition:
//
//	 sites ·  ·        base graph        Walk mode
//	   ·  ·  ·    →    ┌──┬──┐      →    ┌──┬──┐
//	  ·  ·  ·          ├──┼──┤           │  ├──┘
//	   ·  ·            └──┴──┘           └──┘
//
// Start with netgen.Generate for the full pipeline, or compose the stages
// yourself via sampler and voronoi. See each package's doc.go for contracts.
//
//	go get github.com/urbanfabric/streetgen
package streetgen
