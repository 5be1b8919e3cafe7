// Package netgen defines shared constants used across the generation
// pipeline, ensuring consistent defaults and validation in one place.
package netgen

//-----------------------------------------------------------------------------
// Pipeline Defaults
//-----------------------------------------------------------------------------

// DefaultNodeCount is the point budget used when a caller gives none.
const DefaultNodeCount = 25

// DefaultPrecision is the rounding precision, in decimal digits, used to
// merge numerically-adjacent Voronoi vertices into one node. It is a tunable
// invariant of the base graph, not a hidden constant: coarser values merge
// more aggressively, finer values keep near-duplicate intersections apart.
const DefaultPrecision = 2

//-----------------------------------------------------------------------------
// Map Sizing
//-----------------------------------------------------------------------------

// MinRectSide is the smallest map side length. Tiny node counts still get a
// workable area so the relaxation has room to move points.
const MinRectSide = 30.0

// RectSideScale multiplies sqrt(n) to derive the map side, keeping point
// density roughly constant as n grows.
const RectSideScale = 10.0

//-----------------------------------------------------------------------------
// Derivation Defaults
//-----------------------------------------------------------------------------

// DefaultNodeRemovalFraction is the share of base nodes removed (with their
// incident edges) when deriving a mode graph.
const DefaultNodeRemovalFraction = 0.10

// DefaultEdgeRemovalFraction is the share of surviving edges knocked out
// after node pruning.
const DefaultEdgeRemovalFraction = 0.20

//-----------------------------------------------------------------------------
// Grid Fallback
//-----------------------------------------------------------------------------

// DefaultGridSpacing is the lattice step, in map units, between neighboring
// grid nodes.
const DefaultGridSpacing = 5.0

// DefaultGridJitter is the maximum absolute positional offset applied to
// each grid node on both axes. Zero disables jitter for exact layouts.
const DefaultGridJitter = 0.5

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	methodGenerate     = "Generate"
	methodGenerateGrid = "GenerateGrid"
	methodBuildBase    = "BuildBaseGraph"
)
