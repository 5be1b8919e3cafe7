// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// options.go — functional options for the generation pipeline.
//
// Contract (strict):
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     pipeline code itself never panics — it returns sentinel errors.
//   - Determinism is explicit: seed via WithSeed or WithRand.
//   - No hidden globals; everything flows through genConfig.

package netgen

import (
	"math/rand"

	"github.com/urbanfabric/streetgen/geom"
)

// Option customizes a generation run by mutating the resolved genConfig.
type Option func(*genConfig)

// WithRand provides an explicit RNG for all stochastic steps.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("netgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Use this in tests
// and anywhere a run must be reproducible bit for bit.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIterations sets the Lloyd relaxation depth. Zero disables relaxation.
// Panics on negative values.
func WithIterations(n int) Option {
	if n < 0 {
		panic("netgen: WithIterations(n<0)")
	}
	return func(c *genConfig) {
		c.iterations = n
	}
}

// WithPrecision sets the vertex dedup rounding precision in decimal digits.
// Panics outside [0, geom.MaxDigits].
func WithPrecision(digits int) Option {
	if digits < 0 || digits > geom.MaxDigits {
		panic("netgen: WithPrecision(digits) out of range")
	}
	return func(c *genConfig) {
		c.precision = digits
	}
}

// WithNodeRemoval sets the per-mode node pruning fraction, in [0,1).
// Zero disables node pruning. Panics outside the interval.
func WithNodeRemoval(f float64) Option {
	if f < 0 || f >= 1 {
		panic("netgen: WithNodeRemoval(f) not in [0,1)")
	}
	return func(c *genConfig) {
		c.nodeRemoval = f
	}
}

// WithEdgeRemoval sets a fixed per-mode edge pruning fraction, in [0,1),
// and clears any previously configured range. Zero disables edge pruning.
// Panics outside the interval.
func WithEdgeRemoval(f float64) Option {
	if f < 0 || f >= 1 {
		panic("netgen: WithEdgeRemoval(f) not in [0,1)")
	}
	return func(c *genConfig) {
		c.edgeRemoval = f
		c.edgeRemovalRanged = false
	}
}

// WithEdgeRemovalRange switches edge pruning to the randomized preset: each
// mode derivation draws its fraction uniformly from [min, max). Requires
// 0 ≤ min ≤ max < 1; panics otherwise.
func WithEdgeRemovalRange(min, max float64) Option {
	if min < 0 || max >= 1 || min > max {
		panic("netgen: WithEdgeRemovalRange(min,max) not a sub-interval of [0,1)")
	}
	return func(c *genConfig) {
		c.edgeRemovalMin = min
		c.edgeRemovalMax = max
		c.edgeRemovalRanged = true
	}
}

// WithoutPruning disables both node and edge pruning — every mode receives
// the full base topology (facility labels still differ per mode).
func WithoutPruning() Option {
	return func(c *genConfig) {
		c.nodeRemoval = 0
		c.edgeRemoval = 0
		c.edgeRemovalRanged = false
	}
}

// WithFacilityTypes overrides the facility vocabulary for one mode label.
// Panics on an empty mode or an empty type set.
func WithFacilityTypes(mode string, types []string) Option {
	if mode == "" {
		panic("netgen: WithFacilityTypes with empty mode")
	}
	if len(types) == 0 {
		panic("netgen: WithFacilityTypes with empty type set")
	}
	owned := make([]string, len(types))
	copy(owned, types)
	return func(c *genConfig) {
		c.facilities[mode] = owned
	}
}

// WithGridSpacing sets the lattice step of the grid fallback.
// Panics on non-positive values.
func WithGridSpacing(s float64) Option {
	if s <= 0 {
		panic("netgen: WithGridSpacing(s<=0)")
	}
	return func(c *genConfig) {
		c.gridSpacing = s
	}
}

// WithGridJitter sets the maximum absolute positional jitter of grid nodes.
// Zero gives exact lattice positions. Panics on negative values.
func WithGridJitter(j float64) Option {
	if j < 0 {
		panic("netgen: WithGridJitter(j<0)")
	}
	return func(c *genConfig) {
		c.gridJitter = j
	}
}
