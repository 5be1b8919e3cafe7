// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - genConfig is the single source of truth for all generation knobs.
//   - newGenConfig applies options in order (later overrides earlier) and
//     resolves remaining nil fields to documented defaults.
//   - The config is passed by value: immutable to constructors and callers.
//
// Deterministic defaults:
//   - iterations  = sampler.DefaultIterations (3)
//   - precision   = DefaultPrecision (2 digits)
//   - nodeRemoval = DefaultNodeRemovalFraction (0.10)
//   - edgeRemoval = DefaultEdgeRemovalFraction (0.20), fixed (not ranged)
//   - facilities  = graph.DefaultFacilityTypes()
//   - gridSpacing = DefaultGridSpacing, gridJitter = DefaultGridJitter
//   - rng         = time-seeded *rand.Rand unless WithSeed/WithRand is given;
//     never the package-global source, so runs stay isolated.

package netgen

import (
	"math/rand"
	"time"

	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/sampler"
)

// genConfig aggregates all knobs used by the generation entry points.
type genConfig struct {
	// RNG for every stochastic choice; resolved non-nil by newGenConfig.
	rng *rand.Rand
	// Lloyd relaxation depth.
	iterations int
	// Vertex dedup precision in decimal digits.
	precision int
	// Fraction of base nodes removed per mode, in [0,1).
	nodeRemoval float64
	// Fixed fraction of surviving edges removed per mode, in [0,1).
	edgeRemoval float64
	// Ranged edge-removal preset: when ranged is true, each mode draws its
	// fraction uniformly from [edgeRemovalMin, edgeRemovalMax).
	edgeRemovalMin, edgeRemovalMax float64
	edgeRemovalRanged              bool
	// Facility vocabulary per mode label.
	facilities map[string][]string
	// Grid fallback layout knobs.
	gridSpacing float64
	gridJitter  float64
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order. Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		iterations:  sampler.DefaultIterations,
		precision:   DefaultPrecision,
		nodeRemoval: DefaultNodeRemovalFraction,
		edgeRemoval: DefaultEdgeRemovalFraction,
		facilities:  graph.DefaultFacilityTypes(),
		gridSpacing: DefaultGridSpacing,
		gridJitter:  DefaultGridJitter,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Unseeded runs get a fresh time-seeded source. A local instance keeps
	// generation isolated from ambient global random state either way.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// facilityTypesFor resolves the facility vocabulary for a mode label,
// falling back to the single generic type for unknown modes.
func (c genConfig) facilityTypesFor(mode string) []string {
	if types, ok := c.facilities[mode]; ok && len(types) > 0 {
		return types
	}

	return []string{graph.GenericFacilityType}
}
