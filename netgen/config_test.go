// Package netgen contains unit tests for the configuration primitives
// (genConfig and Option) covering defaults, override order, and the
// fail-fast panics of option constructors.
package netgen

import (
	"math/rand"
	"testing"

	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/sampler"
)

// TestNewGenConfig_Defaults locks the documented deterministic defaults.
func TestNewGenConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig()
	if cfg.iterations != sampler.DefaultIterations {
		t.Errorf("iterations = %d; want %d", cfg.iterations, sampler.DefaultIterations)
	}
	if cfg.precision != DefaultPrecision {
		t.Errorf("precision = %d; want %d", cfg.precision, DefaultPrecision)
	}
	if cfg.nodeRemoval != DefaultNodeRemovalFraction {
		t.Errorf("nodeRemoval = %v; want %v", cfg.nodeRemoval, DefaultNodeRemovalFraction)
	}
	if cfg.edgeRemoval != DefaultEdgeRemovalFraction || cfg.edgeRemovalRanged {
		t.Errorf("edge removal = (%v, ranged=%v); want (%v, fixed)",
			cfg.edgeRemoval, cfg.edgeRemovalRanged, DefaultEdgeRemovalFraction)
	}
	if cfg.rng == nil {
		t.Error("rng not resolved; want a non-nil local instance")
	}
	if cfg.gridSpacing != DefaultGridSpacing || cfg.gridJitter != DefaultGridJitter {
		t.Errorf("grid knobs = (%v,%v); want (%v,%v)",
			cfg.gridSpacing, cfg.gridJitter, DefaultGridSpacing, DefaultGridJitter)
	}
}

// TestWithSeed_Reproducible: equal seeds must produce identical streams.
func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newGenConfig(WithSeed(99))
	b := newGenConfig(WithSeed(99))
	for i := 0; i < 16; i++ {
		if a.rng.Int63() != b.rng.Int63() {
			t.Fatal("streams diverge for equal seeds")
		}
	}
}

// TestWithEdgeRemoval_ClearsRange: a later fixed fraction must win over an
// earlier range (last-wins option semantics).
func TestWithEdgeRemoval_ClearsRange(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig(WithEdgeRemovalRange(0.1, 0.5), WithEdgeRemoval(0.3))
	if cfg.edgeRemovalRanged {
		t.Error("range still active after WithEdgeRemoval")
	}
	if cfg.edgeRemoval != 0.3 {
		t.Errorf("edgeRemoval = %v; want 0.3", cfg.edgeRemoval)
	}
}

// TestWithRand_SharedInstance: WithRand must install the exact instance.
func TestWithRand_SharedInstance(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(123))
	cfg := newGenConfig(WithRand(r))
	if cfg.rng != r {
		t.Error("rng is not the provided instance")
	}
}

// TestFacilityTypesFor covers configured, overridden, and fallback lookups.
func TestFacilityTypesFor(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig(WithFacilityTypes("Ferry", []string{"Dock", "Crossing"}))

	if got := cfg.facilityTypesFor(graph.ModeBike); len(got) != 3 {
		t.Errorf("Bike facilities = %v; want the 3 defaults", got)
	}
	if got := cfg.facilityTypesFor("Ferry"); len(got) != 2 || got[0] != "Dock" {
		t.Errorf("Ferry facilities = %v; want [Dock Crossing]", got)
	}
	if got := cfg.facilityTypesFor("Hovercraft"); len(got) != 1 || got[0] != graph.GenericFacilityType {
		t.Errorf("unknown mode facilities = %v; want [%s]", got, graph.GenericFacilityType)
	}
}

// TestOptionConstructors_Panic locks the fail-fast contract for meaningless
// option values.
func TestOptionConstructors_Panic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		call func()
	}{
		{"WithRandNil", func() { WithRand(nil) }},
		{"WithIterationsNegative", func() { WithIterations(-1) }},
		{"WithPrecisionNegative", func() { WithPrecision(-1) }},
		{"WithPrecisionHuge", func() { WithPrecision(10) }},
		{"WithNodeRemovalOne", func() { WithNodeRemoval(1.0) }},
		{"WithEdgeRemovalNegative", func() { WithEdgeRemoval(-0.1) }},
		{"WithEdgeRemovalRangeInverted", func() { WithEdgeRemovalRange(0.5, 0.2) }},
		{"WithFacilityTypesEmptyMode", func() { WithFacilityTypes("", []string{"X"}) }},
		{"WithFacilityTypesEmptySet", func() { WithFacilityTypes("Ferry", nil) }},
		{"WithGridSpacingZero", func() { WithGridSpacing(0) }},
		{"WithGridJitterNegative", func() { WithGridJitter(-0.1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tc.name)
				}
			}()
			tc.call()
		})
	}
}
