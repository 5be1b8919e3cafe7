// Package netgen_test runs the full pipeline and asserts the network-level
// invariants: one graph per mode, gapless ids, valid endpoints, facility
// membership, determinism, and the error taxonomy.
package netgen_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/netgen"
)

// assertModeGraphInvariants checks the structural contract every derived
// ModeGraph must satisfy.
func assertModeGraphInvariants(t *testing.T, mg *graph.ModeGraph, facilities map[string]bool) {
	t.Helper()

	k := len(mg.Nodes)
	for i, n := range mg.Nodes {
		assert.Equal(t, i, n.ID, "node ids must be contiguous and 0-based")
		assert.Equal(t, graph.Intersection, n.NodeType)
	}
	seenPairs := make(map[[2]int]bool)
	for i, e := range mg.Edges {
		assert.Equal(t, i, e.ID, "edge ids must be sequential")
		assert.GreaterOrEqual(t, e.FromNode, 0)
		assert.Less(t, e.FromNode, k)
		assert.GreaterOrEqual(t, e.ToNode, 0)
		assert.Less(t, e.ToNode, k)
		assert.NotEqual(t, e.FromNode, e.ToNode, "self-loops are rejected at build time")
		assert.True(t, facilities[e.FacilityType], "facility %q not in the mode's allowed set", e.FacilityType)

		pair := [2]int{e.FromNode, e.ToNode}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		assert.False(t, seenPairs[pair], "duplicate unordered pair %v", pair)
		seenPairs[pair] = true
	}
}

func TestGenerate_NetworkInvariants(t *testing.T) {
	t.Parallel()

	modes := []string{graph.ModeBike, graph.ModeWalk, graph.ModeTransit, "Gondola"}
	net, info, err := netgen.GenerateWithInfo(60, modes, netgen.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, net.Graphs, len(modes), "exactly one ModeGraph per requested mode")

	assert.Equal(t, 60, info.RequestedPoints)
	assert.Positive(t, info.BaseNodes)
	assert.Positive(t, info.BaseEdges)

	allowed := graph.DefaultFacilityTypes()
	for _, mode := range modes {
		mg, ok := net.Graphs[mode]
		require.True(t, ok, "missing mode %q", mode)
		assert.Equal(t, mode, mg.Mode)

		facilities := make(map[string]bool)
		if types, known := allowed[mode]; known {
			for _, ft := range types {
				facilities[ft] = true
			}
		} else {
			facilities[graph.GenericFacilityType] = true
		}
		assertModeGraphInvariants(t, mg, facilities)
	}
}

// TestGenerate_Recentered derives without pruning so the mode graph carries
// the full recentered base graph, then checks the bounding-box center.
func TestGenerate_Recentered(t *testing.T) {
	t.Parallel()

	net, err := netgen.Generate(50, []string{graph.ModeWalk}, netgen.WithSeed(3), netgen.WithoutPruning())
	require.NoError(t, err)
	mg := net.Graphs[graph.ModeWalk]
	require.NotEmpty(t, mg.Nodes)

	minX, maxX := mg.Nodes[0].Position[0], mg.Nodes[0].Position[0]
	minY, maxY := mg.Nodes[0].Position[1], mg.Nodes[0].Position[1]
	for _, n := range mg.Nodes[1:] {
		if n.Position[0] < minX {
			minX = n.Position[0]
		}
		if n.Position[0] > maxX {
			maxX = n.Position[0]
		}
		if n.Position[1] < minY {
			minY = n.Position[1]
		}
		if n.Position[1] > maxY {
			maxY = n.Position[1]
		}
	}
	assert.InDelta(t, 0, (minX+maxX)/2, 1e-9)
	assert.InDelta(t, 0, (minY+maxY)/2, 1e-9)
}

// TestGenerate_Deterministic: equal seeds and options must yield networks
// with identical encodings.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := netgen.Generate(40, nil, netgen.WithSeed(21))
	require.NoError(t, err)
	b, err := netgen.Generate(40, nil, netgen.WithSeed(21))
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

// TestGenerate_ModeListHandling covers nil (defaults) and explicit empty.
func TestGenerate_ModeListHandling(t *testing.T) {
	t.Parallel()

	withDefaults, err := netgen.Generate(30, nil, netgen.WithSeed(5))
	require.NoError(t, err)
	assert.Contains(t, withDefaults.Graphs, graph.ModeBike)
	assert.Contains(t, withDefaults.Graphs, graph.ModeWalk)

	empty, err := netgen.Generate(30, []string{}, netgen.WithSeed(5))
	require.NoError(t, err)
	assert.Empty(t, empty.Graphs, "explicit empty mode list yields an empty network")
}

// TestGenerate_Errors covers the sentinel taxonomy.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := netgen.Generate(0, nil, netgen.WithSeed(1))
	assert.ErrorIs(t, err, netgen.ErrNonPositiveCount)

	// The sampler caps acceptance at n, so n < 4 can never reach the
	// Voronoi minimum — the geometric pipeline must abort.
	_, err = netgen.Generate(3, nil, netgen.WithSeed(1))
	assert.ErrorIs(t, err, netgen.ErrInsufficientPoints)
}

// TestGenerate_IndependentModeDerivations: with pruning active, two modes
// of the same run almost surely see different prunings; what matters is
// that each satisfies the invariants independently (shared base, no
// cross-mode coupling). Locked with a fixed seed.
func TestGenerate_IndependentModeDerivations(t *testing.T) {
	t.Parallel()

	net, err := netgen.Generate(80, []string{graph.ModeBike, graph.ModeCar}, netgen.WithSeed(17))
	require.NoError(t, err)

	bike := net.Graphs[graph.ModeBike]
	car := net.Graphs[graph.ModeCar]
	require.NotNil(t, bike)
	require.NotNil(t, car)

	// Both derive from one base but own their storage outright.
	if len(bike.Nodes) > 0 && len(car.Nodes) > 0 {
		bike.Nodes[0].Position[0] += 1000
		assert.NotEqual(t, bike.Nodes[0].Position, car.Nodes[0].Position,
			"mode graphs must not share node storage")
	}
}
