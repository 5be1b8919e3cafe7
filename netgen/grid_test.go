package netgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/netgen"
)

// TestGenerateGrid_Exact2x2 pins the whole output for the smallest square
// lattice with jitter off: positions, ids, edge order, facility membership.
func TestGenerateGrid_Exact2x2(t *testing.T) {
	t.Parallel()

	net, err := netgen.GenerateGrid(4, []string{graph.ModeWalk},
		netgen.WithSeed(1), netgen.WithGridJitter(0))
	require.NoError(t, err)
	mg := net.Graphs[graph.ModeWalk]
	require.NotNil(t, mg)

	wantPositions := [][2]float64{{0, 0}, {5, 0}, {0, 5}, {5, 5}}
	require.Len(t, mg.Nodes, 4)
	for i, n := range mg.Nodes {
		assert.Equal(t, i, n.ID)
		assert.Equal(t, wantPositions[i], n.Position, "node %d", i)
		assert.Equal(t, graph.Intersection, n.NodeType)
	}

	wantPairs := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
	require.Len(t, mg.Edges, 4)
	walk := make(map[string]bool)
	for _, ft := range graph.DefaultFacilityTypes()[graph.ModeWalk] {
		walk[ft] = true
	}
	for i, e := range mg.Edges {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, wantPairs[i], [2]int{e.FromNode, e.ToNode}, "edge %d", i)
		assert.True(t, walk[e.FacilityType], "facility %q outside the Walk set", e.FacilityType)
	}
}

// TestGenerateGrid_Shapes covers the lattice arithmetic for partial last
// rows and the single-node degenerate case.
func TestGenerateGrid_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		wantEdges int
	}{
		{"SingleNode", 1, 0},
		{"PartialLastRow", 5, 5},  // 3 cols: 0-1 1-2 3-4 across, 0-3 1-4 down
		{"FullSquare", 9, 12},     // 3×3: 6 across + 6 down
		{"TallRemainder", 7, 8},   // 3 cols, rows of 3/3/1
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			net, err := netgen.GenerateGrid(tc.n, []string{graph.ModeBike}, netgen.WithSeed(2))
			require.NoError(t, err)
			mg := net.Graphs[graph.ModeBike]
			assert.Len(t, mg.Nodes, tc.n)
			assert.Len(t, mg.Edges, tc.wantEdges)
		})
	}
}

// TestGenerateGrid_JitterBounds: with the default jitter every node stays
// within ±DefaultGridJitter of its lattice slot on each axis.
func TestGenerateGrid_JitterBounds(t *testing.T) {
	t.Parallel()

	net, err := netgen.GenerateGrid(16, []string{graph.ModeWalk}, netgen.WithSeed(7))
	require.NoError(t, err)
	mg := net.Graphs[graph.ModeWalk]

	cols := 4
	for i, n := range mg.Nodes {
		slotX := float64(i%cols) * netgen.DefaultGridSpacing
		slotY := float64(i/cols) * netgen.DefaultGridSpacing
		assert.LessOrEqual(t, math.Abs(n.Position[0]-slotX), netgen.DefaultGridJitter, "node %d x", i)
		assert.LessOrEqual(t, math.Abs(n.Position[1]-slotY), netgen.DefaultGridJitter, "node %d y", i)
	}
}

// TestGenerateGrid_SharedLayout: all modes of one run see identical node
// geometry, in independent storage.
func TestGenerateGrid_SharedLayout(t *testing.T) {
	t.Parallel()

	net, err := netgen.GenerateGrid(9, []string{graph.ModeBike, graph.ModeWalk}, netgen.WithSeed(9))
	require.NoError(t, err)
	bike := net.Graphs[graph.ModeBike]
	walk := net.Graphs[graph.ModeWalk]

	require.Len(t, walk.Nodes, len(bike.Nodes))
	for i := range bike.Nodes {
		assert.Equal(t, bike.Nodes[i].Position, walk.Nodes[i].Position, "node %d", i)
	}

	bike.Nodes[0].Position[0] += 100
	assert.NotEqual(t, bike.Nodes[0].Position, walk.Nodes[0].Position,
		"mode graphs must not alias the layout slice")
}

func TestGenerateGrid_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := netgen.GenerateGrid(12, nil, netgen.WithSeed(4))
	require.NoError(t, err)
	b, err := netgen.GenerateGrid(12, nil, netgen.WithSeed(4))
	require.NoError(t, err)

	for mode, mga := range a.Graphs {
		mgb := b.Graphs[mode]
		require.NotNil(t, mgb)
		assert.Equal(t, mga.Nodes, mgb.Nodes, "mode %s nodes", mode)
		assert.Equal(t, mga.Edges, mgb.Edges, "mode %s edges", mode)
	}
}

func TestGenerateGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := netgen.GenerateGrid(0, nil)
	assert.ErrorIs(t, err, netgen.ErrNonPositiveCount)
}
