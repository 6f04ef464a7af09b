// Package utgraph_test contains shared fixtures for the utgraph tests.
package utgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algraphs/utgraph"
)

// Fixture edge lists (vertex counts next to each).
//
//	cherry (3):   [0]-[2]-[1]
//	claw (4):     hub 2 with leaves 0, 1, 3
//	network (12): see networkEdges, vertex 11 isolated
var (
	cherryEdges = []utgraph.Edge{{0, 2}, {1, 2}}
	clawEdges   = []utgraph.Edge{{0, 2}, {1, 2}, {3, 2}}

	//     [0]     _[5]--[6]--[7]   [11]
	//    / | \   /      / \
	// [1] [2] [3]     [8] [9]
	//       \ /         \ /
	//       [4]--------[10]
	networkEdges = []utgraph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {2, 3}, {3, 4}, {3, 5}, {5, 6},
		{6, 7}, {6, 8}, {6, 9}, {8, 10}, {9, 10}, {10, 4},
	}
)

const networkVerts = 12

// mustBuild builds a graph or fails the test immediately.
func mustBuild(t testing.TB, n int, edges []utgraph.Edge) *utgraph.Graph {
	t.Helper()
	g, err := utgraph.Build(n, edges)
	require.NoError(t, err)

	return g
}

// requireWalk asserts that walk starts at from, ends at to, and that every
// consecutive pair is an edge of g.
func requireWalk(t *testing.T, g *utgraph.Graph, walk []int, from, to int) {
	t.Helper()
	require.NotEmpty(t, walk)
	require.Equal(t, from, walk[0], "walk must start at %d: %v", from, walk)
	require.Equal(t, to, walk[len(walk)-1], "walk must end at %d: %v", to, walk)
	for i := 1; i < len(walk); i++ {
		ok, err := g.Connected(walk[i-1], walk[i])
		require.NoError(t, err)
		require.True(t, ok, "step %d-%d of %v is not an edge", walk[i-1], walk[i], walk)
	}
}
