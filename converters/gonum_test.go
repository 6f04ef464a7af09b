package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algraphs/catalog"
	"github.com/katalvlaran/algraphs/converters"
	"github.com/katalvlaran/algraphs/utgraph"
)

// fixture builds a named built-in catalog graph.
func fixture(t *testing.T, name string) *utgraph.Graph {
	t.Helper()
	d, err := catalog.Lookup(name)
	require.NoError(t, err)
	g, err := d.Build()
	require.NoError(t, err)
	return g
}

func TestToGonum_KeepsIsolatedVertices(t *testing.T) {
	g := fixture(t, "network")

	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 12, gg.Nodes().Len())
	assert.Equal(t, 13, gg.Edges().Len())
	assert.NotNil(t, gg.Node(11))
	assert.Equal(t, 0, gg.From(11).Len())
	assert.True(t, gg.HasEdgeBetween(10, 4))
}

func TestRoundTrip_AllFixtures(t *testing.T) {
	for _, d := range catalog.Graphs() {
		g, err := d.Build()
		require.NoError(t, err)

		gg, err := converters.ToGonum(g)
		require.NoError(t, err)
		back, err := converters.FromGonum(gg)
		require.NoError(t, err, d.Name)

		assert.Equal(t, g.VertexCount(), back.VertexCount(), d.Name)
		assert.Equal(t, g.Edges(), back.Edges(), d.Name)
		assert.Equal(t, g.Matrix().Values(), back.Matrix().Values(), d.Name)
	}
}

func TestFromGonum_NonContiguousIDs(t *testing.T) {
	gg := simple.NewUndirectedGraph()
	gg.AddNode(simple.Node(0))
	gg.AddNode(simple.Node(2))

	_, err := converters.FromGonum(gg)
	require.ErrorIs(t, err, converters.ErrNonContiguousIDs)
}

func TestFromGonum_SelfLoop(t *testing.T) {
	gg := multi.NewUndirectedGraph()
	gg.AddNode(multi.Node(0))
	gg.AddNode(multi.Node(1))
	gg.SetLine(gg.NewLine(multi.Node(0), multi.Node(1)))
	gg.SetLine(gg.NewLine(multi.Node(1), multi.Node(1)))

	_, err := converters.FromGonum(gg)
	require.ErrorIs(t, err, utgraph.ErrSelfLoop)
}

func TestFromGonum_Empty(t *testing.T) {
	g, err := converters.FromGonum(simple.NewUndirectedGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestNilGraph(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.FromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.Laplacian(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestAdjacencyMatrix_MatchesConnected(t *testing.T) {
	g := fixture(t, "paw")

	a, err := converters.AdjacencyMatrix(g)
	require.NoError(t, err)
	n, _ := a.Dims()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ok, err := g.Connected(i, j)
			require.NoError(t, err)
			want := 0.0
			if ok {
				want = 1
			}
			assert.Equal(t, want, a.At(i, j), "A[%d][%d]", i, j)
		}
	}
}

// TestLaplacian_Properties: rows sum to zero, the diagonal is the degree, and
// the multiplicity of eigenvalue 0 equals the number of components.
func TestLaplacian_Properties(t *testing.T) {
	g := fixture(t, "network")

	l, err := converters.Laplacian(g)
	require.NoError(t, err)
	n, _ := l.Dims()
	for i := 0; i < n; i++ {
		d, _ := g.Degree(i)
		assert.Equal(t, float64(d), l.At(i, i))
		assert.Zero(t, floats.Sum(mat.Row(nil, i, l)), "row %d", i)
	}

	var eig mat.EigenSym
	require.True(t, eig.Factorize(l, false))
	zeros := 0
	for _, v := range eig.Values(nil) {
		if v < 1e-9 {
			zeros++
		}
	}
	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Len(t, topo.ConnectedComponents(gg), zeros)
	assert.Equal(t, 2, zeros) // {0..10} and {11}
}

func TestMatrices_EmptyGraph(t *testing.T) {
	g, err := utgraph.New(0)
	require.NoError(t, err)

	_, err = converters.AdjacencyMatrix(g)
	require.ErrorIs(t, err, converters.ErrEmptyGraph)
	_, err = converters.Laplacian(g)
	require.ErrorIs(t, err, converters.ErrEmptyGraph)
}
