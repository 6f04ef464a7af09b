// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: construction (New, WithEdges, Build, Connect) and structural getters.
// Policy:
//   - Mutation happens only here; queries.go and path.go are read-only.
//   - Every mutation keeps the degree diagonal and the edge counter in step.

package utgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algraphs/symmat"
)

// New creates a graph with vertexCount isolated vertices.
//
// Implementation:
//   - Stage 1: reject vertexCount < 0 with ErrNegativeVertexCount.
//   - Stage 2: allocate a zero-filled packed matrix of that size.
//
// Behavior highlights:
//   - vertexCount == 0 is legal; such a graph answers every query on
//     vertices with ErrVertexOutOfRange and MaxDegree with ErrEmptyGraph.
//
// Complexity:
//   - Time O(N²), Space O(N²/2).
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, graphErrorf("New", ErrNegativeVertexCount, vertexCount)
	}
	adj, err := symmat.NewZero[int](vertexCount)
	if err != nil {
		return nil, graphErrorf("New", err, vertexCount)
	}

	return &Graph{adj: adj}, nil
}

// Build is the two-step factory New(vertexCount) followed by WithEdges(edges).
// Complexity: O(N² + E).
func Build(vertexCount int, edges []Edge) (*Graph, error) {
	g, err := New(vertexCount)
	if err != nil {
		return nil, err
	}

	return g.WithEdges(edges)
}

// WithEdges connects every pair of edges in the given order and returns g,
// so it chains directly after New.
//
// Implementation:
//   - Stage 1: reject a graph that already holds edges or was seeded before
//     (ErrEdgesApplied). The edge list is a one-time construction step.
//   - Stage 2: Connect each pair in order; stop at the first failure.
//   - Stage 3: mark the graph as seeded.
//
// Behavior highlights:
//   - On success EdgeCount() == len(edges).
//   - On failure the error names the offending edge index; the receiver then
//     holds the edges before it and should be discarded.
//
// Errors:
//   - ErrEdgesApplied, or any Connect error (ErrVertexOutOfRange, ErrSelfLoop,
//     ErrDuplicateEdge).
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) WithEdges(edges []Edge) (*Graph, error) {
	if g.seeded || g.edges > 0 {
		return nil, graphErrorf("WithEdges", ErrEdgesApplied)
	}
	for i, e := range edges {
		if err := g.Connect(e.U, e.V); err != nil {
			return nil, fmt.Errorf("Graph.WithEdges: edge #%d: %w", i, err)
		}
	}
	g.seeded = true

	return g, nil
}

// Connect adds the undirected edge {a, b}.
//
// Implementation:
//   - Stage 1: bounds-check both endpoints.
//   - Stage 2: reject a == b (ErrSelfLoop) and an existing edge (ErrDuplicateEdge).
//   - Stage 3: set cell(a,b), bump both degree cells and the edge counter.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Connect(a, b int) error {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return graphErrorf("Connect", ErrVertexOutOfRange, a, b)
	}
	if a == b {
		return graphErrorf("Connect", ErrSelfLoop, a, b)
	}
	if g.connected(a, b) {
		return graphErrorf("Connect", ErrDuplicateEdge, a, b)
	}
	if err := g.adj.Set(a, b, cellEdge); err != nil {
		return graphErrorf("Connect", err, a, b)
	}
	degA, _ := g.adj.Ptr(a, a)
	degB, _ := g.adj.Ptr(b, b)
	*degA++
	*degB++
	g.edges++

	return nil
}

// VertexCount returns N. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.adj.Size() }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Matrix exposes the packed adjacency/degree matrix for exporters.
// It aliases the graph's storage and must not be mutated.
func (g *Graph) Matrix() *symmat.SymMat[int] { return g.adj }

// Edges lists every edge once with U < V, ordered by (U, V) ascending.
// Complexity: O(N²).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	n := g.VertexCount()
	var a, b int
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			if g.connected(a, b) {
				out = append(out, Edge{U: a, V: b})
			}
		}
	}

	return out
}

// String renders the graph as "Graph(V=n, E=m) [u-v ...]".
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph(V=%d, E=%d) [", g.VertexCount(), g.edges)
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d-%d", e.U, e.V)
	}
	sb.WriteByte(']')

	return sb.String()
}

// hasVertex reports whether v is in [0, N).
func (g *Graph) hasVertex(v int) bool {
	return v >= 0 && v < g.adj.Size()
}

// connected reads the edge cell without bounds reporting. Callers validate
// both endpoints first; out-of-range cells read as "no edge".
func (g *Graph) connected(a, b int) bool {
	if a == b {
		return false
	}
	v, _ := g.adj.At(a, b)

	return v == cellEdge
}

// degree reads the cached degree of a validated vertex.
func (g *Graph) degree(a int) int {
	d, _ := g.adj.At(a, a)

	return d
}
