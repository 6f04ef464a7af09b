// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: read-only structural queries over the packed matrix.
// Determinism:
//   - Vertex scans always run in ascending index order.

package utgraph

// Connected reports whether the edge {a, b} exists. It is false when a == b.
//
// Errors:
//   - ErrVertexOutOfRange if a or b is outside [0, N).
//
// Complexity: O(1).
func (g *Graph) Connected(a, b int) (bool, error) {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return false, graphErrorf("Connected", ErrVertexOutOfRange, a, b)
	}

	return g.connected(a, b), nil
}

// Degree returns the number of edges incident to a; ok is false when a is
// not a vertex of the graph.
// Complexity: O(1), read from the diagonal cache.
func (g *Graph) Degree(a int) (deg int, ok bool) {
	return g.adj.At(a, a)
}

// MaxDegree returns the largest vertex degree.
//
// Errors:
//   - ErrEmptyGraph when the graph has no vertices (no maximum exists).
//
// Complexity: O(N).
func (g *Graph) MaxDegree() (int, error) {
	n := g.VertexCount()
	if n == 0 {
		return 0, graphErrorf("MaxDegree", ErrEmptyGraph)
	}
	best := g.degree(0)
	for v := 1; v < n; v++ {
		if d := g.degree(v); d > best {
			best = d
		}
	}

	return best, nil
}

// IsStar reports whether the graph is a star: one hub adjacent to every other
// vertex, each of which has degree exactly 1.
//
// Implementation:
//   - Stage 1: a star on N vertices has exactly N-1 edges; any other edge
//     count answers false immediately.
//   - Stage 2: scan vertices in ascending order. The first vertex of degree
//     N-1 is the hub and the answer is true. With N-1 edges all incident to
//     the hub, every remaining vertex is a leaf, so the rest is not scanned.
//   - Stage 3: a vertex before the hub whose degree is not 1 disproves the
//     star.
//
// Behavior highlights:
//   - N == 0 is never a star (edge count 0 ≠ -1).
//   - N == 1 is a star: zero edges, and vertex 0 has degree N-1 == 0.
//
// Errors:
//   - ErrInvariantViolated if the scan ends without a hub, which the edge
//     count and degree invariants rule out.
//
// Complexity: O(N).
func (g *Graph) IsStar() (bool, error) {
	n := g.VertexCount()
	hubDeg := n - 1
	if g.edges != hubDeg {
		return false, nil
	}

	var d int
	for v := 0; v < n; v++ {
		d = g.degree(v)
		if d == hubDeg {
			return true, nil
		}
		if d != 1 {
			return false, nil
		}
	}

	return false, graphErrorf("IsStar", ErrInvariantViolated)
}

// Neighborhood returns every b with Connected(a, b), strictly ascending.
//
// Errors:
//   - ErrVertexOutOfRange if a is outside [0, N).
//
// Complexity: O(N) time, O(deg(a)) space.
func (g *Graph) Neighborhood(a int) ([]int, error) {
	if !g.hasVertex(a) {
		return nil, graphErrorf("Neighborhood", ErrVertexOutOfRange, a)
	}

	return g.neighborhood(a), nil
}

// neighborhood collects the ascending neighbor list of a validated vertex.
func (g *Graph) neighborhood(a int) []int {
	out := make([]int, 0, g.degree(a))
	n := g.VertexCount()
	for b := 0; b < n; b++ {
		if g.connected(a, b) {
			out = append(out, b)
		}
	}

	return out
}
