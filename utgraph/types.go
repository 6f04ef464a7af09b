// SPDX-License-Identifier: MIT

package utgraph

import "github.com/katalvlaran/algraphs/symmat"

// Cell values of the off-diagonal adjacency entries.
const (
	cellNone = 0 // no edge between the two vertices
	cellEdge = 1 // edge present
)

// Edge is an unordered pair of distinct vertex indices. {U,V} and {V,U}
// denote the same edge.
type Edge struct {
	U int `yaml:"u" json:"u"`
	V int `yaml:"v" json:"v"`
}

// Graph is an undirected, unweighted simple graph on the vertices 0..N-1.
//
// The packed matrix adj carries both relations of the graph:
// adj(a,b) for a≠b is cellEdge or cellNone, adj(a,a) is deg(a).
// edges counts the unordered pairs with adj(a,b) == cellEdge.
// seeded records that WithEdges already ran on this instance.
//
// Graph performs no locking; see the package documentation.
type Graph struct {
	adj    *symmat.SymMat[int]
	edges  int
	seeded bool
}
