// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algraphs/utgraph"
)

// GraphData describes one named graph: its vertex count and edge list.
// In YAML the edges are written as two-element sequences, see Load.
type GraphData struct {
	Name  string
	Verts int
	Edges []utgraph.Edge
}

// Build constructs the graph described by d.
//
// Errors:
//   - utgraph sentinels (ErrNegativeVertexCount, ErrVertexOutOfRange,
//     ErrSelfLoop, ErrDuplicateEdge), prefixed with the graph name.
func (d GraphData) Build() (*utgraph.Graph, error) {
	g, err := utgraph.Build(d.Verts, d.Edges)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", d.Name, err)
	}

	return g, nil
}

// clone returns a copy of d whose Edges can be modified freely.
func (d GraphData) clone() GraphData {
	d.Edges = slices.Clone(d.Edges)
	return d
}

// builtin lists the fixtures in a fixed order.
var builtin = []GraphData{
	{
		// [0]-[2]-[1]
		Name:  "cherry",
		Verts: 3,
		Edges: []utgraph.Edge{{U: 0, V: 2}, {U: 1, V: 2}},
	},
	{
		// The square 0-2-4-3 with pendant 1 on vertex 0, plus the isolated vertex 5.
		Name:  "banner",
		Verts: 6,
		Edges: []utgraph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 2, V: 4}, {U: 3, V: 4}},
	},
	{
		Name:  "isolated",
		Verts: 4,
		Edges: nil,
	},
	{
		// Hub 2 with leaves 0, 1, 3.
		Name:  "claw",
		Verts: 4,
		Edges: []utgraph.Edge{{U: 0, V: 2}, {U: 1, V: 2}, {U: 3, V: 2}},
	},
	{
		// The claw plus the edge 0-1.
		Name:  "paw",
		Verts: 4,
		Edges: []utgraph.Edge{{U: 0, V: 2}, {U: 1, V: 2}, {U: 3, V: 2}, {U: 0, V: 1}},
	},
	{
		//     [0]     _[5]--[6]--[7]   [11]
		//    / | \   /      / \
		// [1] [2] [3]     [8] [9]
		//       \ /         \ /
		//       [4]--------[10]
		Name:  "network",
		Verts: 12,
		Edges: []utgraph.Edge{
			{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 3, V: 5}, {U: 5, V: 6},
			{U: 6, V: 7}, {U: 6, V: 8}, {U: 6, V: 9}, {U: 8, V: 10}, {U: 9, V: 10}, {U: 10, V: 4},
		},
	},
}

// Graphs returns copies of the built-in fixtures in catalog order.
func Graphs() []GraphData {
	out := make([]GraphData, len(builtin))
	for i, d := range builtin {
		out[i] = d.clone()
	}

	return out
}

// Lookup finds a built-in fixture by name.
func Lookup(name string) (GraphData, error) {
	return find(builtin, name)
}

// Find looks name up in graphs, which is typically the result of Load.
func Find(graphs []GraphData, name string) (GraphData, error) {
	return find(graphs, name)
}

func find(graphs []GraphData, name string) (GraphData, error) {
	i := slices.IndexFunc(graphs, func(d GraphData) bool { return d.Name == name })
	if i < 0 {
		return GraphData{}, fmt.Errorf("%q: %w", name, ErrUnknownGraph)
	}

	return graphs[i].clone(), nil
}

// Names returns the names of graphs in order.
func Names(graphs []GraphData) []string {
	out := make([]string, len(graphs))
	for i, d := range graphs {
		out[i] = d.Name
	}

	return out
}
