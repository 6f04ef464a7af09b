// Package catalog holds named graph fixtures and reads further graphs from
// YAML documents.
//
// The built-in fixtures are small graphs whose structural answers are known:
//
//	name      verts  edges  max degree  star
//	cherry    3      2      2           yes
//	banner    6      5      3           no
//	isolated  4      0      0           no
//	claw      4      3      3           yes
//	paw       4      4      3           no
//	network   12     13     4           no
//
// A catalog document lists graphs with their vertex count and edge pairs:
//
//	graphs:
//	  - name: cherry
//	    verts: 3
//	    edges: [[0, 2], [1, 2]]
//
// Load validates the document shape (unique non-empty names, non-negative
// vertex counts, edges given as pairs). Graph-level rules such as self-loops
// or out-of-range endpoints are checked when a GraphData is built.
package catalog
