// Package converters provides two-way adapters between utgraph.Graph and
// gonum:
//   - gonum/graph/simple: ToGonum, FromGonum.
//   - gonum/mat: AdjacencyMatrix and Laplacian as *mat.SymDense.
//
// The converted graph gives access to gonum's algorithms; the tests use
// gonum/graph/topo as an independent reachability oracle for
// utgraph.Graph.Path.
//
// Vertex i of a utgraph.Graph is gonum node ID int64(i). Isolated vertices
// are kept as nodes without edges.
package converters
