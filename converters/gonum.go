// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: conversion between utgraph.Graph and gonum graph/mat types.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algraphs/utgraph"
)

var (
	// ErrNilGraph is returned when a nil graph is passed in.
	ErrNilGraph = errors.New("converters: nil graph")

	// ErrNonContiguousIDs means the gonum node IDs are not exactly 0..n-1.
	ErrNonContiguousIDs = errors.New("converters: node IDs must be 0..n-1")

	// ErrEmptyGraph is returned for matrix views of a graph with no
	// vertices; gonum has no zero-size matrices.
	ErrEmptyGraph = errors.New("converters: graph has no vertices")
)

// ToGonum copies g into a new simple.UndirectedGraph. Every vertex becomes a
// node, including isolated ones.
// Complexity: O(N²) for the edge scan.
func ToGonum(g *utgraph.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilGraph)
	}

	out := simple.NewUndirectedGraph()
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}

	return out, nil
}

// FromGonum builds a utgraph.Graph from any undirected gonum graph whose node
// IDs are exactly 0..n-1.
//
// Implementation:
//   - Stage 1: collect and sort the node IDs; reject gaps and negatives.
//   - Stage 2: connect every pair reported by From, once per pair (u <= v).
//
// Errors:
//   - ErrNilGraph, ErrNonContiguousIDs.
//   - utgraph.ErrSelfLoop when the source graph has a loop.
func FromGonum(u graph.Undirected) (*utgraph.Graph, error) {
	if u == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilGraph)
	}

	nodes := graph.NodesOf(u.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)
	for i, id := range ids {
		if id != int64(i) {
			return nil, fmt.Errorf("FromGonum: node ID %d at rank %d: %w", id, i, ErrNonContiguousIDs)
		}
	}

	g, err := utgraph.New(len(ids))
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for _, id := range ids {
		for _, nb := range graph.NodesOf(u.From(id)) {
			if nb.ID() < id {
				continue // already connected from the smaller endpoint
			}
			if err = g.Connect(int(id), int(nb.ID())); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}

// AdjacencyMatrix returns the 0/1 adjacency matrix of g with a zero diagonal.
// Complexity: O(N²).
func AdjacencyMatrix(g *utgraph.Graph) (*mat.SymDense, error) {
	a, err := newSym("AdjacencyMatrix", g)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		a.SetSym(e.U, e.V, 1)
	}

	return a, nil
}

// Laplacian returns L = D - A, with D read from the cached degrees.
// Every row of L sums to zero.
// Complexity: O(N²).
func Laplacian(g *utgraph.Graph) (*mat.SymDense, error) {
	l, err := newSym("Laplacian", g)
	if err != nil {
		return nil, err
	}
	for v := 0; v < g.VertexCount(); v++ {
		d, _ := g.Degree(v)
		l.SetSym(v, v, float64(d))
	}
	for _, e := range g.Edges() {
		l.SetSym(e.U, e.V, -1)
	}

	return l, nil
}

// newSym allocates an N×N zero matrix for g.
func newSym(method string, g *utgraph.Graph) (*mat.SymDense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}

	return mat.NewSymDense(n, nil), nil
}
