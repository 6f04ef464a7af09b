// SPDX-License-Identifier: MIT
// Package utgraph: sentinel error set.
//
// Caller-facing sentinels wrap ErrContractViolation: they describe programming
// errors on the caller side, not operating conditions. Absence of a value is
// never an error in this package.

package utgraph

import (
	"errors"
	"fmt"
)

// ErrContractViolation is the error-kind tag shared by all sentinels of this
// package. errors.Is(err, ErrContractViolation) reports whether err stems from
// invalid input to a Graph.
var ErrContractViolation = errors.New("utgraph: caller contract violation")

var (
	// ErrNegativeVertexCount is returned by New when vertexCount < 0.
	ErrNegativeVertexCount = fmt.Errorf("utgraph: negative vertex count: %w", ErrContractViolation)

	// ErrVertexOutOfRange indicates a vertex index outside [0, N).
	ErrVertexOutOfRange = fmt.Errorf("utgraph: vertex out of range: %w", ErrContractViolation)

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = fmt.Errorf("utgraph: self-loop not allowed: %w", ErrContractViolation)

	// ErrDuplicateEdge indicates an attempt to add an edge that already exists.
	ErrDuplicateEdge = fmt.Errorf("utgraph: edge already exists: %w", ErrContractViolation)

	// ErrEmptyGraph is returned by MaxDegree on a graph with zero vertices.
	ErrEmptyGraph = fmt.Errorf("utgraph: graph has no vertices: %w", ErrContractViolation)

	// ErrEdgesApplied is returned by WithEdges when the graph already holds
	// edges or was seeded before.
	ErrEdgesApplied = fmt.Errorf("utgraph: edge list already applied: %w", ErrContractViolation)
)

// ErrInvariantViolated signals internal matrix corruption (degree cache out
// of step with the edge cells). It cannot occur through the public API and is
// deliberately not tagged as a caller contract violation.
var ErrInvariantViolated = errors.New("utgraph: internal invariant violated")

// graphErrorf wraps err with the Graph method name and its vertex arguments.
func graphErrorf(method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("Graph.%s: %w", method, err)
	case 1:
		return fmt.Errorf("Graph.%s(%d): %w", method, args[0], err)
	default:
		return fmt.Errorf("Graph.%s(%d,%d): %w", method, args[0], args[1], err)
	}
}
