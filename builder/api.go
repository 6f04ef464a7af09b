// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(vertexCount, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go; this file documents them in one place.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Map local indices to vertices only through cfg.vertex.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *utgraph.Graph, cfg builderConfig) error

// BuildGraph creates a graph with vertexCount vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Allocating the graph: O(vertexCount²) cells.
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - utgraph.ErrNegativeVertexCount for vertexCount < 0.
//   - Wrapped constructor errors; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or utgraph
//     sentinels (ErrVertexOutOfRange, ErrDuplicateEdge, ...).
func BuildGraph(vertexCount int, bopts []BuilderOption, cons ...Constructor) (*utgraph.Graph, error) {
	g, err := utgraph.New(vertexCount)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// At rebinds con onto the index range starting at offset, so that several
// topologies can share one graph without overlapping. Offsets accumulate:
// At(2, At(3, Path(2))) places the path on vertices 5 and 6.
//
// A negative offset is reported by the returned Constructor as
// ErrConstructFailed; At itself never panics.
func At(offset int, con Constructor) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("At(%d): nil constructor: %w", offset, ErrConstructFailed)
		}
		if offset < 0 {
			return fmt.Errorf("At(%d): negative offset: %w", offset, ErrConstructFailed)
		}
		cfg.offset += offset

		return con(g, cfg)
	}
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. Local vertex index i lands on
// graph vertex cfg.vertex(i) = offset + idFn(i). Edges are emitted in a
// stable, documented order.
//
// Path builds a simple path P_n (n ≥ 2): i—i+1.
//func Path(n int) Constructor
//
// Cycle builds C_n (n ≥ 3): Path plus the closing edge n-1—0.
//func Cycle(n int) Constructor
//
// Star builds K_{1,n-1} (n ≥ 2) with the hub on local index 0.
//func Star(n int) Constructor
//
// Wheel builds C_{n-1} plus a hub on local index n-1 (n ≥ 4).
//func Wheel(n int) Constructor
//
// Complete builds K_n (n ≥ 1).
//func Complete(n int) Constructor
//
// CompleteBipartite builds K_{n1,n2}: left part 0..n1-1, right part n1..n1+n2-1.
//func CompleteBipartite(n1, n2 int) Constructor
//
// Grid builds a rows×cols 4-neighborhood lattice in row-major order.
//func Grid(rows, cols int) Constructor
//
// RandomSparse builds an Erdős–Rényi G(n,p) sample; rng required for 0<p<1.
//func RandomSparse(n int, p float64) Constructor
