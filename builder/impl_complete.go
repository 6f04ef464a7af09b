// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 adds no edges.
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/algraphs/utgraph"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		return connectAllPairs(g, cfg, MethodComplete, 0, n)
	}
}
