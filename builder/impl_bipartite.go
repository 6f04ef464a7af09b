// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part is local 0..n1-1, right part is local n1..n1+n2-1.
//   • Deterministic edge emission order: i asc over left, inner j asc over right.
//
// Complexity:
//   • Time: O(n1*n2) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/algraphs/utgraph"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		var (
			i, j int
			err  error
		)
		for i = 0; i < n1; i++ {
			for j = n1; j < n1+n2; j++ {
				if err = connectLocal(g, cfg, MethodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
