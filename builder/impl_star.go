// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is local index 0; leaves are local indices 1..n-1.
//   - Emits spokes in stable order hub—leaf[i] by increasing leaf index.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(1) extra.
//
// The result satisfies utgraph.Graph.IsStar when the graph holds exactly
// these n vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// starHub is the local index of the hub vertex.
const starHub = 0

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		var (
			i   int
			err error
		)
		for i = 1; i < n; i++ {
			if err = connectLocal(g, cfg, MethodStar, starHub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
