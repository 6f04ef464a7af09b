// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges in stable order i—(i+1) for i=0..n-2.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/algraphs/utgraph"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		return connectChain(g, cfg, MethodPath, 0, n-1)
	}
}
