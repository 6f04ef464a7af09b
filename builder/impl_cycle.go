// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra (iter vars only).

package builder

import (
	"github.com/katalvlaran/algraphs/utgraph"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		// Open chain 0—1—…—(n-1), then close the ring.
		if err := connectChain(g, cfg, MethodCycle, 0, n-1); err != nil {
			return err
		}

		return connectLocal(g, cfg, MethodCycle, n-1, 0)
	}
}
