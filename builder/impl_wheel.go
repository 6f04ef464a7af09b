// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the rim using Cycle(n-1) on local indices 0..n-2.
//   • Hub is local index n-1; spokes are emitted by increasing rim index.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n-1) rim edges + O(n-1) spokes ≈ O(n).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// Outer ring first, on the same cfg so indices line up with the spokes.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := connectLocal(g, cfg, MethodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
