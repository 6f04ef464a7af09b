// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//     p=0 and p=1 are deterministic and need no RNG.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i), one Float64 draw per pair.
//   - Identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}

		switch p {
		case MinProbability:
			// Empty sample.
			return nil
		case MaxProbability:
			return connectAllPairs(g, cfg, MethodRandomSparse, 0, n)
		}

		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		var (
			i, j int
			err  error
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				// Float64 ∈ [0,1), so p=0 never fires and p=1 always would.
				if cfg.rng.Float64() < p {
					if err = connectLocal(g, cfg, MethodRandomSparse, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
