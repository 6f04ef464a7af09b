// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is local index r*cols + c (row-major).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *utgraph.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		var (
			r, c, cell int
			err        error
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				cell = r*cols + c
				if c+1 < cols {
					if err = connectLocal(g, cfg, MethodGrid, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connectLocal(g, cfg, MethodGrid, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
