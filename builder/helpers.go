// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/algraphs/utgraph"
)

// connectLocal connects the vertices mapped from local indices i and j.
// The utgraph sentinel stays in the chain, e.g. "Cycle: Connect(4,0): ...".
//
// Complexity: O(1).
func connectLocal(g *utgraph.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.vertex(i), cfg.vertex(j)
	if err := g.Connect(u, v); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// connectChain connects local indices first..last in sequence (first—first+1—...).
//
// Complexity: O(last-first) time, O(1) extra space.
func connectChain(g *utgraph.Graph, cfg builderConfig, method string, first, last int) error {
	var (
		i   int
		err error
	)
	for i = first; i < last; i++ {
		if err = connectLocal(g, cfg, method, i, i+1); err != nil {
			return err
		}
	}

	return nil
}

// connectAllPairs connects every unordered pair of local indices in [first,last)
// in lexicographic (i,j), i<j order.
//
// Complexity: O(m²) time where m = last-first, O(1) extra space.
func connectAllPairs(g *utgraph.Graph, cfg builderConfig, method string, first, last int) error {
	var (
		i, j int
		err  error
	)
	for i = first; i < last; i++ {
		for j = i + 1; j < last; j++ {
			if err = connectLocal(g, cfg, method, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
