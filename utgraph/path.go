// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: walk search between two vertices (iterative DFS with backtracking).
// Determinism:
//   - Neighbors are tried in ascending index order, so the same graph and
//     endpoints always produce the same walk.
// Notes:
//   - The result is a walk that exists, not a shortest one.

package utgraph

import "slices"

// Path searches for a walk from a to b and returns it as a vertex sequence
// starting with a and ending with b.
//
// Implementation:
//   - Stage 1: bounds-check a and b.
//   - Stage 2: a == b yields the zero-length walk [a].
//   - Stage 3: iterative DFS over an explicit stack (the current walk) and a
//     sorted blacklist of vertices that must not be entered again:
//     1. current = top of stack.
//     2. If current is adjacent to b, push b and return the stack.
//     3. Otherwise pick the first neighbor of current (ascending) that is not
//     blacklisted.
//     4. Found: push it and blacklist current, which now lies on the walk.
//     None: pop current and blacklist it, its subtree is exhausted.
//   - Stage 4: an empty stack means b is unreachable.
//
// Behavior highlights:
//   - Every vertex enters the blacklist at most once and each iteration
//     either pushes a fresh vertex or pops one, so the search terminates.
//   - Consecutive vertices of the returned walk are always adjacent.
//
// Returns:
//   - (walk, true, nil) when a walk exists.
//   - (nil, false, nil) when it does not.
//
// Errors:
//   - ErrVertexOutOfRange if a or b is outside [0, N).
//
// Complexity:
//   - Time O(N²·log N) worst case: at most 2N iterations, each an O(N)
//     neighborhood scan plus binary searches in the blacklist.
//   - Space O(N).
func (g *Graph) Path(a, b int) ([]int, bool, error) {
	if !g.hasVertex(a) || !g.hasVertex(b) {
		return nil, false, graphErrorf("Path", ErrVertexOutOfRange, a, b)
	}
	if a == b {
		return []int{a}, true, nil
	}

	stack := []int{a}
	var blacklist []int

	var (
		current, next int
		found         bool
	)
	for len(stack) > 0 {
		current = stack[len(stack)-1]

		if g.connected(current, b) {
			return append(stack, b), true, nil
		}

		found = false
		for _, next = range g.neighborhood(current) {
			if _, listed := slices.BinarySearch(blacklist, next); !listed {
				found = true
				break
			}
		}

		if found {
			stack = append(stack, next) // descend
		} else {
			stack = stack[:len(stack)-1] // backtrack
		}
		blacklist = insertSorted(blacklist, current)
	}

	return nil, false, nil
}

// Reachable reports whether some walk connects a and b, without keeping the
// walk. A vertex always reaches itself.
//
// Errors:
//   - ErrVertexOutOfRange if a or b is outside [0, N).
//
// Complexity: same as Path.
func (g *Graph) Reachable(a, b int) (bool, error) {
	_, ok, err := g.Path(a, b)

	return ok, err
}

// insertSorted adds v to the ascending slice s unless it is already present.
func insertSorted(s []int, v int) []int {
	i, present := slices.BinarySearch(s, v)
	if present {
		return s
	}

	return slices.Insert(s, i, v)
}
