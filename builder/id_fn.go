// Package builder provides the index schemes that place constructor-local
// indices onto graph vertices.
package builder

import (
	"fmt"
)

// IDFn maps a zero-based local index onto a graph vertex index (before the
// configured offset is added). It must be a pure, deterministic function.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) int

// IdentityIDFn returns idx unchanged, e.g. 0→0, 42→42.
// Complexity: O(1). Never panics.
func IdentityIDFn(idx int) int {
	return idx
}

// ReversedIDFn returns a scheme that mirrors the range [0,n): 0→n-1, n-1→0.
// Useful for placing a Star hub on the last vertex instead of the first.
// Panics if n < 1 at construction time, or if idx is outside [0,n).
func ReversedIDFn(n int) IDFn {
	if n < 1 {
		panic(fmt.Sprintf("ReversedIDFn: n must be ≥ 1, got %d", n))
	}
	return func(idx int) int {
		if idx < 0 || idx >= n {
			panic(fmt.Sprintf("ReversedIDFn(%d): idx must be in [0,%d), got %d", n, n, idx))
		}
		return n - 1 - idx
	}
}

// StrideIDFn returns a scheme that spreads indices apart: idx→idx*stride.
// stride=2 lands a constructor on the even vertices only.
// Panics if stride < 1.
func StrideIDFn(stride int) IDFn {
	if stride < 1 {
		panic(fmt.Sprintf("StrideIDFn: stride must be ≥ 1, got %d", stride))
	}
	return func(idx int) int {
		return idx * stride
	}
}

// WithReversedIDs sets the ID scheme to ReversedIDFn(n).
// Complexity: O(1).
func WithReversedIDs(n int) BuilderOption {
	return WithIDScheme(ReversedIDFn(n))
}

// WithStride sets the ID scheme to StrideIDFn(stride).
// Complexity: O(1).
func WithStride(stride int) BuilderOption {
	return WithIDScheme(StrideIDFn(stride))
}

// WithIdentityIDs resets the ID scheme to IdentityIDFn.
// Complexity: O(1).
func WithIdentityIDs() BuilderOption {
	return WithIDScheme(IdentityIDFn)
}
