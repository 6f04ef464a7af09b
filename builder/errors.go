// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Graph-level failures (out-of-range vertex, duplicate edge) keep their
//     utgraph sentinel in the chain.
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, partition
// size) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a composition failure: a nil constructor or a
// negative At offset.
var ErrConstructFailed = errors.New("builder: construction failed")
