// SPDX-License-Identifier: MIT
// Package: algraphs/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn   = IdentityIDFn (local index i → vertex i)
//   • offset = 0
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors, so At can shift a copy.
type builderConfig struct {
	// Vertex index strategy: local index -> graph vertex (before offset).
	idFn IDFn
	// Added to every mapped index.
	offset int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   IdentityIDFn,
		offset: 0,
		rng:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex maps a constructor-local index onto a graph vertex.
func (c builderConfig) vertex(i int) int {
	return c.offset + c.idFn(i)
}
