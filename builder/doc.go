// Package builder provides reusable "functional-options"-style constructors
// for common undirected topologies on top of utgraph. It centralizes index
// schemes, seeding and parameter validation so that fixtures stay DRY,
// testable and consistent.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        allocate N vertices, resolve options, run constructors.
//     – At:                shift one constructor onto a disjoint index range.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithIDScheme, WithOffset, WithSeed, WithRand.
//   - Index schemes (IDFn implementations):
//     – IdentityIDFn:      i → i.
//     – ReversedIDFn(n):   i → n-1-i.
//     – StrideIDFn(k):     i → i*k.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options and seed.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) for invalid build parameters;
//     utgraph sentinels (ErrVertexOutOfRange, ErrDuplicateEdge) pass through
//     when constructors overlap or overflow the graph.
//
// Example:
//
//	g, err := builder.BuildGraph(7, nil,
//		builder.Star(4),                // hub 0, leaves 1..3
//		builder.At(4, builder.Cycle(3)), // triangle on 4,5,6
//	)
package builder
