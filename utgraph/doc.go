// Package utgraph implements an undirected, unweighted, simple graph stored in
// a single packed symmetric matrix ("upper-triangular graph").
//
// Representation:
//
//   - Vertices are the indices 0..N-1; N is fixed by New.
//   - Off-diagonal cell (a,b), a≠b, is 1 when the edge {a,b} exists, else 0.
//   - Diagonal cell (a,a) caches deg(a), kept in step by Connect.
//   - The edge counter equals the number of off-diagonal cells set to 1.
//
// Quick ASCII example (the "claw", a star with hub 2):
//
//	[0]   [1]
//	  \   /
//	   [2]
//	    |
//	   [3]
//
//	g, _ := utgraph.Build(4, []utgraph.Edge{{0, 2}, {1, 2}, {3, 2}})
//	g.IsStar()      // true, nil
//	g.Path(0, 3)    // [0 2 3], true, nil
//
// Lifecycle:
//
//	Build once (New + WithEdges, or New + Connect...), then query. There is no
//	edge removal and no internal locking: a fully built Graph may be shared by
//	concurrent readers as long as nobody calls Connect.
//
// Queries:
//
//	Connected(a,b)  O(1)     Degree(a)     O(1)
//	MaxDegree()     O(N)     IsStar()      O(N)
//	Neighborhood(a) O(N)     Path(a,b)     O(N²·log N) worst case
//
// Errors:
//
//	Every caller-contract violation (self-loop, duplicate edge, vertex out of
//	range, max degree of an empty graph, re-seeding edges) is a sentinel that
//	wraps ErrContractViolation, so callers can classify with a single
//	errors.Is. Plain absence (Degree of an unknown vertex, no path) is reported
//	through an ok bool, never as an error.
package utgraph
