// Package algraphs is a small in-memory toolkit for undirected, unweighted
// graphs stored in a packed symmetric matrix.
//
// What is inside?
//
//	• A generic packed upper-triangular matrix (symmat)
//	• A simple graph on vertices 0..N-1 with cached degrees (utgraph):
//	  degree, maximum degree, star test, neighborhood, walk search
//	• Deterministic topology constructors (builder)
//	• Named fixtures and a YAML catalog format (catalog)
//	• Adapters to gonum graphs and matrices (converters)
//	• Median-of-N timing of function calls (benchmark)
//	• A command-line front end (cmd/algraphs)
//
// Under the hood, everything is organized under these subpackages:
//
//	symmat      SymMat[T]: N(N+1)/2 cells, bounds-checked access
//	utgraph     Graph: Connect, Degree, MaxDegree, IsStar, Neighborhood, Path
//	builder     BuildGraph + Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse …
//	catalog     cherry, banner, isolated, claw, paw, network; YAML Load
//	converters  ToGonum, FromGonum, AdjacencyMatrix, Laplacian
//	benchmark   ExecTime, MedExecTime
//
// Quick ASCII example (the claw, a star with hub 2):
//
//	[0]   [1]
//	   \ /
//	   [2]
//	    |
//	   [3]
//
// Graphs perform no locking: build them fully, then share them for reads.
//
//	go install github.com/katalvlaran/algraphs/cmd/algraphs@latest
package algraphs
