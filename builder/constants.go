// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology:
// one hub plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// a 3-cycle rim plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest K_n; K_1 is a single vertex.
const MinCompleteNodes = 1

// MinPartition is the smallest side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest RandomSparse sample.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p in RandomSparse.
const MaxProbability = 1.0
