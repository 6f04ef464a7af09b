// Package symmat provides SymMat, a packed symmetric matrix that keeps only
// the upper-triangular half (i ≤ j) of an N×N relation in one flat slice.
//
// What:
//
//   - Storage of N·(N+1)/2 cells instead of N², laid out row by row:
//     row 0 holds cells (0,0)..(0,N-1), row 1 holds (1,1)..(1,N-1), and so on.
//   - Symmetry by construction: (i,j) and (j,i) resolve to the same slot.
//   - O(1) addressing through a computed offset, no pointer chasing.
//
// Offset formula:
//
//	line, col := min(i,j), max(i,j)
//	offset    := size*line + col - line*(line+1)/2
//
// The triangular term accounts for the cells (k,j), j<k, that every earlier
// row k < line does not store.
//
// Errors:
//
//	ErrBadSize    - negative size passed to a constructor.
//	ErrOutOfRange - Set called with an index outside [0, size).
//
// Reads (At, Ptr) never fail: an index outside the matrix yields ok == false.
//
// Complexity:
//
//	New/NewZero/Clone: O(N²) time and memory; Offset/At/Ptr/Set: O(1).
package symmat
