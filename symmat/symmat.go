// SPDX-License-Identifier: MIT

package symmat

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtPad      = "   "
)

// SymMat is a packed symmetric size×size matrix of T.
//   - size is fixed at construction.
//   - values holds size*(size+1)/2 cells in row-major upper-triangular order.
type SymMat[T any] struct {
	size   int // logical dimension N (>= 0)
	values []T // packed upper triangle, len == triangular(size)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SymMat[int])(nil)

// triangular returns the sum of integers 1..n, i.e. n*(n+1)/2.
func triangular(n int) int {
	return n * (n + 1) / 2
}

// New creates a size×size packed symmetric matrix with every cell set to seed.
// MAIN DESCRIPTION:
//   - Public constructor; a zero size is legal and yields an empty matrix.
//
// Implementation:
//   - Stage 1: validate size >= 0; else ErrBadSize.
//   - Stage 2: allocate triangular(size) cells.
//   - Stage 3: fill every cell with seed.
//
// Returns:
//   - *SymMat[T]: newly allocated matrix.
//
// Errors:
//   - ErrBadSize (negative size).
//
// Complexity:
//   - Time O(N²), Space O(N²/2).
func New[T any](size int, seed T) (*SymMat[T], error) {
	m, err := NewZero[T](size)
	if err != nil {
		return nil, err
	}
	for k := range m.values {
		m.values[k] = seed
	}

	return m, nil
}

// NewZero creates a size×size packed symmetric matrix holding T's zero value.
// Complexity: O(N²) time and memory.
func NewZero[T any](size int) (*SymMat[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("symmat: New(%d): %w", size, ErrBadSize)
	}

	// make() zero-fills the buffer, no explicit seeding needed.
	return &SymMat[T]{size: size, values: make([]T, triangular(size))}, nil
}

// Size returns the logical dimension N of the matrix.
func (m *SymMat[T]) Size() int { return m.size }

// Len returns the number of stored cells, N*(N+1)/2.
func (m *SymMat[T]) Len() int { return len(m.values) }

// Offset computes the packed slot of cell (i, j).
// MAIN DESCRIPTION:
//   - Normalizes (i, j) to (line, col) with line <= col, then maps it onto
//     the flat upper-triangular buffer.
//
// Implementation:
//   - Stage 1: reject i or j outside [0, size).
//   - Stage 2: line, col = min(i,j), max(i,j).
//   - Stage 3: offset = size*line + col - triangular(line).
//
// Returns:
//   - (offset, true) for a valid cell; (0, false) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Both indices are bounds-checked individually. Checking only the final
//     offset against Len() would let (0, size) alias cell (1, 1).
func (m *SymMat[T]) Offset(i, j int) (int, bool) {
	if i < 0 || j < 0 || i >= m.size || j >= m.size {
		return 0, false
	}
	line, col := i, j
	if line > col {
		line, col = col, line
	}

	return m.size*line + col - triangular(line), true
}

// At returns the value stored at (i, j); ok is false when either index is
// outside the matrix.
// Complexity: O(1).
func (m *SymMat[T]) At(i, j int) (v T, ok bool) {
	off, ok := m.Offset(i, j)
	if !ok {
		return v, false
	}

	return m.values[off], true
}

// Ptr returns a pointer to the slot of (i, j) for in-place updates.
// The pointer stays valid for the lifetime of the matrix (the buffer never
// grows). ok is false when either index is outside the matrix.
// Complexity: O(1).
func (m *SymMat[T]) Ptr(i, j int) (*T, bool) {
	off, ok := m.Offset(i, j)
	if !ok {
		return nil, false
	}

	return &m.values[off], true
}

// Set writes v at (i, j), which is also (j, i).
// Returns ErrOutOfRange, wrapped with coordinates, when either index is invalid.
// Complexity: O(1).
func (m *SymMat[T]) Set(i, j int, v T) error {
	off, ok := m.Offset(i, j)
	if !ok {
		return symErrorf("Set", i, j, ErrOutOfRange)
	}
	m.values[off] = v

	return nil
}

// Values exposes the packed backing storage in physical order:
// (0,0), (0,1) .. (0,N-1), (1,1) .. (1,N-1), .., (N-1,N-1).
// The slice aliases the matrix; callers must treat it as read-only.
// Complexity: O(1).
func (m *SymMat[T]) Values() []T {
	return m.values
}

// Clone returns a deep copy with independent storage.
// Complexity: O(N²).
func (m *SymMat[T]) Clone() *SymMat[T] {
	cp := make([]T, len(m.values))
	copy(cp, m.values)

	return &SymMat[T]{size: m.size, values: cp}
}

// String renders the stored upper triangle, one row per line. Cells below
// the diagonal are left blank since they are never stored.
// Complexity: O(N²).
func (m *SymMat[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.size; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < i; j++ {
			sb.WriteString(_fmtPad)
		}
		for j = i; j < m.size; j++ {
			off, _ := m.Offset(i, j)
			fmt.Fprintf(&sb, "%v", m.values[off])
			if j < m.size-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
