// Package symmat_test contains unit tests for the packed symmetric matrix.
package symmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algraphs/symmat"
)

// TestNewBadSize ensures constructors reject negative sizes.
func TestNewBadSize(t *testing.T) {
	_, err := symmat.New(-1, 0)
	require.ErrorIs(t, err, symmat.ErrBadSize)

	_, err = symmat.NewZero[string](-3)
	require.ErrorIs(t, err, symmat.ErrBadSize)
}

// TestEmptyMatrix verifies that size 0 is legal and every access is absent.
func TestEmptyMatrix(t *testing.T) {
	m, err := symmat.NewZero[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.Values())

	_, ok := m.At(0, 0)
	require.False(t, ok)
	require.ErrorIs(t, m.Set(0, 0, 1), symmat.ErrOutOfRange)
	require.Equal(t, "", m.String())
}

// TestLenIsTriangular checks the packed slot count N*(N+1)/2.
func TestLenIsTriangular(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 12; n++ {
		m, err := symmat.New(n, 7)
		require.NoError(t, err)
		require.Equal(t, n*(n+1)/2, m.Len(), "n=%d", n)
		for _, v := range m.Values() {
			require.Equal(t, 7, v) // every slot seeded
		}
	}
}

// TestOffsetLayout pins the physical row-major upper-triangular order.
func TestOffsetLayout(t *testing.T) {
	m, err := symmat.NewZero[int](4)
	require.NoError(t, err)

	// Walking (i, j>=i) row by row must produce consecutive offsets 0..9.
	want := 0
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			off, ok := m.Offset(i, j)
			require.True(t, ok)
			require.Equal(t, want, off, "(%d,%d)", i, j)
			want++
		}
	}
	require.Equal(t, m.Len(), want)
}

// TestSymmetry verifies that (i,j) and (j,i) share one slot.
func TestSymmetry(t *testing.T) {
	t.Parallel()

	const n = 6
	m, err := symmat.NewZero[int](n)
	require.NoError(t, err)

	// Write distinct values only through the lower triangle.
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			require.NoError(t, m.Set(i, j, i*10+j))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, ok := m.At(i, j)
			require.True(t, ok)
			b, ok := m.At(j, i)
			require.True(t, ok)
			require.Equal(t, a, b, "(%d,%d)", i, j)

			oa, _ := m.Offset(i, j)
			ob, _ := m.Offset(j, i)
			require.Equal(t, oa, ob)
		}
	}
}

// TestOutOfRange checks absent reads and failing writes for every bad index shape.
func TestOutOfRange(t *testing.T) {
	m, err := symmat.New(3, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		i, j int
	}{
		{"row too large", 3, 0},
		{"col too large", 0, 3},
		{"both too large", 5, 9},
		{"negative row", -1, 1},
		{"negative col", 1, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := m.At(tc.i, tc.j)
			require.False(t, ok)

			p, ok := m.Ptr(tc.i, tc.j)
			require.False(t, ok)
			require.Nil(t, p)

			require.ErrorIs(t, m.Set(tc.i, tc.j, 2), symmat.ErrOutOfRange)
		})
	}
}

// TestNoAliasingPastRowEnd guards against (0,size) resolving to (1,1).
func TestNoAliasingPastRowEnd(t *testing.T) {
	m, err := symmat.NewZero[int](4)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 42))

	_, ok := m.At(0, 4)
	require.False(t, ok)
	require.ErrorIs(t, m.Set(0, 4, 9), symmat.ErrOutOfRange)

	v, _ := m.At(1, 1)
	require.Equal(t, 42, v) // untouched
}

// TestPtrInPlaceUpdate verifies the mutable accessor writes through to storage.
func TestPtrInPlaceUpdate(t *testing.T) {
	m, err := symmat.NewZero[int](3)
	require.NoError(t, err)

	p, ok := m.Ptr(2, 0)
	require.True(t, ok)
	*p += 5
	*p++

	v, ok := m.At(0, 2)
	require.True(t, ok)
	require.Equal(t, 6, v)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := symmat.NewZero[int](2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 3))

	orig, _ := m.At(1, 0)
	require.Equal(t, 1, orig)
	cl, _ := c.At(1, 0)
	require.Equal(t, 3, cl)
	require.Equal(t, m.Size(), c.Size())
}

// TestStringOutput checks the upper-triangle rendering.
func TestStringOutput(t *testing.T) {
	m, err := symmat.NewZero[int](3)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(0, 2, 3)
	_ = m.Set(1, 1, 4)
	_ = m.Set(1, 2, 5)
	_ = m.Set(2, 2, 6)

	expected := "[1, 2, 3]\n[   4, 5]\n[      6]\n"
	require.Equal(t, expected, m.String())
}
