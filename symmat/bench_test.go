// Package symmat_test provides benchmarks for packed symmetric matrix access.
package symmat_test

import (
	"testing"

	"github.com/katalvlaran/algraphs/symmat"
)

// BenchmarkAt measures random-ish reads across both triangles of a 512×512 matrix.
func BenchmarkAt(b *testing.B) {
	const n = 512
	m, _ := symmat.New(n, 1)
	b.ReportAllocs()
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		v, _ := m.At(i%n, (i*7)%n)
		sink += v
	}
	_ = sink
}

// BenchmarkPtrIncrement measures in-place updates through Ptr.
func BenchmarkPtrIncrement(b *testing.B) {
	const n = 512
	m, _ := symmat.NewZero[int](n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := m.Ptr(i%n, i%n)
		*p++
	}
}
