package kahan_test

import (
	"testing"

	"github.com/katalvlaran/tinflex/kahan"
)

// BenchmarkSum_Add measures the per-term cost of compensated accumulation.
func BenchmarkSum_Add(b *testing.B) {
	var s kahan.Sum
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add(1e-3)
	}
	_ = s.Total()
}
