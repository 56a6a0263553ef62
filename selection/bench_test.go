package selection_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/adt/selection"
)

// benchInput builds a deterministic random slice of length n.
func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(42))
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(n)
	}

	return a
}

// BenchmarkSelectDeterministic measures median-of-medians selection of the
// middle rank on a 10k random slice.
func BenchmarkSelectDeterministic(b *testing.B) {
	const n = 10000
	base := benchInput(n)
	scratch := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, base)
		if _, err := selection.SelectDeterministic(scratch, n/2); err != nil {
			b.Fatalf("SelectDeterministic failed: %v", err)
		}
	}
}

// BenchmarkQuickselect measures randomized selection on the same workload.
func BenchmarkQuickselect(b *testing.B) {
	const n = 10000
	base := benchInput(n)
	scratch := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, base)
		if _, err := selection.Quickselect(scratch, n/2); err != nil {
			b.Fatalf("Quickselect failed: %v", err)
		}
	}
}

// BenchmarkQuickselect_Descending shows the randomized selector's behavior
// on the pattern that ruins fixed-pivot quickselect.
func BenchmarkQuickselect_Descending(b *testing.B) {
	const n = 10000
	base := make([]int, n)
	for i := range base {
		base[i] = n - i
	}
	scratch := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, base)
		if _, err := selection.Quickselect(scratch, n/2); err != nil {
			b.Fatalf("Quickselect failed: %v", err)
		}
	}
}
