package dataset

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Distribution names one input shape and knows how to materialize it.
// Make never mutates shared state; rng may be nil for the ordered shapes.
type Distribution struct {
	Name string
	Make func(n int, rng *rand.Rand) []int
}

// Random returns n values drawn uniformly from [0, n].
// Complexity: O(n).
func Random(n int, rng *rand.Rand) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(n + 1)
	}

	return a
}

// Ascending returns 0..n-1, the already-sorted input.
// Complexity: O(n).
func Ascending(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}

	return a
}

// Descending returns n..1, the reverse-sorted input.
// Complexity: O(n).
func Descending(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = n - i
	}

	return a
}

// Distributions returns the benchmark's three input shapes in stable
// reporting order: random, ascending, descending.
func Distributions() []Distribution {
	return []Distribution{
		{Name: "random", Make: Random},
		{Name: "ascending", Make: func(n int, _ *rand.Rand) []int { return Ascending(n) }},
		{Name: "descending", Make: func(n int, _ *rand.Rand) []int { return Descending(n) }},
	}
}
