// Package dataset provides deterministic input generators for the
// selection benchmark: the three classic distributions that make or break
// pivot strategies.
//
// What:
//
//   - Random(n, rng):  n values drawn uniformly from [0, n]
//   - Ascending(n):    0, 1, ..., n-1 (already sorted)
//   - Descending(n):   n, n-1, ..., 1 (reverse sorted)
//   - Distributions(): the three above as named Distribution values, in a
//     stable order for reporting
//   - NewRand(seed):   a seeded *rand.Rand; seed == 0 means the fixed
//     default seed, so benchmarks are reproducible by default
//
// Why:
//   - Sorted and reverse-sorted inputs are the classic adversaries of
//     naive pivot choices; the random distribution is the baseline. A
//     benchmark over all three shows where guaranteed pivot quality
//     actually pays.
//
// No global rand is touched; every generator that needs randomness takes
// an explicit *rand.Rand.
package dataset
