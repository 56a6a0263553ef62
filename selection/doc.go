// Package selection implements order-statistic selection: finding the k-th
// smallest element of a slice (0-based) without fully sorting it.
//
// What:
//
//   - Partition: the Lomuto partition primitive. Rearranges a subrange in
//     place around a chosen pivot so that strictly smaller elements precede
//     the pivot's final slot and all others follow, returning that slot.
//   - MedianOfMedians: pivot selection with a quality guarantee. The
//     classical 5-element-group reduction, run iteratively: replace each
//     group of 5 candidates by the index of its median value, repeat until
//     ≤5 candidates remain, then take their true median. The returned
//     pivot has at least ~30% of the range on each side of it.
//   - SelectDeterministic(a, k): worst-case O(n) selection. Shrinks the
//     active [low, high] window around median-of-medians pivots until the
//     pivot lands exactly on k.
//   - Quickselect(a, k, opts...): expected O(n) selection with uniformly
//     random pivots. Same control structure, cheaper pivot choice; the
//     worst case is O(n²) but vanishingly unlikely when the pivot stream
//     is unpredictable to whoever crafted the input.
//
// Why:
//   - The pair demonstrates the one genuinely algorithmic trade-off in
//     this module: paying a constant factor for guaranteed pivot quality
//     (deterministic linear time) versus gambling on randomness (usually
//     faster, no worst-case bound).
//
// In-place contract:
//
//	All functions REORDER the input slice. Callers that need the original
//	order must pass a copy. Only element order changes; the multiset of
//	values is preserved.
//
// Randomness:
//
//   - Quickselect defaults to a fixed-seed deterministic stream so runs
//     are reproducible. WithSeed selects another deterministic stream
//     (seed 0 means the default seed). WithRand installs a caller-owned
//     source; use that with an adversary-inaccessible source if inputs
//     may be crafted to provoke the quadratic worst case.
//   - No global rand is ever touched.
//
// Errors:
//
//   - ErrRankOutOfRange   k outside [0, len(a)-1]; an empty slice always fails
//   - ErrInvalidBounds    Partition/MedianOfMedians bounds outside the slice
//   - ErrPivotOutOfRange  pivot index outside [low, high]
//
// Complexity:
//
//   - Partition:           O(high-low) time, O(1) space
//   - MedianOfMedians:     O(high-low) time, O(high-low) index scratch
//   - SelectDeterministic: O(n) worst case
//   - Quickselect:         O(n) expected, O(n²) worst case
package selection
