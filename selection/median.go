package selection

import "cmp"

// groupSize is the classical median-of-medians group width. Five is the
// smallest odd width for which the 30/70 split guarantee (and hence the
// linear-time bound of the full selection) holds.
const groupSize = 5

// MedianOfMedians returns the index of a quality pivot within a[low..high]:
// at least roughly 30% of the window's elements are ≤ a[result] and at
// least roughly 30% are ≥ a[result]. It reads (but does not reorder) the
// window; only an internal index scratch slice is mutated.
//
// Returns ErrInvalidBounds unless 0 ≤ low ≤ high < len(a).
//
// Complexity: O(high-low) time, O(high-low) scratch space.
func MedianOfMedians[T cmp.Ordered](a []T, low, high int) (int, error) {
	if low < 0 || high >= len(a) || low > high {
		return 0, ErrInvalidBounds
	}

	return medianOfMedians(a, low, high), nil
}

// medianOfMedians is the unchecked kernel: the iterative 5-group reduction.
// Each pass replaces every group of ≤5 candidate indices by the index of
// the group's median value, shrinking the candidate set by 5× until ≤5
// remain; the true median of those survivors is the pivot.
// Caller guarantees 0 ≤ low ≤ high < len(a).
func medianOfMedians[T cmp.Ordered](a []T, low, high int) int {
	// 1. Start from every index of the window.
	indices := make([]int, high-low+1)
	for i := range indices {
		indices[i] = low + i
	}

	// 2. Compress until at most one group is left. The survivors are
	//    written back into the same slice: the write cursor trails the
	//    group read cursor by at least 5×, so no live entry is clobbered.
	for len(indices) > groupSize {
		out := 0
		for i := 0; i < len(indices); i += groupSize {
			end := i + groupSize
			if end > len(indices) {
				end = len(indices) // final short group
			}
			group := indices[i:end]
			sortIndicesByValue(a, group)
			indices[out] = group[len(group)/2]
			out++
		}
		indices = indices[:out]
	}

	// 3. True median of the final ≤5 representatives.
	sortIndicesByValue(a, indices)

	return indices[len(indices)/2]
}

// sortIndicesByValue insertion-sorts idx so that a[idx[0]] ≤ a[idx[1]] ≤ ...
// Groups are at most 5 long, so each call is O(1) for the reduction's
// purposes; the final call sorts ≤5 survivors.
func sortIndicesByValue[T cmp.Ordered](a []T, idx []int) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && a[idx[j]] < a[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}
