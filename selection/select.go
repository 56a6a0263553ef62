package selection

import "cmp"

// SelectDeterministic returns the k-th smallest element of a (0-based),
// reordering a in place. Pivots come from MedianOfMedians, so the active
// window shrinks geometrically regardless of input order: worst-case O(n).
//
// Returns ErrRankOutOfRange unless 0 ≤ k < len(a).
//
// Complexity: O(n) time worst case, O(n) scratch for pivot selection.
func SelectDeterministic[T cmp.Ordered](a []T, k int) (T, error) {
	if k < 0 || k >= len(a) {
		var zero T
		return zero, ErrRankOutOfRange
	}

	low, high := 0, len(a)-1
	for low < high {
		// Quality pivot, then settle it into its sorted position.
		p := partition(a, low, high, medianOfMedians(a, low, high))

		switch {
		case k == p:
			return a[k], nil
		case k < p:
			high = p - 1 // answer lives left of the pivot
		default:
			low = p + 1 // answer lives right of the pivot
		}
	}

	// Window collapsed to the single remaining candidate, which the loop
	// invariant (low ≤ k ≤ high) pins to position k.
	return a[low], nil
}

// Quickselect returns the k-th smallest element of a (0-based), reordering
// a in place. Pivots are drawn uniformly from the active window: expected
// O(n), worst case O(n²). See the package doc for the randomness contract;
// by default the pivot stream is deterministic (fixed seed) so runs are
// reproducible.
//
// Returns ErrRankOutOfRange unless 0 ≤ k < len(a).
//
// Complexity: O(n) expected time, O(1) space beyond the RNG.
func Quickselect[T cmp.Ordered](a []T, k int, opts ...Option) (T, error) {
	if k < 0 || k >= len(a) {
		var zero T
		return zero, ErrRankOutOfRange
	}
	rng := gatherOptions(opts)

	low, high := 0, len(a)-1
	for low < high {
		// Uniform pivot over [low, high], then settle it.
		p := partition(a, low, high, low+rng.Intn(high-low+1))

		switch {
		case k == p:
			return a[k], nil
		case k < p:
			high = p - 1
		default:
			low = p + 1
		}
	}

	return a[low], nil
}
