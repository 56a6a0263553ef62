package selection

import "cmp"

// Partition rearranges a[low..high] in place around the element at
// pivotIdx using the Lomuto scheme and returns the pivot's final index p.
// Postcondition: every element in [low, p) is strictly less than a[p],
// and every element in [p, high] is ≥ a[p]. Element order among equals is
// not preserved.
//
// Returns ErrInvalidBounds unless 0 ≤ low ≤ high < len(a), and
// ErrPivotOutOfRange unless low ≤ pivotIdx ≤ high. A failed call leaves a
// untouched.
//
// Complexity: O(high-low) time, O(1) space.
func Partition[T cmp.Ordered](a []T, low, high, pivotIdx int) (int, error) {
	if low < 0 || high >= len(a) || low > high {
		return 0, ErrInvalidBounds
	}
	if pivotIdx < low || pivotIdx > high {
		return 0, ErrPivotOutOfRange
	}

	return partition(a, low, high, pivotIdx), nil
}

// partition is the unchecked Lomuto kernel shared by both selectors.
// Caller guarantees 0 ≤ low ≤ pivotIdx ≤ high < len(a).
func partition[T cmp.Ordered](a []T, low, high, pivotIdx int) int {
	// Stash the pivot at the end of the window.
	a[pivotIdx], a[high] = a[high], a[pivotIdx]
	pivot := a[high]

	// i is the write cursor: everything left of it is strictly < pivot.
	i := low
	for j := low; j < high; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}

	// Drop the pivot into its final slot.
	a[i], a[high] = a[high], a[i]

	return i
}
