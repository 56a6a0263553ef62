// Package array implements a fixed-capacity, bounds-checked array with
// explicit O(n) insert/delete shifting.
//
// What:
//
//   - Array[T]: a contiguous buffer of fixed capacity holding a logical
//     prefix of size ≤ capacity. Elements in [0, Len()) are always valid
//     and contiguous.
//   - Insert(index, v): opens a hole by shifting the suffix right, O(n).
//   - Delete(index): closes the gap by shifting the suffix left, O(n);
//     the vacated tail slot is zeroed so no stale value lingers.
//   - At(index) / Set(index, v): O(1) bounds-checked element access.
//
// Why:
//   - Demonstrates the cost model of contiguous storage: cheap random
//     access, expensive positional mutation.
//   - Serves as the row representation for package matrix, which delegates
//     all element access through the checked At/Set surface.
//
// Errors:
//
//   - ErrBadCapacity      constructor called with capacity ≤ 0
//   - ErrCapacityExceeded insert into a full array
//   - ErrIndexOutOfRange  index outside the valid bounds of the operation
//
// All validation happens before any mutation: a failed operation leaves the
// array untouched (no partial shifts).
//
// Complexity:
//
//   - Insert/Delete: O(n) time, O(1) space
//   - At/Set/Len/Cap: O(1)
package array
