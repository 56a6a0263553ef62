// Package matrix implements a simple row-major matrix whose rows are
// fixed-capacity arrays from package array.
//
// What:
//
//   - Matrix[T]: an ordered sequence of array.Array rows, all sharing the
//     same capacity, pre-filled with the zero value of T at construction.
//   - Set(r, c, v) / At(r, c): bounds-checked element update and read.
//
// Why:
//   - Shows composition of one container out of another while keeping the
//     inner container's invariants intact: all element access goes through
//     the row array's public, bounds-checked At/Set surface. The matrix
//     never reaches into a row's backing storage.
//
// Errors:
//
//   - ErrBadShape         constructor called with rows ≤ 0 or cols ≤ 0
//   - ErrIndexOutOfRange  row index outside [0, Rows()); column failures
//     surface as the row array's ErrIndexOutOfRange
//
// Complexity:
//
//   - New:    O(rows·cols) time and memory (zero fill)
//   - Set/At: O(1)
package matrix
