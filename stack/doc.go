// Package stack implements a growable LIFO stack.
//
// What:
//
//   - Stack[T]: a dynamically growing sequence whose logical top is the end
//     of the backing slice.
//   - Push: amortized O(1) append.
//   - Pop / Peek: O(1); both report ErrEmptyCollection on an empty stack.
//     Pop zeroes the vacated slot so popped values do not linger in the
//     backing storage.
//
// Why:
//   - The canonical contiguous LIFO: append/truncate on a slice is
//     amortized O(1) and cache friendly, which is exactly what stack
//     discipline wants.
//
// Errors:
//
//   - ErrEmptyCollection  Pop or Peek on an empty stack
//
// Complexity:
//
//   - Push: amortized O(1); Pop/Peek/Len: O(1)
package stack
