// Package queue implements a fixed-capacity circular-buffer FIFO queue.
//
// What:
//
//   - Queue[T]: a ring buffer with head (dequeue side) and tail (enqueue
//     side) indices advancing modulo the capacity, so neither operation
//     ever shifts elements.
//   - Enqueue: O(1); ErrCapacityExceeded when the buffer is full.
//   - Dequeue / Peek: O(1); ErrEmptyCollection when empty. Dequeue zeroes
//     the vacated slot before advancing head, so a recycled slot never
//     exposes a stale value.
//
// Why:
//   - The circular buffer is the textbook answer to "FIFO without
//     shifting": wrap-around index arithmetic buys O(1) at both ends at
//     the price of a fixed capacity.
//
// Errors:
//
//   - ErrBadCapacity      constructor called with capacity ≤ 0
//   - ErrCapacityExceeded Enqueue into a full queue
//   - ErrEmptyCollection  Dequeue or Peek on an empty queue
//
// Complexity:
//
//   - Enqueue/Dequeue/Peek/Len/Cap: O(1)
package queue
