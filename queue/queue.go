package queue

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadCapacity indicates that New was called with a non-positive capacity.
	ErrBadCapacity = errors.New("queue: capacity must be > 0")

	// ErrCapacityExceeded indicates an Enqueue into a full queue.
	ErrCapacityExceeded = errors.New("queue: capacity exceeded")

	// ErrEmptyCollection indicates Dequeue or Peek on an empty queue.
	ErrEmptyCollection = errors.New("queue: empty collection")
)

// Queue is a fixed-capacity circular buffer.
// Construct via New; the zero value is not usable.
type Queue[T any] struct {
	buf  []T // ring storage, length == capacity
	head int // index of the next element to dequeue
	tail int // index of the next free slot to enqueue into
	size int // live element count, always ≤ len(buf)
}

// New creates a Queue with the given fixed capacity.
// Returns ErrBadCapacity when capacity ≤ 0.
// Complexity: O(capacity) time and memory.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Queue[T]{buf: make([]T, capacity)}, nil
}

// Len returns the number of queued elements.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
// Complexity: O(1).
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Enqueue appends v at the tail.
// Returns ErrCapacityExceeded when the queue is full.
// Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) error {
	if q.size == len(q.buf) {
		return ErrCapacityExceeded
	}

	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++

	return nil
}

// Dequeue removes and returns the head element. The vacated slot is reset
// to the zero value before head advances, so the ring never leaks a value
// that was already handed out.
// Returns ErrEmptyCollection when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyCollection
	}

	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, nil
}

// Peek returns the head element without removing it.
// Returns ErrEmptyCollection when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return q.buf[q.head], nil
}

// String renders the live elements in logical (head-first) order without
// copying the whole ring, e.g. "Queue([1 2 99])".
// Complexity: O(n).
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Queue([")
	for i := 0; i < q.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", q.buf[(q.head+i)%len(q.buf)])
	}
	sb.WriteString("])")

	return sb.String()
}
