package array

import (
	"fmt"
	"strings"
)

// Array is a fixed-capacity contiguous buffer with a logical size.
// The zero value is not usable; construct via New.
type Array[T any] struct {
	data []T // backing buffer, length == capacity
	size int // logical element count, always ≤ len(data)
}

// New creates an Array with the given fixed capacity.
// Returns ErrBadCapacity when capacity ≤ 0.
// Complexity: O(capacity) time and memory.
func New[T any](capacity int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Array[T]{data: make([]T, capacity)}, nil
}

// Len returns the logical number of elements.
// Complexity: O(1).
func (a *Array[T]) Len() int { return a.size }

// Cap returns the fixed capacity.
// Complexity: O(1).
func (a *Array[T]) Cap() int { return len(a.data) }

// checkBounds validates a read/write index against the logical size.
func (a *Array[T]) checkBounds(index int) error {
	if index < 0 || index >= a.size {
		return ErrIndexOutOfRange
	}

	return nil
}

// Insert places v at index, shifting the suffix [index, size) one slot right.
// index == Len() appends. Validation order matches the capacity-first
// contract: a full array reports ErrCapacityExceeded even for a bad index.
// Complexity: O(n) time, O(1) space.
func (a *Array[T]) Insert(index int, v T) error {
	// 1. Reject a full array before looking at the index.
	if a.size == len(a.data) {
		return ErrCapacityExceeded
	}
	// 2. Insert admits one-past-the-end.
	if index < 0 || index > a.size {
		return ErrIndexOutOfRange
	}

	// 3. Open a hole at index by shifting right.
	for i := a.size; i > index; i-- {
		a.data[i] = a.data[i-1]
	}
	a.data[index] = v
	a.size++

	return nil
}

// Delete removes the element at index, shifting the suffix left.
// The vacated tail slot is reset to the zero value so deleted elements
// do not outlive their logical removal.
// Complexity: O(n) time, O(1) space.
func (a *Array[T]) Delete(index int) error {
	if err := a.checkBounds(index); err != nil {
		return err
	}

	// Close the gap by shifting left.
	for i := index; i < a.size-1; i++ {
		a.data[i] = a.data[i+1]
	}
	var zero T
	a.data[a.size-1] = zero
	a.size--

	return nil
}

// At returns the element at index.
// Complexity: O(1).
func (a *Array[T]) At(index int) (T, error) {
	if err := a.checkBounds(index); err != nil {
		var zero T
		return zero, err
	}

	return a.data[index], nil
}

// Set overwrites the element at index with v. Unlike Insert it never grows
// the logical size; the slot must already hold an element.
// Complexity: O(1).
func (a *Array[T]) Set(index int, v T) error {
	if err := a.checkBounds(index); err != nil {
		return err
	}
	a.data[index] = v

	return nil
}

// String renders the logical contents, e.g. "Array([0 20])".
// Implements fmt.Stringer for the demo driver and debugging.
// Complexity: O(n).
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Array([")
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", a.data[i])
	}
	sb.WriteString("])")

	return sb.String()
}
