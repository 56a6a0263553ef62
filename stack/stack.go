package stack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCollection indicates Pop or Peek on an empty stack.
var ErrEmptyCollection = errors.New("stack: empty collection")

// Stack is a growable LIFO container. The zero value is usable, but New is
// provided for symmetry with the other containers.
type Stack[T any] struct {
	items []T // logical top == items[len(items)-1]
}

// New creates an empty Stack.
// Complexity: O(1).
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of stacked elements.
// Complexity: O(1).
func (s *Stack[T]) Len() int { return len(s.items) }

// Push places v on top of the stack.
// Complexity: amortized O(1).
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns ErrEmptyCollection when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyCollection
	}

	v := s.items[n-1]
	s.items[n-1] = zero // drop the reference held by the backing slice
	s.items = s.items[:n-1]

	return v, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyCollection when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return s.items[len(s.items)-1], nil
}

// String renders the contents top-first, e.g. "Stack(top→[d c b a])".
// Complexity: O(n).
func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Stack(top→[")
	for i := len(s.items) - 1; i >= 0; i-- {
		if i < len(s.items)-1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", s.items[i])
	}
	sb.WriteString("])")

	return sb.String()
}
