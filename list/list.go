package list

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange indicates a position outside the valid bounds of the
// requested operation (Insert allows pos == Len(); all others do not).
var ErrIndexOutOfRange = errors.New("list: index out of range")

// nilIndex terminates a chain (the arena analogue of a nil next pointer).
const nilIndex = -1

// node is one arena slot: a value plus the index of its successor.
type node[T any] struct {
	value T
	next  int
}

// List is a singly linked list over an arena of nodes.
// The zero value is not usable; construct via New.
type List[T any] struct {
	nodes []node[T] // arena; freed slots are chained on the free list
	head  int       // arena index of position 0, nilIndex when empty
	free  int       // head of the free-slot chain, nilIndex when none
	size  int       // live element count
}

// New creates an empty List.
// Complexity: O(1).
func New[T any]() *List[T] {
	return &List[T]{head: nilIndex, free: nilIndex}
}

// Len returns the number of elements.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// alloc returns a free arena slot holding v, recycling freed slots first.
func (l *List[T]) alloc(v T) int {
	if l.free != nilIndex {
		idx := l.free
		l.free = l.nodes[idx].next
		l.nodes[idx] = node[T]{value: v, next: nilIndex}

		return idx
	}
	l.nodes = append(l.nodes, node[T]{value: v, next: nilIndex})

	return len(l.nodes) - 1
}

// release zeroes a slot and pushes it onto the free chain.
func (l *List[T]) release(idx int) {
	var zero T
	l.nodes[idx] = node[T]{value: zero, next: l.free}
	l.free = idx
}

// nodeAt walks to the node at pos. Caller guarantees 0 ≤ pos < size.
// Complexity: O(pos).
func (l *List[T]) nodeAt(pos int) int {
	idx := l.head
	for i := 0; i < pos; i++ {
		idx = l.nodes[idx].next
	}

	return idx
}

// Insert links v in at pos, shifting later positions up by one.
// pos == 0 prepends in O(1); pos == Len() appends.
// Returns ErrIndexOutOfRange unless 0 ≤ pos ≤ Len().
// Complexity: O(1) at the head, O(pos) otherwise.
func (l *List[T]) Insert(pos int, v T) error {
	if pos < 0 || pos > l.size {
		return ErrIndexOutOfRange
	}

	idx := l.alloc(v)
	if pos == 0 {
		l.nodes[idx].next = l.head
		l.head = idx
	} else {
		prev := l.nodeAt(pos - 1)
		l.nodes[idx].next = l.nodes[prev].next
		l.nodes[prev].next = idx
	}
	l.size++

	return nil
}

// Delete unlinks the node at pos, shifting later positions down by one.
// Returns ErrIndexOutOfRange unless 0 ≤ pos < Len().
// Complexity: O(1) at the head, O(pos) otherwise.
func (l *List[T]) Delete(pos int) error {
	if pos < 0 || pos >= l.size {
		return ErrIndexOutOfRange
	}

	var victim int
	if pos == 0 {
		victim = l.head
		l.head = l.nodes[victim].next
	} else {
		prev := l.nodeAt(pos - 1)
		victim = l.nodes[prev].next
		l.nodes[prev].next = l.nodes[victim].next
	}
	l.release(victim)
	l.size--

	return nil
}

// At returns the value at pos.
// Returns ErrIndexOutOfRange unless 0 ≤ pos < Len().
// Complexity: O(pos).
func (l *List[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= l.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return l.nodes[l.nodeAt(pos)].value, nil
}

// Traverse returns a fresh Cursor positioned before the head. Every call
// creates an independent cursor; restarting a walk is just calling
// Traverse again.
// Complexity: O(1); a full walk is O(n).
func (l *List[T]) Traverse() *Cursor[T] {
	return &Cursor[T]{list: l, next: l.head, cur: nilIndex}
}

// String renders the list in order, e.g. "List([4 3 2 1 0])".
// Complexity: O(n).
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("List([")
	first := true
	for cur := l.Traverse(); cur.Next(); {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", cur.Value())
	}
	sb.WriteString("])")

	return sb.String()
}

// Cursor walks a List front to back. Obtain one via Traverse.
type Cursor[T any] struct {
	list *List[T]
	next int // node the next call to Next will land on
	cur  int // node Value reads from, nilIndex before the first Next
}

// Next advances the cursor and reports whether an element is available.
// Once Next returns false the cursor is exhausted and stays exhausted.
// Complexity: O(1).
func (c *Cursor[T]) Next() bool {
	if c.next == nilIndex {
		c.cur = nilIndex
		return false
	}

	c.cur = c.next
	c.next = c.list.nodes[c.cur].next

	return true
}

// Value returns the element the cursor currently rests on. Before the
// first Next, or after exhaustion, it returns the zero value.
// Complexity: O(1).
func (c *Cursor[T]) Value() T {
	if c.cur == nilIndex {
		var zero T
		return zero
	}

	return c.list.nodes[c.cur].value
}
