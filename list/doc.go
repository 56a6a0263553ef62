// Package list implements a singly linked list backed by an index-addressed
// node arena.
//
// What:
//
//   - List[T]: a forward-linked chain of nodes stored in one slice (the
//     arena). Links are arena indices, not pointers; -1 terminates the
//     chain. Freed nodes go on an internal free list and are recycled by
//     later inserts, so long-lived lists do not fragment the heap.
//   - Insert(pos, v) / Delete(pos): O(1) at the head, O(pos) elsewhere.
//   - At(pos): positional read via an O(pos) walk.
//   - Traverse(): a fresh, independent Cursor over the current chain.
//     Each call restarts from the head; cursors are cheap and disposable.
//
// Why:
//   - Demonstrates linked storage without raw pointer juggling: stable
//     integer handles sidestep aliasing hazards while keeping the classic
//     cost profile (cheap head mutation, linear positional access).
//
// Cursor protocol:
//
//	cur := l.Traverse()
//	for cur.Next() {
//		_ = cur.Value()
//	}
//
// A cursor reads the live list, not a snapshot; mutating the list while a
// cursor is in flight has unspecified iteration results (but never walks
// off the arena). Traversal always terminates: the chain is acyclic by
// construction.
//
// Errors:
//
//   - ErrIndexOutOfRange  position outside the valid bounds of the
//     operation (Insert allows pos == Len(); Delete/At do not)
//
// Complexity:
//
//   - Insert/Delete/At: O(1) at position 0, O(pos) otherwise
//   - Traverse + full walk: O(n)
package list
