// Package tree implements an n-ary tree backed by an index-addressed node
// arena, with pre-order depth-first traversal via an explicit cursor.
//
// What:
//
//   - Tree[T]: a rooted tree whose nodes live in one arena slice and are
//     referenced by opaque NodeID handles. A node is attached to exactly
//     one parent when created and is never reparented, so the structure is
//     acyclic by construction and every subtree has a single owner.
//   - Add(parent, v): appends a new child under parent, keeping children
//     in insertion order.
//   - DFS(): a fresh Cursor yielding values in pre-order: a node first,
//     then each child's full subtree, children left to right.
//
// Why:
//   - The arena replaces parent→child pointers with stable indices: no
//     aliasing, no cycles, trivially copyable handles, and the traversal
//     needs nothing beyond an explicit index stack.
//
// Cursor protocol (same as package list):
//
//	cur := tr.DFS()
//	for cur.Next() {
//		_ = cur.Value()
//	}
//
// Each DFS() call creates an independent, restartable cursor over the
// current tree. Cursors read live state, not a snapshot.
//
// Errors:
//
//   - ErrUnknownNode  a NodeID that does not name a node of this tree
//
// Complexity:
//
//   - Add/Value: O(1)
//   - Full DFS walk: O(n) time, O(depth·branching) cursor stack
package tree
