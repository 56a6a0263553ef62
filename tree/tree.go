package tree

import "errors"

// ErrUnknownNode indicates a NodeID that does not name a node of this tree.
var ErrUnknownNode = errors.New("tree: unknown node id")

// NodeID is an opaque, stable handle to a node within one Tree.
// Handles are only meaningful for the tree that issued them.
type NodeID int

// node is one arena slot: a value plus child handles in insertion order.
type node[T any] struct {
	value    T
	children []NodeID
}

// Tree is a rooted n-ary tree over a node arena. Construct via New; the
// root always exists and is never removed.
type Tree[T any] struct {
	nodes []node[T] // arena; index 0 is the root
}

// New creates a Tree containing only a root node holding rootValue.
// Complexity: O(1).
func New[T any](rootValue T) *Tree[T] {
	return &Tree[T]{nodes: []node[T]{{value: rootValue}}}
}

// Root returns the handle of the root node.
// Complexity: O(1).
func (t *Tree[T]) Root() NodeID { return 0 }

// Len returns the total number of nodes, root included.
// Complexity: O(1).
func (t *Tree[T]) Len() int { return len(t.nodes) }

// valid reports whether id names a node in the arena.
func (t *Tree[T]) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Add creates a new node holding v as the last child of parent and
// returns its handle.
// Returns ErrUnknownNode for an invalid parent handle.
// Complexity: amortized O(1).
func (t *Tree[T]) Add(parent NodeID, v T) (NodeID, error) {
	if !t.valid(parent) {
		return 0, ErrUnknownNode
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{value: v})
	t.nodes[parent].children = append(t.nodes[parent].children, id)

	return id, nil
}

// Value returns the value stored at id.
// Returns ErrUnknownNode for an invalid handle.
// Complexity: O(1).
func (t *Tree[T]) Value(id NodeID) (T, error) {
	if !t.valid(id) {
		var zero T
		return zero, ErrUnknownNode
	}

	return t.nodes[id].value, nil
}

// DFS returns a fresh pre-order Cursor rooted at the tree's root: each
// node is yielded before any of its descendants, and children are visited
// left to right. Every call creates an independent cursor.
// Complexity: O(1); a full walk is O(n).
func (t *Tree[T]) DFS() *Cursor[T] {
	return &Cursor[T]{tree: t, stack: []NodeID{t.Root()}, cur: -1}
}

// Cursor walks a Tree in pre-order. Obtain one via DFS.
type Cursor[T any] struct {
	tree  *Tree[T]
	stack []NodeID // nodes pending a visit; top is visited next
	cur   NodeID   // node Value reads from, -1 before the first Next
}

// Next advances to the next node in pre-order and reports whether one is
// available. Children are pushed right-to-left so the leftmost subtree is
// explored first.
// Complexity: amortized O(1) per node across a full walk.
func (c *Cursor[T]) Next() bool {
	if len(c.stack) == 0 {
		c.cur = -1
		return false
	}

	// Pop the next node.
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	// Push children reversed to preserve left-to-right visit order.
	kids := c.tree.nodes[c.cur].children
	for i := len(kids) - 1; i >= 0; i-- {
		c.stack = append(c.stack, kids[i])
	}

	return true
}

// Value returns the value of the node the cursor currently rests on.
// Before the first Next, or after exhaustion, it returns the zero value.
// Complexity: O(1).
func (c *Cursor[T]) Value() T {
	if c.cur < 0 {
		var zero T
		return zero
	}

	return c.tree.nodes[c.cur].value
}
