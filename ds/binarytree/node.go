// Package binarytree implements a binary tree whose shape is directed by the caller rather than
// by an ordering of the stored values.
//
// The package offers pre-order, in-order, post-order and level-order traversals, each both in a
// directly recursive form and in a form that keeps its progress in explicitly owned state. No
// traversal state is ever stored on the nodes, so any number of traversals and cursors can be in
// flight over the same tree at the same time.
package binarytree

// Node is a node of a binary tree. A nil *Node is the empty tree.
//
// A Node exclusively owns its left and right subtrees.
type Node[E any] struct {
	value E
	left  *Node[E]
	right *Node[E]
}

// New creates a new tree consisting of a single node that holds the given value.
func New[E any](value E) *Node[E] {
	return &Node[E]{value: value}
}

// Value returns the value stored in the node.
func (n *Node[E]) Value() E {
	return n.value
}

// SetValue replaces the value stored in the node.
func (n *Node[E]) SetValue(value E) {
	n.value = value
}

// Left returns the left child of the node (or nil).
func (n *Node[E]) Left() *Node[E] {
	return n.left
}

// Right returns the right child of the node (or nil).
func (n *Node[E]) Right() *Node[E] {
	return n.right
}

// IsLeaf returns true if the node has no children.
func (n *Node[E]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// InsertLeft creates a new node holding value and makes it the left child of n. The previous left
// subtree of n becomes the left subtree of the new node. It returns the new node, so insertions
// can be chained.
func (n *Node[E]) InsertLeft(value E) *Node[E] {
	inserted := &Node[E]{value: value, left: n.left}
	n.left = inserted

	return inserted
}

// InsertRight creates a new node holding value and makes it the right child of n. The previous
// right subtree of n becomes the right subtree of the new node. It returns the new node, so
// insertions can be chained.
func (n *Node[E]) InsertRight(value E) *Node[E] {
	inserted := &Node[E]{value: value, right: n.right}
	n.right = inserted

	return inserted
}
