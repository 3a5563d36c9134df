package binarytree

import (
	"github.com/dainf/bintree/ds/stack"
)

// InOrderCursor is an external iterator that yields the values of a tree in in-order, one value
// per call to Next.
//
// Every cursor owns its own state, so multiple cursors over the same tree are independent.
type InOrderCursor[E any] struct {
	root      *Node[E]
	ancestors stack.Stack[*Node[E]]
	descend   *Node[E]
	started   bool
}

// NewInOrderCursor creates a cursor that starts at the smallest in-order position of root.
func NewInOrderCursor[E any](root *Node[E]) *InOrderCursor[E] {
	return &InOrderCursor[E]{
		root:      root,
		ancestors: stack.New[*Node[E]](),
	}
}

// Reset rewinds the cursor to the beginning of the traversal.
func (c *InOrderCursor[E]) Reset() {
	c.ancestors.Clear()
	c.descend = c.root
	c.started = false
}

// Next returns the next value in in-order and true, or the zero value and false once the
// traversal is exhausted. After exhaustion, Next keeps returning false until Reset is called.
func (c *InOrderCursor[E]) Next() (value E, ok bool) {
	if !c.started {
		c.Reset()
		c.started = true
	}

	for c.descend != nil {
		c.ancestors.Push(c.descend)
		c.descend = c.descend.left
	}

	result, exists := c.ancestors.Pop()
	if !exists {
		return value, false
	}
	c.descend = result.right

	return result.value, true
}

// HasNext returns true if the next call to Next would yield a value. It does not advance the
// cursor.
func (c *InOrderCursor[E]) HasNext() bool {
	if !c.started {
		return c.root != nil
	}

	return c.descend != nil || !c.ancestors.IsEmpty()
}

// IterativeInOrder produces the same sequence as InOrder by draining a fresh InOrderCursor.
func IterativeInOrder[E any](root *Node[E], visit Visitor[E]) {
	cursor := NewInOrderCursor(root)
	for value, ok := cursor.Next(); ok; value, ok = cursor.Next() {
		if !visit(value) {
			return
		}
	}
}
