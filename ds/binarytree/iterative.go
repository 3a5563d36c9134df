package binarytree

import (
	"github.com/dainf/bintree/ds/stack"
)

// IterativePreOrder produces the same sequence as PreOrder using an explicit stack of pending
// subtrees instead of recursion.
func IterativePreOrder[E any](root *Node[E], visit Visitor[E]) {
	pending := stack.New[*Node[E]]()
	if root != nil {
		pending.Push(root)
	}

	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		if !visit(current.value) {
			return
		}

		// right first, so that left is popped first
		if current.right != nil {
			pending.Push(current.right)
		}
		if current.left != nil {
			pending.Push(current.left)
		}
	}
}

// IterativePostOrder produces the same sequence as PostOrder using a stack of ancestors and a
// marker of the last visited node. A node on top of the stack is only visited once its right
// subtree is empty or was the last thing visited.
func IterativePostOrder[E any](root *Node[E], visit Visitor[E]) {
	ancestors := stack.New[*Node[E]]()

	var lastVisited *Node[E]
	for current := root; current != nil || !ancestors.IsEmpty(); {
		if current != nil {
			ancestors.Push(current)
			current = current.left

			continue
		}

		top, _ := ancestors.Peek()
		if top.right != nil && lastVisited != top.right {
			current = top.right

			continue
		}

		if !visit(top.value) {
			return
		}
		lastVisited, _ = ancestors.Pop()
	}
}
