package binarytree

// Visitor is called once for every value reached by a traversal. Returning false stops the
// traversal.
type Visitor[E any] func(value E) bool

// Traversal is the common signature of all traversals of this package.
type Traversal[E any] func(root *Node[E], visit Visitor[E])

// PreOrder visits the node before its left and then its right subtree.
func PreOrder[E any](root *Node[E], visit Visitor[E]) {
	preOrder(root, visit)
}

// InOrder visits the left subtree, then the node and then the right subtree.
func InOrder[E any](root *Node[E], visit Visitor[E]) {
	inOrder(root, visit)
}

// PostOrder visits the left and the right subtree before the node itself.
func PostOrder[E any](root *Node[E], visit Visitor[E]) {
	postOrder(root, visit)
}

// Collect runs the traversal over the tree and returns the visited values in order.
func Collect[E any](traversal Traversal[E], root *Node[E]) []E {
	values := make([]E, 0)
	traversal(root, func(value E) bool {
		values = append(values, value)

		return true
	})

	return values
}

func preOrder[E any](n *Node[E], visit Visitor[E]) bool {
	if n == nil {
		return true
	}

	return visit(n.value) && preOrder(n.left, visit) && preOrder(n.right, visit)
}

func inOrder[E any](n *Node[E], visit Visitor[E]) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, visit) && visit(n.value) && inOrder(n.right, visit)
}

func postOrder[E any](n *Node[E], visit Visitor[E]) bool {
	if n == nil {
		return true
	}

	return postOrder(n.left, visit) && postOrder(n.right, visit) && visit(n.value)
}
