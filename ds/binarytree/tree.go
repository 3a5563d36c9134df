package binarytree

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/kr/text"
)

const indentation = "    "

// Tree is a container around an optional root node. The zero value is an empty tree.
type Tree[E any] struct {
	root *Node[E]
}

// NewTree creates a Tree around the given root (which may be nil).
func NewTree[E any](root *Node[E]) *Tree[E] {
	return &Tree[E]{root: root}
}

// Root returns the root node of the tree (or nil if the tree is empty).
func (t *Tree[E]) Root() *Node[E] {
	return t.root
}

// Empty returns true if the tree does not contain any nodes.
func (t *Tree[E]) Empty() bool {
	return t.root == nil
}

// Size returns the number of nodes in the tree.
func (t *Tree[E]) Size() (size int) {
	PreOrder(t.root, func(E) bool {
		size++

		return true
	})

	return size
}

// Height returns the number of levels of the tree.
func (t *Tree[E]) Height() int {
	return height(t.root)
}

// Clear drops all nodes of the tree.
func (t *Tree[E]) Clear() {
	t.root = nil
}

// Values returns the values of the tree in in-order.
func (t *Tree[E]) Values() []interface{} {
	values := make([]interface{}, 0)
	InOrder(t.root, func(value E) bool {
		values = append(values, value)

		return true
	})

	return values
}

// String returns a drawing of the tree with one node per line, indented by depth.
func (t *Tree[E]) String() string {
	var builder strings.Builder
	builder.WriteString("BinaryTree\n")
	if t.root != nil {
		builder.WriteString(draw(t.root, ""))
	}

	return builder.String()
}

// draw returns the subtree of n, one node per line, with every level of children indented.
func draw[E any](n *Node[E], side string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s%v\n", side, n.value)

	if n.left != nil {
		builder.WriteString(text.Indent(draw(n.left, "L:"), indentation))
	}
	if n.right != nil {
		builder.WriteString(text.Indent(draw(n.right, "R:"), indentation))
	}

	return builder.String()
}

func height[E any](n *Node[E]) int {
	if n == nil {
		return 0
	}

	left, right := height(n.left), height(n.right)
	if left > right {
		return left + 1
	}

	return right + 1
}

// code contract - make sure the type implements the interface.
var _ containers.Container = &Tree[int]{}
