package binarytree

// LevelOrderCollector enumerates the nodes of a tree breadth first. The collector owns the
// sequence it builds and can be reused for several trees.
type LevelOrderCollector[E any] struct {
	nodes []*Node[E]
}

// NewLevelOrderCollector creates a new LevelOrderCollector.
func NewLevelOrderCollector[E any]() *LevelOrderCollector[E] {
	return &LevelOrderCollector[E]{}
}

// Collect returns the values of the tree level by level, left to right within a level.
func (c *LevelOrderCollector[E]) Collect(root *Node[E]) []E {
	c.expand(root)

	values := make([]E, len(c.nodes))
	for i, node := range c.nodes {
		values[i] = node.value
	}

	return values
}

// expand fills c.nodes with the breadth first sequence of root. The slice doubles as the queue:
// appending children while walking it extends the walk.
func (c *LevelOrderCollector[E]) expand(root *Node[E]) {
	for i := range c.nodes {
		c.nodes[i] = nil
	}
	c.nodes = c.nodes[:0]

	if root == nil {
		return
	}

	c.nodes = appendChildren(append(c.nodes, root), root)
	for i := 1; i < len(c.nodes); i++ {
		c.nodes = appendChildren(c.nodes, c.nodes[i])
	}
}

func appendChildren[E any](nodes []*Node[E], parent *Node[E]) []*Node[E] {
	if parent.left != nil {
		nodes = append(nodes, parent.left)
	}
	if parent.right != nil {
		nodes = append(nodes, parent.right)
	}

	return nodes
}

// LevelOrder returns the breadth first sequence of the values of the tree.
func LevelOrder[E any](root *Node[E]) []E {
	return NewLevelOrderCollector[E]().Collect(root)
}

// LevelOrderTraversal visits the values of the tree breadth first.
func LevelOrderTraversal[E any](root *Node[E], visit Visitor[E]) {
	for _, value := range LevelOrder(root) {
		if !visit(value) {
			return
		}
	}
}

// Levels returns the values of the tree grouped by depth, starting with the root at level 0.
func Levels[E any](root *Node[E]) [][]E {
	levels := make([][]E, 0)
	for frontier := []*Node[E]{root}; root != nil && len(frontier) > 0; {
		values := make([]E, 0, len(frontier))
		next := make([]*Node[E], 0, 2*len(frontier))
		for _, node := range frontier {
			values = append(values, node.value)
			next = appendChildren(next, node)
		}

		levels = append(levels, values)
		frontier = next
	}

	return levels
}
