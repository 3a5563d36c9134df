package binarytree

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
)

// FromLevelOrder builds a tree from its level-order representation, where a nil entry marks a
// missing child (e.g. [1, nil, 2, 3] for a root 1 with a right child 2 that has a left child 3).
//
// Children of missing nodes are not listed.
func FromLevelOrder[E any](values []*E) *Node[E] {
	if len(values) == 0 || values[0] == nil {
		return nil
	}

	root := New(*values[0])

	// parents waiting for their children, in the order their children appear in values
	parents := arrayqueue.New()
	parents.Enqueue(root)
	for i := 1; !parents.Empty() && i < len(values); {
		element, _ := parents.Dequeue()
		parent := element.(*Node[E])

		if values[i] != nil {
			parents.Enqueue(parent.InsertLeft(*values[i]))
		}
		i++

		if i < len(values) && values[i] != nil {
			parents.Enqueue(parent.InsertRight(*values[i]))
		}
		i++
	}

	return root
}
