package binarytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainf/bintree/ds/binarytree"
)

func values(elements ...interface{}) []*int {
	out := make([]*int, len(elements))
	for i, element := range elements {
		if element == nil {
			continue
		}

		value := element.(int)
		out[i] = &value
	}

	return out
}

func TestFromLevelOrder(t *testing.T) {
	root := binarytree.FromLevelOrder(values(8, 3, 10, 1, 6, nil, 14, nil, nil, 4, 7, 13, nil, nil, 5))

	assert.Equal(t, binarytree.LevelOrder(exampleTree()), binarytree.LevelOrder(root))
	assert.Equal(t, binarytree.Collect(binarytree.PreOrder[int], exampleTree()), binarytree.Collect(binarytree.PreOrder[int], root))
	assert.Equal(t, binarytree.Collect(binarytree.InOrder[int], exampleTree()), binarytree.Collect(binarytree.InOrder[int], root))
}

func TestFromLevelOrder_Sparse(t *testing.T) {
	root := binarytree.FromLevelOrder(values(1, nil, 2, 3))

	require.NotNil(t, root)
	require.Nil(t, root.Left())
	require.Equal(t, 2, root.Right().Value())
	require.Equal(t, 3, root.Right().Left().Value())
	assert.Equal(t, []int{1, 3, 2}, binarytree.Collect(binarytree.InOrder[int], root))
}

func TestFromLevelOrder_Empty(t *testing.T) {
	require.Nil(t, binarytree.FromLevelOrder[int](nil))
	require.Nil(t, binarytree.FromLevelOrder(values()))
	require.Nil(t, binarytree.FromLevelOrder(values(nil, 1, 2)))
}

func TestFromLevelOrder_TrailingEntries(t *testing.T) {
	// entries past the children of the last present node are ignored
	root := binarytree.FromLevelOrder(values(1, nil, 2, nil, nil, 9, 9))

	assert.Equal(t, []int{1, 2}, binarytree.LevelOrder(root))
}

func TestFromLevelOrder_Complete(t *testing.T) {
	elements := make([]interface{}, 15)
	expected := make([]int, 15)
	for i := range elements {
		elements[i] = i + 1
		expected[i] = i + 1
	}

	root := binarytree.FromLevelOrder(values(elements...))

	require.Equal(t, expected, binarytree.LevelOrder(root), "parents receive their children first in first out")
	require.Equal(t, [][]int{{1}, {2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11, 12, 13, 14, 15}}, binarytree.Levels(root))
	assert.Equal(t, 4, binarytree.NewTree(root).Height())
}
