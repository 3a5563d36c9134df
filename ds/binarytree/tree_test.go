package binarytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainf/bintree/ds/binarytree"
)

func TestTree(t *testing.T) {
	tree := binarytree.NewTree(exampleTree())

	require.False(t, tree.Empty())
	require.Equal(t, 10, tree.Size())
	require.Equal(t, 5, tree.Height())
	require.Equal(t, []interface{}{1, 3, 4, 5, 6, 7, 8, 10, 13, 14}, tree.Values())
	require.Equal(t, 8, tree.Root().Value())

	tree.Clear()
	require.True(t, tree.Empty())
	require.Zero(t, tree.Size())
	require.Zero(t, tree.Height())
	require.Empty(t, tree.Values())
	require.Nil(t, tree.Root())
}

func TestTree_ZeroValue(t *testing.T) {
	var tree binarytree.Tree[string]

	assert.True(t, tree.Empty())
	assert.Equal(t, "BinaryTree\n", tree.String())
}

func TestTree_String(t *testing.T) {
	root := binarytree.New(1)
	root.InsertLeft(2).InsertRight(4)
	root.InsertRight(3)

	expected := "BinaryTree\n" +
		"1\n" +
		"    L:2\n" +
		"        R:4\n" +
		"    R:3\n"

	assert.Equal(t, expected, binarytree.NewTree(root).String())
}

func TestTree_String_Nested(t *testing.T) {
	root := binarytree.New("root")
	root.InsertLeft("first\nsecond").InsertLeft("leaf")
	root.InsertRight("right")

	expected := "BinaryTree\n" +
		"root\n" +
		"    L:first\n" +
		"    second\n" +
		"        L:leaf\n" +
		"    R:right\n"

	assert.Equal(t, expected, binarytree.NewTree(root).String(), "every line of a subtree is indented one level")
}
