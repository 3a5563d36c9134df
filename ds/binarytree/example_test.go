package binarytree_test

import (
	"fmt"

	"github.com/dainf/bintree/ds/binarytree"
)

func ExampleNode_InsertLeft() {
	root := binarytree.New(1)
	root.InsertLeft(2)
	root.InsertLeft(3)

	fmt.Println(binarytree.Collect(binarytree.PreOrder[int], root))
	// Output:
	// [1 3 2]
}

func ExampleInOrderCursor() {
	cursor := binarytree.NewInOrderCursor(exampleTree())
	for value, ok := cursor.Next(); ok; value, ok = cursor.Next() {
		fmt.Print(" ", value)
	}
	fmt.Println()
	// Output:
	//  1 3 4 5 6 7 8 10 13 14
}

func ExampleLevelOrder() {
	fmt.Println(binarytree.LevelOrder(exampleTree()))
	// Output:
	// [8 3 10 1 6 14 4 7 13 5]
}

func ExamplePostOrder() {
	binarytree.PostOrder(exampleTree(), func(value int) bool {
		fmt.Print(value, " ")

		return true
	})
	fmt.Println()
	// Output:
	// 1 5 4 7 6 3 13 14 10 8
}
