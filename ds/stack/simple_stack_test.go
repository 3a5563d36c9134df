package stack

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkList(b *testing.B) {
	stack := list.New()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stack.PushBack(3)
	}
}

func BenchmarkStack(b *testing.B) {
	stack := New[int]()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		stack.Push(3)
	}
}

func TestSimpleStack_PushPop(t *testing.T) {
	stack := newSimpleStack[int]()

	_, exists := stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")

	for i := 1; i <= 3; i++ {
		stack.Push(i)
		assert.Equal(t, i, stack.Size(), "wrong stack size")
	}

	for want := 3; want >= 1; want-- {
		value, exists := stack.Pop()
		require.True(t, exists, "stack should return true if its not empty")
		assert.Equal(t, want, value, "elements should be popped in reverse push order")
	}

	_, exists = stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")
}

func TestSimpleStack_Peek(t *testing.T) {
	stack := newSimpleStack[string]()

	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")

	stack.Push("a")
	stack.Push("b")
	value, exists := stack.Peek()
	assert.True(t, exists)
	assert.Equal(t, "b", value, "wrong element at top of stack")
	assert.Equal(t, 2, stack.Size(), "peek must not remove the element")
}

func TestSimpleStack_Pointers(t *testing.T) {
	type element struct{ id int }

	stack := New[*element]()
	first, second := &element{id: 1}, &element{id: 2}

	stack.Push(first)
	stack.Push(nil)
	stack.Push(second)

	value, exists := stack.Pop()
	require.True(t, exists)
	assert.Same(t, second, value)

	value, exists = stack.Pop()
	require.True(t, exists, "a nil element is still an element")
	assert.Nil(t, value)

	value, exists = stack.Pop()
	require.True(t, exists)
	assert.Same(t, first, value)
}

func TestSimpleStack_NilInterfaceElement(t *testing.T) {
	stack := New[error]()
	stack.Push(nil)

	value, exists := stack.Pop()
	require.True(t, exists)
	assert.NoError(t, value)
}

func TestSimpleStack_Clear(t *testing.T) {
	stack := newSimpleStack[int]()

	stack.Push(1)
	stack.Push(2)
	stack.Push(3)
	assert.Equal(t, 3, stack.Size(), "wrong stack size")
	stack.Clear()
	assert.Equal(t, 0, stack.Size(), "wrong stack size")
	assert.True(t, stack.IsEmpty(), "stack should be empty")

	_, exists := stack.Peek()
	assert.False(t, exists, "stack should return false when its empty")
	_, exists = stack.Pop()
	assert.False(t, exists, "stack should return false when its empty")

	stack.Push(4)
	value, exists := stack.Pop()
	assert.True(t, exists, "stack should be usable after Clear")
	assert.Equal(t, 4, value)
}

func TestSimpleStack_Size(t *testing.T) {
	stack := newSimpleStack[int]()

	assert.True(t, stack.IsEmpty(), "stack should initially be empty")
	for i := 0; i < 10000; i++ {
		stack.Push(i)
	}
	assert.Equal(t, 10000, stack.Size(), "wrong stack size")
	assert.False(t, stack.IsEmpty(), "stack should not be empty")
}
