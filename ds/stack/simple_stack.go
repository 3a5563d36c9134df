package stack

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// simpleStack implements a non-thread safe Stack on top of an array backed gods stack.
type simpleStack[T any] struct {
	elements *arraystack.Stack
}

// newSimpleStack returns a new non-thread safe Stack.
func newSimpleStack[T any]() *simpleStack[T] {
	return &simpleStack[T]{
		elements: arraystack.New(),
	}
}

// Push pushes an element onto the top of this Stack.
func (s *simpleStack[T]) Push(element T) {
	s.elements.Push(element)
}

// Pop removes and returns the top element of this Stack.
func (s *simpleStack[T]) Pop() (value T, exists bool) {
	element, exists := s.elements.Pop()
	if !exists {
		return value, false
	}

	value, _ = element.(T)

	return value, true
}

// Peek returns the top element of this Stack without removing it.
func (s *simpleStack[T]) Peek() (value T, exists bool) {
	element, exists := s.elements.Peek()
	if !exists {
		return value, false
	}

	value, _ = element.(T)

	return value, true
}

// Clear removes all elements from this Stack.
func (s *simpleStack[T]) Clear() {
	s.elements.Clear()
}

// Size returns the amount of elements in this Stack.
func (s *simpleStack[T]) Size() int {
	return s.elements.Size()
}

// IsEmpty checks if this Stack is empty.
func (s *simpleStack[T]) IsEmpty() bool {
	return s.elements.Empty()
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &simpleStack[int]{}
