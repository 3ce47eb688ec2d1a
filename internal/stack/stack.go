// Package stack provides the growable LIFO used by the iterative tree walks.
//
// A Stack is private to the walk that created it and is not safe for
// concurrent use.
package stack

const defaultHint = 10

// Stack is a last-in first-out worklist.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for hint items before it grows.
func New[T any](hint int) *Stack[T] {
	if hint <= 0 {
		hint = defaultHint
	}
	return &Stack[T]{items: make([]T, 0, hint)}
}

// Push adds v on top of the stack and returns the new depth.
func (s *Stack[T]) Push(v T) int {
	s.items = append(s.items, v)
	return len(s.items)
}

// Pop removes and returns the top item. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	return s.items[n-1], true
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Reset drops every item and releases the backing array.
func (s *Stack[T]) Reset() {
	if s == nil {
		return
	}
	s.items = nil
}
