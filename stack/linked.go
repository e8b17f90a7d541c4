// SPDX-License-Identifier: MIT

package stack

import (
	"iter"

	"github.com/katalvlaran/linear/collection"
)

var _ collection.Stack[int] = (*LinkedStack[int])(nil)

// node is a singly-linked cell; it is owned by its predecessor,
// or by the stack itself when it is the top.
type node[T any] struct {
	item T
	next *node[T]
}

// LinkedStack is a LIFO stack over singly-linked nodes.
//
// first is the top, last is the bottom (oldest) node.
// n == 0 if and only if first == nil and last == nil.
// The zero value is an empty stack ready to use.
type LinkedStack[T any] struct {
	first *node[T]
	last  *node[T]
	n     int
}

// NewLinkedStack creates an empty LinkedStack.
func NewLinkedStack[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push links a new node holding x ahead of the current top.
// Complexity: O(1).
func (s *LinkedStack[T]) Push(x T) {
	s.first = &node[T]{item: x, next: s.first}
	if s.last == nil {
		s.last = s.first
	}
	s.n++
}

// PushAll pushes xs in argument order; the last argument ends up on top.
func (s *LinkedStack[T]) PushAll(xs ...T) {
	for _, x := range xs {
		s.Push(x)
	}
}

// Pop detaches the top node and returns its element.
// Returns collection.ErrEmptyCollection if the stack is empty.
// Complexity: O(1).
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}
	top := s.first
	s.first = top.next
	top.next = nil
	s.n--
	if s.n == 0 {
		s.last = nil
	}

	return top.item, nil
}

// Peek returns the top element without removing it.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *LinkedStack[T]) Peek() (T, error) {
	if s.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return s.first.item, nil
}

// Bottom returns the oldest element without removing it.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *LinkedStack[T]) Bottom() (T, error) {
	if s.last == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return s.last.item, nil
}

// Size returns the number of elements on the stack.
func (s *LinkedStack[T]) Size() int { return s.n }

// IsEmpty reports whether the stack holds no elements.
func (s *LinkedStack[T]) IsEmpty() bool { return s.n == 0 }

// Clear drops every node.
func (s *LinkedStack[T]) Clear() {
	s.first, s.last, s.n = nil, nil, 0
}

// All returns a lazy sequence from top to bottom, starting at the node
// that is on top when All is called. Mutating the stack while ranging
// over it is undefined behavior.
func (s *LinkedStack[T]) All() iter.Seq[T] {
	head := s.first

	return func(yield func(T) bool) {
		for p := head; p != nil; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Slice returns the elements from top to bottom in a new slice.
func (s *LinkedStack[T]) Slice() []T {
	out := make([]T, 0, s.n)
	for x := range s.All() {
		out = append(out, x)
	}

	return out
}
