// SPDX-License-Identifier: MIT

package stack

import (
	"iter"

	"github.com/katalvlaran/linear/collection"
)

var _ collection.Stack[int] = (*ArrayStack[int])(nil)

// ArrayStack is a LIFO stack over a contiguous, generically typed buffer.
//
// len(items) is the capacity; n is the element count, 0 <= n <= len(items).
// The zero value is an empty stack ready to use.
type ArrayStack[T any] struct {
	items []T
	n     int
}

// NewArrayStack creates an empty ArrayStack.
// Complexity: O(capacity).
func NewArrayStack[T any](opts ...Option) *ArrayStack[T] {
	o := gatherOptions(opts...)

	return &ArrayStack[T]{items: make([]T, o.capacity)}
}

// Push places x on top of the stack, doubling the buffer first when it is full.
// Complexity: amortized O(1).
func (s *ArrayStack[T]) Push(x T) {
	if s.n == len(s.items) {
		s.resize(max(2*len(s.items), MinCapacity))
	}
	s.items[s.n] = x
	s.n++
}

// PushAll pushes xs in argument order; the last argument ends up on top.
func (s *ArrayStack[T]) PushAll(xs ...T) {
	for _, x := range xs {
		s.Push(x)
	}
}

// Pop removes and returns the top element.
// The buffer halves once fewer than a quarter of its slots are occupied.
// Returns collection.ErrEmptyCollection if the stack is empty.
// Complexity: amortized O(1).
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	if s.n == 0 {
		return zero, collection.ErrEmptyCollection
	}
	s.n--
	x := s.items[s.n]
	s.items[s.n] = zero // drop the reference held by the vacated slot
	if 4*s.n < len(s.items) {
		s.resize(max(len(s.items)/2, MinCapacity))
	}

	return x, nil
}

// Peek returns the top element without removing it.
// Returns collection.ErrEmptyCollection if the stack is empty.
func (s *ArrayStack[T]) Peek() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return s.items[s.n-1], nil
}

// Size returns the number of elements on the stack.
func (s *ArrayStack[T]) Size() int { return s.n }

// IsEmpty reports whether the stack holds no elements.
func (s *ArrayStack[T]) IsEmpty() bool { return s.n == 0 }

// Cap returns the current buffer capacity.
func (s *ArrayStack[T]) Cap() int { return len(s.items) }

// Clear drops every element and shrinks the buffer to MinCapacity.
func (s *ArrayStack[T]) Clear() {
	s.items = make([]T, MinCapacity)
	s.n = 0
}

// All returns a lazy sequence from top to bottom.
// The sequence is bound to the buffer and count at the time All is called;
// mutating the stack while ranging over it is undefined behavior.
func (s *ArrayStack[T]) All() iter.Seq[T] {
	items, n := s.items, s.n

	return func(yield func(T) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// Slice returns the elements from top to bottom in a new slice.
func (s *ArrayStack[T]) Slice() []T {
	out := make([]T, 0, s.n)
	for x := range s.All() {
		out = append(out, x)
	}

	return out
}

// resize moves the n live elements into a fresh buffer of capacity c.
// The old buffer is released to the garbage collector.
func (s *ArrayStack[T]) resize(c int) {
	if c == len(s.items) {
		return
	}
	buf := make([]T, c)
	copy(buf, s.items[:s.n])
	s.items = buf
}
