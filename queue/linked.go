// SPDX-License-Identifier: MIT

package queue

import (
	"iter"

	"github.com/katalvlaran/linear/collection"
)

var _ collection.Queue[int] = (*LinkedQueue[int])(nil)

// node is a singly-linked cell owned by its predecessor (or the queue head).
type node[T any] struct {
	item T
	next *node[T]
}

// LinkedQueue is a FIFO queue over singly-linked nodes.
//
// first is the oldest node, last the newest.
// n == 0 if and only if first == nil and last == nil.
// The zero value is an empty queue ready to use.
type LinkedQueue[T any] struct {
	first *node[T]
	last  *node[T]
	n     int
}

// NewLinkedQueue creates an empty LinkedQueue.
func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue appends x at the tail.
// Complexity: O(1).
func (q *LinkedQueue[T]) Enqueue(x T) {
	nd := &node[T]{item: x}
	if q.first == nil {
		q.first = nd
	} else {
		q.last.next = nd
	}
	q.last = nd
	q.n++
}

// EnqueueAll enqueues xs in argument order.
func (q *LinkedQueue[T]) EnqueueAll(xs ...T) {
	for _, x := range xs {
		q.Enqueue(x)
	}
}

// Dequeue removes and returns the oldest element.
// Returns collection.ErrEmptyCollection if the queue is empty.
// Complexity: O(1).
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}
	head := q.first
	q.first = head.next
	head.next = nil
	q.n--
	if q.n == 0 {
		q.last = nil
	}

	return head.item, nil
}

// Peek returns the oldest element without removing it.
// Returns collection.ErrEmptyCollection if the queue is empty.
func (q *LinkedQueue[T]) Peek() (T, error) {
	if q.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return q.first.item, nil
}

// Size returns the number of queued elements.
func (q *LinkedQueue[T]) Size() int { return q.n }

// IsEmpty reports whether the queue holds no elements.
func (q *LinkedQueue[T]) IsEmpty() bool { return q.n == 0 }

// Clear drops every node.
func (q *LinkedQueue[T]) Clear() {
	q.first, q.last, q.n = nil, nil, 0
}

// All returns a lazy sequence from oldest to newest.
// Mutating the queue while ranging over it is undefined behavior.
func (q *LinkedQueue[T]) All() iter.Seq[T] {
	head := q.first

	return func(yield func(T) bool) {
		for p := head; p != nil; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Slice returns the elements from oldest to newest in a new slice.
func (q *LinkedQueue[T]) Slice() []T {
	out := make([]T, 0, q.n)
	for x := range q.All() {
		out = append(out, x)
	}

	return out
}
