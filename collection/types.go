// SPDX-License-Identifier: MIT

// Package collection defines the abstract container roles shared by the
// stack, queue and list packages, together with the sentinel error set
// every container reports through.
package collection

import "iter"

// Collection is the minimal surface every container exposes.
type Collection interface {
	// Size reports the number of elements currently held.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Clear drops every element and releases the backing storage.
	Clear()
}

// Stack is a last-in-first-out container.
type Stack[T any] interface {
	Collection

	// Push adds x on top.
	Push(x T)

	// Pop removes and returns the top element, or ErrEmptyCollection.
	Pop() (T, error)

	// Peek returns the top element without removing it, or ErrEmptyCollection.
	Peek() (T, error)

	// All yields elements from most- to least-recently pushed.
	All() iter.Seq[T]
}

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	Collection

	// Enqueue appends x at the tail.
	Enqueue(x T)

	// Dequeue removes and returns the oldest element, or ErrEmptyCollection.
	Dequeue() (T, error)

	// Peek returns the oldest element without removing it, or ErrEmptyCollection.
	Peek() (T, error)

	// All yields elements from oldest to newest.
	All() iter.Seq[T]
}

// Sequence is a positionally addressed container with 0-based indexes.
type Sequence[T any] interface {
	Collection

	// Get returns the element at position i, or ErrIndexOutOfRange.
	Get(i int) (T, error)

	// Insert places x so that it becomes position i; i == Size() appends.
	Insert(i int, x T) error

	// Remove deletes and returns the element at position i.
	Remove(i int) (T, error)

	// All yields elements in positional order.
	All() iter.Seq[T]
}
