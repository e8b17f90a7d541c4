// SPDX-License-Identifier: MIT

package list

import (
	"iter"

	"github.com/katalvlaran/linear/collection"
)

var _ collection.Sequence[int] = (*DoublyLinked[int])(nil)

// dnode is a doubly-linked cell. next is the owning forward link;
// prev is a back-reference for O(1) predecessor lookup only.
type dnode[T any] struct {
	item T
	next *dnode[T]
	prev *dnode[T]
}

// DoublyLinked is a bidirectional list of T.
//
// n == 0 if and only if first == nil and last == nil.
// The zero value is an empty list ready to use.
type DoublyLinked[T any] struct {
	first *dnode[T]
	last  *dnode[T]
	n     int
}

// NewDoublyLinked creates a list holding xs in order.
func NewDoublyLinked[T any](xs ...T) *DoublyLinked[T] {
	l := &DoublyLinked[T]{}
	for _, x := range xs {
		l.AddTail(x)
	}

	return l
}

// AddHead inserts x before the current first element.
// Complexity: O(1).
func (l *DoublyLinked[T]) AddHead(x T) {
	nd := &dnode[T]{item: x, next: l.first}
	if l.first != nil {
		l.first.prev = nd
	} else {
		l.last = nd
	}
	l.first = nd
	l.n++
}

// AddTail appends x after the current last element.
// Complexity: O(1).
func (l *DoublyLinked[T]) AddTail(x T) {
	nd := &dnode[T]{item: x, prev: l.last}
	if l.last != nil {
		l.last.next = nd
	} else {
		l.first = nd
	}
	l.last = nd
	l.n++
}

// RemoveHead detaches the first element and returns it.
// Returns collection.ErrEmptyCollection if the list is empty.
// Complexity: O(1).
func (l *DoublyLinked[T]) RemoveHead() (T, error) {
	if l.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.unlink(l.first), nil
}

// RemoveTail detaches the last element and returns it, stepping to the new
// tail through the back-reference.
// Returns collection.ErrEmptyCollection if the list is empty.
// Complexity: O(1).
func (l *DoublyLinked[T]) RemoveTail() (T, error) {
	if l.last == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.unlink(l.last), nil
}

// Head returns the first element without removing it.
func (l *DoublyLinked[T]) Head() (T, error) {
	if l.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.first.item, nil
}

// Tail returns the last element without removing it.
func (l *DoublyLinked[T]) Tail() (T, error) {
	if l.last == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.last.item, nil
}

// Size returns the number of elements in the list.
func (l *DoublyLinked[T]) Size() int { return l.n }

// IsEmpty reports whether the list holds no elements.
func (l *DoublyLinked[T]) IsEmpty() bool { return l.n == 0 }

// Clear drops every node.
func (l *DoublyLinked[T]) Clear() {
	l.first, l.last, l.n = nil, nil, 0
}

// All returns a lazy sequence from head to tail.
func (l *DoublyLinked[T]) All() iter.Seq[T] {
	head := l.first

	return func(yield func(T) bool) {
		for p := head; p != nil; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Backward returns a lazy sequence from tail to head, following back-references.
func (l *DoublyLinked[T]) Backward() iter.Seq[T] {
	tail := l.last

	return func(yield func(T) bool) {
		for p := tail; p != nil; p = p.prev {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Slice returns the elements from head to tail in a new slice.
func (l *DoublyLinked[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for x := range l.All() {
		out = append(out, x)
	}

	return out
}

// unlink detaches nd, which must belong to l, clears its links and
// returns its element.
func (l *DoublyLinked[T]) unlink(nd *dnode[T]) T {
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.first = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.last = nd.prev
	}
	nd.next, nd.prev = nil, nil
	l.n--

	return nd.item
}
