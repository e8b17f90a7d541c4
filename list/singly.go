// SPDX-License-Identifier: MIT

package list

import (
	"iter"

	"github.com/katalvlaran/linear/collection"
)

var _ collection.Sequence[int] = (*SinglyLinked[int])(nil)

// snode is a singly-linked cell owned by its predecessor, or by the list
// when it is the head.
type snode[T any] struct {
	item T
	next *snode[T]
}

// SinglyLinked is a forward-only list.
//
// first is the head, last the tail; last is kept so AddTail is O(1).
// n == 0 if and only if first == nil and last == nil.
// The zero value is an empty list ready to use.
type SinglyLinked[T any] struct {
	first *snode[T]
	last  *snode[T]
	n     int
}

// NewSinglyLinked creates a list holding xs in order.
func NewSinglyLinked[T any](xs ...T) *SinglyLinked[T] {
	l := &SinglyLinked[T]{}
	for _, x := range xs {
		l.AddTail(x)
	}

	return l
}

// AddHead inserts x before the current first element.
// Complexity: O(1).
func (l *SinglyLinked[T]) AddHead(x T) {
	l.first = &snode[T]{item: x, next: l.first}
	if l.last == nil {
		l.last = l.first
	}
	l.n++
}

// AddTail appends x after the current last element.
// Complexity: O(1).
func (l *SinglyLinked[T]) AddTail(x T) {
	nd := &snode[T]{item: x}
	if l.last == nil {
		l.first = nd
	} else {
		l.last.next = nd
	}
	l.last = nd
	l.n++
}

// RemoveHead detaches the first element and returns it.
// Returns collection.ErrEmptyCollection if the list is empty.
// Complexity: O(1).
func (l *SinglyLinked[T]) RemoveHead() (T, error) {
	if l.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.unlinkAfter(nil), nil
}

// RemoveTail detaches the last element and returns it. Without back links
// the new tail is found by walking from the head.
// Returns collection.ErrEmptyCollection if the list is empty.
// Complexity: O(n).
func (l *SinglyLinked[T]) RemoveTail() (T, error) {
	if l.last == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}
	if l.n == 1 {
		return l.unlinkAfter(nil), nil
	}

	return l.unlinkAfter(l.nodeAt(l.n - 2)), nil
}

// Head returns the first element without removing it.
func (l *SinglyLinked[T]) Head() (T, error) {
	if l.first == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.first.item, nil
}

// Tail returns the last element without removing it.
func (l *SinglyLinked[T]) Tail() (T, error) {
	if l.last == nil {
		var zero T
		return zero, collection.ErrEmptyCollection
	}

	return l.last.item, nil
}

// Get returns the element at position i.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i < Size().
// Complexity: O(i).
func (l *SinglyLinked[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, collection.IndexError(i, l.n)
	}

	return l.nodeAt(i).item, nil
}

// Insert places x so that it becomes position i; Insert(Size(), x) appends.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i <= Size().
// Complexity: O(i).
func (l *SinglyLinked[T]) Insert(i int, x T) error {
	switch {
	case i < 0 || i > l.n:
		return collection.IndexError(i, l.n)
	case i == 0:
		l.AddHead(x)
	case i == l.n:
		l.AddTail(x)
	default:
		prev := l.nodeAt(i - 1)
		prev.next = &snode[T]{item: x, next: prev.next}
		l.n++
	}

	return nil
}

// Remove detaches the element at position i and returns it.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i < Size().
// Complexity: O(i).
func (l *SinglyLinked[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, collection.IndexError(i, l.n)
	}
	if i == 0 {
		return l.unlinkAfter(nil), nil
	}

	return l.unlinkAfter(l.nodeAt(i - 1)), nil
}

// Invert returns a new list holding the elements in reverse order.
// The receiver is not modified and shares no nodes with the result.
// Complexity: O(n).
func (l *SinglyLinked[T]) Invert() *SinglyLinked[T] {
	out := &SinglyLinked[T]{}
	for p := l.first; p != nil; p = p.next {
		out.AddHead(p.item)
	}

	return out
}

// Size returns the number of elements in the list.
func (l *SinglyLinked[T]) Size() int { return l.n }

// IsEmpty reports whether the list holds no elements.
func (l *SinglyLinked[T]) IsEmpty() bool { return l.n == 0 }

// Clear drops every node.
func (l *SinglyLinked[T]) Clear() { l.first, l.last, l.n = nil, nil, 0 }

// All returns a lazy sequence from head to tail.
func (l *SinglyLinked[T]) All() iter.Seq[T] {
	head := l.first

	return func(yield func(T) bool) {
		for p := head; p != nil; p = p.next {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Slice returns the elements from head to tail in a new slice.
func (l *SinglyLinked[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for x := range l.All() {
		out = append(out, x)
	}

	return out
}

// unlinkAfter detaches the node following prev (the head when prev is nil),
// which must exist, and returns its element.
func (l *SinglyLinked[T]) unlinkAfter(prev *snode[T]) T {
	var nd *snode[T]
	if prev == nil {
		nd = l.first
		l.first = nd.next
	} else {
		nd = prev.next
		prev.next = nd.next
	}
	if nd == l.last {
		l.last = prev
	}
	nd.next = nil
	l.n--

	return nd.item
}

// nodeAt walks i steps from the head. i must already be validated against [0, n).
func (l *SinglyLinked[T]) nodeAt(i int) *snode[T] {
	p := l.first
	for k := 0; k < i; k++ {
		p = p.next
	}

	return p
}
