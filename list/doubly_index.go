// SPDX-License-Identifier: MIT

package list

import "github.com/katalvlaran/linear/collection"

// Get returns the element at position i.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i < Size().
// Complexity: O(min(i, n-i)).
func (l *DoublyLinked[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, collection.IndexError(i, l.n)
	}

	return l.nodeAt(i).item, nil
}

// Insert places x so that it becomes position i. Insert(Size(), x) behaves
// as AddTail and Insert(0, x) as AddHead.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i <= Size().
// Complexity: O(min(i, n-i)).
func (l *DoublyLinked[T]) Insert(i int, x T) error {
	switch {
	case i < 0 || i > l.n:
		return collection.IndexError(i, l.n)
	case i == 0:
		l.AddHead(x)
	case i == l.n:
		l.AddTail(x)
	default:
		at := l.nodeAt(i)
		nd := &dnode[T]{item: x, next: at, prev: at.prev}
		at.prev.next = nd
		at.prev = nd
		l.n++
	}

	return nil
}

// Remove detaches the element at position i and returns it.
// Returns an error wrapping collection.ErrIndexOutOfRange unless 0 <= i < Size().
// Complexity: O(min(i, n-i)).
func (l *DoublyLinked[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, collection.IndexError(i, l.n)
	}

	return l.unlink(l.nodeAt(i)), nil
}

// nodeAt walks to position i from whichever end is closer.
// i must already be validated against [0, n).
func (l *DoublyLinked[T]) nodeAt(i int) *dnode[T] {
	if i < l.n/2 {
		p := l.first
		for k := 0; k < i; k++ {
			p = p.next
		}
		return p
	}
	p := l.last
	for k := l.n - 1; k > i; k-- {
		p = p.prev
	}

	return p
}
