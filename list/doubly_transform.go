// SPDX-License-Identifier: MIT

package list

// Invert returns a new list holding the elements in reverse order.
// The receiver is not modified; the result owns freshly allocated nodes,
// so later changes to either list never show through the other.
// Element values are copied as-is (a pointer element still points to the same value).
// Complexity: O(n).
func (l *DoublyLinked[T]) Invert() *DoublyLinked[T] {
	out := &DoublyLinked[T]{}
	for p := l.first; p != nil; p = p.next {
		out.AddHead(p.item)
	}

	return out
}

// SplitList divides the list at its midpoint. front receives the first
// ceil(n/2) elements and back the rest, both in original order.
//
// The nodes move rather than being copied: afterwards the receiver is empty
// (and still usable), and no node is shared between front and back.
// Complexity: O(n/2) to locate the midpoint.
func (l *DoublyLinked[T]) SplitList() (front, back *DoublyLinked[T]) {
	front, back = &DoublyLinked[T]{}, &DoublyLinked[T]{}
	if l.n == 0 {
		return front, back
	}

	k := (l.n + 1) / 2
	mid := l.nodeAt(k - 1)

	front.first, front.last, front.n = l.first, mid, k
	if mid.next != nil {
		back.first, back.last, back.n = mid.next, l.last, l.n-k
		back.first.prev = nil
		mid.next = nil
	}
	l.first, l.last, l.n = nil, nil, 0

	return front, back
}

// Append moves every node of other onto the tail of l in O(1).
// other is left empty. Appending a list to itself is a no-op.
func (l *DoublyLinked[T]) Append(other *DoublyLinked[T]) {
	if other == nil || other == l || other.n == 0 {
		return
	}
	if l.last == nil {
		l.first = other.first
	} else {
		l.last.next = other.first
		other.first.prev = l.last
	}
	l.last = other.last
	l.n += other.n
	other.first, other.last, other.n = nil, nil, 0
}
