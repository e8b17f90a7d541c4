// SPDX-License-Identifier: MIT

// Package linear is a small library of generic linear containers:
// stacks, a queue and linked lists, all generic over the element type.
//
// What is inside?
//
//	collection/  shared role interfaces (Collection, Stack, Queue, Sequence)
//	             and the sentinel errors every container returns
//	stack/       ArrayStack (resizable buffer, amortized O(1)) and
//	             LinkedStack (linked nodes, worst-case O(1))
//	queue/       LinkedQueue (head/tail anchored FIFO)
//	list/        DoublyLinked (ends, positions, invert, split, append)
//	             and SinglyLinked (head-only)
//
// Common ground
//
//   - Removing from, or peeking into, an empty container returns
//     collection.ErrEmptyCollection; it never hands back an ambiguous zero value.
//   - Positional operations return errors wrapping collection.ErrIndexOutOfRange
//     and leave the container unchanged.
//   - Every container has a usable zero value and an All() iter.Seq[T] for
//     range-over-func loops. Mutating a container while ranging over it is
//     undefined behavior.
//   - No container is safe for concurrent use; callers synchronize externally.
//
// Quick example:
//
//	s := stack.NewArrayStack[string]()
//	s.PushAll("a", "b", "c")
//	for v := range s.All() {
//		fmt.Println(v) // c, b, a
//	}
//
//	go get github.com/katalvlaran/linear
package linear
