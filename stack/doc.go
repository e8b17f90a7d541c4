// SPDX-License-Identifier: MIT

// Package stack provides two interchangeable last-in-first-out containers:
// ArrayStack over a resizable contiguous buffer and LinkedStack over
// singly-linked nodes.
//
// What
//
//   - Push / Pop / Peek with LIFO order.
//   - Size / IsEmpty / Clear.
//   - All: a lazy sequence from the most- to the least-recently pushed element.
//   - Slice: the same order materialized into a fresh slice.
//
// Why two implementations
//
//   - ArrayStack keeps elements contiguous and allocates only when it resizes.
//     Push and Pop are amortized O(1): the buffer doubles when full and halves
//     when less than a quarter full, so alternating Push/Pop at a boundary
//     cannot trigger a resize on every call.
//   - LinkedStack allocates one node per element but never copies: every
//     operation is O(1) in the worst case.
//
// Options (ArrayStack only)
//
//   - WithCapacity(c): initial buffer capacity, c >= MinCapacity.
//     Values below MinCapacity panic (programmer error).
//
// Errors
//
//   - collection.ErrEmptyCollection from Pop, Peek and Bottom on an empty stack.
//     The stack stays empty and usable.
//
// Iteration
//
//	All binds to the structure as it is when All is called. Pushing or popping
//	while ranging over the sequence is undefined behavior; it is not detected.
//
// Concurrency
//
//	Neither type is safe for concurrent use. Callers sharing a stack across
//	goroutines must synchronize externally.
//
// Usage
//
//	s := stack.NewArrayStack[string](stack.WithCapacity(1))
//	s.Push("a")
//	s.Push("b")
//	top, err := s.Pop() // "b", nil
package stack
