// SPDX-License-Identifier: MIT

// Package queue provides LinkedQueue, a first-in-first-out container over
// singly-linked nodes with head and tail anchors.
//
// What
//
//   - Enqueue appends at the tail, Dequeue removes from the head: O(1) each.
//   - Peek reads the head without removing it.
//   - All yields elements from oldest to newest.
//
// Errors
//
//   - collection.ErrEmptyCollection from Dequeue and Peek on an empty queue.
//     An empty queue never answers with a zero value, so a queued zero value
//     (nil pointer, "", 0) is always distinguishable from "nothing queued".
//
// Iteration
//
//	All binds to the head node present when All is called. Enqueueing or
//	dequeueing while ranging is undefined behavior; it is not detected.
//
// Concurrency
//
//	LinkedQueue is not safe for concurrent use; synchronize externally.
package queue
