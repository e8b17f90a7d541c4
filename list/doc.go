// SPDX-License-Identifier: MIT

// Package list provides linked sequences: DoublyLinked, a bidirectional list,
// and SinglyLinked, a forward-only list. Both support positional access.
//
// What (DoublyLinked)
//
//   - Ends: AddHead, RemoveHead, AddTail, RemoveTail, Head, Tail: O(1).
//   - Positions: Get, Insert, Remove: O(min(i, n-i)), walking from the nearer end.
//   - Invert returns a reversed copy; the receiver is left untouched.
//   - SplitList moves the nodes into two new lists, the first holding
//     ceil(n/2) elements; the receiver is left empty.
//   - Append splices another list onto the tail in O(1), emptying it.
//   - Iteration: All (head→tail), Backward (tail→head).
//
// What (SinglyLinked)
//
//   - AddHead, RemoveHead, AddTail, Head, Tail: O(1).
//   - RemoveTail: O(n), the predecessor of the tail is found by walking from the head.
//   - Get, Insert, Remove: O(i).
//   - Invert returns a reversed copy; the receiver is left untouched.
//   - Iteration: All (head→tail).
//
// Node links
//
//	Every node is reachable from the list through the forward chain
//	(first → next → ... → last). The prev field is a back-reference used
//	only to step backwards; nothing is ever detached or handed to another
//	list by following prev alone. A removed node has both links cleared, and
//	no node is ever shared between two lists.
//
// Indexes
//
//	Positions are 0-based. Get and Remove accept [0, Size()); Insert accepts
//	[0, Size()], where Size() appends. Anything else returns an error wrapping
//	collection.ErrIndexOutOfRange and leaves the list unchanged.
//
// Errors
//
//   - collection.ErrEmptyCollection from RemoveHead, RemoveTail, Head, Tail on
//     an empty list, for both list types.
//   - collection.ErrIndexOutOfRange (wrapped with index and size) from Get,
//     Insert, Remove, for both list types.
//
// Iteration
//
//	All and Backward bind to the end node present when they are called.
//	Structural mutation while ranging is undefined behavior and is not detected.
//
// Concurrency
//
//	Neither list type is safe for concurrent use; synchronize externally.
package list
