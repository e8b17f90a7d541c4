package queue_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linear/collection"
	"github.com/katalvlaran/linear/queue"
)

// ExampleLinkedQueue serves requests in arrival order.
func ExampleLinkedQueue() {
	q := queue.NewLinkedQueue[string]()
	q.EnqueueAll("alice", "bob", "carol")

	next, _ := q.Dequeue()
	fmt.Println("serving:", next)
	fmt.Println("waiting:", q.Slice())

	q.Clear()
	if _, err := q.Dequeue(); errors.Is(err, collection.ErrEmptyCollection) {
		fmt.Println("nobody left")
	}
	// Output:
	// serving: alice
	// waiting: [bob carol]
	// nobody left
}
