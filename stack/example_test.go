package stack_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linear/collection"
	"github.com/katalvlaran/linear/stack"
)

// ExampleArrayStack pushes three words onto a stack that starts with room
// for one element, then drains it.
func ExampleArrayStack() {
	s := stack.NewArrayStack[string](stack.WithCapacity(1))
	s.PushAll("a", "b", "c")
	fmt.Println("cap after pushes:", s.Cap())

	var drained []string
	for !s.IsEmpty() {
		top, _ := s.Pop()
		drained = append(drained, top)
	}
	fmt.Println(drained)

	if _, err := s.Pop(); errors.Is(err, collection.ErrEmptyCollection) {
		fmt.Println("empty:", err)
	}
	// Output:
	// cap after pushes: 4
	// [c b a]
	// empty: collection: collection is empty
}

// ExampleLinkedStack_All walks the stack from top to bottom without popping.
func ExampleLinkedStack_All() {
	s := stack.NewLinkedStack[int]()
	for i := 1; i <= 4; i++ {
		s.Push(i * 10)
	}
	for v := range s.All() {
		fmt.Print(v, " ")
	}
	fmt.Println("| size", s.Size())
	// Output:
	// 40 30 20 10 | size 4
}
