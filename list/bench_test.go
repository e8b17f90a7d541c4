package list_test

import (
	"testing"

	"github.com/katalvlaran/linear/list"
)

// BenchmarkDoublyLinked_Ends cycles elements through both ends.
func BenchmarkDoublyLinked_Ends(b *testing.B) {
	l := list.NewDoublyLinked[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.AddTail(i)
		l.AddHead(i)
		_, _ = l.RemoveHead()
		_, _ = l.RemoveTail()
	}
}

// BenchmarkDoublyLinked_Get reads every position of a list with N elements.
func BenchmarkDoublyLinked_Get(b *testing.B) {
	const N = 1024
	l := list.NewDoublyLinked[int]()
	for j := 0; j < N; j++ {
		l.AddTail(j)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < N; j++ {
			_, _ = l.Get(j)
		}
	}
}

// BenchmarkDoublyLinked_SplitAppend splits a list and splices it back.
func BenchmarkDoublyLinked_SplitAppend(b *testing.B) {
	const N = 1024
	l := list.NewDoublyLinked[int]()
	for j := 0; j < N; j++ {
		l.AddTail(j)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		front, back := l.SplitList()
		front.Append(back)
		l = front
	}
}
