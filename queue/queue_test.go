package queue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linear/collection"
	"github.com/katalvlaran/linear/queue"
)

// TestLinkedQueue_Scenario enqueues 1,2,3 and drains them in FIFO order.
func TestLinkedQueue_Scenario(t *testing.T) {
	q := queue.NewLinkedQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	for _, want := range []int{1, 2} {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 1, q.Size())

	got, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 3, got)

	_, err = q.Dequeue()
	require.ErrorIs(t, err, collection.ErrEmptyCollection)
	require.True(t, q.IsEmpty())
	require.Empty(t, q.Slice())
}

// TestLinkedQueue_EmptyPeek checks Peek on an empty queue and after refill.
func TestLinkedQueue_EmptyPeek(t *testing.T) {
	var q queue.LinkedQueue[string]
	_, err := q.Peek()
	require.ErrorIs(t, err, collection.ErrEmptyCollection)

	q.EnqueueAll("first", "second")
	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "first", head)
	require.Equal(t, 2, q.Size())
}

// TestLinkedQueue_NilElement shows a queued nil is not mistaken for "empty".
func TestLinkedQueue_NilElement(t *testing.T) {
	q := queue.NewLinkedQueue[*int]()
	q.Enqueue(nil)

	got, err := q.Dequeue()
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = q.Dequeue()
	require.ErrorIs(t, err, collection.ErrEmptyCollection)
	require.Nil(t, got)
}

// TestLinkedQueue_ReuseAfterDrain verifies both anchors reset on the last dequeue.
func TestLinkedQueue_ReuseAfterDrain(t *testing.T) {
	q := queue.NewLinkedQueue[int]()
	for round := 0; round < 3; round++ {
		q.EnqueueAll(1, 2)
		_, _ = q.Dequeue()
		_, _ = q.Dequeue()
		require.True(t, q.IsEmpty())

		q.Enqueue(round)
		require.Equal(t, []int{round}, q.Slice())
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
}

// TestLinkedQueue_AllOrder checks iteration order and early termination.
func TestLinkedQueue_AllOrder(t *testing.T) {
	q := queue.NewLinkedQueue[string]()
	q.EnqueueAll("a", "b", "c", "d")

	var all []string
	for v := range q.All() {
		all = append(all, v)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, all)

	var firstTwo []string
	for v := range q.All() {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, firstTwo)
	require.Equal(t, 4, q.Size())
}

// TestLinkedQueue_Clear drops everything and keeps the queue usable.
func TestLinkedQueue_Clear(t *testing.T) {
	q := queue.NewLinkedQueue[int]()
	q.EnqueueAll(1, 2, 3)
	q.Clear()
	require.Equal(t, 0, q.Size())
	_, err := q.Peek()
	require.ErrorIs(t, err, collection.ErrEmptyCollection)

	q.Enqueue(9)
	require.Equal(t, []int{9}, q.Slice())
}

// TestLinkedQueue_RandomOps interleaves enqueues and dequeues against a slice model.
func TestLinkedQueue_RandomOps(t *testing.T) {
	var q collection.Queue[int] = queue.NewLinkedQueue[int]()
	rng := rand.New(rand.NewSource(7))
	var model []int
	in, out := 0, 0

	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			v := rng.Int()
			q.Enqueue(v)
			model = append(model, v)
			in++
		} else {
			got, err := q.Dequeue()
			if len(model) == 0 {
				require.ErrorIs(t, err, collection.ErrEmptyCollection)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, model[0], got)
			model = model[1:]
			out++
		}
		require.Equal(t, in-out, q.Size())
		require.Equal(t, q.Size() == 0, q.IsEmpty())
	}

	var got []int
	for v := range q.All() {
		got = append(got, v)
	}
	if len(model) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, model, got)
	}
}
