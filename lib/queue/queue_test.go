package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedQueue_FIFO(t *testing.T) {
	q := NewLinkedQueue[int]()
	require.Equal(t, int64(0), q.Len())

	_, err := q.Poll()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
	_, err = q.Peek()
	require.ErrorIs(t, err, ErrQueueIsEmpty)

	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Offer(i))
	}
	require.Equal(t, int64(5), q.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, q.Values())

	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, head)
	require.Equal(t, int64(5), q.Len())

	for i := 1; i <= 5; i++ {
		item, err := q.Poll()
		require.NoError(t, err)
		require.Equal(t, i, item)
	}
	_, err = q.Poll()
	require.ErrorIs(t, err, ErrQueueIsEmpty)

	q.Clear()
	require.NoError(t, q.Offer(42))
	require.Equal(t, int64(1), q.Len())
}

func TestArrayQueue_BoundedRing(t *testing.T) {
	q := NewArrayQueue[string](3)

	require.NoError(t, q.Offer("a"))
	require.NoError(t, q.Offer("b"))
	require.NoError(t, q.Offer("c"))
	require.ErrorIs(t, q.Offer("overflow"), ErrQueueIsFull)
	require.Equal(t, int64(3), q.Len())

	item, err := q.Poll()
	require.NoError(t, err)
	require.Equal(t, "a", item)

	// The freed slot wraps around.
	require.NoError(t, q.Offer("d"))
	require.Equal(t, []string{"b", "c", "d"}, q.Values())

	for _, expected := range []string{"b", "c", "d"} {
		item, err = q.Poll()
		require.NoError(t, err)
		require.Equal(t, expected, item)
	}
	_, err = q.Poll()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
}

func TestArrayQueue_WrapAroundStress(t *testing.T) {
	q := NewArrayQueue[int](8)

	next, expect := 0, 0
	for round := 0; round < 100; round++ {
		for i := 0; i < 5; i++ {
			require.NoError(t, q.Offer(next))
			next++
		}
		for i := 0; i < 5; i++ {
			item, err := q.Poll()
			require.NoError(t, err)
			require.Equal(t, expect, item)
			expect++
		}
	}
	require.Equal(t, int64(0), q.Len())
}

func TestArrayQueue_DefaultCapacityAndClear(t *testing.T) {
	q := NewArrayQueue[int](0)
	capable, ok := q.(interface{ Cap() int64 })
	require.True(t, ok)
	require.Equal(t, int64(64), capable.Cap())

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Offer(i))
	}
	q.Clear()
	require.Equal(t, int64(0), q.Len())
	_, err := q.Peek()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
	require.NoError(t, q.Offer(7))
	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 7, head)
}

func TestSliceStack_LIFO(t *testing.T) {
	s := NewStack[int]()

	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackIsEmpty)
	_, err = s.Peek()
	require.ErrorIs(t, err, ErrStackIsEmpty)

	for i := 1; i <= 4; i++ {
		s.Push(i)
	}
	require.Equal(t, int64(4), s.Len())
	require.Equal(t, []int{4, 3, 2, 1}, s.Values())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 4, top)

	for i := 4; i >= 1; i-- {
		item, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, i, item)
	}
	_, err = s.Pop()
	require.ErrorIs(t, err, ErrStackIsEmpty)

	s.Push(9)
	s.Clear()
	require.Equal(t, int64(0), s.Len())
}
