package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedList_PushPopFrontBack(t *testing.T) {
	l := NewLinkedList[int]()
	require.Equal(t, int64(0), l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	require.Equal(t, int64(3), l.Len())
	require.Equal(t, []int{1, 2, 3}, l.Values())

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, int64(1), l.Len())

	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PopFront()
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)
	_, err = l.PopBack()
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)
}

func TestLinkedList_InsertBeforeAfterRemove(t *testing.T) {
	l := NewLinkedList[string]()
	b := l.PushBack("b")
	l.PushBack("d")

	a := l.InsertBefore("a", b)
	c := l.InsertAfter("c", b)
	require.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	v, err := l.Remove(b)
	require.NoError(t, err)
	require.Equal(t, "b", v)
	require.Equal(t, []string{"a", "c", "d"}, l.Values())
	require.Equal(t, int64(3), l.Len())

	// Element navigation skips the sentinel.
	require.True(t, a.HasNext())
	require.Equal(t, c, a.Next())
	require.False(t, a.HasPrev())
	require.Nil(t, a.Prev())
}

func TestLinkedList_RemoveForeignElement(t *testing.T) {
	l1 := NewLinkedList[int]()
	l2 := NewLinkedList[int]()
	l1.PushBack(1)
	e := l2.PushBack(7)

	_, err := l1.Remove(e)
	require.Error(t, err)
	require.Equal(t, int64(1), l1.Len())
	require.Equal(t, int64(1), l2.Len())

	_, err = l1.Remove(nil)
	require.Error(t, err)

	empty := NewLinkedList[int]()
	_, err = empty.Remove(e)
	require.ErrorIs(t, err, ErrLinkedListIsEmpty)
}

func TestLinkedList_ForeachBothDirections(t *testing.T) {
	l := NewLinkedList[int]()

	require.Error(t, l.Foreach(func(idx int64, e *Element[int]) error { return nil }))

	for i := 1; i <= 5; i++ {
		l.PushBack(i)
	}

	forward := make([]int, 0, 5)
	require.NoError(t, l.Foreach(func(idx int64, e *Element[int]) error {
		require.Equal(t, int64(len(forward)), idx)
		forward = append(forward, e.Value)
		return nil
	}))
	require.Equal(t, []int{1, 2, 3, 4, 5}, forward)

	backward := make([]int, 0, 5)
	l.ReverseForeach(func(idx int64, e *Element[int]) {
		backward = append(backward, e.Value)
	})
	require.Equal(t, []int{5, 4, 3, 2, 1}, backward)
}

func TestLinkedList_Clear(t *testing.T) {
	l := NewLinkedList[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}

	l.Clear()
	require.Equal(t, int64(0), l.Len())
	require.Nil(t, l.Front())
	require.Empty(t, l.Values())

	// Cleared lists accept new elements.
	l.PushBack(42)
	require.Equal(t, []int{42}, l.Values())
}
