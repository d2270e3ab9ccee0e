package tree

import (
	"testing"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestTreeSet_AddContainsRemove(t *testing.T) {
	ts := NewTreeSet[int64](infra.OrderedKeyComparator[int64]())

	for _, item := range []int64{9, 3, 27, 1, 81} {
		added, err := ts.Add(item)
		require.NoError(t, err)
		require.True(t, added)
	}
	require.Equal(t, int64(5), ts.Len())

	// Duplicates report false without an error.
	added, err := ts.Add(27)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, int64(5), ts.Len())

	require.True(t, ts.Contains(81))
	require.False(t, ts.Contains(80))

	require.NoError(t, ts.Remove(27))
	require.False(t, ts.Contains(27))
	require.ErrorIs(t, ts.Remove(27), ErrTreeSetNotFound)
	require.Equal(t, int64(4), ts.Len())
}

func TestTreeSet_EmptyAndNotFoundAreDistinct(t *testing.T) {
	ts := NewTreeSet[int64](infra.OrderedKeyComparator[int64]())

	require.ErrorIs(t, ts.Remove(1), ErrTreeSetIsEmpty)
	_, err := ts.First()
	require.ErrorIs(t, err, ErrTreeSetIsEmpty)
	_, err = ts.Last()
	require.ErrorIs(t, err, ErrTreeSetIsEmpty)
	_, err = ts.Floor(1)
	require.ErrorIs(t, err, ErrTreeSetIsEmpty)
	_, err = ts.PollFirst()
	require.ErrorIs(t, err, ErrTreeSetIsEmpty)
	_, err = ts.Items()
	require.ErrorIs(t, err, ErrTreeSetIsEmpty)

	_, err = ts.Add(10)
	require.NoError(t, err)
	require.ErrorIs(t, ts.Remove(1), ErrTreeSetNotFound)
	_, err = ts.Ceiling(11)
	require.ErrorIs(t, err, ErrTreeSetNotFound)
}

func TestTreeSet_NavigationAndPoll(t *testing.T) {
	ts := NewTreeSet[int64](infra.OrderedKeyComparator[int64]())
	for _, item := range lo.Shuffle([]int64{10, 20, 30, 40, 50}) {
		_, err := ts.Add(item)
		require.NoError(t, err)
	}

	first, err := ts.First()
	require.NoError(t, err)
	require.Equal(t, int64(10), first)
	last, err := ts.Last()
	require.NoError(t, err)
	require.Equal(t, int64(50), last)

	floor, err := ts.Floor(35)
	require.NoError(t, err)
	require.Equal(t, int64(30), floor)
	ceiling, err := ts.Ceiling(35)
	require.NoError(t, err)
	require.Equal(t, int64(40), ceiling)
	lower, err := ts.Lower(30)
	require.NoError(t, err)
	require.Equal(t, int64(20), lower)
	higher, err := ts.Higher(30)
	require.NoError(t, err)
	require.Equal(t, int64(40), higher)

	polled, err := ts.PollFirst()
	require.NoError(t, err)
	require.Equal(t, int64(10), polled)
	polled, err = ts.PollLast()
	require.NoError(t, err)
	require.Equal(t, int64(50), polled)
	require.Equal(t, int64(3), ts.Len())

	items, err := ts.Items()
	require.NoError(t, err)
	require.Equal(t, []int64{20, 30, 40}, items)
}

func TestTreeSet_IterAndForeach(t *testing.T) {
	ts := NewTreeSet[int64](infra.OrderedKeyComparator[int64]())
	for _, item := range []int64{3, 1, 2} {
		_, err := ts.Add(item)
		require.NoError(t, err)
	}

	expected := []int64{1, 2, 3}
	ts.Foreach(func(idx int64, item int64) bool {
		require.Equal(t, expected[idx], item)
		return true
	})

	it := ts.Iter()
	require.NoError(t, ts.Clear())
	collected := make([]int64, 0, 3)
	for it.HasNext() {
		item, err := it.Next()
		require.NoError(t, err)
		collected = append(collected, item)
	}
	require.Equal(t, expected, collected)
	require.NoError(t, it.Close())
}

func TestTreeSet_ReleaserOnRemoveAndClear(t *testing.T) {
	released := make([]string, 0, 4)
	ts := NewTreeSet[string](
		infra.OrderedKeyComparator[string](),
		WithTreeSetReleaser[string](func(item string) error {
			released = append(released, item)
			return nil
		}),
	)

	for _, item := range []string{"b", "a", "d", "c"} {
		_, err := ts.Add(item)
		require.NoError(t, err)
	}
	// Remove releases the stored element, Clear releases the rest.
	require.NoError(t, ts.Remove("c"))
	require.Equal(t, []string{"c"}, released)
	require.NoError(t, ts.Clear())
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, released)
	require.Equal(t, int64(0), ts.Len())
	require.NoError(t, ts.Release())
}
