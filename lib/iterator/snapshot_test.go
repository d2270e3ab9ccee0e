package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshot_DrainAndEnd(t *testing.T) {
	it := NewSnapshot([]int{1, 2, 3})

	for _, expected := range []int{1, 2, 3} {
		require.True(t, it.HasNext())
		item, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, expected, item)
	}

	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, ErrIteratorEnd)
	// Exhaustion is sticky.
	_, err = it.Next()
	require.ErrorIs(t, err, ErrIteratorEnd)
	require.NoError(t, it.Close())
}

func TestSnapshot_Empty(t *testing.T) {
	it := NewSnapshot[string](nil)
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, ErrIteratorEnd)
	require.NoError(t, it.Close())
}

func TestSnapshot_AliasesProvidedSlice(t *testing.T) {
	items := []int{10, 20, 30}
	it := NewSnapshot(items)
	items[0] = 999

	first, err := it.Next()
	require.NoError(t, err)
	// The snapshot aliases the slice handed in; the caller copies when
	// isolation matters, which every collection Iter does.
	require.Equal(t, 999, first)
}

func TestSnapshotWithRelease_ClosesOnce(t *testing.T) {
	releases := 0
	it := NewSnapshotWithRelease([]int{1}, func() { releases++ })

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())
	require.Equal(t, 1, releases)

	// A closed iterator stops yielding.
	require.False(t, it.HasNext())
	_, err = it.Next()
	require.ErrorIs(t, err, ErrIteratorEnd)
}

func TestSnapshotWithRelease_CloseWithoutDrain(t *testing.T) {
	releases := 0
	it := NewSnapshotWithRelease([]int{1, 2, 3}, func() { releases++ })
	require.NoError(t, it.Close())
	require.Equal(t, 1, releases)
}
