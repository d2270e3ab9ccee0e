package kv

import (
	"sync"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
)

func TestSafeHashSet_ConcurrentAddRemove(t *testing.T) {
	s := NewSafeHashSet[int](NewHashSet[int](DefaultHasher[int](), DefaultEqualer[int]()))

	pool, err := ants.NewPool(16)
	require.NoError(t, err)
	defer pool.Release()

	var wg sync.WaitGroup
	const total = 2000
	wg.Add(total)
	for i := 0; i < total; i++ {
		item := i
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			added, err := s.Add(item)
			require.NoError(t, err)
			require.True(t, added)
		}))
	}
	wg.Wait()
	require.Equal(t, int64(total), s.Len())

	wg.Add(total)
	for i := 0; i < total; i++ {
		item := i
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			require.NoError(t, s.Remove(item))
		}))
	}
	wg.Wait()
	require.Equal(t, int64(0), s.Len())
}

func TestSafeHashSet_IterHoldsLockUntilClose(t *testing.T) {
	s := NewSafeHashSet[int](NewHashSet[int](DefaultHasher[int](), DefaultEqualer[int]()))
	for i := 0; i < 8; i++ {
		_, err := s.Add(i)
		require.NoError(t, err)
	}

	it := s.Iter()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Add(100)
	}()

	select {
	case <-done:
		require.FailNow(t, "mutation went through while the iterator held the lock")
	case <-time.After(50 * time.Millisecond):
	}

	count := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		count++
	}
	require.Equal(t, 8, count)
	require.NoError(t, it.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "mutation stayed blocked after the iterator closed")
	}
	require.True(t, s.Contains(100))
}

func TestSafeHashMap_ConcurrentPut(t *testing.T) {
	m := NewSafeHashMap[string, int](newStrIntHashMap())

	pool, err := ants.NewPool(8)
	require.NoError(t, err)
	defer pool.Release()

	keys := genStrItems(500)
	var wg sync.WaitGroup
	wg.Add(len(keys))
	for i, key := range keys {
		i, key := i, key
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			_, _, err := m.Put(key, i)
			require.NoError(t, err)
		}))
	}
	wg.Wait()
	require.Equal(t, int64(len(keys)), m.Len())

	for i, key := range keys {
		val, err := m.Get(key)
		require.NoError(t, err)
		require.Equal(t, i, val)
	}
}

func TestSafeHashMap_LockUnsafeAccess(t *testing.T) {
	m := NewSafeHashMap[string, int](newStrIntHashMap())

	m.Lock()
	raw := m.UnsafeAccess()
	for i, key := range genStrItems(4) {
		_, _, err := raw.Put(key, i)
		require.NoError(t, err)
	}
	m.Unlock()

	require.Equal(t, int64(4), m.Len())
	require.True(t, m.ContainsKey("item-00002"))
}

func TestSafeHashMap_IterReleasesOnClose(t *testing.T) {
	m := NewSafeHashMap[string, int](newStrIntHashMap())
	keys := genStrItems(5)
	for i, key := range keys {
		_, _, err := m.Put(key, i)
		require.NoError(t, err)
	}

	it := m.Iter()
	collected := map[string]int{}
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		collected[e.Key()] = e.Val()
	}
	require.Len(t, collected, 5)
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())

	_, _, err := m.Put("late", 99)
	require.NoError(t, err)
	require.Equal(t, int64(6), m.Len())
}
