package kv

import (
	"sync"

	"github.com/benz9527/xcoll/lib/iterator"
)

var (
	_ HashSet[uint8]           = (*safeHashSet[uint8])(nil)           // Type check assertion
	_ HashMap[uint8, struct{}] = (*safeHashMap[uint8, struct{}])(nil) // Type check assertion
)

// safeHashSet serializes every operation of the wrapped set through
// one mutex. Chain splicing and rehash assume exclusive access.
//
// Iter snapshots the elements under the lock and keeps the lock held
// until the returned iterator is closed.
type safeHashSet[E any] struct {
	mu   sync.Mutex
	impl HashSet[E]
}

// SafeHashSet exposes Lock and Unlock besides the HashSet surface for
// caller-side check-then-act sequences over UnsafeAccess.
type SafeHashSet[E any] struct {
	safeHashSet[E]
}

// NewSafeHashSet wraps set for serialized multi goroutine access.
// The wrapper takes exclusive ownership of set.
func NewSafeHashSet[E any](set HashSet[E]) *SafeHashSet[E] {
	return &SafeHashSet[E]{safeHashSet[E]{impl: set}}
}

func (s *SafeHashSet[E]) Lock() { s.mu.Lock() }

func (s *SafeHashSet[E]) Unlock() { s.mu.Unlock() }

// UnsafeAccess hands out the bare engine. Only valid between Lock and
// Unlock.
func (s *SafeHashSet[E]) UnsafeAccess() HashSet[E] { return s.impl }

func (s *safeHashSet[E]) Len() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Len()
}

func (s *safeHashSet[E]) Cap() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Cap()
}

func (s *safeHashSet[E]) Add(item E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Add(item)
}

func (s *safeHashSet[E]) Contains(item E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Contains(item)
}

func (s *safeHashSet[E]) Remove(item E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Remove(item)
}

func (s *safeHashSet[E]) Items() ([]E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Items()
}

// Iter acquires the instance lock and does NOT release it on return.
// The iterator's Close is the release point.
func (s *safeHashSet[E]) Iter() iterator.Iterator[E] {
	s.mu.Lock()
	items, err := s.impl.Items()
	if err != nil {
		items = nil
	}
	return iterator.NewSnapshotWithRelease(items, s.mu.Unlock)
}

func (s *safeHashSet[E]) Foreach(action func(idx int64, item E) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.impl.Foreach(action)
}

func (s *safeHashSet[E]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Clear()
}

func (s *safeHashSet[E]) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Release()
}

type safeHashMap[K any, V any] struct {
	mu   sync.Mutex
	impl HashMap[K, V]
}

// SafeHashMap is the mutex-guarded delegator of HashMap, with the same
// lock-held iterator contract as SafeHashSet.
type SafeHashMap[K any, V any] struct {
	safeHashMap[K, V]
}

// NewSafeHashMap wraps m for serialized multi goroutine access.
func NewSafeHashMap[K any, V any](m HashMap[K, V]) *SafeHashMap[K, V] {
	return &SafeHashMap[K, V]{safeHashMap[K, V]{impl: m}}
}

func (m *SafeHashMap[K, V]) Lock() { m.mu.Lock() }

func (m *SafeHashMap[K, V]) Unlock() { m.mu.Unlock() }

// UnsafeAccess hands out the bare engine. Only valid between Lock and
// Unlock.
func (m *SafeHashMap[K, V]) UnsafeAccess() HashMap[K, V] { return m.impl }

func (m *safeHashMap[K, V]) Len() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Len()
}

func (m *safeHashMap[K, V]) Cap() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Cap()
}

func (m *safeHashMap[K, V]) Put(key K, val V) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Put(key, val)
}

func (m *safeHashMap[K, V]) Get(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Get(key)
}

func (m *safeHashMap[K, V]) ContainsKey(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.ContainsKey(key)
}

func (m *safeHashMap[K, V]) Remove(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Remove(key)
}

func (m *safeHashMap[K, V]) Keys() ([]K, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Keys()
}

func (m *safeHashMap[K, V]) Entries() ([]HashMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Entries()
}

// Iter acquires the instance lock and does NOT release it on return.
// The iterator's Close is the release point.
func (m *safeHashMap[K, V]) Iter() iterator.Iterator[HashMapEntry[K, V]] {
	m.mu.Lock()
	entries, err := m.impl.Entries()
	if err != nil {
		entries = nil
	}
	return iterator.NewSnapshotWithRelease(entries, m.mu.Unlock)
}

func (m *safeHashMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.impl.Foreach(action)
}

func (m *safeHashMap[K, V]) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Clear()
}

func (m *safeHashMap[K, V]) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Release()
}
