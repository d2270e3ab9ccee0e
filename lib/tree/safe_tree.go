package tree

import (
	"sync"

	"github.com/benz9527/xcoll/lib/iterator"
)

var (
	_ TreeMap[uint8, struct{}] = (*safeTreeMap[uint8, struct{}])(nil) // Type check assertion
	_ TreeSet[uint8]           = (*safeTreeSet[uint8])(nil)           // Type check assertion
)

// safeTreeMap serializes every operation of the wrapped map through
// one mutex. The engine below assumes exclusive access during a call,
// rotations and splices are never safe to interleave.
//
// Iter snapshots the entries under the lock and keeps the lock held
// until the returned iterator is closed. Other goroutines stay blocked
// for the iterator's whole lifetime, which guarantees that no element
// gets released concurrently while the snapshot is being read.
type safeTreeMap[K any, V any] struct {
	mu   sync.Mutex
	impl TreeMap[K, V]
}

// NewSafeTreeMap wraps tm for serialized multi goroutine access.
// The wrapper takes exclusive ownership of tm, callers must drop their
// direct reference.
func NewSafeTreeMap[K any, V any](tm TreeMap[K, V]) *SafeTreeMap[K, V] {
	return &SafeTreeMap[K, V]{safeTreeMap[K, V]{impl: tm}}
}

// SafeTreeMap exposes Lock and Unlock besides the TreeMap surface so a
// caller can run its own check-then-act sequence atomically through
// the UnsafeAccess view.
type SafeTreeMap[K any, V any] struct {
	safeTreeMap[K, V]
}

// Lock blocks until the instance lock is acquired. Combine with
// UnsafeAccess, the locked methods would deadlock while held.
func (m *SafeTreeMap[K, V]) Lock() { m.mu.Lock() }

func (m *SafeTreeMap[K, V]) Unlock() { m.mu.Unlock() }

// UnsafeAccess hands out the bare engine. Only valid between Lock and
// Unlock.
func (m *SafeTreeMap[K, V]) UnsafeAccess() TreeMap[K, V] { return m.impl }

func (m *safeTreeMap[K, V]) Len() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Len()
}

func (m *safeTreeMap[K, V]) Root() RBNode[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Root()
}

func (m *safeTreeMap[K, V]) Put(key K, val V, ifNotPresent ...bool) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Put(key, val, ifNotPresent...)
}

func (m *safeTreeMap[K, V]) Get(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Get(key)
}

func (m *safeTreeMap[K, V]) ContainsKey(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.ContainsKey(key)
}

func (m *safeTreeMap[K, V]) First() (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.First()
}

func (m *safeTreeMap[K, V]) Last() (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Last()
}

func (m *safeTreeMap[K, V]) FirstKey() (K, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.FirstKey()
}

func (m *safeTreeMap[K, V]) LastKey() (K, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.LastKey()
}

func (m *safeTreeMap[K, V]) Floor(key K) (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Floor(key)
}

func (m *safeTreeMap[K, V]) Ceiling(key K) (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Ceiling(key)
}

func (m *safeTreeMap[K, V]) Lower(key K) (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Lower(key)
}

func (m *safeTreeMap[K, V]) Higher(key K) (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Higher(key)
}

func (m *safeTreeMap[K, V]) PollFirst() (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.PollFirst()
}

func (m *safeTreeMap[K, V]) PollLast() (TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.PollLast()
}

func (m *safeTreeMap[K, V]) Remove(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Remove(key)
}

func (m *safeTreeMap[K, V]) Keys() ([]K, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Keys()
}

func (m *safeTreeMap[K, V]) Entries() ([]TreeMapEntry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Entries()
}

// Iter acquires the instance lock and does NOT release it on return.
// The iterator's Close is the release point.
func (m *safeTreeMap[K, V]) Iter() iterator.Iterator[TreeMapEntry[K, V]] {
	m.mu.Lock()
	entries, err := m.impl.Entries()
	if err != nil {
		entries = nil
	}
	return iterator.NewSnapshotWithRelease(entries, m.mu.Unlock)
}

func (m *safeTreeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.impl.Foreach(action)
}

func (m *safeTreeMap[K, V]) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Clear()
}

func (m *safeTreeMap[K, V]) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.impl.Release()
}

type safeTreeSet[E any] struct {
	mu   sync.Mutex
	impl TreeSet[E]
}

// SafeTreeSet is the mutex-guarded delegator of TreeSet, with the same
// lock-held iterator contract as SafeTreeMap.
type SafeTreeSet[E any] struct {
	safeTreeSet[E]
}

// NewSafeTreeSet wraps ts for serialized multi goroutine access.
func NewSafeTreeSet[E any](ts TreeSet[E]) *SafeTreeSet[E] {
	return &SafeTreeSet[E]{safeTreeSet[E]{impl: ts}}
}

func (s *SafeTreeSet[E]) Lock() { s.mu.Lock() }

func (s *SafeTreeSet[E]) Unlock() { s.mu.Unlock() }

// UnsafeAccess hands out the bare engine. Only valid between Lock and
// Unlock.
func (s *SafeTreeSet[E]) UnsafeAccess() TreeSet[E] { return s.impl }

func (s *safeTreeSet[E]) Len() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Len()
}

func (s *safeTreeSet[E]) Add(item E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Add(item)
}

func (s *safeTreeSet[E]) Contains(item E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Contains(item)
}

func (s *safeTreeSet[E]) First() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.First()
}

func (s *safeTreeSet[E]) Last() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Last()
}

func (s *safeTreeSet[E]) Floor(item E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Floor(item)
}

func (s *safeTreeSet[E]) Ceiling(item E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Ceiling(item)
}

func (s *safeTreeSet[E]) Lower(item E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Lower(item)
}

func (s *safeTreeSet[E]) Higher(item E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Higher(item)
}

func (s *safeTreeSet[E]) PollFirst() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.PollFirst()
}

func (s *safeTreeSet[E]) PollLast() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.PollLast()
}

func (s *safeTreeSet[E]) Remove(item E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Remove(item)
}

func (s *safeTreeSet[E]) Items() ([]E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Items()
}

// Iter acquires the instance lock and does NOT release it on return.
// The iterator's Close is the release point.
func (s *safeTreeSet[E]) Iter() iterator.Iterator[E] {
	s.mu.Lock()
	items, err := s.impl.Items()
	if err != nil {
		items = nil
	}
	return iterator.NewSnapshotWithRelease(items, s.mu.Unlock)
}

func (s *safeTreeSet[E]) Foreach(action func(idx int64, item E) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.impl.Foreach(action)
}

func (s *safeTreeSet[E]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Clear()
}

func (s *safeTreeSet[E]) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.impl.Release()
}
