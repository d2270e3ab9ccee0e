package kv

import (
	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/iterator"

	"go.uber.org/multierr"
)

type hashMapEntry[K any, V any] struct {
	next *hashMapEntry[K, V]
	key  K
	val  V
}

func (e *hashMapEntry[K, V]) Key() K { return e.key }
func (e *hashMapEntry[K, V]) Val() V { return e.val }

var _ HashMap[uint8, struct{}] = (*chainedHashMap[uint8, struct{}])(nil) // Type check assertion

// chainedHashMap shares the chained-bucket engine shape of
// chainedHashSet, keyed by K and carrying a caller owned value slot.
type chainedHashMap[K any, V any] struct {
	buckets     []*hashMapEntry[K, V]
	hasher      infra.Hasher[K]
	equaler     infra.Equaler[K]
	keyReleaser infra.Releaser[K]
	size        int64
	capacity    uint64
	loadFactor  float64
	mutations   uint32
	loadStride  uint32
}

type HashMapOpt[K any, V any] func(*chainedHashMap[K, V])

func WithHashMapCapacity[K any, V any](capacity uint64) HashMapOpt[K, V] {
	return func(m *chainedHashMap[K, V]) {
		m.capacity = clampCapacity(capacity)
	}
}

func WithHashMapLoadFactor[K any, V any](factor float64) HashMapOpt[K, V] {
	return func(m *chainedHashMap[K, V]) {
		m.loadFactor = clampLoadFactor(factor)
	}
}

func WithHashMapLoadCheckStride[K any, V any](stride uint32) HashMapOpt[K, V] {
	return func(m *chainedHashMap[K, V]) {
		if stride > 0 {
			m.loadStride = stride
		}
	}
}

// WithHashMapKeyReleaser transfers the key ownership to the map for
// Remove, Clear and Release. Values are never auto released.
func WithHashMapKeyReleaser[K any, V any](releaser infra.Releaser[K]) HashMapOpt[K, V] {
	return func(m *chainedHashMap[K, V]) {
		m.keyReleaser = releaser
	}
}

// NewHashMap creates an empty chained hash map over hasher and equaler
// of the key type.
func NewHashMap[K any, V any](hasher infra.Hasher[K], equaler infra.Equaler[K], opts ...HashMapOpt[K, V]) HashMap[K, V] {
	if hasher == nil || equaler == nil {
		panic("[hash-map] nil hash function or nil equality function")
	}
	m := &chainedHashMap[K, V]{
		hasher:     hasher,
		equaler:    equaler,
		capacity:   defaultBucketCapacity,
		loadFactor: defaultLoadFactor,
		loadStride: defaultLoadCheckStride,
	}
	for _, o := range opts {
		o(m)
	}
	m.buckets = make([]*hashMapEntry[K, V], m.capacity)
	return m
}

func (m *chainedHashMap[K, V]) Len() int64 {
	return m.size
}

func (m *chainedHashMap[K, V]) Cap() uint64 {
	return m.capacity
}

func (m *chainedHashMap[K, V]) Put(key K, val V) (prev V, replaced bool, err error) {
	idx := m.hasher(key, m.capacity)
	if idx >= m.capacity {
		return prev, false, ErrHashMapBadBucket
	}
	for e := m.buckets[idx]; e != nil; e = e.next {
		if m.equaler(key, e.key) {
			prev, e.val = e.val, val
			return prev, true, nil
		}
	}
	m.buckets[idx] = &hashMapEntry[K, V]{key: key, val: val, next: m.buckets[idx]}
	m.size++
	m.onMutation()
	return prev, false, nil
}

func (m *chainedHashMap[K, V]) Get(key K) (val V, err error) {
	if m.size <= 0 {
		return val, ErrHashMapIsEmpty
	}
	idx := m.hasher(key, m.capacity)
	if idx >= m.capacity {
		return val, ErrHashMapBadBucket
	}
	for e := m.buckets[idx]; e != nil; e = e.next {
		if m.equaler(key, e.key) {
			return e.val, nil
		}
	}
	return val, ErrHashMapNotFound
}

func (m *chainedHashMap[K, V]) ContainsKey(key K) bool {
	_, err := m.Get(key)
	return err == nil
}

func (m *chainedHashMap[K, V]) Remove(key K) (prev V, err error) {
	if m.size <= 0 {
		return prev, ErrHashMapIsEmpty
	}
	idx := m.hasher(key, m.capacity)
	if idx >= m.capacity {
		return prev, ErrHashMapBadBucket
	}
	for p, e := (*hashMapEntry[K, V])(nil), m.buckets[idx]; e != nil; p, e = e, e.next {
		if !m.equaler(key, e.key) {
			continue
		}
		if p == nil {
			m.buckets[idx] = e.next
		} else {
			p.next = e.next
		}
		e.next = nil
		m.size--
		m.onMutation()
		if m.keyReleaser != nil {
			return e.val, m.keyReleaser(e.key)
		}
		return e.val, nil
	}
	return prev, ErrHashMapNotFound
}

func (m *chainedHashMap[K, V]) onMutation() {
	m.mutations++
	if m.mutations < m.loadStride {
		return
	}
	m.mutations = 0
	if m.capacity >= maxBucketCapacity {
		return
	}
	if float64(m.size) >= m.loadFactor*float64(m.capacity) {
		m.rehash(m.capacity << 1)
	}
}

func (m *chainedHashMap[K, V]) rehash(newCapacity uint64) {
	if newCapacity > maxBucketCapacity {
		newCapacity = maxBucketCapacity
	}
	newBuckets := make([]*hashMapEntry[K, V], newCapacity)
	for _, chain := range m.buckets {
		for e := chain; e != nil; {
			next := e.next
			idx := m.hasher(e.key, newCapacity)
			if idx >= newCapacity {
				// Out-of-range index from a misbehaving hasher pins to
				// the last bucket.
				idx = newCapacity - 1
			}
			e.next = newBuckets[idx]
			newBuckets[idx] = e
			e = next
		}
	}
	m.buckets = newBuckets
	m.capacity = newCapacity
}

func (m *chainedHashMap[K, V]) Keys() ([]K, error) {
	if m.size <= 0 {
		return nil, ErrHashMapIsEmpty
	}
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for e := chain; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys, nil
}

func (m *chainedHashMap[K, V]) Entries() ([]HashMapEntry[K, V], error) {
	if m.size <= 0 {
		return nil, ErrHashMapIsEmpty
	}
	entries := make([]HashMapEntry[K, V], 0, m.size)
	for _, chain := range m.buckets {
		for e := chain; e != nil; e = e.next {
			entries = append(entries, &hashMapEntry[K, V]{key: e.key, val: e.val})
		}
	}
	return entries, nil
}

func (m *chainedHashMap[K, V]) Iter() iterator.Iterator[HashMapEntry[K, V]] {
	entries, err := m.Entries()
	if err != nil {
		return iterator.NewSnapshot[HashMapEntry[K, V]](nil)
	}
	return iterator.NewSnapshot(entries)
}

func (m *chainedHashMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	i := int64(0)
	for _, chain := range m.buckets {
		for e := chain; e != nil; e = e.next {
			if !action(i, e.key, e.val) {
				return
			}
			i++
		}
	}
}

func (m *chainedHashMap[K, V]) Clear() error {
	var merr error
	for i, chain := range m.buckets {
		for e := chain; e != nil; {
			next := e.next
			if m.keyReleaser != nil {
				merr = multierr.Append(merr, m.keyReleaser(e.key))
			}
			e.next = nil
			e = next
		}
		m.buckets[i] = nil
	}
	m.size = 0
	m.mutations = 0
	return merr
}

func (m *chainedHashMap[K, V]) Release() error {
	err := m.Clear()
	m.buckets = nil
	m.capacity = 0
	m.keyReleaser = nil
	return err
}
