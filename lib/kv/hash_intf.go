package kv

import (
	"errors"
	"io"

	"github.com/benz9527/xcoll/lib/iterator"
)

var (
	ErrHashSetIsEmpty   = errors.New("[hash-set] there is no element")
	ErrHashSetNotFound  = errors.New("[hash-set] element not found")
	ErrHashSetBadBucket = errors.New("[hash-set] hash function is out of the bucket range")
	ErrHashMapIsEmpty   = errors.New("[hash-map] there is no entry")
	ErrHashMapNotFound  = errors.New("[hash-map] key not found")
	ErrHashMapBadBucket = errors.New("[hash-map] hash function is out of the bucket range")
)

const (
	defaultBucketCapacity  uint64 = 16
	minBucketCapacity      uint64 = 4
	maxBucketCapacity      uint64 = 1 << 30
	defaultLoadFactor             = 0.75
	defaultLoadCheckStride uint32 = 16
)

// HashSet is an open-hashing set with separate chaining. Collisions
// share a bucket chain, a new element is prepended to its chain. The
// load is tracked incrementally and only inspected every few mutations
// (the load check stride), so the O(n) rehash cost amortizes across
// many O(1) operations instead of taxing every insert.
//
// Not thread safe. Wrap with NewSafeHashSet for serialized access.
type HashSet[E any] interface {
	Len() int64
	Cap() uint64
	// Add reports false when an equal element is already chained.
	Add(item E) (bool, error)
	Contains(item E) bool
	// Remove unlinks the element from its chain.
	// ErrHashSetIsEmpty on an empty set, ErrHashSetNotFound when the
	// set holds elements but not this one.
	Remove(item E) error
	// Items materializes a snapshot in bucket order, then chain order.
	// No ordering stability is promised across calls that mutate the
	// set in between.
	Items() ([]E, error)
	Iter() iterator.Iterator[E]
	Foreach(action func(idx int64, item E) bool)
	Clear() error
	Release() error
}

type HashMapEntry[K any, V any] interface {
	Key() K
	Val() V
}

// HashMap extends the chained-bucket engine to key value entries.
// Key ownership follows the optional key releaser; values are always
// caller owned.
type HashMap[K any, V any] interface {
	Len() int64
	Cap() uint64
	Put(key K, val V) (prev V, replaced bool, err error)
	Get(key K) (V, error)
	ContainsKey(key K) bool
	Remove(key K) (V, error)
	Keys() ([]K, error)
	Entries() ([]HashMapEntry[K, V], error)
	Iter() iterator.Iterator[HashMapEntry[K, V]]
	Foreach(action func(idx int64, key K, val V) bool)
	Clear() error
	Release() error
}

type SafeStoreKeyFilterFunc[K comparable] func(key K) bool

func defaultAllKeysFilter[K comparable](key K) bool {
	return true
}

type Closable interface {
	io.Closer
}

// ThreadSafeStorer is the plain builtin-map store guarded by a RWMutex,
// for callers who need key value storage without ordering or custom
// hashing.
type ThreadSafeStorer[K comparable, V any] interface {
	Purge() error
	AddOrUpdate(key K, obj V)
	Replace(items map[K]V)
	Delete(key K)
	Get(key K) (item V, exists bool)
	ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K
	ListValues(keys ...K) (items []V)
}
