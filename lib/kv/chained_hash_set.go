package kv

import (
	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/iterator"

	"go.uber.org/multierr"
)

// References:
// https://en.wikipedia.org/wiki/Hash_table#Separate_chaining
// https://github.com/AdoptOpenJDK/openjdk-jdk11/blob/master/src/java.base/share/classes/java/util/HashMap.java

type hashSetEntry[E any] struct {
	next *hashSetEntry[E]
	item E
}

var _ HashSet[uint8] = (*chainedHashSet[uint8])(nil) // Type check assertion

type chainedHashSet[E any] struct {
	buckets    []*hashSetEntry[E]
	hasher     infra.Hasher[E]
	equaler    infra.Equaler[E]
	releaser   infra.Releaser[E]
	size       int64
	capacity   uint64
	loadFactor float64
	// Mutations since the last load inspection. The load factor is
	// only consulted once the stride is reached, not on every op.
	mutations  uint32
	loadStride uint32
}

type HashSetOpt[E any] func(*chainedHashSet[E])

// WithHashSetCapacity overrides the initial bucket capacity, clamped
// to [4, 1<<30].
func WithHashSetCapacity[E any](capacity uint64) HashSetOpt[E] {
	return func(set *chainedHashSet[E]) {
		set.capacity = clampCapacity(capacity)
	}
}

// WithHashSetLoadFactor overrides the resize threshold. A factor out
// of (0, 1] falls back to the 0.75 default.
func WithHashSetLoadFactor[E any](factor float64) HashSetOpt[E] {
	return func(set *chainedHashSet[E]) {
		set.loadFactor = clampLoadFactor(factor)
	}
}

// WithHashSetLoadCheckStride overrides how many mutations pass between
// two load inspections. Zero keeps the default.
func WithHashSetLoadCheckStride[E any](stride uint32) HashSetOpt[E] {
	return func(set *chainedHashSet[E]) {
		if stride > 0 {
			set.loadStride = stride
		}
	}
}

// WithHashSetReleaser transfers the element ownership to the set for
// Remove, Clear and Release.
func WithHashSetReleaser[E any](releaser infra.Releaser[E]) HashSetOpt[E] {
	return func(set *chainedHashSet[E]) {
		set.releaser = releaser
	}
}

func clampCapacity(capacity uint64) uint64 {
	if capacity < minBucketCapacity {
		return minBucketCapacity
	} else if capacity > maxBucketCapacity {
		return maxBucketCapacity
	}
	return capacity
}

func clampLoadFactor(factor float64) float64 {
	if factor <= 0 || factor > 1.0 {
		return defaultLoadFactor
	}
	return factor
}

// NewHashSet creates an empty chained hash set. The hasher must map
// any item into [0, capacity) for every capacity it is handed, the
// equaler must agree with it.
func NewHashSet[E any](hasher infra.Hasher[E], equaler infra.Equaler[E], opts ...HashSetOpt[E]) HashSet[E] {
	if hasher == nil || equaler == nil {
		panic("[hash-set] nil hash function or nil equality function")
	}
	set := &chainedHashSet[E]{
		hasher:     hasher,
		equaler:    equaler,
		capacity:   defaultBucketCapacity,
		loadFactor: defaultLoadFactor,
		loadStride: defaultLoadCheckStride,
	}
	for _, o := range opts {
		o(set)
	}
	set.buckets = make([]*hashSetEntry[E], set.capacity)
	return set
}

func (set *chainedHashSet[E]) Len() int64 {
	return set.size
}

func (set *chainedHashSet[E]) Cap() uint64 {
	return set.capacity
}

func (set *chainedHashSet[E]) Add(item E) (bool, error) {
	idx := set.hasher(item, set.capacity)
	if idx >= set.capacity {
		return false, ErrHashSetBadBucket
	}
	for e := set.buckets[idx]; e != nil; e = e.next {
		if set.equaler(item, e.item) {
			return false, nil
		}
	}
	// Prepend, O(1) regardless of the chain length.
	set.buckets[idx] = &hashSetEntry[E]{item: item, next: set.buckets[idx]}
	set.size++
	set.onMutation()
	return true, nil
}

func (set *chainedHashSet[E]) Contains(item E) bool {
	idx := set.hasher(item, set.capacity)
	if idx >= set.capacity {
		return false
	}
	for e := set.buckets[idx]; e != nil; e = e.next {
		if set.equaler(item, e.item) {
			return true
		}
	}
	return false
}

func (set *chainedHashSet[E]) Remove(item E) error {
	if set.size <= 0 {
		return ErrHashSetIsEmpty
	}
	idx := set.hasher(item, set.capacity)
	if idx >= set.capacity {
		return ErrHashSetBadBucket
	}
	for prev, e := (*hashSetEntry[E])(nil), set.buckets[idx]; e != nil; prev, e = e, e.next {
		if !set.equaler(item, e.item) {
			continue
		}
		if prev == nil {
			set.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		set.size--
		set.onMutation()
		if set.releaser != nil {
			return set.releaser(e.item)
		}
		return nil
	}
	return ErrHashSetNotFound
}

// onMutation batches the load inspection: only every loadStride-th
// mutation compares the incremental load against the threshold.
func (set *chainedHashSet[E]) onMutation() {
	set.mutations++
	if set.mutations < set.loadStride {
		return
	}
	set.mutations = 0
	if set.capacity >= maxBucketCapacity {
		return
	}
	if float64(set.size) >= set.loadFactor*float64(set.capacity) {
		set.rehash(set.capacity << 1)
	}
}

// rehash relinks every entry into a fresh doubled bucket array. The
// hash function is recomputed with the new capacity for each element,
// the engine never caches bucket indices.
func (set *chainedHashSet[E]) rehash(newCapacity uint64) {
	if newCapacity > maxBucketCapacity {
		newCapacity = maxBucketCapacity
	}
	newBuckets := make([]*hashSetEntry[E], newCapacity)
	for _, chain := range set.buckets {
		for e := chain; e != nil; {
			next := e.next
			idx := set.hasher(e.item, newCapacity)
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
	set.buckets = newBuckets
	set.capacity = newCapacity
}

func (set *chainedHashSet[E]) Items() ([]E, error) {
	if set.size <= 0 {
		return nil, ErrHashSetIsEmpty
	}
	items := make([]E, 0, set.size)
	for _, chain := range set.buckets {
		for e := chain; e != nil; e = e.next {
			items = append(items, e.item)
		}
	}
	return items, nil
}

func (set *chainedHashSet[E]) Iter() iterator.Iterator[E] {
	items, err := set.Items()
	if err != nil {
		return iterator.NewSnapshot[E](nil)
	}
	return iterator.NewSnapshot(items)
}

func (set *chainedHashSet[E]) Foreach(action func(idx int64, item E) bool) {
	i := int64(0)
	for _, chain := range set.buckets {
		for e := chain; e != nil; e = e.next {
			if !action(i, e.item) {
				return
			}
			i++
		}
	}
}

func (set *chainedHashSet[E]) Clear() error {
	var merr error
	for i, chain := range set.buckets {
		for e := chain; e != nil; {
			next := e.next
			if set.releaser != nil {
				merr = multierr.Append(merr, set.releaser(e.item))
			}
			e.next = nil
			e = next
		}
		set.buckets[i] = nil
	}
	set.size = 0
	set.mutations = 0
	return merr
}

func (set *chainedHashSet[E]) Release() error {
	err := set.Clear()
	set.buckets = nil
	set.capacity = 0
	set.releaser = nil
	return err
}
