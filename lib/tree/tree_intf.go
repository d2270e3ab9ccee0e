package tree

import (
	"errors"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/iterator"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrTreeMapIsEmpty            = errors.New("[tree-map] there is no entry")
	ErrTreeMapNotFound           = errors.New("[tree-map] key not found")
	ErrTreeMapDisabledValReplace = errors.New("[tree-map] value replace is disabled")
	ErrTreeSetIsEmpty            = errors.New("[tree-set] there is no element")
	ErrTreeSetNotFound           = errors.New("[tree-set] element not found")
)

type RBNode[K any, V any] interface {
	Key() K
	Val() V
	HasKeyVal() bool
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

type TreeMapEntry[K any, V any] interface {
	Key() K
	Val() V
}

// TreeMap is an ordered map keyed by a caller supplied comparator.
// Key handles stay owned by the caller unless a key releaser option is
// given, in which case Clear and Release take over the key ownership.
// Values are never released by the map.
//
// Not thread safe. Wrap with NewSafeTreeMap for serialized access.
type TreeMap[K any, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	// Put inserts a new entry or replaces the value of a comparator
	// equal key. A replacement reports the previous value and performs
	// no structural rebalance. ifNotPresent[0] == true degrades a
	// would-be replacement into ErrTreeMapDisabledValReplace.
	Put(key K, val V, ifNotPresent ...bool) (prev V, replaced bool, err error)
	Get(key K) (V, error)
	ContainsKey(key K) bool
	First() (TreeMapEntry[K, V], error)
	Last() (TreeMapEntry[K, V], error)
	FirstKey() (K, error)
	LastKey() (K, error)
	// Floor returns the entry with the greatest key <= key.
	// ErrTreeMapIsEmpty when the whole map is empty,
	// ErrTreeMapNotFound when no entry qualifies.
	Floor(key K) (TreeMapEntry[K, V], error)
	// Ceiling returns the entry with the least key >= key.
	Ceiling(key K) (TreeMapEntry[K, V], error)
	// Lower returns the entry with the greatest key < key.
	Lower(key K) (TreeMapEntry[K, V], error)
	// Higher returns the entry with the least key > key.
	Higher(key K) (TreeMapEntry[K, V], error)
	PollFirst() (TreeMapEntry[K, V], error)
	PollLast() (TreeMapEntry[K, V], error)
	// Remove detaches the entry of key and hands its value back. The
	// stored key is released when a key releaser is set. PollFirst and
	// PollLast hand the whole entry back instead and never release.
	Remove(key K) (V, error)
	Keys() ([]K, error)
	Entries() ([]TreeMapEntry[K, V], error)
	Iter() iterator.Iterator[TreeMapEntry[K, V]]
	Foreach(action func(idx int64, key K, val V) bool)
	Clear() error
	Release() error
}

// TreeSet is the key-only specialization of TreeMap.
type TreeSet[E any] interface {
	Len() int64
	// Add reports false when a comparator equal element is already
	// present. The set is left untouched in that case.
	Add(item E) (bool, error)
	Contains(item E) bool
	First() (E, error)
	Last() (E, error)
	Floor(item E) (E, error)
	Ceiling(item E) (E, error)
	Lower(item E) (E, error)
	Higher(item E) (E, error)
	PollFirst() (E, error)
	PollLast() (E, error)
	Remove(item E) error
	Items() ([]E, error)
	Iter() iterator.Iterator[E]
	Foreach(action func(idx int64, item E) bool)
	Clear() error
	Release() error
}

type TreeMapOpt[K any, V any] func(*treeMap[K, V])

// WithTreeMapKeyReleaser transfers the key ownership to the map for
// Remove, Clear and Release.
func WithTreeMapKeyReleaser[K any, V any](releaser infra.Releaser[K]) TreeMapOpt[K, V] {
	return func(tm *treeMap[K, V]) {
		tm.keyReleaser = releaser
	}
}

// WithTreeMapBorrowSucc lets a two-children removal borrow the
// in-order successor instead of the predecessor.
func WithTreeMapBorrowSucc[K any, V any]() TreeMapOpt[K, V] {
	return func(tm *treeMap[K, V]) {
		tm.isRmBorrowSucc = true
	}
}
