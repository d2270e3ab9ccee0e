package infra

// The collection engines never interpret the elements they store.
// All element-aware behaviors are injected through the callback
// contracts below and must stay stable across a structure's lifetime.

// Comparator is a total-order function over keys or elements.
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return a positive value), turn to right part.
//  3. i < j (return a negative value), turn to left part.
type Comparator[K any] func(i, j K) int64

// Hasher maps an item to a bucket index in [0, capacity).
// It must be deterministic for a given item and recomputable for any
// capacity value, because the capacity changes across a resize and the
// engines never cache hash results.
type Hasher[E any] func(item E, capacity uint64) uint64

// Equaler reports whether two items are the same element.
// It must be consistent with the Hasher handed to the same structure:
// equal items hash to the same bucket for every capacity.
type Equaler[E any] func(i, j E) bool

// Releaser hands the ownership of an element back from a structure to
// the callback during clear, remove or release. A structure invokes it
// at most once per owned element.
type Releaser[E any] func(item E) error
