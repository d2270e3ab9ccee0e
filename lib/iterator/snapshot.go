package iterator

import "sync"

var _ Iterator[struct{}] = (*snapshotIterator[struct{}])(nil) // Type check assertion

type snapshotIterator[E any] struct {
	items   []E
	offset  int
	release func()
	once    sync.Once
}

func (it *snapshotIterator[E]) HasNext() bool {
	return it.offset < len(it.items)
}

func (it *snapshotIterator[E]) Next() (e E, err error) {
	if it.offset >= len(it.items) {
		return e, ErrIteratorEnd
	}
	e = it.items[it.offset]
	it.offset++
	return e, nil
}

func (it *snapshotIterator[E]) Close() error {
	it.once.Do(func() {
		it.items = nil
		if it.release != nil {
			it.release()
		}
	})
	return nil
}

// NewSnapshot wraps an already materialized sequence of elements.
// The iterator takes over the slice header only. Elements are not
// copied and not owned.
func NewSnapshot[E any](items []E) Iterator[E] {
	return &snapshotIterator[E]{items: items}
}

// NewSnapshotWithRelease runs release exactly once when the iterator
// is closed, even if Close is called multiple times.
func NewSnapshotWithRelease[E any](items []E, release func()) Iterator[E] {
	return &snapshotIterator[E]{items: items, release: release}
}
