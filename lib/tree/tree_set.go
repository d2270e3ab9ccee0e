package tree

import (
	"errors"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/iterator"
)

var _ TreeSet[uint8] = (*treeSet[uint8])(nil) // Type check assertion

// treeSet specializes the red-black map with the element as the key
// and an elided value slot.
type treeSet[E any] struct {
	tm TreeMap[E, struct{}]
}

type treeSetOptions[E any] struct {
	releaser infra.Releaser[E]
}

type TreeSetOpt[E any] func(*treeSetOptions[E])

// WithTreeSetReleaser transfers the element ownership to the set for
// Remove, Clear and Release.
func WithTreeSetReleaser[E any](releaser infra.Releaser[E]) TreeSetOpt[E] {
	return func(o *treeSetOptions[E]) {
		o.releaser = releaser
	}
}

// NewTreeSet creates an empty ordered set over the total order of cmp.
func NewTreeSet[E any](cmp infra.Comparator[E], opts ...TreeSetOpt[E]) TreeSet[E] {
	o := &treeSetOptions[E]{}
	for _, opt := range opts {
		opt(o)
	}
	mapOpts := make([]TreeMapOpt[E, struct{}], 0, 1)
	if o.releaser != nil {
		mapOpts = append(mapOpts, WithTreeMapKeyReleaser[E, struct{}](o.releaser))
	}
	return &treeSet[E]{
		tm: NewTreeMap[E, struct{}](cmp, mapOpts...),
	}
}

func setErr(err error) error {
	switch {
	case errors.Is(err, ErrTreeMapIsEmpty):
		return ErrTreeSetIsEmpty
	case errors.Is(err, ErrTreeMapNotFound):
		return ErrTreeSetNotFound
	}
	return err
}

func (ts *treeSet[E]) Len() int64 {
	return ts.tm.Len()
}

func (ts *treeSet[E]) Add(item E) (bool, error) {
	_, _, err := ts.tm.Put(item, struct{}{}, true)
	if errors.Is(err, ErrTreeMapDisabledValReplace) {
		return false, nil
	} else if err != nil {
		return false, setErr(err)
	}
	return true, nil
}

func (ts *treeSet[E]) Contains(item E) bool {
	return ts.tm.ContainsKey(item)
}

func (ts *treeSet[E]) First() (item E, err error) {
	key, err := ts.tm.FirstKey()
	if err != nil {
		return item, setErr(err)
	}
	return key, nil
}

func (ts *treeSet[E]) Last() (item E, err error) {
	key, err := ts.tm.LastKey()
	if err != nil {
		return item, setErr(err)
	}
	return key, nil
}

func (ts *treeSet[E]) Floor(item E) (res E, err error) {
	e, err := ts.tm.Floor(item)
	if err != nil {
		return res, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) Ceiling(item E) (res E, err error) {
	e, err := ts.tm.Ceiling(item)
	if err != nil {
		return res, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) Lower(item E) (res E, err error) {
	e, err := ts.tm.Lower(item)
	if err != nil {
		return res, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) Higher(item E) (res E, err error) {
	e, err := ts.tm.Higher(item)
	if err != nil {
		return res, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) PollFirst() (item E, err error) {
	e, err := ts.tm.PollFirst()
	if err != nil {
		return item, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) PollLast() (item E, err error) {
	e, err := ts.tm.PollLast()
	if err != nil {
		return item, setErr(err)
	}
	return e.Key(), nil
}

func (ts *treeSet[E]) Remove(item E) error {
	if _, err := ts.tm.Remove(item); err != nil {
		return setErr(err)
	}
	return nil
}

func (ts *treeSet[E]) Items() ([]E, error) {
	items, err := ts.tm.Keys()
	if err != nil {
		return nil, setErr(err)
	}
	return items, nil
}

func (ts *treeSet[E]) Iter() iterator.Iterator[E] {
	items, err := ts.Items()
	if err != nil {
		return iterator.NewSnapshot[E](nil)
	}
	return iterator.NewSnapshot(items)
}

func (ts *treeSet[E]) Foreach(action func(idx int64, item E) bool) {
	ts.tm.Foreach(func(idx int64, key E, _ struct{}) bool {
		return action(idx, key)
	})
}

func (ts *treeSet[E]) Clear() error {
	return ts.tm.Clear()
}

func (ts *treeSet[E]) Release() error {
	return ts.tm.Release()
}
