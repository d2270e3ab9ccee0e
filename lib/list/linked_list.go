package list

import (
	"sync/atomic"

	"github.com/benz9527/xcoll/lib/infra"
)

var _ LinkedList[struct{}] = (*linkedList[struct{}])(nil) // Type check assertion

type linkedList[T any] struct {
	root *Element[T]
	len  atomic.Int64
}

// NewLinkedList creates an empty sentinel ring list.
func NewLinkedList[T any]() LinkedList[T] {
	l := &linkedList[T]{}
	l.init()
	return l
}

func (l *linkedList[T]) init() {
	l.root = &Element[T]{listRef: l}
	l.root.next = l.root
	l.root.prev = l.root
	l.len.Store(0)
}

func (l *linkedList[T]) getRoot() *Element[T] {
	return l.root
}

func (l *linkedList[T]) Len() int64 {
	return l.len.Load()
}

func (l *linkedList[T]) Front() *Element[T] {
	if l.len.Load() == 0 {
		return nil
	}
	return l.root.next
}

func (l *linkedList[T]) Back() *Element[T] {
	if l.len.Load() == 0 {
		return nil
	}
	return l.root.prev
}

// insertAfter links e into the ring right after at.
func (l *linkedList[T]) insertAfter(e, at *Element[T]) *Element[T] {
	e.listRef = l
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len.Add(1)
	return e
}

func (l *linkedList[T]) PushFront(v T) *Element[T] {
	return l.insertAfter(&Element[T]{Value: v}, l.root)
}

func (l *linkedList[T]) PushBack(v T) *Element[T] {
	return l.insertAfter(&Element[T]{Value: v}, l.root.prev)
}

func (l *linkedList[T]) PopFront() (v T, err error) {
	if l.len.Load() == 0 {
		return v, ErrLinkedListIsEmpty
	}
	return l.Remove(l.root.next)
}

func (l *linkedList[T]) PopBack() (v T, err error) {
	if l.len.Load() == 0 {
		return v, ErrLinkedListIsEmpty
	}
	return l.Remove(l.root.prev)
}

func (l *linkedList[T]) InsertBefore(v T, at *Element[T]) *Element[T] {
	if at == nil || at.listRef != l {
		return nil
	}
	return l.insertAfter(&Element[T]{Value: v}, at.prev)
}

func (l *linkedList[T]) InsertAfter(v T, at *Element[T]) *Element[T] {
	if at == nil || at.listRef != l {
		return nil
	}
	return l.insertAfter(&Element[T]{Value: v}, at)
}

func (l *linkedList[T]) Remove(e *Element[T]) (v T, err error) {
	if l.len.Load() == 0 {
		return v, ErrLinkedListIsEmpty
	}
	if e == nil || e == l.root || e.listRef != l || e.prev == nil || e.next == nil {
		return v, infra.NewErrorStack("[linked-list] remove an element out of this list")
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.next = nil
	e.prev = nil
	e.listRef = nil
	l.len.Add(-1)
	return e.Value, nil
}

// Foreach, allows remove linked list elements while iterating.
func (l *linkedList[T]) Foreach(fn func(idx int64, e *Element[T]) error) error {
	if fn == nil || l.len.Load() == 0 {
		return infra.NewErrorStack("[linked-list] empty")
	}

	var (
		iter       = l.root.next
		idx  int64 = 0
	)
	for iter != l.root {
		n := iter.next
		if err := fn(idx, iter); err != nil {
			return err
		}
		iter = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *linkedList[T]) ReverseForeach(fn func(idx int64, e *Element[T])) {
	if fn == nil || l.len.Load() == 0 {
		return
	}

	var (
		iter       = l.root.prev
		idx  int64 = 0
	)
	for iter != l.root {
		p := iter.prev
		fn(idx, iter)
		iter = p
		idx++
	}
}

func (l *linkedList[T]) Values() []T {
	values := make([]T, 0, l.len.Load())
	_ = l.Foreach(func(idx int64, e *Element[T]) error {
		values = append(values, e.Value)
		return nil
	})
	return values
}

func (l *linkedList[T]) Clear() {
	// Unlink pairwise so stale elements cannot reach the ring.
	for e := l.root.next; e != l.root; {
		n := e.next
		e.next, e.prev, e.listRef = nil, nil, nil
		e = n
	}
	l.init()
}
