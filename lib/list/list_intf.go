package list

import "errors"

var (
	ErrLinkedListIsEmpty = errors.New("[linked-list] there is no element")
)

// Element is a node of the sentinel ring. Next and Prev stop at the
// ring boundary and report nil instead of exposing the sentinel.
type Element[T any] struct {
	prev, next *Element[T]
	listRef    *linkedList[T]
	Value      T
}

func (e *Element[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil && e.next != e.listRef.getRoot()
}

func (e *Element[T]) HasPrev() bool {
	if e == nil {
		return false
	}
	return e.prev != nil && e.prev != e.listRef.getRoot()
}

func (e *Element[T]) Next() *Element[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

func (e *Element[T]) Prev() *Element[T] {
	if !e.HasPrev() {
		return nil
	}
	return e.prev
}

// LinkedList is a doubly linked list closed into a ring through one
// sentinel root, the classic circular layout. Front and Back are both
// one hop away from the sentinel.
//
// Not thread safe.
type LinkedList[T any] interface {
	Len() int64
	Front() *Element[T]
	Back() *Element[T]
	PushFront(v T) *Element[T]
	PushBack(v T) *Element[T]
	PopFront() (T, error)
	PopBack() (T, error)
	InsertBefore(v T, at *Element[T]) *Element[T]
	InsertAfter(v T, at *Element[T]) *Element[T]
	Remove(e *Element[T]) (T, error)
	Foreach(fn func(idx int64, e *Element[T]) error) error
	ReverseForeach(fn func(idx int64, e *Element[T]))
	Values() []T
	Clear()
}
