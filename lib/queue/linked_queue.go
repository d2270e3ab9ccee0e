package queue

import (
	"errors"

	"github.com/benz9527/xcoll/lib/list"
)

var _ Queue[struct{}] = (*linkedQueue[struct{}])(nil) // Type check assertion

// linkedQueue grows without bound on top of the sentinel ring list.
type linkedQueue[E any] struct {
	elements list.LinkedList[E]
}

// NewLinkedQueue creates an empty unbounded FIFO queue.
func NewLinkedQueue[E any]() Queue[E] {
	return &linkedQueue[E]{
		elements: list.NewLinkedList[E](),
	}
}

func (q *linkedQueue[E]) Len() int64 {
	return q.elements.Len()
}

func (q *linkedQueue[E]) Offer(item E) error {
	q.elements.PushBack(item)
	return nil
}

func (q *linkedQueue[E]) Poll() (item E, err error) {
	item, err = q.elements.PopFront()
	if errors.Is(err, list.ErrLinkedListIsEmpty) {
		return item, ErrQueueIsEmpty
	}
	return item, err
}

func (q *linkedQueue[E]) Peek() (item E, err error) {
	front := q.elements.Front()
	if front == nil {
		return item, ErrQueueIsEmpty
	}
	return front.Value, nil
}

func (q *linkedQueue[E]) Values() []E {
	return q.elements.Values()
}

func (q *linkedQueue[E]) Clear() {
	q.elements.Clear()
}
