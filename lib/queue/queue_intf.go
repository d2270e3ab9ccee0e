package queue

import "errors"

var (
	ErrQueueIsEmpty = errors.New("[queue] there is no element")
	ErrQueueIsFull  = errors.New("[queue] is full")
	ErrStackIsEmpty = errors.New("[stack] there is no element")
)

// Queue is the FIFO surface shared by the unbounded linked queue and
// the bounded ring queue.
//
// Not thread safe.
type Queue[E any] interface {
	Len() int64
	// Offer enqueues at the tail. The bounded ring reports
	// ErrQueueIsFull instead of overwriting.
	Offer(item E) error
	// Poll dequeues the head, ErrQueueIsEmpty when nothing is queued.
	Poll() (E, error)
	Peek() (E, error)
	Values() []E
	Clear()
}

// Stack is a LIFO sequence.
//
// Not thread safe.
type Stack[E any] interface {
	Len() int64
	Push(item E)
	Pop() (E, error)
	Peek() (E, error)
	Values() []E
	Clear()
}
