package queue

var _ Queue[struct{}] = (*arrayQueue[struct{}])(nil) // Type check assertion

const defaultArrayQueueCapacity = 64

// arrayQueue is a fixed capacity ring buffer. Head chases tail around
// the backing array, a full ring rejects instead of overwriting.
type arrayQueue[E any] struct {
	items []E
	head  int64
	size  int64
}

// NewArrayQueue creates an empty bounded FIFO queue of the given
// capacity. A non-positive capacity falls back to 64.
func NewArrayQueue[E any](capacity int64) Queue[E] {
	if capacity <= 0 {
		capacity = defaultArrayQueueCapacity
	}
	return &arrayQueue[E]{
		items: make([]E, capacity),
	}
}

func (q *arrayQueue[E]) Len() int64 {
	return q.size
}

func (q *arrayQueue[E]) Cap() int64 {
	return int64(len(q.items))
}

func (q *arrayQueue[E]) Offer(item E) error {
	if q.size >= int64(len(q.items)) {
		return ErrQueueIsFull
	}
	q.items[(q.head+q.size)%int64(len(q.items))] = item
	q.size++
	return nil
}

func (q *arrayQueue[E]) Poll() (item E, err error) {
	if q.size == 0 {
		return item, ErrQueueIsEmpty
	}
	item = q.items[q.head]
	var zero E
	q.items[q.head] = zero // release the slot reference
	q.head = (q.head + 1) % int64(len(q.items))
	q.size--
	return item, nil
}

func (q *arrayQueue[E]) Peek() (item E, err error) {
	if q.size == 0 {
		return item, ErrQueueIsEmpty
	}
	return q.items[q.head], nil
}

func (q *arrayQueue[E]) Values() []E {
	values := make([]E, 0, q.size)
	for i := int64(0); i < q.size; i++ {
		values = append(values, q.items[(q.head+i)%int64(len(q.items))])
	}
	return values
}

func (q *arrayQueue[E]) Clear() {
	clear(q.items)
	q.head = 0
	q.size = 0
}
