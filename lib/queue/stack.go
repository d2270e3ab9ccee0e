package queue

var _ Stack[struct{}] = (*sliceStack[struct{}])(nil) // Type check assertion

type sliceStack[E any] struct {
	items []E
}

// NewStack creates an empty LIFO stack backed by a growable slice.
func NewStack[E any]() Stack[E] {
	return &sliceStack[E]{}
}

func (s *sliceStack[E]) Len() int64 {
	return int64(len(s.items))
}

func (s *sliceStack[E]) Push(item E) {
	s.items = append(s.items, item)
}

func (s *sliceStack[E]) Pop() (item E, err error) {
	if len(s.items) == 0 {
		return item, ErrStackIsEmpty
	}
	top := len(s.items) - 1
	item = s.items[top]
	var zero E
	s.items[top] = zero // release the slot reference
	s.items = s.items[:top]
	return item, nil
}

func (s *sliceStack[E]) Peek() (item E, err error) {
	if len(s.items) == 0 {
		return item, ErrStackIsEmpty
	}
	return s.items[len(s.items)-1], nil
}

func (s *sliceStack[E]) Values() []E {
	// Top first.
	values := make([]E, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		values = append(values, s.items[i])
	}
	return values
}

func (s *sliceStack[E]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
