package iterator

import (
	"errors"
	"io"
)

var (
	ErrIteratorEnd = errors.New("[iterator] end of iteration")
)

// Iterator walks a point-in-time snapshot of a collection.
// Single pass and forward only. It never reflects mutations applied to
// the source structure after its creation, and it is not restartable.
//
// Close releases the snapshot backing storage and runs the release
// hook, never the elements themselves. The thread-safe collection
// delegators hand their instance lock over as the release hook, so a
// caller must close an iterator obtained from them to unblock other
// accessors.
type Iterator[E any] interface {
	io.Closer
	HasNext() bool
	Next() (E, error)
}
