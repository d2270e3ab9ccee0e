package kv

import (
	"log/slog"
	"reflect"
	"sync"
)

var _ ThreadSafeStorer[string, any] = (*threadSafeMap[string, any])(nil) // Type check assertion

type threadSafeMap[K comparable, V any] struct {
	lock           sync.RWMutex
	items          map[K]V
	isClosableItem bool
}

func (t *threadSafeMap[K, V]) AddOrUpdate(key K, obj V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items[key] = obj
}

func (t *threadSafeMap[K, V]) Replace(items map[K]V) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items = items
}

func (t *threadSafeMap[K, V]) Delete(key K) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if _, exists := t.items[key]; exists {
		delete(t.items, key)
	}
}

func (t *threadSafeMap[K, V]) Get(key K) (item V, exists bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	item, exists = t.items[key]
	return
}

func (t *threadSafeMap[K, V]) ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K {
	realFilters := make([]SafeStoreKeyFilterFunc[K], 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			realFilters = append(realFilters, filter)
		}
	}
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	t.lock.RLock()
	defer t.lock.RUnlock()

	keys := make([]K, 0, len(t.items))
	for key := range t.items {
		for _, filter := range realFilters {
			if filter(key) {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}

func (t *threadSafeMap[K, V]) ListValues(keys ...K) (items []V) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	if len(keys) > 0 {
		values := make([]V, 0, len(keys))
		for _, key := range keys {
			if item, exists := t.items[key]; exists {
				values = append(values, item)
			}
		}
		return values
	}

	values := make([]V, 0, len(t.items))
	for _, item := range t.items {
		values = append(values, item)
	}
	return values
}

func (t *threadSafeMap[K, V]) Purge() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.isClosableItem {
		for _, item := range t.items {
			val := reflect.ValueOf(item)
			if (val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) && val.IsNil() {
				continue
			}
			if closable, ok := any(item).(Closable); ok {
				if err := closable.Close(); err != nil {
					slog.Error("Purge info", "error", err)
				}
			}
		}
	}

	t.items = nil
	return nil
}

// NewThreadSafeMap builds the RWMutex guarded builtin-map store.
// When V implements io.Closer, Purge closes each stored item before
// dropping the map, close failures are logged and swallowed.
func NewThreadSafeMap[K comparable, V any]() ThreadSafeStorer[K, V] {
	isClosableItem := false
	if typ := reflect.TypeOf(*new(V)); typ != nil &&
		typ.Implements(reflect.TypeOf((*Closable)(nil)).Elem()) {
		isClosableItem = true
	}
	return &threadSafeMap[K, V]{items: make(map[K]V, 32), isClosableItem: isClosableItem}
}
