package graph

import "container/list"

// boundedStore is a string-keyed store with a maximum entry count and
// insertion-order (FIFO) eviction. When an insert would exceed the bound, the
// oldest entry is evicted first; the entry being inserted is never dropped.
// Updating an existing key keeps its position in the eviction order.
type boundedStore[V any] struct {
	max     int
	order   *list.List // element values are string keys, oldest at front
	entries map[string]*storeEntry[V]
	onEvict func(key string, value V)
}

type storeEntry[V any] struct {
	value V
	elem  *list.Element
}

func newBoundedStore[V any](max int, onEvict func(string, V)) *boundedStore[V] {
	return &boundedStore[V]{
		max:     max,
		order:   list.New(),
		entries: make(map[string]*storeEntry[V]),
		onEvict: onEvict,
	}
}

// Get returns the value for key, if present.
func (s *boundedStore[V]) Get(key string) (V, bool) {
	if e, ok := s.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Put inserts or replaces the value for key, evicting the oldest entry when
// the insert would exceed the bound.
func (s *boundedStore[V]) Put(key string, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		return
	}
	for s.max > 0 && len(s.entries) >= s.max {
		s.evictOldest()
	}
	elem := s.order.PushBack(key)
	s.entries[key] = &storeEntry[V]{value: value, elem: elem}
}

// Delete removes key without invoking the eviction callback.
func (s *boundedStore[V]) Delete(key string) {
	if e, ok := s.entries[key]; ok {
		s.order.Remove(e.elem)
		delete(s.entries, key)
	}
}

func (s *boundedStore[V]) evictOldest() {
	front := s.order.Front()
	if front == nil {
		return
	}
	key := front.Value.(string)
	entry := s.entries[key]
	s.order.Remove(front)
	delete(s.entries, key)
	if s.onEvict != nil {
		s.onEvict(key, entry.value)
	}
}

// Len returns the current number of entries.
func (s *boundedStore[V]) Len() int {
	return len(s.entries)
}

// Max returns the configured maximum entry count.
func (s *boundedStore[V]) Max() int {
	return s.max
}

// Range calls fn for each entry in insertion order. Iteration stops when fn
// returns false.
func (s *boundedStore[V]) Range(fn func(key string, value V) bool) {
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		key := elem.Value.(string)
		if !fn(key, s.entries[key].value) {
			return
		}
	}
}

// Clear discards all entries without invoking the eviction callback.
func (s *boundedStore[V]) Clear() {
	s.order.Init()
	s.entries = make(map[string]*storeEntry[V])
}
