package internal

import (
	"iter"
)

// OrderedMap is a string-keyed map that remembers first-insertion order.
// Replacing an existing key keeps its original position.
type OrderedMap[V any] struct {
	keys  []string
	vals  []V
	index map[string]int
}

// Set inserts or replaces the value stored under key.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = map[string]int{}
	}

	if n, ok := m.index[key]; ok {
		m.vals[n] = value
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value stored under key, if any.
func (m *OrderedMap[V]) Get(key string) (value V, ok bool) {
	n, ok := m.index[key]
	if ok {
		value = m.vals[n]
	}
	return
}

// Len returns the number of stored keys.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// All iterates over all entries, in first-insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for n, key := range m.keys {
			if !yield(key, m.vals[n]) {
				return
			}
		}
	}
}
