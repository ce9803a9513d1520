// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

// Iterator yields stored pairs in bucket storage order. It is not
// restartable; create a new one to scan again. An iterator captures the
// bucket array at creation: it stays consistent if the map grows
// mid-iteration, but it then sees the pre-growth contents.
type Iterator[K comparable, V any] struct {
	buckets []bucket[K, V]
	bi      int
	li      int
	pair    *Pair[K, V]
}

// Iterator returns an iterator positioned before the first pair.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	if m == nil {
		return &Iterator[K, V]{}
	}
	gen := m.gen.Load()
	if gen == nil {
		return &Iterator[K, V]{}
	}
	return &Iterator[K, V]{buckets: gen.buckets}
}

// Next advances to the next occupied pair slot.
func (it *Iterator[K, V]) Next() bool {
	for it.bi < len(it.buckets) {
		b := &it.buckets[it.bi]
		// a zero suffix lane ends the bucket's occupied run
		if it.li < bucketPairs && b.suffixes[it.li] != 0 {
			it.pair = &b.pairs[it.li]
			it.li++
			return true
		}
		it.bi++
		it.li = 0
	}
	it.pair = nil
	return false
}

// Key returns the current pair's key. Only valid after Next returned true.
func (it *Iterator[K, V]) Key() K {
	return it.pair.Key
}

// Value returns the current pair's value.
func (it *Iterator[K, V]) Value() V {
	return it.pair.Value
}

// Pair returns a reference to the current pair.
func (it *Iterator[K, V]) Pair() *Pair[K, V] {
	return it.pair
}

// Iter applies f to every stored pair, stopping at the first error.
func (m *Map[K, V]) Iter(f func(k K, v V) error) error {
	it := m.Iterator()
	for it.Next() {
		if err := f(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the stored keys in bucket storage order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	it := m.Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns the stored values in bucket storage order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	it := m.Iterator()
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}
