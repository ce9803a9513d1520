// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

// EnsureCapacity grows the table so that at least n pairs fit before the
// next growth.
func (m *Map[K, V]) EnsureCapacity(n int) {
	if n < 0 {
		panic("simdmap: negative capacity")
	}
	if n == 0 || m.Cap() >= n {
		return
	}
	m.rehashTo(n)
}

func (m *Map[K, V]) grow(hint int) {
	want := m.growAt * 2
	if hint > want {
		want = hint
	}
	m.rehashTo(want)
}

// rehashTo builds a bucket array sized for at least want pairs,
// re-inserts every live pair through the normal insert path, and only
// then publishes the result. The single store pairs the new array with
// its new modulus, so a concurrent reader can never compute a bucket
// index that overruns the array it loaded.
func (m *Map[K, V]) rehashTo(want int) {
	old := m.gen.Load()
	next := genFor[K, V](m.cfg, want)
	count := m.count
	m.count = 0
	if old != nil {
		for bi := range old.buckets {
			b := &old.buckets[bi]
			n := b.count()
			for i := uint8(0); i < n; i++ {
				if m.insert(next, b.pairs[i].Key, b.pairs[i].Value, rehashing) != okAddedNew {
					panic("simdmap: rehash failed")
				}
			}
		}
	}
	if m.count != count {
		panic("simdmap: rehash failed")
	}
	m.gen.Store(next)
	m.growAt = int(next.nbuckets) * bucketPairs
}

// Clear drops every pair. The bucket array is kept; suffix lanes, cascade
// counters and pair slots are zeroed so no references are retained.
func (m *Map[K, V]) Clear() {
	if gen := m.gen.Load(); gen != nil {
		for i := range gen.buckets {
			gen.buckets[i] = bucket[K, V]{}
		}
	}
	m.count = 0
}
