// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

// prober walks buckets starting at a key's home bucket with wrap-around
// at the end of the array. It holds a reference into one generation for
// the duration of a single operation; growing while a walk is live is
// outside the single-writer contract and is detected on retreat.
type prober[K comparable, V any] struct {
	m    *Map[K, V]
	gen  *generation[K, V]
	home uint64
	idx  uint64
	live bool // gen was the published generation at construction
}

func (m *Map[K, V]) probe(gen *generation[K, V], home uint64) prober[K, V] {
	return prober[K, V]{
		m:    m,
		gen:  gen,
		home: home,
		idx:  home,
		live: gen == m.gen.Load(),
	}
}

func (p *prober[K, V]) bucket() *bucket[K, V] {
	return &p.gen.buckets[p.idx]
}

// advance moves to the next bucket, wrapping around. It returns false
// once the walk is about to revisit the home bucket, i.e. the whole table
// has been scanned.
func (p *prober[K, V]) advance() bool {
	p.idx++
	if p.idx == p.gen.nbuckets {
		p.idx = 0
	}
	return p.idx != p.home
}

// retreat steps back over the buckets just visited, returning false when
// already at the home bucket. Writers use it to maintain cascade counters
// after a placement or removal.
func (p *prober[K, V]) retreat() bool {
	if p.live && p.m.gen.Load() != p.gen {
		panic("simdmap: bucket array replaced during probe")
	}
	if p.idx == p.home {
		return false
	}
	if p.idx == 0 {
		p.idx = p.gen.nbuckets
	}
	p.idx--
	return true
}
