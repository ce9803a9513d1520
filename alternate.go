// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import "math/bits"

// Lookup is a read-only view of a Map keyed by a foreign type A, for
// finding stored pairs without materializing a K. The comparer must agree
// with the map's own: hash(a) must equal the map's hash of any K that
// equal(k, a) accepts.
type Lookup[A any, K comparable, V any] struct {
	m     *Map[K, V]
	hash  func(A) uint64
	equal func(stored K, a A) bool
}

// Alternate returns a lookup view of m using the given comparer. No
// mutation is exposed through the view.
func Alternate[A any, K comparable, V any](m *Map[K, V],
	hash func(A) uint64, equal func(stored K, a A) bool) *Lookup[A, K, V] {
	if hash == nil || equal == nil {
		panic("simdmap: nil alternate comparer")
	}
	return &Lookup[A, K, V]{m: m, hash: hash, equal: equal}
}

// Ref returns a reference to the stored pair matching a, or nil.
func (l *Lookup[A, K, V]) Ref(a A) *Pair[K, V] {
	m := l.m
	if m == nil || m.count == 0 {
		return nil
	}
	gen := m.gen.Load()
	h := l.hash(a)
	if m.cfg.Avalanche {
		h = fmix64(h)
	}
	s := gen.suffix(h)
	p := m.probe(gen, gen.home(h))
	for {
		b := p.bucket()
		n := b.count()
		for mask := matchSuffix(&b.suffixes, s); mask != 0; mask &= mask - 1 {
			i := uint8(bits.TrailingZeros16(mask))
			if i >= n {
				break
			}
			if l.equal(b.pairs[i].Key, a) {
				return &b.pairs[i]
			}
		}
		if b.cascade() == 0 {
			return nil
		}
		if !p.advance() {
			return nil
		}
	}
}

// Get returns the value stored for the key matching a.
func (l *Lookup[A, K, V]) Get(a A) (V, bool) {
	if pr := l.Ref(a); pr != nil {
		return pr.Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether a key matching a is stored.
func (l *Lookup[A, K, V]) Has(a A) bool {
	return l.Ref(a) != nil
}
