// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import "math/bits"

// Ref returns a reference to the stored pair for k, or nil. The reference
// points into bucket storage: it may be used to update the value in place
// and stays valid until the next insert, removal, Clear or grow.
func (m *Map[K, V]) Ref(k K) *Pair[K, V] {
	if m == nil || m.count == 0 {
		return nil
	}
	gen := m.gen.Load()
	hash := m.hash(k)
	s := gen.suffix(hash)
	p := m.probe(gen, gen.home(hash))
	for {
		b := p.bucket()
		n := b.count()
		for mask := matchSuffix(&b.suffixes, s); mask != 0; mask &= mask - 1 {
			i := uint8(bits.TrailingZeros16(mask))
			if i >= n {
				break
			}
			if m.equal(k, b.pairs[i].Key) {
				return &b.pairs[i]
			}
		}
		// A zero cascade count means nothing homed at or before this
		// bucket resides past it: the key cannot be further on.
		if b.cascade() == 0 {
			return nil
		}
		if !p.advance() {
			return nil
		}
	}
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if pr := m.Ref(k); pr != nil {
		return pr.Value, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is stored.
func (m *Map[K, V]) Has(k K) bool {
	return m.Ref(k) != nil
}
