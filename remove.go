// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import "math/bits"

// Delete removes k, reporting whether it was stored. The vacated slot is
// filled by rotating the bucket's last pair back into it, which keeps
// occupied lanes contiguous from lane 0.
func (m *Map[K, V]) Delete(k K) bool {
	if m == nil || m.count == 0 {
		return false
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
			if !m.equal(k, b.pairs[i].Key) {
				continue
			}
			last := n - 1
			if i != last {
				b.pairs[i] = b.pairs[last]
				b.suffixes[i] = b.suffixes[last]
			}
			// Clear the vacated tail so it holds no references.
			b.pairs[last] = Pair[K, V]{}
			b.suffixes[last] = 0
			b.suffixes[countLane] = last
			for p.retreat() {
				p.bucket().dropCascade()
			}
			m.count--
			return true
		}
		if b.cascade() == 0 {
			return false
		}
		if !p.advance() {
			return false
		}
	}
}
