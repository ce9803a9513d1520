// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import "math/bits"

type insertMode uint8

const (
	// ensureUnique reports keyAlreadyPresent when the key is stored.
	ensureUnique insertMode = iota
	// overwriteValue replaces the stored value for an existing key.
	overwriteValue
	// rehashing skips the existing-key scan: the caller guarantees
	// uniqueness, e.g. growth re-inserting from a valid table.
	rehashing
)

type insertResult uint8

const (
	okAddedNew insertResult = iota
	okOverwroteExisting
	keyAlreadyPresent
	needToGrow
	corrupted
)

// Set associates k with v, replacing any stored value.
func (m *Map[K, V]) Set(k K, v V) {
	m.mutate(k, v, overwriteValue)
}

// Add associates k with v only if k is absent, reporting whether it was
// added.
func (m *Map[K, V]) Add(k K, v V) bool {
	return m.mutate(k, v, ensureUnique) == okAddedNew
}

func (m *Map[K, V]) mutate(k K, v V, mode insertMode) insertResult {
	for {
		gen := m.gen.Load()
		if gen == nil {
			m.grow(0)
			continue
		}
		switch res := m.insert(gen, k, v, mode); res {
		case needToGrow:
			m.grow(0)
		case corrupted:
			// unreachable while count < capacity holds
			panic("simdmap: probe space exhausted")
		default:
			return res
		}
	}
}

func (m *Map[K, V]) insert(gen *generation[K, V], k K, v V, mode insertMode) insertResult {
	if mode != rehashing && m.count >= m.growAt {
		return needToGrow
	}
	hash := m.hash(k)
	s := gen.suffix(hash)
	home := gen.home(hash)

	// First pass: look for the key, and remember the first bucket with a
	// free slot on the way. The walk may run past a free slot while a
	// nonzero cascade count says the key could still reside further on.
	var freeIdx uint64
	haveFree := false
	if mode != rehashing {
		p := m.probe(gen, home)
		for {
			b := p.bucket()
			n := b.count()
			for mask := matchSuffix(&b.suffixes, s); mask != 0; mask &= mask - 1 {
				i := uint8(bits.TrailingZeros16(mask))
				if i >= n {
					break
				}
				if m.equal(k, b.pairs[i].Key) {
					if mode == ensureUnique {
						return keyAlreadyPresent
					}
					b.pairs[i].Value = v
					return okOverwroteExisting
				}
			}
			if !haveFree && n < bucketPairs {
				haveFree, freeIdx = true, p.idx
			}
			if b.cascade() == 0 || !p.advance() {
				break
			}
		}
	}

	// Placement: the earliest bucket with a free slot, continuing the
	// walk if the whole cluster was full.
	pl := m.probe(gen, home)
	if haveFree {
		pl.idx = freeIdx
	}
	for pl.bucket().count() == bucketPairs {
		if !pl.advance() {
			return corrupted
		}
	}
	b := pl.bucket()
	n := b.count()
	b.pairs[n] = Pair[K, V]{Key: k, Value: v}
	b.suffixes[n] = s
	b.suffixes[countLane] = n + 1
	// Every bucket probed before the resident one gains a displaced
	// pair; lookups for it must keep walking past them.
	for pl.retreat() {
		pl.bucket().bumpCascade()
	}
	m.count++
	return okAddedNew
}
