// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package simdmap implements a generic hash map built on a vectorized
// open-addressing table.
//
// Pairs are stored inline in fixed 16-byte-lane buckets: each bucket packs
// fourteen 8-bit hash fingerprints ("suffixes") plus an occupancy count and
// a cascade counter into one 16-byte vector, so a whole bucket is filtered
// with a single SIMD compare before any key is touched. Collisions spill
// into the following bucket with wrap-around; per-bucket cascade counters
// record how many pairs were displaced past each bucket, which lets a
// failed lookup stop at the first bucket with a zero counter instead of
// probing to the next empty slot.
//
// A Map is safe for concurrent readers only while no writer is active.
// There is no internal locking; mutation requires a single writer.
package simdmap

import (
	"sync/atomic"
)

// BucketFamily selects how bucket counts are chosen when the table is
// created or grown.
type BucketFamily uint8

const (
	// PowerOfTwo rounds bucket counts up to a power of two so the home
	// bucket is a bitmask of the hash. The suffix byte is taken from the
	// top of the hash to keep it independent of the index bits.
	PowerOfTwo BucketFamily = iota
	// Primes picks bucket counts from a prime table and reduces hashes
	// with a precomputed fast-modulus multiplier. Better collision
	// resistance for weak hashes at the cost of slightly dearer index
	// math. The suffix byte is taken from the low byte of the hash.
	Primes
)

// Config carries the build-time knobs of the table. The zero value selects
// the defaults: power-of-two bucket counts, no avalanche mixing, 120%
// oversizing.
type Config struct {
	Family BucketFamily

	// Avalanche runs every hash through a 64-bit finalizer before use.
	// Leave it off for the seeded default hashers; turn it on when
	// supplying identity-like hashes through NewFunc.
	Avalanche bool

	// OversizePercent is the capacity multiplier applied when sizing the
	// bucket array for a requested pair count. Must be at least 100.
	// 0 means the default of 120.
	OversizePercent int
}

const defaultOversizePercent = 120

// Map is a hash map from K to V. The zero value is not usable; call one of
// the constructors. A nil *Map behaves as an empty map for reads.
type Map[K comparable, V any] struct {
	gen    atomic.Pointer[generation[K, V]]
	count  int
	growAt int
	cfg    Config
	hasher func(K) uint64
	equal  func(a, b K) bool
}

// New returns an empty map using seeded default hashing for K. No bucket
// array is allocated until the first insert.
func New[K comparable, V any]() *Map[K, V] {
	return NewConfig[K, V](Config{}, 0)
}

// NewHint is like New but pre-sizes the table for hint pairs.
func NewHint[K comparable, V any](hint int) *Map[K, V] {
	return NewConfig[K, V](Config{}, hint)
}

// NewConfig is like NewHint with explicit table configuration.
func NewConfig[K comparable, V any](cfg Config, hint int) *Map[K, V] {
	return newMap[K, V](cfg, hint, nil, nil)
}

// NewFunc builds a map with a caller-supplied comparer, for key types whose
// equality differs from == or whose hashing must be custom. A nil equal
// falls back to ==; a nil hasher falls back to the seeded default.
func NewFunc[K comparable, V any](cfg Config, hint int,
	equal func(a, b K) bool, hasher func(K) uint64) *Map[K, V] {
	return newMap[K, V](cfg, hint, equal, hasher)
}

func newMap[K comparable, V any](cfg Config, hint int,
	equal func(a, b K) bool, hasher func(K) uint64) *Map[K, V] {
	if hint < 0 {
		panic("simdmap: negative capacity")
	}
	if cfg.OversizePercent == 0 {
		cfg.OversizePercent = defaultOversizePercent
	}
	if cfg.OversizePercent < 100 {
		panic("simdmap: oversize percent below 100")
	}
	if cfg.Family != PowerOfTwo && cfg.Family != Primes {
		panic("simdmap: unknown bucket family")
	}
	if hasher == nil {
		hasher = defaultHasher[K]()
	}
	if equal == nil {
		equal = func(a, b K) bool { return a == b }
	}
	m := &Map[K, V]{cfg: cfg, hasher: hasher, equal: equal}
	if hint > 0 {
		g := genFor[K, V](cfg, hint)
		m.gen.Store(g)
		m.growAt = int(g.nbuckets) * bucketPairs
	}
	return m
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Cap returns the number of pair slots in the current bucket array.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	g := m.gen.Load()
	if g == nil {
		return 0
	}
	return int(g.nbuckets) * bucketPairs
}

func (m *Map[K, V]) hash(k K) uint64 {
	h := m.hasher(k)
	if m.cfg.Avalanche {
		h = fmix64(h)
	}
	return h
}
