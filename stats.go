// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

// Stats is a point-in-time summary of table health. The cascade and probe
// figures are the hook for a degradation-triggered rehash policy: a table
// whose degraded-bucket count or probe distance keeps climbing is being
// fed colliding keys.
type Stats struct {
	Len     int
	Cap     int
	GrowAt  int
	Buckets int

	// CascadeTotal is the sum of all cascade counters; it overcounts
	// displaced pairs that probed through several buckets.
	CascadeTotal uint64
	MaxCascade   uint8
	// Degraded counts buckets stuck at the saturated cascade value.
	Degraded int

	// MaxProbe is the longest home-to-residence distance of any stored
	// pair, in buckets. 0 means every pair sits in its home bucket.
	MaxProbe int
}

// Stats scans the bucket array and rehashes every stored key to measure
// probe distances. It is an O(buckets + pairs) observer intended for
// monitoring, not for the hot path.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{Len: m.Len(), Cap: m.Cap()}
	if m == nil {
		return st
	}
	st.GrowAt = m.growAt
	gen := m.gen.Load()
	if gen == nil {
		return st
	}
	st.Buckets = len(gen.buckets)
	for bi := range gen.buckets {
		b := &gen.buckets[bi]
		c := b.cascade()
		st.CascadeTotal += uint64(c)
		if c > st.MaxCascade {
			st.MaxCascade = c
		}
		if c == cascadeMax {
			st.Degraded++
		}
		n := b.count()
		for i := uint8(0); i < n; i++ {
			home := gen.home(m.hash(b.pairs[i].Key))
			d := int((uint64(bi) - home + gen.nbuckets) % gen.nbuckets)
			if d > st.MaxProbe {
				st.MaxProbe = d
			}
		}
	}
	return st
}
