// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import (
	"testing"

	"golang.org/x/exp/rand"
)

// randomLane builds a bucket-shaped suffix lane: n contiguous non-zero
// suffixes, zero tail, then count and cascade metadata bytes.
func randomLane(rng *rand.Rand) ([16]uint8, uint8) {
	var lane [16]uint8
	n := uint8(rng.Intn(bucketPairs + 1))
	for i := uint8(0); i < n; i++ {
		lane[i] = uint8(rng.Intn(255)) + 1
	}
	lane[countLane] = n
	lane[cascadeLane] = uint8(rng.Intn(256))
	return lane, n
}

func TestMatchSuffixAgainstScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100000; trial++ {
		lane, _ := randomLane(rng)
		s := uint8(rng.Intn(255)) + 1
		exact := suffixMatchScalar(&lane, s, bucketPairs)
		got := matchSuffix(&lane, s)
		// every true match must be reported ...
		if got&exact != exact {
			t.Fatalf("lane %v suffix %d: mask %016b misses exact %016b",
				lane, s, got, exact)
		}
		// ... metadata lanes never
		if got&^dataLanes != 0 {
			t.Fatalf("lane %v suffix %d: mask %016b hits metadata lanes",
				lane, s, got)
		}
	}
}

func TestMatchSuffixSWARSuperset(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for trial := 0; trial < 100000; trial++ {
		lane, _ := randomLane(rng)
		s := uint8(rng.Intn(255)) + 1
		exact := suffixMatchScalar(&lane, s, bucketPairs)
		got := matchSuffixSWAR(&lane, s)
		if got&exact != exact || got&^dataLanes != 0 {
			t.Fatalf("lane %v suffix %d: swar %016b vs exact %016b",
				lane, s, got, exact)
		}
	}
}

func TestFirstSuffixMatch(t *testing.T) {
	var lane [16]uint8
	lane[3] = 77
	lane[9] = 77
	lane[countLane] = 10
	if got := firstSuffixMatch(&lane, 77); got != 3 {
		t.Errorf("firstSuffixMatch = %d, want 3", got)
	}
	if got := firstSuffixMatch(&lane, 78); got != scanMiss {
		t.Errorf("firstSuffixMatch = %d, want miss sentinel", got)
	}
	// a metadata-lane byte must never be reported
	var meta [16]uint8
	meta[countLane] = 99
	meta[cascadeLane] = 99
	if got := firstSuffixMatch(&meta, 99); got != scanMiss {
		t.Errorf("firstSuffixMatch matched a metadata lane: %d", got)
	}
}

func TestScalarScanBoundedByCount(t *testing.T) {
	var lane [16]uint8
	lane[0] = 5
	lane[7] = 5
	lane[countLane] = 4
	if got := suffixMatchScalar(&lane, 5, 4); got != 1 {
		t.Errorf("scalar scan crossed the occupancy bound: %016b", got)
	}
}
