// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build amd64

package simdmap

import "golang.org/x/sys/cpu"

// SSE2 is part of the amd64 baseline; the check keeps the scalar path
// reachable anyway.
var hasSSE2 = cpu.X86.HasSSE2

// suffixMatchSSE2 compares all 16 lanes against suffix with one PCMPEQB
// and returns the PMOVMSKB bitmask. Implemented in scan_amd64.s.
//
//go:noescape
func suffixMatchSSE2(lane *[16]uint8, suffix uint8) uint16

func matchSuffix(lane *[16]uint8, s uint8) uint16 {
	if hasSSE2 {
		return suffixMatchSSE2(lane, s) & dataLanes
	}
	return suffixMatchScalar(lane, s, bucketPairs)
}
