// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build !amd64

package simdmap

func matchSuffix(lane *[16]uint8, s uint8) uint16 {
	return matchSuffixSWAR(lane, s)
}
