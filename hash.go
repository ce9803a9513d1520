// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"unsafe"
)

//go:noescape
//go:linkname nilinterhash runtime.nilinterhash
func nilinterhash(a unsafe.Pointer, h uintptr) uintptr

func interfaceHash(v interface{}, seed uint64) uint64 {
	return uint64(nilinterhash(unsafe.Pointer(&v), uintptr(seed)))
}

// defaultHasher returns a seeded hasher for K. The common primitive kinds
// hash through hash/maphash; anything else falls back to the runtime's
// interface hash.
func defaultHasher[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()
	var zero K
	switch interface{}(zero).(type) {
	case string:
		return func(k K) uint64 {
			return maphash.String(seed, interface{}(k).(string))
		}
	case int:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(int)))
		}
	case int8:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(int8)))
		}
	case int16:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(int16)))
		}
	case int32:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(int32)))
		}
	case int64:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(int64)))
		}
	case uint:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(uint)))
		}
	case uint8:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(uint8)))
		}
	case uint16:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(uint16)))
		}
	case uint32:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(uint32)))
		}
	case uint64:
		return func(k K) uint64 {
			return hashUint64(seed, interface{}(k).(uint64))
		}
	case uintptr:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(interface{}(k).(uintptr)))
		}
	case float32:
		return func(k K) uint64 {
			return hashUint64(seed, uint64(math.Float32bits(interface{}(k).(float32))))
		}
	case float64:
		return func(k K) uint64 {
			return hashUint64(seed, math.Float64bits(interface{}(k).(float64)))
		}
	case bool:
		return func(k K) uint64 {
			if interface{}(k).(bool) {
				return hashUint64(seed, 1)
			}
			return hashUint64(seed, 0)
		}
	default:
		hseed := hashUint64(seed, 0)
		return func(k K) uint64 {
			return interfaceHash(k, hseed)
		}
	}
}

func hashUint64(seed maphash.Seed, v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return maphash.Bytes(seed, buf[:])
}

// fmix64 is the MurmurHash3 64-bit finalizer, applied when
// Config.Avalanche is set to harden low-entropy hashes.
func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
