// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import (
	"testing"
)

func BenchmarkGrow(b *testing.B) {
	b.Run("hint", func(b *testing.B) {
		b.ReportAllocs()
		m := NewFunc[int, int](Config{}, b.N, nil, newIntHasher())
		for i := 0; i < b.N; i++ {
			m.Set(i, i)
		}
	})
	b.Run("nohint", func(b *testing.B) {
		b.ReportAllocs()
		m := NewFunc[int, int](Config{}, 0, nil, newIntHasher())
		for i := 0; i < b.N; i++ {
			m.Set(i, i)
		}
	})
	b.Run("std:hint", func(b *testing.B) {
		b.ReportAllocs()
		m := make(map[int]int, b.N)
		for i := 0; i < b.N; i++ {
			m[i] = i
		}
	})
	b.Run("std:nohint", func(b *testing.B) {
		b.ReportAllocs()
		m := map[int]int{}
		for i := 0; i < b.N; i++ {
			m[i] = i
		}
	})
}

func benchGetMap(n int) *Map[int, int] {
	m := NewFunc[int, int](Config{}, n, nil,
		func(k int) uint64 { return uint64(k) * 0x9e3779b97f4a7c15 })
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}
	return m
}

func BenchmarkGetHit(b *testing.B) {
	const n = 1 << 16
	m := benchGetMap(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(i & (n - 1)); !ok {
			b.Fatal("miss")
		}
	}
}

func BenchmarkGetMiss(b *testing.B) {
	const n = 1 << 16
	m := benchGetMap(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(n + i); ok {
			b.Fatal("hit")
		}
	}
}

func BenchmarkGetStd(b *testing.B) {
	const n = 1 << 16
	m := make(map[int]int, n)
	for i := 0; i < n; i++ {
		m[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m[i&(n-1)]; !ok {
			b.Fatal("miss")
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	m := NewFunc[int, int](Config{}, b.N, nil, newIntHasher())
	for i := 0; i < b.N; i++ {
		m.Set(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Delete(i)
	}
}

func BenchmarkIterate(b *testing.B) {
	m := benchGetMap(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iterator()
		for it.Next() {
		}
	}
}
