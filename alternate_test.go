// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package simdmap

import (
	"hash/maphash"
	"testing"
)

func TestAlternateLookup(t *testing.T) {
	seed := maphash.MakeSeed()
	m := NewFunc[string, int](Config{}, 0, nil, func(k string) uint64 {
		return maphash.String(seed, k)
	})
	m.Set("alpha", 1)
	m.Set("beta", 2)
	m.Set("gamma", 3)

	// look up by []byte without allocating a string key
	view := Alternate[[]byte](m,
		func(b []byte) uint64 { return maphash.Bytes(seed, b) },
		func(k string, b []byte) bool { return k == string(b) })

	if v, ok := view.Get([]byte("beta")); !ok || v != 2 {
		t.Errorf("Get(beta) = %d, %t", v, ok)
	}
	if view.Has([]byte("delta")) {
		t.Error("Has(delta) = true")
	}
	pr := view.Ref([]byte("gamma"))
	if pr == nil || pr.Key != "gamma" || pr.Value != 3 {
		t.Errorf("Ref(gamma) = %+v", pr)
	}

	// the view tracks mutations made through the map
	m.Delete("beta")
	if view.Has([]byte("beta")) {
		t.Error("view found a deleted key")
	}
	m.Set("beta", 20)
	if v, _ := view.Get([]byte("beta")); v != 20 {
		t.Errorf("view missed re-insert: %d", v)
	}
}

func TestAlternateEmptyMap(t *testing.T) {
	m := New[string, int]()
	view := Alternate[[]byte](m,
		func([]byte) uint64 { return 0 },
		func(string, []byte) bool { return true })
	if view.Has([]byte("x")) {
		t.Error("empty map view found a key")
	}
}

func TestAlternateNilComparerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil comparer")
		}
	}()
	Alternate[[]byte, string, int](New[string, int](), nil, nil)
}
