// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The simdmapbench command drives configurable workloads against simdmap
// and comparison implementations, reports throughput, and optionally
// exposes table-health statistics as Prometheus metrics.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"hash/maphash"
	"net/http"
	"time"

	"github.com/aristanetworks/glog"
	"github.com/aristanetworks/gomap"
	"github.com/aristanetworks/simdmap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// kvStore is the surface shared by the implementations under test.
type kvStore interface {
	Set(k, v uint64)
	Get(k uint64) (uint64, bool)
	Delete(k uint64) bool
	Len() int
}

type simdStore struct {
	m *simdmap.Map[uint64, uint64]
}

func (s simdStore) Set(k, v uint64)            { s.m.Set(k, v) }
func (s simdStore) Get(k uint64) (uint64, bool) { return s.m.Get(k) }
func (s simdStore) Delete(k uint64) bool        { return s.m.Delete(k) }
func (s simdStore) Len() int                    { return s.m.Len() }

type gomapStore struct {
	m *gomap.Map[uint64, uint64]
}

func (s gomapStore) Set(k, v uint64) { s.m.Set(k, v) }
func (s gomapStore) Get(k uint64) (uint64, bool) {
	return s.m.Get(k)
}
func (s gomapStore) Delete(k uint64) bool {
	had := s.m.Len()
	s.m.Delete(k)
	return s.m.Len() != had
}
func (s gomapStore) Len() int { return s.m.Len() }

type stdStore struct {
	m map[uint64]uint64
}

func (s stdStore) Set(k, v uint64) { s.m[k] = v }
func (s stdStore) Get(k uint64) (uint64, bool) {
	v, ok := s.m[k]
	return v, ok
}
func (s stdStore) Delete(k uint64) bool {
	_, ok := s.m[k]
	delete(s.m, k)
	return ok
}
func (s stdStore) Len() int { return len(s.m) }

func hashKey(seed maphash.Seed, k uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], k)
	return maphash.Bytes(seed, buf[:])
}

func main() {
	impl := flag.String("impl", "simdmap", "implementation under test: simdmap, gomap or std")
	configFlag := flag.String("config", "", "YAML workload config; flags override it")
	keys := flag.Int("keys", 1000000, "distinct keys in the working set")
	readers := flag.Int("readers", 4, "concurrent readers in the read phase")
	readOps := flag.Int("read-ops", 5000000, "lookups per reader")
	family := flag.String("family", "power-of-two", "bucket count family: power-of-two or primes")
	avalanche := flag.Bool("avalanche", false, "apply the avalanche finalizer to hashes")
	oversize := flag.Int("oversize", 120, "capacity oversize percent")
	hint := flag.Int("hint", 0, "pre-size the table for this many pairs")
	listenaddr := flag.String("listenaddr", "", "if set, expose table stats on this address")
	url := flag.String("url", "/metrics", "URL where to expose the metrics")
	flag.Parse()

	cfg := defaultWorkload()
	if *configFlag != "" {
		var err error
		if cfg, err = loadWorkload(*configFlag); err != nil {
			glog.Fatalf("failed to load config %q: %s", *configFlag, err)
		}
	}
	if flagSet("keys") || *configFlag == "" {
		cfg.Keys = *keys
	}
	if flagSet("readers") || *configFlag == "" {
		cfg.Readers = *readers
	}

	tableCfg := simdmap.Config{
		Avalanche:       *avalanche,
		OversizePercent: *oversize,
	}
	switch *family {
	case "power-of-two":
		tableCfg.Family = simdmap.PowerOfTwo
	case "primes":
		tableCfg.Family = simdmap.Primes
	default:
		glog.Fatalf("unknown bucket family %q", *family)
	}

	seed := maphash.MakeSeed()
	var store kvStore
	var sm *simdmap.Map[uint64, uint64]
	switch *impl {
	case "simdmap":
		sm = simdmap.NewFunc[uint64, uint64](tableCfg, *hint, nil,
			func(k uint64) uint64 { return hashKey(seed, k) })
		store = simdStore{m: sm}
	case "gomap":
		store = gomapStore{m: gomap.New[uint64, uint64](
			func(a, b uint64) bool { return a == b }, hashKey)}
	case "std":
		store = stdStore{m: make(map[uint64]uint64, *hint)}
	default:
		glog.Fatalf("unknown implementation %q", *impl)
	}

	if *listenaddr != "" && sm != nil {
		prometheus.MustRegister(newCollector(sm))
		http.Handle(*url, promhttp.Handler())
		go func() {
			glog.Fatal(http.ListenAndServe(*listenaddr, nil))
		}()
		glog.Infof("serving table stats on %s%s", *listenaddr, *url)
	}

	glog.Infof("impl=%s keys=%d readers=%d mix=%d/%d/%d",
		*impl, cfg.Keys, cfg.Readers,
		cfg.SetPercent, cfg.GetPercent, cfg.DeletePercent)

	// Single-writer phase: the configured set/get/delete mix. The table
	// permits concurrent readers only while no writer is active, so the
	// phases never overlap.
	rng := rand.New(rand.NewSource(1))
	start := time.Now()
	ops := cfg.Keys * 4
	for i := 0; i < ops; i++ {
		k := rng.Uint64() % uint64(cfg.Keys)
		switch p := rng.Intn(100); {
		case p < cfg.SetPercent:
			store.Set(k, k)
		case p < cfg.SetPercent+cfg.DeletePercent:
			store.Delete(k)
		default:
			store.Get(k)
		}
	}
	elapsed := time.Since(start)
	glog.Infof("write phase: %d ops in %s (%.1f Mops/s), len=%d",
		ops, elapsed, float64(ops)/elapsed.Seconds()/1e6, store.Len())

	// Concurrent read phase.
	start = time.Now()
	var g errgroup.Group
	for r := 0; r < cfg.Readers; r++ {
		r := r
		g.Go(func() error {
			rng := rand.New(rand.NewSource(uint64(r) + 2))
			hits := 0
			for i := 0; i < *readOps; i++ {
				if _, ok := store.Get(rng.Uint64() % uint64(cfg.Keys)); ok {
					hits++
				}
			}
			glog.V(1).Infof("reader %d: %d/%d hits", r, hits, *readOps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		glog.Fatal(err)
	}
	elapsed = time.Since(start)
	total := cfg.Readers * *readOps
	glog.Infof("read phase: %d ops in %s (%.1f Mops/s)",
		total, elapsed, float64(total)/elapsed.Seconds()/1e6)

	if sm != nil {
		st := sm.Stats()
		glog.Infof("table: buckets=%d len=%d cap=%d cascade=%d max=%d degraded=%d probe=%d",
			st.Buckets, st.Len, st.Cap, st.CascadeTotal, st.MaxCascade,
			st.Degraded, st.MaxProbe)
	}

	if *listenaddr != "" && sm != nil {
		fmt.Println("benchmark done, still serving metrics; interrupt to exit")
		select {}
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
