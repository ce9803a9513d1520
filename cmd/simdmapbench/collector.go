// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"github.com/aristanetworks/simdmap"
	"github.com/prometheus/client_golang/prometheus"
)

// collector exposes a table's Stats as Prometheus gauges. Stats scans the
// bucket array, so scrape intervals should be coarse for huge tables.
type collector struct {
	m *simdmap.Map[uint64, uint64]

	lenDesc      *prometheus.Desc
	capDesc      *prometheus.Desc
	bucketsDesc  *prometheus.Desc
	cascadeDesc  *prometheus.Desc
	degradedDesc *prometheus.Desc
	probeDesc    *prometheus.Desc
}

func newCollector(m *simdmap.Map[uint64, uint64]) *collector {
	return &collector{
		m: m,
		lenDesc: prometheus.NewDesc("simdmap_pairs",
			"Number of stored pairs", nil, nil),
		capDesc: prometheus.NewDesc("simdmap_capacity",
			"Pair slots in the bucket array", nil, nil),
		bucketsDesc: prometheus.NewDesc("simdmap_buckets",
			"Buckets in the table", nil, nil),
		cascadeDesc: prometheus.NewDesc("simdmap_cascade_total",
			"Sum of all cascade counters", nil, nil),
		degradedDesc: prometheus.NewDesc("simdmap_degraded_buckets",
			"Buckets with a saturated cascade counter", nil, nil),
		probeDesc: prometheus.NewDesc("simdmap_max_probe",
			"Longest home-to-residence distance of any stored pair",
			nil, nil),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lenDesc
	ch <- c.capDesc
	ch <- c.bucketsDesc
	ch <- c.cascadeDesc
	ch <- c.degradedDesc
	ch <- c.probeDesc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	st := c.m.Stats()
	ch <- prometheus.MustNewConstMetric(c.lenDesc,
		prometheus.GaugeValue, float64(st.Len))
	ch <- prometheus.MustNewConstMetric(c.capDesc,
		prometheus.GaugeValue, float64(st.Cap))
	ch <- prometheus.MustNewConstMetric(c.bucketsDesc,
		prometheus.GaugeValue, float64(st.Buckets))
	ch <- prometheus.MustNewConstMetric(c.cascadeDesc,
		prometheus.GaugeValue, float64(st.CascadeTotal))
	ch <- prometheus.MustNewConstMetric(c.degradedDesc,
		prometheus.GaugeValue, float64(st.Degraded))
	ch <- prometheus.MustNewConstMetric(c.probeDesc,
		prometheus.GaugeValue, float64(st.MaxProbe))
}
