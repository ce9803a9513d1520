// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Workload is the representation of simdmapbench's YAML config file.
type Workload struct {
	// Distinct keys in the working set.
	Keys int

	// Concurrent readers in the read phase.
	Readers int

	// Operation mix of the write phase, in percent. The three must not
	// exceed 100; the remainder is lookups.
	SetPercent    int `yaml:"set-percent"`
	GetPercent    int `yaml:"get-percent"`
	DeletePercent int `yaml:"delete-percent"`
}

func defaultWorkload() *Workload {
	return &Workload{
		Keys:          1000000,
		Readers:       4,
		SetPercent:    60,
		GetPercent:    30,
		DeletePercent: 10,
	}
}

func loadWorkload(path string) (*Workload, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w := defaultWorkload()
	if err := yaml.Unmarshal(raw, w); err != nil {
		return nil, err
	}
	if w.Keys <= 0 {
		return nil, fmt.Errorf("keys must be positive, got %d", w.Keys)
	}
	if w.Readers < 0 {
		return nil, fmt.Errorf("readers must not be negative, got %d", w.Readers)
	}
	if w.SetPercent < 0 || w.GetPercent < 0 || w.DeletePercent < 0 ||
		w.SetPercent+w.GetPercent+w.DeletePercent > 100 {
		return nil, fmt.Errorf("bad operation mix %d/%d/%d",
			w.SetPercent, w.GetPercent, w.DeletePercent)
	}
	return w, nil
}
