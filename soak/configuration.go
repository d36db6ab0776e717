// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"time"

	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/fixedmap"
	"github.com/bitmark-inc/fixedmap/tree"
)

// defaults for fields missing from a configuration file
const (
	DefaultCapacity = 1000
	DefaultVariant  = "red-black"
	DefaultWorkers  = 4
	DefaultDuration = 10.0 // seconds
	DefaultKeyRange = 2 * DefaultCapacity
)

// Configuration - the workload to run
type Configuration struct {
	Capacity            int     `gluamapper:"capacity" json:"capacity"`
	Variant             string  `gluamapper:"variant" json:"variant"`
	Workers             int     `gluamapper:"workers" json:"workers"`
	Duration            float64 `gluamapper:"duration" json:"duration"`                           // seconds
	KeyRange            uint64  `gluamapper:"key_range" json:"key_range"`                         // keys are in [0, key_range)
	OperationsPerSecond float64 `gluamapper:"operations_per_second" json:"operations_per_second"` // zero is unlimited
	Seed                int64   `gluamapper:"seed" json:"seed"`
}

// DefaultConfiguration - a short run with keys to spare over capacity
func DefaultConfiguration() Configuration {
	return Configuration{
		Capacity: DefaultCapacity,
		Variant:  DefaultVariant,
		Workers:  DefaultWorkers,
		Duration: DefaultDuration,
		KeyRange: DefaultKeyRange,
	}
}

// Validate - check ranges and decode the variant name
func (c *Configuration) Validate() (tree.Variant, error) {
	variant, err := tree.ParseVariant(c.Variant)
	if nil != err {
		return variant, err
	}
	switch {
	case c.Capacity < 0:
		return variant, fault.ErrInvalidCapacity
	case c.Workers <= 0, 0 == c.KeyRange, c.OperationsPerSecond < 0:
		return variant, fault.ErrInvalidCount
	case c.Duration <= 0:
		return variant, fault.ErrInvalidDuration
	}
	return variant, nil
}

// RunTime - the duration as a time value
func (c *Configuration) RunTime() time.Duration {
	return time.Duration(c.Duration * float64(time.Second))
}

// NewMap - create the map a configuration describes
func NewMap(c *Configuration) (*fixedmap.Map[uint64, string], error) {
	variant, err := c.Validate()
	if nil != err {
		return nil, err
	}
	return fixedmap.New[uint64, string](c.Capacity, variant)
}
