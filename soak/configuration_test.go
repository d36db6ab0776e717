// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fixedmap/configuration"
	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/soak"
	"github.com/bitmark-inc/fixedmap/tree"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*soak.Configuration)
		err    error
	}{
		{"defaults", func(c *soak.Configuration) {}, nil},
		{"zero capacity", func(c *soak.Configuration) { c.Capacity = 0 }, nil},
		{"negative capacity", func(c *soak.Configuration) { c.Capacity = -1 }, fault.ErrInvalidCapacity},
		{"variant", func(c *soak.Configuration) { c.Variant = "b-tree" }, fault.ErrUnknownVariant},
		{"workers", func(c *soak.Configuration) { c.Workers = 0 }, fault.ErrInvalidCount},
		{"key range", func(c *soak.Configuration) { c.KeyRange = 0 }, fault.ErrInvalidCount},
		{"rate", func(c *soak.Configuration) { c.OperationsPerSecond = -5 }, fault.ErrInvalidCount},
		{"duration", func(c *soak.Configuration) { c.Duration = 0 }, fault.ErrInvalidDuration},
	}

	for _, test := range tests {
		c := soak.DefaultConfiguration()
		test.modify(&c)
		_, err := c.Validate()
		assert.Equal(t, test.err, err, test.name)
	}
}

func TestConfigurationFromLua(t *testing.T) {
	c := soak.DefaultConfiguration()
	err := configuration.ParseConfigurationString(`
return {
    capacity = 500,
    variant = "AVL",
    workers = 2,
    duration = 1.5,
    key_range = 750,
    operations_per_second = 2000,
}`, &c)
	require.Nil(t, err)

	assert.Equal(t, 500, c.Capacity)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, uint64(750), c.KeyRange)
	assert.Equal(t, 2000.0, c.OperationsPerSecond)
	assert.Equal(t, int64(1500), c.RunTime().Milliseconds())

	variant, err := c.Validate()
	require.Nil(t, err)
	assert.Equal(t, tree.AVL, variant)

	m, err := soak.NewMap(&c)
	require.Nil(t, err)
	assert.Equal(t, 500, m.Capacity())
	assert.Equal(t, tree.AVL, m.Variant())
}
