// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/soak"
)

func writeConfiguration(t *testing.T, source string) string {
	fileName := filepath.Join(t.TempDir(), "soak.conf")
	require.Nil(t, os.WriteFile(fileName, []byte(source), 0o600))
	return fileName
}

func TestGetConfigurationSample(t *testing.T) {
	sample, err := os.ReadFile("fixedmap-soak.conf.sample")
	require.Nil(t, err)

	fileName := writeConfiguration(t, string(sample))
	c, err := getConfiguration(fileName)
	require.Nil(t, err)

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory)
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory)
	assert.Equal(t, defaultLogFile, c.Logging.File)
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"])

	assert.Equal(t, 10000, c.Soak.Capacity)
	assert.Equal(t, 8, c.Soak.Workers)
	assert.Equal(t, uint64(20000), c.Soak.KeyRange)
	assert.Equal(t, 60.0, c.Soak.Duration)

	info, err := os.Stat(c.Logging.Directory)
	require.Nil(t, err)
	assert.True(t, info.IsDir())
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { pidfile = "soak.pid" }`)
	c, err := getConfiguration(fileName)
	require.Nil(t, err)

	assert.Equal(t, soak.DefaultConfiguration(), c.Soak)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "soak.pid"), c.PidFile)
}

func TestGetConfigurationErrors(t *testing.T) {
	fileName := writeConfiguration(t, `return { soak = { workers = 0 } }`)
	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidCount, err)

	fileName = writeConfiguration(t, `return { logging = { file = "a/b.log" } }`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err)

	fileName = writeConfiguration(t, `return { data_directory = "" }`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err)
}
