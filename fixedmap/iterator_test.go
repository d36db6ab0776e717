// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/fixedmap"
)

func filledMap(t *testing.T) *fixedmap.Map[int, string] {
	entries := []fixedmap.Entry[int, string]{
		{1, "one"}, {2, "two"}, {3, "three"}, {4, "four"}, {5, "five"},
	}
	m, err := fixedmap.NewFromEntries(entries, 8, variants[0])
	require.Nil(t, err)
	return m
}

func TestIterateForward(t *testing.T) {
	for _, v := range variants {
		m := newMap(t, defaultCapacity, v)
		for _, k := range []int{4, 2, 5, 1, 3} {
			m.Insert(k, "")
		}

		keys := []int{}
		it := m.Begin()
		for !it.Equal(m.End()) {
			k, err := it.Key()
			require.Nil(t, err)
			keys = append(keys, k)
			it.Next()
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, keys)
	}
}

func TestIterateReverse(t *testing.T) {
	m := filledMap(t)

	keys := []int{}
	it := m.End()
	for it.Prev() {
		k, err := it.Key()
		require.Nil(t, err)
		keys = append(keys, k)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, keys)
	assert.True(t, it.IsEnd())
}

func TestIterateLast(t *testing.T) {
	m := filledMap(t)
	it := m.Last()
	e, err := it.Entry()
	require.Nil(t, err)
	assert.Equal(t, fixedmap.Entry[int, string]{Key: 5, Value: "five"}, e)
	assert.False(t, it.Next())
	assert.True(t, it.Equal(m.End()))
}

func TestEndAccess(t *testing.T) {
	m := filledMap(t)
	it := m.End()

	_, err := it.Key()
	assert.Equal(t, fault.ErrInvalidIteratorAccess, err)
	_, err = it.Value()
	assert.Equal(t, fault.ErrInvalidIteratorAccess, err)
	assert.Equal(t, fault.ErrInvalidIteratorAccess, it.SetValue("x"))

	// empty map: begin is end
	empty := newMap(t, 1, variants[1])
	assert.True(t, empty.Begin().IsEnd())
	assert.True(t, empty.Last().IsEnd())
}

func TestSeek(t *testing.T) {
	m := filledMap(t)

	it := m.Seek(3)
	value, err := it.Value()
	require.Nil(t, err)
	assert.Equal(t, "three", value)

	assert.True(t, it.Next())
	k, _ := it.Key()
	assert.Equal(t, 4, k)

	assert.True(t, m.Seek(42).IsEnd())
}

func TestIteratorSetValue(t *testing.T) {
	m := filledMap(t)
	it := m.Seek(2)
	require.Nil(t, it.SetValue("deux"))
	value, _ := m.Find(2)
	assert.Equal(t, "deux", value)
}

func TestIteratorClone(t *testing.T) {
	m := filledMap(t)
	it := m.Begin()
	c := it.Clone()
	it.Next()
	assert.False(t, it.Equal(c))

	k, _ := c.Key()
	assert.Equal(t, 1, k)
	c.Next()
	assert.True(t, it.Equal(c))
}

// an iterator to an erased entry is detected rather than reading a reused node
func TestStaleIterator(t *testing.T) {
	m := filledMap(t)
	it := m.Seek(3)
	require.True(t, m.Erase(3))

	_, err := it.Key()
	assert.Equal(t, fault.ErrInvalidIteratorAccess, err)

	// slot reuse does not revive the old iterator
	require.True(t, m.Insert(30, "thirty"))
	_, err = it.Key()
	assert.Equal(t, fault.ErrInvalidIteratorAccess, err)
	assert.False(t, it.Next())
}
