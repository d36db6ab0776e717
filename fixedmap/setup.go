// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedmap

import (
	"cmp"
	"sync"

	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/tree"
)

// Entry - a key/value pair
type Entry[K any, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Map - fixed capacity ordered map
//
// the zero value is not usable, create with one of the New functions
type Map[K any, V any] struct {
	mutex    sync.Mutex
	tree     *tree.Tree[K, V]
	capacity int
	stats    statistics
}

// New - create an empty map for keys with a natural order
func New[K cmp.Ordered, V any](capacity int, variant tree.Variant) (*Map[K, V], error) {
	return NewWithComparator[K, V](capacity, variant, cmp.Compare[K])
}

// NewWithComparator - create an empty map ordered by a custom
// comparator
func NewWithComparator[K any, V any](capacity int, variant tree.Variant, compare tree.Comparator[K]) (*Map[K, V], error) {
	t, err := tree.New[K, V](capacity, variant, compare)
	if nil != err {
		return nil, err
	}
	return &Map[K, V]{
		tree:     t,
		capacity: capacity,
	}, nil
}

// NewFromEntries - create a map holding an initial set of entries
//
// a capacity of zero sizes the map to exactly the number of entries;
// otherwise the capacity must be at least the number of entries.  If
// a key occurs more than once the first value is kept.
func NewFromEntries[K cmp.Ordered, V any](entries []Entry[K, V], capacity int, variant tree.Variant) (*Map[K, V], error) {
	return NewFromEntriesWithComparator(entries, capacity, variant, cmp.Compare[K])
}

// NewFromEntriesWithComparator - as NewFromEntries with a custom
// comparator
func NewFromEntriesWithComparator[K any, V any](entries []Entry[K, V], capacity int, variant tree.Variant, compare tree.Comparator[K]) (*Map[K, V], error) {
	if 0 == capacity {
		capacity = len(entries)
	} else if capacity > 0 && capacity < len(entries) {
		return nil, fault.ErrInitialEntriesExceedCapacity
	}
	m, err := NewWithComparator[K, V](capacity, variant, compare)
	if nil != err {
		return nil, err
	}
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m, nil
}
