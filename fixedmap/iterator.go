// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedmap

import (
	"github.com/bitmark-inc/fixedmap/tree"
)

// Iterator - a bidirectional position in a map
//
// each step takes the map lock only while it runs; see the package
// documentation for the rules on concurrent modification
type Iterator[K any, V any] struct {
	m        *Map[K, V]
	position tree.Handle
}

// Begin - iterator at the lowest key, equal to End for an empty map
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return &Iterator[K, V]{m: m, position: m.tree.First()}
}

// End - iterator one past the highest key
func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, position: tree.End}
}

// Last - iterator at the highest key, equal to End for an empty map
func (m *Map[K, V]) Last() *Iterator[K, V] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return &Iterator[K, V]{m: m, position: m.tree.Last()}
}

// Seek - iterator at a specific key, End if the key is not present
func (m *Map[K, V]) Seek(key K) *Iterator[K, V] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return &Iterator[K, V]{m: m, position: m.tree.Search(key)}
}

// Next - advance to the next higher key, returns false once the end
// is reached
//
// advancing from the end stays at the end
func (it *Iterator[K, V]) Next() bool {
	it.m.mutex.Lock()
	defer it.m.mutex.Unlock()

	it.position = it.m.tree.Next(it.position)
	return !it.position.IsEnd()
}

// Prev - move to the next lower key, returns false if there is none
//
// moving back from the end gives the highest key
func (it *Iterator[K, V]) Prev() bool {
	it.m.mutex.Lock()
	defer it.m.mutex.Unlock()

	it.position = it.m.tree.Prev(it.position)
	return !it.position.IsEnd()
}

// IsEnd - true at the end position
func (it *Iterator[K, V]) IsEnd() bool {
	return it.position.IsEnd()
}

// Equal - true if both iterators are at the same position of the
// same map
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return it.m == other.m && it.position == other.position
}

// Clone - independent copy of the iterator
func (it *Iterator[K, V]) Clone() *Iterator[K, V] {
	c := *it
	return &c
}

// Entry - key and value at the current position
//
// errors:
//
//	fault.ErrInvalidIteratorAccess  at the end, or the entry was removed
func (it *Iterator[K, V]) Entry() (Entry[K, V], error) {
	it.m.mutex.Lock()
	defer it.m.mutex.Unlock()

	key, value, err := it.m.tree.Get(it.position)
	return Entry[K, V]{Key: key, Value: value}, err
}

// Key - key at the current position
func (it *Iterator[K, V]) Key() (K, error) {
	e, err := it.Entry()
	return e.Key, err
}

// Value - value at the current position
func (it *Iterator[K, V]) Value() (V, error) {
	e, err := it.Entry()
	return e.Value, err
}

// SetValue - overwrite the value at the current position
func (it *Iterator[K, V]) SetValue(value V) error {
	it.m.mutex.Lock()
	defer it.m.mutex.Unlock()

	return it.m.tree.SetValue(it.position, value)
}
