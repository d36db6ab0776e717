// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedmap

import (
	"github.com/bitmark-inc/fixedmap/fault"
	"github.com/bitmark-inc/fixedmap/tree"
)

// Insert - add a new key
//
// returns false if the key is already present (the existing value is
// kept) or if the map is full
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.insert(key, value)
}

// internal: insert with the lock held
func (m *Map[K, V]) insert(key K, value V) bool {
	_, err := m.tree.Add(key, value)
	m.stats.recordInsert(err)
	return nil == err
}

// Erase - remove a key, returns false if it was not present
func (m *Map[K, V]) Erase(key K) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.tree.Delete(key) {
		return false
	}
	m.stats.erased.Increment()
	return true
}

// Find - value stored for a key
func (m *Map[K, V]) Find(key K) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, value, err := m.tree.Get(m.tree.Search(key))
	return value, nil == err
}

// Contains - true if the key is present
func (m *Map[K, V]) Contains(key K) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return !m.tree.Search(key).IsEnd()
}

// GetOrDefault - value stored for a key, inserting the zero value if
// the key is absent
//
// returns false only if the key was absent and the map is full
func (m *Map[K, V]) GetOrDefault(key K) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, value, err := m.tree.Get(m.tree.Search(key))
	if nil == err {
		return value, true
	}
	var zero V
	return zero, m.insert(key, zero)
}

// InsertOrAssign - add a key or overwrite the value of an existing one
//
// returns true only if a new key was created; false means either the
// existing value was overwritten or, for an absent key, the map is
// full
func (m *Map[K, V]) InsertOrAssign(key K, value V) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.tree.SetValue(m.tree.Search(key), value); nil == err {
		return false
	}
	return m.insert(key, value)
}

// Extract - remove a key and return the stored pair
//
// errors:
//
//	fault.ErrKeyNotFound  the key is not present
func (m *Map[K, V]) Extract(key K) (K, V, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	h := m.tree.Search(key)
	k, _, err := m.tree.Get(h)
	if nil != err {
		var value V
		return k, value, fault.ErrKeyNotFound
	}
	value, _ := m.tree.Remove(key)
	m.stats.erased.Increment()
	return k, value, nil
}

// Clear - remove all entries, the capacity is unchanged
func (m *Map[K, V]) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.stats.erased.Add(uint64(m.tree.Count()))
	m.tree.Clear()
}

// Size - number of entries
func (m *Map[K, V]) Size() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.tree.Count()
}

// IsEmpty - true if there are no entries
func (m *Map[K, V]) IsEmpty() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.tree.IsEmpty()
}

// Capacity - maximum number of entries, fixed at creation
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// Available - number of free nodes, always Capacity() - Size()
func (m *Map[K, V]) Available() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.tree.Available()
}

// Variant - the balancing strategy selected at creation
func (m *Map[K, V]) Variant() tree.Variant {
	return m.tree.Variant()
}

// Range - call f for each entry in ascending key order until f
// returns false
//
// the lock is held for the whole walk, so f must not call any method
// of the same map
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for h := m.tree.First(); !h.IsEnd(); h = m.tree.Next(h) {
		key, value, _ := m.tree.Get(h)
		if !f(key, value) {
			return
		}
	}
}

// Entries - copy of all entries in ascending key order
func (m *Map[K, V]) Entries() []Entry[K, V] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.entries()
}

// internal: entries with the lock held
func (m *Map[K, V]) entries() []Entry[K, V] {
	result := make([]Entry[K, V], 0, m.tree.Count())
	for h := m.tree.First(); !h.IsEnd(); h = m.tree.Next(h) {
		key, value, _ := m.tree.Get(h)
		result = append(result, Entry[K, V]{Key: key, Value: value})
	}
	return result
}

// Merge - insert every entry of other whose key is not already
// present; other is not modified
//
// other is locked for the duration of the copy, but each insert into
// m takes the lock of m separately, so another go routine can observe
// m partly merged.  Two maps must not be merged into each other
// concurrently.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if m == other || nil == other {
		return
	}

	other.mutex.Lock()
	defer other.mutex.Unlock()

	for h := other.tree.First(); !h.IsEnd(); h = other.tree.Next(h) {
		key, value, _ := other.tree.Get(h)
		m.Insert(key, value)
	}
}

// Check - verify the structure of the underlying tree
func (m *Map[K, V]) Check() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.tree.Check()
}
