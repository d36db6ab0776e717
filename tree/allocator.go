// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/fixedmap/fault"
)

// fixed pool of nodes
//
// the free list is threaded through the right link of unused nodes
// and must never be followed as a tree link
type arena[K any, V any] struct {
	nodes []node[K, V]
	free  int // head of the free list
}

// internal: create a pool with every slot on the free list
func newArena[K any, V any](capacity int) arena[K, V] {
	a := arena[K, V]{
		nodes: make([]node[K, V], capacity),
		free:  none,
	}
	for i := capacity - 1; i >= 0; i -= 1 {
		a.nodes[i] = node[K, V]{
			left:  none,
			right: a.free,
			up:    none,
		}
		a.free = i
	}
	return a
}

// take a node from the free list, links cleared and tag set to the
// value required for a new leaf
func (a *arena[K, V]) allocate(tag int32) (int, error) {
	if none == a.free {
		return none, fault.ErrCapacityExceeded
	}
	i := a.free
	n := &a.nodes[i]
	if n.inUse {
		fault.Panicf("tree: free list corrupt at slot: %d", i)
	}
	a.free = n.right

	n.left = none
	n.right = none // ensure freelist pointer is cleared
	n.up = none
	n.tag = tag
	n.inUse = true
	return i, nil
}

// reclaim a node and return it to the head of the free list
//
// the node must already be unlinked from the tree
func (a *arena[K, V]) deallocate(i int) {
	n := &a.nodes[i]
	if !n.inUse {
		fault.Panicf("tree: slot: %d released twice", i)
	}

	var key K
	var value V
	n.key = key
	n.value = value
	n.left = none
	n.up = none
	n.tag = 0
	n.inUse = false
	n.generation += 1

	n.right = a.free // use as free list pointer
	a.free = i
}

// release every node in use in a single sweep
func (a *arena[K, V]) reclaimAll() {
	for i := range a.nodes {
		if a.nodes[i].inUse {
			a.deallocate(i)
		}
	}
}

// number of nodes on the free list
func (a *arena[K, V]) freeCount() int {
	count := 0
	for i := a.free; none != i; i = a.nodes[i].right {
		count += 1
		if count > len(a.nodes) {
			fault.Panicf("tree: free list has a cycle")
		}
	}
	return count
}
