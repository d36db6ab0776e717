// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"

	"github.com/bitmark-inc/fixedmap/fault"
)

// Comparator - ordering function for keys, returns a negative value
// if a < b, zero if a == b and a positive value if a > b
type Comparator[K any] func(a, b K) int

// Tree - type to hold the root node of a tree and its node pool
type Tree[K any, V any] struct {
	arena[K, V]
	root    int
	count   int
	variant Variant
	compare Comparator[K]
}

// New - create an initially empty tree able to hold up to capacity
// nodes
func New[K any, V any](capacity int, variant Variant, compare Comparator[K]) (*Tree[K, V], error) {
	if capacity < 0 {
		return nil, fault.ErrInvalidCapacity
	}
	if !variant.Valid() {
		return nil, fault.ErrUnknownVariant
	}
	if nil == compare {
		return nil, fault.ErrInvalidComparator
	}
	return &Tree[K, V]{
		arena:   newArena[K, V](capacity),
		root:    none,
		count:   0,
		variant: variant,
		compare: compare,
	}, nil
}

// NewOrdered - create a tree for keys with a natural order
func NewOrdered[K cmp.Ordered, V any](capacity int, variant Variant) (*Tree[K, V], error) {
	return New[K, V](capacity, variant, cmp.Compare[K])
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Capacity - maximum number of nodes
func (tree *Tree[K, V]) Capacity() int {
	return len(tree.nodes)
}

// Available - number of nodes on the free list
func (tree *Tree[K, V]) Available() int {
	return tree.freeCount()
}

// Variant - the balancing strategy
func (tree *Tree[K, V]) Variant() Variant {
	return tree.variant
}

// Root - position of the root node, End for an empty tree
func (tree *Tree[K, V]) Root() Handle {
	return tree.handle(tree.root)
}

// Clear - return every node to the pool
func (tree *Tree[K, V]) Clear() {
	tree.reclaimAll()
	tree.root = none
	tree.count = 0
}

// Valid - true if the handle refers to a node still in the tree
func (tree *Tree[K, V]) Valid(h Handle) bool {
	return none != tree.resolve(h)
}

// Get - the key and value at a position
func (tree *Tree[K, V]) Get(h Handle) (K, V, error) {
	i := tree.resolve(h)
	if none == i {
		var key K
		var value V
		return key, value, fault.ErrInvalidIteratorAccess
	}
	n := &tree.nodes[i]
	return n.key, n.value, nil
}

// SetValue - overwrite the value at a position
func (tree *Tree[K, V]) SetValue(h Handle, value V) error {
	i := tree.resolve(h)
	if none == i {
		return fault.ErrInvalidIteratorAccess
	}
	tree.nodes[i].value = value
	return nil
}

// Depth - get the depth of a node, the root is at depth zero
func (tree *Tree[K, V]) Depth(h Handle) (int, error) {
	i := tree.resolve(h)
	if none == i {
		return 0, fault.ErrInvalidIteratorAccess
	}
	count := 0
	for p := tree.nodes[i].up; none != p; p = tree.nodes[p].up {
		count += 1
	}
	return count, nil
}
