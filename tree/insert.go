// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/fixedmap/fault"
)

// Insert - insert a new node into the tree
//
// returns false if the key is already present or the pool is
// exhausted, in both cases the tree is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	_, err := tree.Add(key, value)
	return nil == err
}

// Add - insert a new node into the tree and return its position
//
// errors:
//
//	fault.ErrDuplicateKey      key is already present, existing value kept
//	fault.ErrCapacityExceeded  no free node in the pool
func (tree *Tree[K, V]) Add(key K, value V) (Handle, error) {

	// descend to the empty link where the key belongs
	parent := none
	p := tree.root
	c := 0
	for none != p {
		parent = p
		c = tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0:
			p = tree.nodes[p].left
		case c > 0:
			p = tree.nodes[p].right
		default:
			return End, fault.ErrDuplicateKey
		}
	}

	i, err := tree.allocate(tree.variant.leafTag())
	if nil != err {
		return End, err
	}
	n := &tree.nodes[i]
	n.key = key
	n.value = value
	n.up = parent

	if none == parent {
		tree.root = i
	} else if c < 0 {
		tree.nodes[parent].left = i
	} else {
		tree.nodes[parent].right = i
	}
	tree.count += 1

	switch tree.variant {
	case RedBlack:
		tree.redBlackInsertFixup(i)
	case AVL:
		tree.avlRebalance(parent)
	}
	return tree.handle(i), nil
}
