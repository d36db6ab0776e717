// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Delete - removes a specific item from the tree
//
// returns false if the key is not present
func (tree *Tree[K, V]) Delete(key K) bool {
	_, removed := tree.Remove(key)
	return removed
}

// Remove - removes a specific item from the tree and returns its value
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	z := tree.search(key)
	if none == z {
		var value V
		return value, false
	}
	value := tree.nodes[z].value // preserve the value part
	tree.unlink(z)
	tree.deallocate(z) // return deleted node to pool
	tree.count -= 1
	return value, true
}

// internal: detach a node from the tree and rebalance
//
// x is the node that moved into the vacated position (possibly none)
// and xParent its parent; this is where the structure changed and
// where the fixup starts
func (tree *Tree[K, V]) unlink(z int) {
	nodes := tree.nodes

	removedTag := nodes[z].tag
	x := none
	xParent := none

	switch {
	case none == nodes[z].left:
		x = nodes[z].right
		xParent = nodes[z].up
		tree.transplant(z, x)

	case none == nodes[z].right:
		x = nodes[z].left
		xParent = nodes[z].up
		tree.transplant(z, x)

	default:
		// two children: the successor takes the place of z
		y := tree.minimum(nodes[z].right)
		removedTag = nodes[y].tag
		x = nodes[y].right

		if nodes[y].up == z {
			xParent = y
		} else {
			xParent = nodes[y].up
			tree.transplant(y, x)
			nodes[y].right = nodes[z].right
			nodes[nodes[y].right].up = y
		}
		tree.transplant(z, y)
		nodes[y].left = nodes[z].left
		nodes[nodes[y].left].up = y
		nodes[y].tag = nodes[z].tag
	}

	switch tree.variant {
	case RedBlack:
		if black == removedTag {
			tree.redBlackDeleteFixup(x, xParent)
		}
	case AVL:
		tree.avlRebalance(xParent)
	}
}
