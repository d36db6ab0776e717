// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// AVL rule: the heights of the two sub-trees of any node differ by at
// most one; the tag of each node holds the height of its sub-tree
// (leaf = 1, empty = 0)

// internal: height of a sub-tree
func (tree *Tree[K, V]) height(i int) int32 {
	if none == i {
		return 0
	}
	return tree.nodes[i].tag
}

// internal: recompute the height of a node from its children
func (tree *Tree[K, V]) updateHeight(i int) {
	n := &tree.nodes[i]
	l := tree.height(n.left)
	r := tree.height(n.right)
	if l > r {
		n.tag = 1 + l
	} else {
		n.tag = 1 + r
	}
}

// internal: left height minus right height
func (tree *Tree[K, V]) balanceFactor(i int) int32 {
	n := &tree.nodes[i]
	return tree.height(n.left) - tree.height(n.right)
}

// internal: walk from i up to the root fixing heights and rotating
// any node that is out of balance
//
// the walk always reaches the root since a rotation or a height
// change can unbalance an ancestor
func (tree *Tree[K, V]) avlRebalance(i int) {
	for none != i {
		i = tree.avlBalance(i)
		i = tree.nodes[i].up
	}
}

// internal: rebalance a single node, returns the root of its sub-tree
func (tree *Tree[K, V]) avlBalance(i int) int {
	tree.updateHeight(i)
	nodes := tree.nodes

	switch bf := tree.balanceFactor(i); {
	case bf > 1:
		if tree.balanceFactor(nodes[i].left) < 0 {
			// double LR rotation
			tree.rotateLeft(nodes[i].left)
		}
		return tree.rotateRight(i)

	case bf < -1:
		if tree.balanceFactor(nodes[i].right) > 0 {
			// double RL rotation
			tree.rotateRight(nodes[i].right)
		}
		return tree.rotateLeft(i)
	}
	return i
}
