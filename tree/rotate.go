// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// rotateLeft - the right child of x takes the place of x and x
// becomes its left child
//
//	  x                y
//	 / \              / \
//	a   y     -->    x   c
//	   / \          / \
//	  b   c        a   b
//
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateLeft(x int) int {
	nodes := tree.nodes
	y := nodes[x].right

	nodes[x].right = nodes[y].left
	if none != nodes[y].left {
		nodes[nodes[y].left].up = x
	}
	tree.transplant(x, y)
	nodes[y].left = x
	nodes[x].up = y

	if AVL == tree.variant {
		tree.updateHeight(x)
		tree.updateHeight(y)
	}
	return y
}

// rotateRight - the left child of x takes the place of x and x
// becomes its right child
//
//	    x            y
//	   / \          / \
//	  y   c  -->   a   x
//	 / \              / \
//	a   b            b   c
//
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateRight(x int) int {
	nodes := tree.nodes
	y := nodes[x].left

	nodes[x].left = nodes[y].right
	if none != nodes[y].right {
		nodes[nodes[y].right].up = x
	}
	tree.transplant(x, y)
	nodes[y].right = x
	nodes[x].up = y

	if AVL == tree.variant {
		tree.updateHeight(x)
		tree.updateHeight(y)
	}
	return y
}

// transplant - replace the sub-tree at u with the sub-tree at v in
// the parent of u; the links of u itself are not changed
func (tree *Tree[K, V]) transplant(u int, v int) {
	nodes := tree.nodes
	parent := nodes[u].up
	switch {
	case none == parent:
		tree.root = v
	case u == nodes[parent].left:
		nodes[parent].left = v
	default:
		nodes[parent].right = v
	}
	if none != v {
		nodes[v].up = parent
	}
}
