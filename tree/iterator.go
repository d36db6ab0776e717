// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() Handle {
	return tree.handle(tree.minimum(tree.root))
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() Handle {
	return tree.handle(tree.maximum(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) minimum(i int) int {
	if none == i {
		return none
	}
	for none != tree.nodes[i].left {
		i = tree.nodes[i].left
	}
	return i
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) maximum(i int) int {
	if none == i {
		return none
	}
	for none != tree.nodes[i].right {
		i = tree.nodes[i].right
	}
	return i
}

// Next - given a node, return the node with the next highest key
// value or End if no more nodes.
//
// End and positions of deleted nodes also give End
func (tree *Tree[K, V]) Next(h Handle) Handle {
	i := tree.resolve(h)
	if none == i {
		return End
	}
	nodes := tree.nodes
	if none != nodes[i].right {
		return tree.handle(tree.minimum(nodes[i].right))
	}
	p := nodes[i].up
	for none != p && i == nodes[p].right {
		i = p
		p = nodes[p].up
	}
	return tree.handle(p)
}

// Prev - given a node, return the node with the next lowest key value
// or End if no more nodes
//
// from End (or the position of a deleted node) this gives the highest
// node so a reverse walk can start at End
func (tree *Tree[K, V]) Prev(h Handle) Handle {
	i := tree.resolve(h)
	if none == i {
		return tree.Last()
	}
	nodes := tree.nodes
	if none != nodes[i].left {
		return tree.handle(tree.maximum(nodes[i].left))
	}
	p := nodes[i].up
	for none != p && i == nodes[p].left {
		i = p
		p = nodes[p].up
	}
	return tree.handle(p)
}
