// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Search - find a specific key, returns End if not present
func (tree *Tree[K, V]) Search(key K) Handle {
	return tree.handle(tree.search(key))
}

// internal: index of the node holding key or none
func (tree *Tree[K, V]) search(key K) int {
	p := tree.root
	for none != p {
		c := tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0:
			p = tree.nodes[p].left
		case c > 0:
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return none
}
