// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// red-black rules:
//   the root is black
//   a red node never has a red child
//   every path from the root to an empty link has the same number of
//   black nodes
//
// empty links count as black

// internal: colour test that treats an empty link as black
func (tree *Tree[K, V]) isRed(i int) bool {
	return none != i && red == tree.nodes[i].tag
}

// internal: restore the rules after z was linked in as a red leaf
func (tree *Tree[K, V]) redBlackInsertFixup(z int) {
	nodes := tree.nodes

	for tree.isRed(nodes[z].up) {
		p := nodes[z].up
		g := nodes[p].up // a red parent is never the root

		if p == nodes[g].left {
			u := nodes[g].right
			if tree.isRed(u) {
				// uncle red: push the blackness down from the grandparent
				nodes[p].tag = black
				nodes[u].tag = black
				nodes[g].tag = red
				z = g
				continue
			}
			if z == nodes[p].right {
				// inner child: straighten the bend
				z = p
				tree.rotateLeft(z)
				p = nodes[z].up
			}
			nodes[p].tag = black
			nodes[g].tag = red
			tree.rotateRight(g)
		} else {
			u := nodes[g].left
			if tree.isRed(u) {
				nodes[p].tag = black
				nodes[u].tag = black
				nodes[g].tag = red
				z = g
				continue
			}
			if z == nodes[p].left {
				z = p
				tree.rotateRight(z)
				p = nodes[z].up
			}
			nodes[p].tag = black
			nodes[g].tag = red
			tree.rotateLeft(g)
		}
	}
	nodes[tree.root].tag = black
}

// internal: restore the rules after a black node was removed
//
// x carries an extra black; it may be none, so its parent is passed
// explicitly
func (tree *Tree[K, V]) redBlackDeleteFixup(x int, parent int) {
	nodes := tree.nodes

	for x != tree.root && !tree.isRed(x) {
		if x == nodes[parent].left {
			w := nodes[parent].right
			if tree.isRed(w) {
				// red sibling: rotate so the sibling becomes black
				nodes[w].tag = black
				nodes[parent].tag = red
				tree.rotateLeft(parent)
				w = nodes[parent].right
			}
			if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
				// both nephews black: move the deficiency up
				nodes[w].tag = red
				x = parent
				parent = nodes[x].up
				continue
			}
			if !tree.isRed(nodes[w].right) {
				// far nephew black, near nephew red
				nodes[nodes[w].left].tag = black
				nodes[w].tag = red
				tree.rotateRight(w)
				w = nodes[parent].right
			}
			// far nephew red: one rotation absorbs the extra black
			nodes[w].tag = nodes[parent].tag
			nodes[parent].tag = black
			nodes[nodes[w].right].tag = black
			tree.rotateLeft(parent)
			x = tree.root
		} else {
			w := nodes[parent].left
			if tree.isRed(w) {
				nodes[w].tag = black
				nodes[parent].tag = red
				tree.rotateRight(parent)
				w = nodes[parent].left
			}
			if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
				nodes[w].tag = red
				x = parent
				parent = nodes[x].up
				continue
			}
			if !tree.isRed(nodes[w].left) {
				nodes[nodes[w].right].tag = black
				nodes[w].tag = red
				tree.rotateLeft(w)
				w = nodes[parent].left
			}
			nodes[w].tag = nodes[parent].tag
			nodes[parent].tag = black
			nodes[nodes[w].left].tag = black
			tree.rotateRight(parent)
			x = tree.root
		}
	}
	if none != x {
		nodes[x].tag = black
	}
}
