// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// index value for an empty link
const none = -1

// tag values for the red-black variant, the AVL variant keeps the
// height of the sub-tree in the same field
const (
	black int32 = 0
	red   int32 = 1
)

// a node in the tree
type node[K any, V any] struct {
	key        K      // key part for ordering
	value      V      // value part for data storage
	left       int    // left sub-tree
	right      int    // right sub-tree, or next free slot when not in use
	up         int    // points to parent node
	tag        int32  // colour (red-black) or height (AVL)
	inUse      bool   // false while on the free list
	generation uint32 // incremented each time the slot is released
}

// Handle - a position in a tree
//
// the zero value is the end position, one past the highest key
type Handle struct {
	slot       int // index + 1 so the zero value is the end
	generation uint32
}

// End - the position after the last node
var End = Handle{}

// IsEnd - true for the end position
func (h Handle) IsEnd() bool {
	return 0 == h.slot
}

// internal: arena index of a handle
func (h Handle) index() int {
	return h.slot - 1
}

// internal: handle for an arena index
func (tree *Tree[K, V]) handle(i int) Handle {
	if none == i {
		return End
	}
	return Handle{
		slot:       i + 1,
		generation: tree.nodes[i].generation,
	}
}

// internal: arena index of a handle if it still refers to a live
// node, otherwise none
func (tree *Tree[K, V]) resolve(h Handle) int {
	i := h.index()
	if i < 0 || i >= len(tree.nodes) {
		return none
	}
	n := &tree.nodes[i]
	if !n.inUse || n.generation != h.generation {
		return none
	}
	return i
}
