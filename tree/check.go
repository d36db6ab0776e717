// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
)

// Check - verify every structural rule that applies to the tree's
// variant, returns an error describing the first failure
func (tree *Tree[K, V]) Check() error {
	if err := tree.CheckUp(); nil != err {
		return err
	}
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	if err := tree.CheckArena(); nil != err {
		return err
	}
	switch tree.variant {
	case RedBlack:
		return tree.CheckRedBlack()
	case AVL:
		return tree.CheckAVL()
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() error {
	if none != tree.root && none != tree.nodes[tree.root].up {
		return fmt.Errorf("root: %v has a parent", tree.nodes[tree.root].key)
	}
	return tree.checkup(tree.root)
}

// internal: consistency checker
func (tree *Tree[K, V]) checkup(p int) error {
	if none == p {
		return nil
	}
	n := &tree.nodes[p]
	if !n.inUse {
		return fmt.Errorf("slot: %d is linked but not in use", p)
	}
	for _, c := range []int{n.left, n.right} {
		if none != c && tree.nodes[c].up != p {
			return fmt.Errorf("fail at node: %v  parent link does not point to: %v", tree.nodes[c].key, n.key)
		}
	}
	if err := tree.checkup(n.left); nil != err {
		return err
	}
	return tree.checkup(n.right)
}

// CheckOrder - an in-order walk must give strictly ascending keys
// and visit exactly Count nodes
func (tree *Tree[K, V]) CheckOrder() error {
	count := 0
	previous := none
	for i := tree.minimum(tree.root); none != i; i = tree.resolve(tree.Next(tree.handle(i))) {
		if none != previous && tree.compare(tree.nodes[previous].key, tree.nodes[i].key) >= 0 {
			return fmt.Errorf("keys out of order: %v before %v", tree.nodes[previous].key, tree.nodes[i].key)
		}
		previous = i
		count += 1
		if count > tree.count {
			break
		}
	}
	if count != tree.count {
		return fmt.Errorf("walk visited: %d nodes  expected: %d", count, tree.count)
	}
	return nil
}

// CheckArena - the tree and the free list must partition the pool
func (tree *Tree[K, V]) CheckArena() error {
	inUse := 0
	for i := range tree.nodes {
		if tree.nodes[i].inUse {
			inUse += 1
		}
	}
	if inUse != tree.count {
		return fmt.Errorf("nodes in use: %d  count: %d", inUse, tree.count)
	}
	free := 0
	for i := tree.free; none != i; i = tree.nodes[i].right {
		if tree.nodes[i].inUse {
			return fmt.Errorf("slot: %d on free list is in use", i)
		}
		free += 1
		if free > len(tree.nodes) {
			return fmt.Errorf("free list has a cycle")
		}
	}
	if free+tree.count != len(tree.nodes) {
		return fmt.Errorf("free: %d + count: %d != capacity: %d", free, tree.count, len(tree.nodes))
	}
	return nil
}

// CheckRedBlack - verify the colour rules
func (tree *Tree[K, V]) CheckRedBlack() error {
	if tree.isRed(tree.root) {
		return fmt.Errorf("root: %v is red", tree.nodes[tree.root].key)
	}
	_, err := tree.blackHeight(tree.root)
	return err
}

// internal: black nodes on every path below and including p
func (tree *Tree[K, V]) blackHeight(p int) (int, error) {
	if none == p {
		return 1, nil
	}
	n := &tree.nodes[p]
	if red == n.tag && (tree.isRed(n.left) || tree.isRed(n.right)) {
		return 0, fmt.Errorf("red node: %v has a red child", n.key)
	}
	l, err := tree.blackHeight(n.left)
	if nil != err {
		return 0, err
	}
	r, err := tree.blackHeight(n.right)
	if nil != err {
		return 0, err
	}
	if l != r {
		return 0, fmt.Errorf("node: %v black height left: %d  right: %d", n.key, l, r)
	}
	if black == n.tag {
		return l + 1, nil
	}
	return l, nil
}

// CheckAVL - verify stored heights and balance factors
func (tree *Tree[K, V]) CheckAVL() error {
	_, err := tree.checkHeight(tree.root)
	return err
}

// internal: recomputed height of a sub-tree
func (tree *Tree[K, V]) checkHeight(p int) (int32, error) {
	if none == p {
		return 0, nil
	}
	n := &tree.nodes[p]
	l, err := tree.checkHeight(n.left)
	if nil != err {
		return 0, err
	}
	r, err := tree.checkHeight(n.right)
	if nil != err {
		return 0, err
	}
	if l-r > 1 || r-l > 1 {
		return 0, fmt.Errorf("node: %v balance: %d", n.key, l-r)
	}
	h := 1 + l
	if r > l {
		h = 1 + r
	}
	if h != n.tag {
		return 0, fmt.Errorf("node: %v stored height: %d  actual: %d", n.key, n.tag, h)
	}
	return h, nil
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	return tree.depth(tree.root)
}

// internal: longest path in a sub-tree
func (tree *Tree[K, V]) depth(p int) int {
	if none == p {
		return 0
	}
	l := tree.depth(tree.nodes[p].left)
	r := tree.depth(tree.nodes[p].right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
