// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, returns
// the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, p int, prefix string, br branch, printData bool) int {
	if none == p {
		return 0
	}
	n := &tree.nodes[p]
	rd := 0
	ld := 0
	if none != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if none != n.up {
		up = tree.nodes[n.up].key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %s\n", n.key, n.value, up, tree.tagString(p))
	} else {
		fmt.Fprintf(w, "%v ^%v\n", n.key, up)
	}
	if none != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// internal: readable form of the variant tag
func (tree *Tree[K, V]) tagString(p int) string {
	if AVL == tree.variant {
		return fmt.Sprintf("h=%d/%+d", tree.nodes[p].tag, tree.balanceFactor(p))
	}
	if tree.isRed(p) {
		return "red"
	}
	return "black"
}
