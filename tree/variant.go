// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"strings"

	"github.com/bitmark-inc/fixedmap/fault"
)

// Variant - the balancing strategy of a tree
type Variant int

// the recognised strategies
const (
	RedBlack Variant = iota
	AVL
)

// Valid - true for a recognised strategy
func (v Variant) Valid() bool {
	switch v {
	case RedBlack, AVL:
		return true
	default:
		return false
	}
}

// String - name of the strategy
func (v Variant) String() string {
	switch v {
	case RedBlack:
		return "red-black"
	case AVL:
		return "avl"
	default:
		return "unknown"
	}
}

// ParseVariant - convert a configuration name to a strategy
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "redblack", "red-black", "red_black", "rb":
		return RedBlack, nil
	case "avl":
		return AVL, nil
	default:
		return RedBlack, fault.ErrUnknownVariant
	}
}

// tag for a newly created leaf
func (v Variant) leafTag() int32 {
	if AVL == v {
		return 1 // height of a leaf
	}
	return red
}
