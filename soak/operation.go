// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// Operation - one kind of store access
type Operation int

// the operations in the order a step chooses between them
const (
	OperationInsert Operation = iota
	OperationErase
	OperationFind
	OperationAssign
	OperationCount // must be last
)

// out of ten steps
var weights = [OperationCount]int{
	OperationInsert: 4,
	OperationErase:  3,
	OperationFind:   2,
	OperationAssign: 1,
}

func (op Operation) String() string {
	switch op {
	case OperationInsert:
		return "insert"
	case OperationErase:
		return "erase"
	case OperationFind:
		return "find"
	case OperationAssign:
		return "assign"
	default:
		return "unknown"
	}
}

// pick an operation from a number in [0, 10)
func choose(n int) Operation {
	for op := Operation(0); op < OperationCount; op += 1 {
		if n < weights[op] {
			return op
		}
		n -= weights[op]
	}
	return OperationFind
}

// ValueFor - the only value a key is ever stored with
func ValueFor(key uint64) string {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, key)
	return base58.Encode(buffer)
}
