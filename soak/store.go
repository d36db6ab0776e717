// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/fixedmap/soak Store

// Store - the operations a worker applies
//
// *fixedmap.Map[uint64, string] satisfies this
type Store interface {
	Insert(key uint64, value string) bool
	Erase(key uint64) bool
	Find(key uint64) (string, bool)
	InsertOrAssign(key uint64, value string) bool
	Size() int
	Capacity() int
	Check() error
}
