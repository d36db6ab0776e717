// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedmap

import (
	"github.com/bitmark-inc/fixedmap/counter"
	"github.com/bitmark-inc/fixedmap/fault"
)

// running totals, readable without taking the map lock
type statistics struct {
	inserted   counter.Counter
	duplicates counter.Counter
	full       counter.Counter
	erased     counter.Counter
}

// Stats - snapshot of the operation totals of a map
type Stats struct {
	Inserted   uint64 `json:"inserted"`   // new keys added
	Duplicates uint64 `json:"duplicates"` // inserts rejected: key present
	Full       uint64 `json:"full"`       // inserts rejected: no free node
	Erased     uint64 `json:"erased"`     // keys removed by erase, extract or clear
}

// Stats - current operation totals
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Inserted:   m.stats.inserted.Uint64(),
		Duplicates: m.stats.duplicates.Uint64(),
		Full:       m.stats.full.Uint64(),
		Erased:     m.stats.erased.Uint64(),
	}
}

// internal: count the outcome of an insert attempt
func (s *statistics) recordInsert(err error) {
	switch {
	case nil == err:
		s.inserted.Increment()
	case fault.IsErrExists(err):
		s.duplicates.Increment()
	default:
		s.full.Increment()
	}
}
