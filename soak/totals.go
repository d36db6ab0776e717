// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/fixedmap/counter"
)

// Totals - operation counts for a worker or a whole run
//
// Missed counts operations that did not change or find anything:
// rejected inserts, erases and finds of absent keys, and assigns
// that did not create a new key
type Totals struct {
	Operations [OperationCount]uint64 `json:"operations"`
	Missed     [OperationCount]uint64 `json:"missed"`
	Mismatched uint64                 `json:"mismatched"`
}

// Add - accumulate another set of totals
func (t *Totals) Add(other Totals) {
	for op := Operation(0); op < OperationCount; op += 1 {
		t.Operations[op] += other.Operations[op]
		t.Missed[op] += other.Missed[op]
	}
	t.Mismatched += other.Mismatched
}

// Sum - all operations performed
func (t Totals) Sum() uint64 {
	n := uint64(0)
	for _, c := range t.Operations {
		n += c
	}
	return n
}

type tally struct {
	operations [OperationCount]counter.Counter
	missed     [OperationCount]counter.Counter
	mismatched counter.Counter
}

func (t *tally) record(op Operation, ok bool) {
	t.operations[op].Increment()
	if !ok {
		t.missed[op].Increment()
	}
}

func (t *tally) totals() Totals {
	result := Totals{
		Mismatched: t.mismatched.Uint64(),
	}
	for op := Operation(0); op < OperationCount; op += 1 {
		result.Operations[op] = t.operations[op].Uint64()
		result.Missed[op] = t.missed[op].Uint64()
	}
	return result
}
