// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"context"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fixedmap/fault"
)

// Worker - a background process applying random operations to a store
type Worker struct {
	id       int
	store    Store
	keyRange uint64
	random   *rand.Rand
	limiter  *rate.Limiter
	log      *logger.L
	tally    tally
}

// NewWorker - create a worker over keys [0, keyRange)
//
// a nil limiter means no rate limit
func NewWorker(id int, store Store, keyRange uint64, seed int64, limiter *rate.Limiter, log *logger.L) *Worker {
	if nil == limiter {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if 0 == keyRange {
		keyRange = 1
	}
	return &Worker{
		id:       id,
		store:    store,
		keyRange: keyRange,
		random:   rand.New(rand.NewSource(seed)),
		limiter:  limiter,
		log:      log,
	}
}

// Run - step until shutdown
func (w *Worker) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("worker[%d]: starting…", w.id)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		if err := w.limiter.Wait(ctx); nil != err {
			break loop
		}
		w.Step()
	}

	log.Infof("worker[%d]: stopped after %d operations", w.id, w.tally.totals().Sum())
}

// Step - perform one randomly chosen operation on a random key
func (w *Worker) Step() Operation {
	op := choose(w.random.Intn(10))
	key := uint64(w.random.Int63n(int64(w.keyRange)))
	w.Perform(op, key)
	return op
}

// Perform - apply a single operation and record its outcome
func (w *Worker) Perform(op Operation, key uint64) {
	switch op {
	case OperationInsert:
		w.tally.record(op, w.store.Insert(key, ValueFor(key)))

	case OperationErase:
		w.tally.record(op, w.store.Erase(key))

	case OperationFind:
		value, ok := w.store.Find(key)
		w.tally.record(op, ok)
		if ok && value != ValueFor(key) {
			w.tally.mismatched.Increment()
			w.log.Criticalf("worker[%d]: key: %d  value: %q  expected: %q", w.id, key, value, ValueFor(key))
		}

	case OperationAssign:
		w.tally.record(op, w.store.InsertOrAssign(key, ValueFor(key)))

	default:
		fault.Panicf("worker[%d]: invalid operation: %d", w.id, op)
	}
}

// Totals - counts so far
func (w *Worker) Totals() Totals {
	return w.tally.totals()
}
