// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fixedmap/background"
	"github.com/bitmark-inc/fixedmap/soak"
	"github.com/bitmark-inc/fixedmap/soak/mocks"
)

func newWorker(store soak.Store, keyRange uint64, limiter *rate.Limiter) *soak.Worker {
	return soak.NewWorker(0, store, keyRange, 1, limiter, logger.New("test"))
}

func TestPerformInsert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert(uint64(5), soak.ValueFor(5)).Return(true).Times(1)
	m.EXPECT().Insert(uint64(6), soak.ValueFor(6)).Return(false).Times(1)

	w := newWorker(m, 10, nil)
	w.Perform(soak.OperationInsert, 5)
	w.Perform(soak.OperationInsert, 6)

	totals := w.Totals()
	assert.Equal(t, uint64(2), totals.Operations[soak.OperationInsert])
	assert.Equal(t, uint64(1), totals.Missed[soak.OperationInsert])
	assert.Equal(t, uint64(2), totals.Sum())
}

func TestPerformEraseAndAssign(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Erase(uint64(1)).Return(false).Times(1)
	m.EXPECT().InsertOrAssign(uint64(2), soak.ValueFor(2)).Return(true).Times(1)

	w := newWorker(m, 10, nil)
	w.Perform(soak.OperationErase, 1)
	w.Perform(soak.OperationAssign, 2)

	totals := w.Totals()
	assert.Equal(t, uint64(1), totals.Missed[soak.OperationErase])
	assert.Equal(t, uint64(0), totals.Missed[soak.OperationAssign])
	assert.Equal(t, uint64(0), totals.Mismatched)
}

func TestPerformFindMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	gomock.InOrder(
		m.EXPECT().Find(uint64(3)).Return(soak.ValueFor(3), true),
		m.EXPECT().Find(uint64(3)).Return("corrupt", true),
		m.EXPECT().Find(uint64(4)).Return("", false),
	)

	w := newWorker(m, 10, nil)
	w.Perform(soak.OperationFind, 3)
	w.Perform(soak.OperationFind, 3)
	w.Perform(soak.OperationFind, 4)

	totals := w.Totals()
	assert.Equal(t, uint64(3), totals.Operations[soak.OperationFind])
	assert.Equal(t, uint64(1), totals.Missed[soak.OperationFind])
	assert.Equal(t, uint64(1), totals.Mismatched)
}

// every key a step touches is inside the key range
func TestStepKeyRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const keyRange = 3
	inRange := func(key uint64) {
		assert.True(t, key < keyRange, "key: %d out of range", key)
	}

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(key uint64, value string) bool {
		inRange(key)
		return true
	}).AnyTimes()
	m.EXPECT().Erase(gomock.Any()).DoAndReturn(func(key uint64) bool {
		inRange(key)
		return true
	}).AnyTimes()
	m.EXPECT().Find(gomock.Any()).DoAndReturn(func(key uint64) (string, bool) {
		inRange(key)
		return soak.ValueFor(key), true
	}).AnyTimes()
	m.EXPECT().InsertOrAssign(gomock.Any(), gomock.Any()).DoAndReturn(func(key uint64, value string) bool {
		inRange(key)
		return false
	}).AnyTimes()

	w := newWorker(m, keyRange, nil)
	seen := make(map[soak.Operation]bool)
	for i := 0; i < 500; i += 1 {
		seen[w.Step()] = true
	}
	assert.Len(t, seen, int(soak.OperationCount))
	assert.Equal(t, uint64(500), w.Totals().Sum())
}

func TestWorkerRunStops(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Erase(gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Find(gomock.Any()).Return("", false).AnyTimes()
	m.EXPECT().InsertOrAssign(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	w := newWorker(m, 100, nil)
	p := background.Start(background.Processes{w}, nil)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	n := w.Totals().Sum()
	assert.NotZero(t, n)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, n, w.Totals().Sum(), "worker still running after stop")
}

func TestWorkerRateLimited(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Erase(gomock.Any()).Return(true).AnyTimes()
	m.EXPECT().Find(gomock.Any()).Return("", false).AnyTimes()
	m.EXPECT().InsertOrAssign(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	limiter := rate.NewLimiter(rate.Limit(50), 1)
	w := newWorker(m, 100, limiter)
	p := background.Start(background.Processes{w}, nil)
	time.Sleep(200 * time.Millisecond)
	p.Stop()

	n := w.Totals().Sum()
	assert.NotZero(t, n)
	assert.True(t, n <= 20, "rate limit not applied: %d operations", n)
}
