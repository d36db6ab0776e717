// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fixedmap/background"
	"github.com/bitmark-inc/fixedmap/fault"
)

// Report - result of a run
type Report struct {
	Elapsed    time.Duration `json:"elapsed"`
	Workers    int           `json:"workers"`
	Totals     Totals        `json:"totals"`
	Size       int           `json:"size"`
	Capacity   int           `json:"capacity"`
	CheckError error         `json:"-"`
}

// OK - the store stayed consistent for the whole run
func (r *Report) OK() bool {
	return nil == r.CheckError && 0 == r.Totals.Mismatched && r.Size <= r.Capacity
}

// Pool - a set of workers sharing one store and one rate limit
type Pool struct {
	sync.Mutex

	store    Store
	workers  []*Worker
	limiter  *rate.Limiter
	log      *logger.L
	started  time.Time
	register *background.T
}

// NewPool - create the workers for a configuration, nothing runs until Start
func NewPool(store Store, conf *Configuration, log *logger.L) (*Pool, error) {
	if _, err := conf.Validate(); nil != err {
		return nil, err
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	p := &Pool{
		store:   store,
		workers: make([]*Worker, conf.Workers),
		limiter: rate.NewLimiter(limitFor(conf.OperationsPerSecond), conf.Workers),
		log:     log,
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(i, store, conf.KeyRange, conf.Seed+int64(i), p.limiter, log)
	}
	return p, nil
}

func limitFor(operationsPerSecond float64) rate.Limit {
	if operationsPerSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(operationsPerSecond)
}

// Start - launch every worker
func (p *Pool) Start() error {
	p.Lock()
	defer p.Unlock()

	if nil != p.register {
		return fault.ErrWorkerAlreadyRunning
	}

	processes := make(background.Processes, len(p.workers))
	for i, w := range p.workers {
		processes[i] = w
	}

	p.log.Infof("starting %d workers  capacity: %d", len(p.workers), p.store.Capacity())
	p.started = time.Now()
	p.register = background.Start(processes, nil)
	return nil
}

// SetRate - change the shared operation rate, zero removes the limit
func (p *Pool) SetRate(operationsPerSecond float64) {
	p.log.Infof("operations per second: %g", operationsPerSecond)
	p.limiter.SetLimit(limitFor(operationsPerSecond))
}

// Totals - combined counts of all workers
func (p *Pool) Totals() Totals {
	var t Totals
	for _, w := range p.workers {
		t.Add(w.Totals())
	}
	return t
}

// Stop - halt the workers then verify the store
func (p *Pool) Stop() (*Report, error) {
	p.Lock()
	defer p.Unlock()

	if nil == p.register {
		return nil, fault.ErrNotInitialised
	}
	p.register.Stop()
	p.register = nil

	r := &Report{
		Elapsed:    time.Since(p.started),
		Workers:    len(p.workers),
		Totals:     p.Totals(),
		Size:       p.store.Size(),
		Capacity:   p.store.Capacity(),
		CheckError: p.store.Check(),
	}

	log := p.log
	log.Infof("elapsed: %s  operations: %d  size: %d/%d", r.Elapsed, r.Totals.Sum(), r.Size, r.Capacity)
	for op := Operation(0); op < OperationCount; op += 1 {
		log.Infof("%s: %d  missed: %d", op, r.Totals.Operations[op], r.Totals.Missed[op])
	}
	if nil != r.CheckError {
		log.Criticalf("check failed: %s", r.CheckError)
	}
	if 0 != r.Totals.Mismatched {
		log.Criticalf("mismatched values: %d", r.Totals.Mismatched)
	}
	return r, nil
}

// Run - run a workload for its configured duration
func Run(store Store, conf *Configuration, log *logger.L) (*Report, error) {
	p, err := NewPool(store, conf, log)
	if nil != err {
		return nil, err
	}
	if err := p.Start(); nil != err {
		return nil, err
	}
	time.Sleep(conf.RunTime())
	return p.Stop()
}
