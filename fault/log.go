// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel used for the last message before a panic
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise; before that messages are
// written to the console
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's file and line
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic with that message
//
// only for conditions that indicate corrupted internal state
func Panicf(format string, arguments ...interface{}) {
	s := internalCriticalf(2, format, arguments...)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(skip int, format string, arguments ...interface{}) string {
	s := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		s = fmt.Sprintf("(%q:%d) %s", file, line, s)
	}

	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** %s\n", s)
	} else {
		log.Criticalf("%s", s)
		log.Flush() // make sure log file is saved
	}
	return s
}
