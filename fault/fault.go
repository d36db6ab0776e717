// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCapacityExceeded             = LengthError("capacity exceeded")
	ErrDuplicateKey                 = ExistsError("duplicate key")
	ErrInitialEntriesExceedCapacity = LengthError("initial entries exceed capacity")
	ErrInvalidCapacity              = InvalidError("invalid capacity")
	ErrInvalidComparator            = InvalidError("invalid comparator")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidDuration              = InvalidError("invalid duration")
	ErrInvalidIteratorAccess        = InvalidError("invalid iterator access")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyNotFound                  = NotFoundError("key not found")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrUnknownVariant               = InvalidError("unknown variant")
	ErrWorkerAlreadyRunning         = ProcessError("worker already running")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
