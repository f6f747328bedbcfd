// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrInconsistentTree      = ProcessError("inconsistent tree")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPrintLevels    = InvalidError("invalid print levels")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind       = InvalidError("invalid tree kind")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOutOfRange         = RangeError("key out of range")
	ErrMissingConfigTable    = InvalidError("configuration did not return a table")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundScriptFile    = NotFoundError("script file is not found")
	ErrUnknownCommand        = InvalidError("unknown command")
	ErrUnbalancedTree        = ProcessError("unbalanced tree")
	ErrWrongArgumentCount    = InvalidError("wrong argument count")
	ErrWrongBalanceFactor    = ProcessError("wrong balance factor")
	ErrWrongParentLink       = ProcessError("wrong parent link")
	ErrWrongKeyOrder         = ProcessError("wrong key order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := e.(RangeError); return ok }
