// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RecordError   GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvalidError("balance does not match sub-tree heights")
	ErrBalanceOutOfRange    = InvalidError("balance out of range")
	ErrCountMismatch        = InvalidError("node count does not match tree count")
	ErrDuplicateFile        = ExistsError("file is already being watched")
	ErrEmptyKey             = LengthError("key is empty")
	ErrFileNotWatched       = NotFoundError("file is not being watched")
	ErrInvalidBurst         = InvalidError("reload burst must be positive")
	ErrInvalidConfiguration = InvalidError("invalid configuration")
	ErrInvalidDuration      = InvalidError("invalid duration")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("invalid operation")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrIteratorBeforeBegin  = ProcessError("avl: iterator before the first node")
	ErrIteratorOnEmptyTree  = ProcessError("avl: iterator on empty tree")
	ErrIteratorPastEnd      = ProcessError("avl: iterator past the end")
	ErrKeyOutOfOrder        = InvalidError("key out of order")
	ErrMissingFileList      = LengthError("no files to watch")
	ErrMissingParameters    = LengthError("missing parameters")
	ErrNoCompareFunction    = ProcessError("avl: no comparison function")
	ErrNodeNotInTree        = ProcessError("avl: node not in tree")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotFoundConfigFile   = NotFoundError("configuration file is not found")
	ErrNotFoundKey          = NotFoundError("key is not found")
	ErrNotFiniteNumber      = InvalidError("number is not finite")
	ErrNotPlainFileName     = InvalidError("file is not a plain name")
	ErrParentLinkMismatch   = InvalidError("parent link mismatch")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrStdinTwice           = InvalidError("standard input can only be read once")
	ErrTooManyParameters    = LengthError("too many parameters")
	ErrWatcherClosed        = ProcessError("watcher is closed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
