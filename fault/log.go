// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel for the last gasp of a failing process
var log *logger.L

// Initialise - setup the panic log channel
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any pending data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panicf - log the caller position and a formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := append([]interface{}{file, line}, arguments...)
		criticalf("(%q:%d) "+format, a...)
	} else {
		criticalf(format, arguments...)
	}
	abort("abort, see last messages in log file")
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	abort(fmt.Sprintf("%s failed with error: %s", message, err))
}

func abort(message string) {
	criticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// before Initialise the message can only go to the console
func criticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
