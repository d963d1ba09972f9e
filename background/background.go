// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived go routines that can all be
// stopped together
package background

// the shutdown and completed channels for a single process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a set of running processes
type T struct {
	s []shutdown
}

// Process - a background process must return from Run soon after the
// shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		s := shutdown{
			shutdown: make(chan struct{}),
			finished: make(chan struct{}),
		}
		register.s[i] = s
		go func(p Process) {
			defer close(s.finished)
			p.Run(args, s.shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes to stop and wait for them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}

	for _, s := range t.s {
		<-s.finished
	}
}
