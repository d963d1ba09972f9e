// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/orderedtree/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if 12 != c1.Add(7) {
		t.Errorf("counter is not 12 after adding: %d", c1.Uint64())
	}

	for i := 0; i < 12; i += 1 {
		c1.Decrement()
	}
	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

// updates from several go routines are not lost
func TestConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const each = 1000
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*each != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*each)
	}
}
