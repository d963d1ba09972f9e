// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keywatch

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/orderedtree/fault"
)

// throttle - wait until the limiter allows another reload
//
// returns false if shutdown was signalled while waiting
func throttle(limiter *rate.Limiter, shutdown <-chan struct{}) (bool, error) {
	r := limiter.Reserve()
	if !r.OK() {
		return false, fault.ErrRateLimiting
	}
	delay := r.Delay()
	if 0 == delay {
		return true, nil
	}

	select {
	case <-shutdown:
		r.Cancel()
		return false, nil
	case <-time.After(delay):
		return true, nil
	}
}
