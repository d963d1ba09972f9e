// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keywatch

import (
	"github.com/bitmark-inc/orderedtree/counter"
)

// Statistics - running totals, safe to read while the watcher runs
type Statistics struct {
	Events   counter.Counter // file system events for watched files
	Reloads  counter.Counter // successful reloads
	Failures counter.Counter // reloads that could not read the file
	Added    counter.Counter // keys added over all reloads
	Removed  counter.Counter // keys removed over all reloads
}
