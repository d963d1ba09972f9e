// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keywatch

import (
	"github.com/bitmark-inc/logger"
)

// Change - the result of reloading one file
type Change struct {
	FileName string
	Count    int      // keys in the file after the reload
	Added    []string // keys not in the previous snapshot, in order
	Removed  []string // keys no longer present, in order
}

// IsEmpty - true if the reload found no difference
func (c Change) IsEmpty() bool {
	return 0 == len(c.Added) && 0 == len(c.Removed)
}

// Reporter - receives the outcome of every reload
type Reporter interface {
	Report(change Change)
	Failed(fileName string, err error)
}

type logReporter struct {
	log *logger.L
}

// NewLogReporter - a reporter that writes to a logger channel
func NewLogReporter(log *logger.L) Reporter {
	return &logReporter{
		log: log,
	}
}

func (r *logReporter) Report(change Change) {
	r.log.Infof("file: %q  keys: %d  added: %d  removed: %d", change.FileName, change.Count, len(change.Added), len(change.Removed))
	if 0 != len(change.Added) {
		r.log.Debugf("added: %q", change.Added)
	}
	if 0 != len(change.Removed) {
		r.log.Debugf("removed: %q", change.Removed)
	}
}

func (r *logReporter) Failed(fileName string, err error) {
	r.log.Errorf("file: %q  reload error: %s", fileName, err)
}
