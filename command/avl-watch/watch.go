// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedtree/background"
	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/keyfile"
	"github.com/bitmark-inc/orderedtree/keywatch"
	"github.com/bitmark-inc/orderedtree/orderedset"
)

// the parts of a keywatch.Watcher that do not depend on the key type
type watchService interface {
	background.Process
	Files() []string
	Statistics() *keywatch.Statistics
	Close() error
}

// create a watcher for the configured key type with all files added
func newWatcher(log *logger.L, reporter keywatch.Reporter, conf *Configuration) (watchService, error) {
	switch conf.keyType {
	case keyfile.StringKeys:
		return watch(log, reporter, conf, keyfile.ParseString)
	case keyfile.IntegerKeys:
		return watch(log, reporter, conf, keyfile.ParseInteger)
	case keyfile.FloatKeys:
		return watch(log, reporter, conf, keyfile.ParseFloat)
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

func watch[K cmp.Ordered](log *logger.L, reporter keywatch.Reporter, conf *Configuration, parse keyfile.ParseFunc[K]) (watchService, error) {
	load := func(fileName string) (*orderedset.Set[K], error) {
		return keyfile.ReadFile(fileName, parse)
	}

	w, err := keywatch.New(log, reporter, load, conf.watchOptions())
	if nil != err {
		return nil, err
	}

	for _, fileName := range conf.Files {
		if err := w.Add(fileName); nil != err {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

// final totals
func logStatistics(log *logger.L, statistics *keywatch.Statistics) {
	log.Infof("events: %d  reloads: %d  failures: %d", statistics.Events.Uint64(), statistics.Reloads.Uint64(), statistics.Failures.Uint64())
	log.Infof("keys added: %d  removed: %d", statistics.Added.Uint64(), statistics.Removed.Uint64())
}
