// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Watch key files and log the keys added and removed on each change
//
// the configuration file is a Lua script returning a table, see
// avl-watch.conf.sample
//
//   avl-watch --config-file=avl-watch.conf
//   avl-watch --config-file=avl-watch.conf config-test
package main
