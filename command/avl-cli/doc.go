// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Query and combine key files through an AVL tree
//
// each file holds one key per line, "-" reads standard input
//
//   avl-cli --type=integer sort numbers.txt
//   avl-cli nearest names.txt kim
//   avl-cli --json union a.txt b.txt
//   avl-cli -v check names.txt
package main
