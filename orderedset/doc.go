// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedset - a set of unique keys kept in order, with set
// algebra computed by walking two sets in step
//
// The results of set operations use the ordering of the receiver.
// Both operands are expected to share the same ordering, otherwise
// the merge produces an unspecified (but still valid) set.
package orderedset
