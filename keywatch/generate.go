// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keywatch

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/orderedtree/keywatch Reporter
