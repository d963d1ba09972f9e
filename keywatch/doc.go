// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keywatch - keep ordered snapshots of key files up to date
// and report the keys added and removed each time a file changes
//
// The directories holding the files are watched so that editors which
// replace a file (write to a temporary then rename) are seen.  A burst
// of events for one file is collapsed into a single reload once the
// file has been quiet for a while, and reloads across all files are
// rate limited.
package keywatch
