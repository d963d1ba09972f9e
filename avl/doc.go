// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are ordered by a comparison function held by each tree, so
// two trees of the same key type may be ordered differently.
// Duplicate keys are rejected.
//
// Insert performs at most one (single or double) rotation; delete
// may rotate at every level on the way back to the root.  Delete
// relinks the in-order predecessor instead of copying keys around so
// that every node other than the deleted one keeps its identity and
// any iterator positioned on it remains usable.  This also allows the
// current node to be deleted during iteration.
package avl
