// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedtree/fault"
)

// Delete - removes a key from the tree
//
// returns false if the key was not present
func (tree *Tree[K]) Delete(key K) bool {
	p := tree.Search(key)
	if nil == p {
		return false
	}
	tree.Remove(p)
	return true
}

// Remove - unlink a node that belongs to this tree
//
// the node is detached afterwards and must not be used for navigation
func (tree *Tree[K]) Remove(q *Node[K]) {
	if nil == q || q.detached() {
		panic(fault.ErrNodeNotInTree)
	}

	var up *Node[K] // where the retrace starts
	leftShrunk := false

	if nil != q.left && nil != q.right {

		// the predecessor takes over q's position and balance, so
		// the shrink happens where the predecessor used to be
		r := q.left.Last()
		if r == q.left {
			up = r
			leftShrunk = true
		} else {
			up = r.up
			up.right = r.left
			if nil != r.left {
				r.left.up = up
			}
			r.left = q.left
			r.left.up = r
		}
		r.right = q.right
		r.right.up = r
		r.up = q.up
		r.balance = q.balance
		tree.replaceChild(q.up, q, r)

	} else {
		child := q.left
		if nil == child {
			child = q.right
		}
		up = q.up
		if nil != child {
			child.up = up
		}
		if nil != up && q == up.left {
			leftShrunk = true
		}
		tree.replaceChild(up, q, child)
	}

	q.detach()
	tree.count -= 1

	tree.shrunk(up, leftShrunk)
}

// shrunk - retrace after one side of p became one level shorter
//
// continues while the sub-tree height keeps shrinking, which may
// include rotations at several levels
func (tree *Tree[K]) shrunk(p *Node[K], leftShrunk bool) {
	for nil != p {
		if leftShrunk {
			p.balance -= 1
		} else {
			p.balance += 1
		}
		switch p.balance {
		case -1, +1:
			return
		case 0:
		default:
			p = tree.rebalance(p)
			if 0 != p.balance {
				return
			}
		}
		up := p.up
		if nil != up {
			leftShrunk = p == up.left
		}
		p = up
	}
}
