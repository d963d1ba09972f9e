// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft - right child becomes the root of the sub-tree
//
//	   p                p1
//	  / \              /  \
//	 a   p1    =>     p    c
//	    /  \         / \
//	   b    c       a   b
//
// balances are derived from the old ones, no heights are recounted
func (tree *Tree[K]) rotateLeft(p *Node[K]) *Node[K] {
	p1 := p.right
	up := p.up

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p.up = p1
	p1.up = up
	tree.replaceChild(up, p, p1)

	p.balance = p.balance + 1 - min(p1.balance, 0)
	p1.balance = p1.balance + 1 + max(p.balance, 0)
	return p1
}

// rotateRight - left child becomes the root of the sub-tree
//
//	     p            p1
//	    / \          /  \
//	   p1  c   =>   a    p
//	  /  \              / \
//	 a    b            b   c
func (tree *Tree[K]) rotateRight(p *Node[K]) *Node[K] {
	p1 := p.left
	up := p.up

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p.up = p1
	p1.up = up
	tree.replaceChild(up, p, p1)

	p.balance = p.balance - 1 - max(p1.balance, 0)
	p1.balance = p1.balance - 1 + min(p.balance, 0)
	return p1
}

// rebalance - restore a node whose balance has reached ±2 and return
// the new root of its sub-tree
//
// a taller child leaning the other way needs a double rotation, a
// level taller child (only possible after a delete) needs a single one
func (tree *Tree[K]) rebalance(p *Node[K]) *Node[K] {
	if p.balance > 0 {
		if p.left.balance < 0 {
			tree.rotateLeft(p.left) // LR
		}
		return tree.rotateRight(p) // LL
	}
	if p.right.balance > 0 {
		tree.rotateRight(p.right) // RL
	}
	return tree.rotateLeft(p) // RR
}
