// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/orderedtree/fault"
)

// CompareFunc - ordering of two keys: negative if a < b, zero if
// a == b and positive if a > b
//
// it must be a strict weak ordering for the tree to stay consistent
type CompareFunc[K any] func(a K, b K) int

// Node - a single key in the tree
type Node[K any] struct {
	left    *Node[K] // left sub-tree
	right   *Node[K] // right sub-tree
	up      *Node[K] // parent node, or self once removed from the tree
	key     K        // key part for ordering
	balance int8     // height(left) - height(right)
}

// Tree - type to hold the root node of a tree
//
// the zero value has no comparison function, use New or NewFunc
type Tree[K any] struct {
	root    *Node[K]
	count   int
	compare CompareFunc[K]
}

// New - create an initially empty tree using the natural key order
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare
func NewFunc[K any](compare CompareFunc[K]) *Tree[K] {
	if nil == compare {
		panic(fault.ErrNoCompareFunction)
	}
	return &Tree[K]{
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// CompareFunc - the ordering used by the tree
func (tree *Tree[K]) CompareFunc() CompareFunc[K] {
	return tree.compare
}

// Key - key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Balance - height(left) - height(right) of a node's sub-trees
func (p *Node[K]) Balance() int {
	return int(p.balance)
}

// Left - left child
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - right child
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Parent - parent node, nil for the root or a removed node
func (p *Node[K]) Parent() *Node[K] {
	if p.up == p {
		return nil
	}
	return p.up
}

// Depth - number of levels above this node
func (p *Node[K]) Depth() int {
	d := 0
	for up := p.Parent(); nil != up; up = up.up {
		d += 1
	}
	return d
}

// Height - number of levels in the sub-tree rooted at this node
//
// only the taller side needs to be followed since the balance
// records which one that is
func (p *Node[K]) Height() int {
	h := 0
	for ; nil != p; h += 1 {
		if p.balance < 0 {
			p = p.right
		} else {
			p = p.left
		}
	}
	return h
}

// GetChildrenByDepth - all keys at a given depth below this node,
// left to right
func (p *Node[K]) GetChildrenByDepth(depth int) []K {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []K{p.key}
	}
	return append(p.left.GetChildrenByDepth(depth-1), p.right.GetChildrenByDepth(depth-1)...)
}

// true once a node has been deleted or cleared from its tree
func (p *Node[K]) detached() bool {
	return p.up == p
}

func (p *Node[K]) detach() {
	p.left = nil
	p.right = nil
	p.up = p
	p.balance = 0
}

// re-point the link from up that referred to old
func (tree *Tree[K]) replaceChild(up *Node[K], old *Node[K], replacement *Node[K]) {
	switch {
	case nil == up:
		tree.root = replacement
	case old == up.left:
		up.left = replacement
	default:
		up.right = replacement
	}
}
