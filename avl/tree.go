// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
)

// FromSeq - create a tree from a sequence of keys, duplicates are
// ignored
func FromSeq[K cmp.Ordered](seq iter.Seq[K]) *Tree[K] {
	tree := New[K]()
	tree.InsertSeq(seq)
	return tree
}

// FromSeqFunc - as FromSeq with an explicit comparison function
func FromSeqFunc[K any](compare CompareFunc[K], seq iter.Seq[K]) *Tree[K] {
	tree := NewFunc(compare)
	tree.InsertSeq(seq)
	return tree
}

// InsertSeq - insert every key of a sequence, returns the number of
// keys that were not already present
func (tree *Tree[K]) InsertSeq(seq iter.Seq[K]) int {
	n := 0
	for key := range seq {
		if tree.Insert(key) {
			n += 1
		}
	}
	return n
}

// Clear - remove all nodes
//
// uses an explicit stack so that depth is not limited by recursion
func (tree *Tree[K]) Clear() {
	if nil == tree.root {
		return
	}
	stack := make([]*Node[K], 0, 2*tree.Height())
	stack = append(stack, tree.root)
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		p.detach()
	}
	tree.root = nil
	tree.count = 0
}

// a source node and the copy whose children are still to be made
type clonePair[K any] struct {
	from *Node[K]
	to   *Node[K]
}

// Clone - deep copy with the same shape, balances and ordering
func (tree *Tree[K]) Clone() *Tree[K] {
	c := &Tree[K]{
		count:   tree.count,
		compare: tree.compare,
	}
	if nil == tree.root {
		return c
	}

	c.root = &Node[K]{
		key:     tree.root.key,
		balance: tree.root.balance,
	}
	stack := []clonePair[K]{{from: tree.root, to: c.root}}
	for len(stack) > 0 {
		n := len(stack) - 1
		s := stack[n]
		stack = stack[:n]

		if l := s.from.left; nil != l {
			s.to.left = &Node[K]{key: l.key, balance: l.balance, up: s.to}
			stack = append(stack, clonePair[K]{from: l, to: s.to.left})
		}
		if r := s.from.right; nil != r {
			s.to.right = &Node[K]{key: r.key, balance: r.balance, up: s.to}
			stack = append(stack, clonePair[K]{from: r, to: s.to.right})
		}
	}
	return c
}

// Swap - exchange the contents of two trees
//
// iterators stay with the tree they were made from, so an End
// iterator of one tree steps back into the contents it received
func (tree *Tree[K]) Swap(other *Tree[K]) {
	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
	tree.compare, other.compare = other.compare, tree.compare
}

// Compare - lexicographic comparison of the in-order key sequences
// using this tree's ordering: -1, 0 or +1
//
// a tree that is a proper prefix of the other is the lesser
func (tree *Tree[K]) Compare(other *Tree[K]) int {
	p := tree.root.First()
	q := other.root.First()
	for nil != p && nil != q {
		c := tree.compare(p.key, q.key)
		if c < 0 {
			return -1
		}
		if c > 0 {
			return +1
		}
		p = p.Next()
		q = q.Next()
	}
	switch {
	case nil == p && nil == q:
		return 0
	case nil == p:
		return -1
	default:
		return +1
	}
}

// Equal - same keys in the same order
func (tree *Tree[K]) Equal(other *Tree[K]) bool {
	if tree.count != other.count {
		return false
	}
	return 0 == tree.Compare(other)
}

// Less - lexicographically less
func (tree *Tree[K]) Less(other *Tree[K]) bool {
	return tree.Compare(other) < 0
}
