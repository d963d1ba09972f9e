// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/orderedtree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.First()
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.Last()
}

// First - lowest node in a sub-tree
func (p *Node[K]) First() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - highest node in a sub-tree
func (p *Node[K]) Last() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes
func (p *Node[K]) Next() *Node[K] {
	if p.detached() {
		panic(fault.ErrNodeNotInTree)
	}
	if nil != p.right {
		return p.right.First()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.left {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K]) Prev() *Node[K] {
	if p.detached() {
		panic(fault.ErrNodeNotInTree)
	}
	if nil != p.left {
		return p.left.Last()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.right {
			return up
		}
	}
	return nil
}

// Iterator - a position in a tree: either at a node or past the end
type Iterator[K any] struct {
	tree *Tree[K]
	node *Node[K] // nil => past the end
}

// Begin - iterator at the lowest key, same as End for an empty tree
func (tree *Tree[K]) Begin() Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.root.First()}
}

// End - the past the end iterator
func (tree *Tree[K]) End() Iterator[K] {
	return Iterator[K]{tree: tree}
}

// LowerBound - iterator at the minimum key, End if the tree is empty
func (tree *Tree[K]) LowerBound() Iterator[K] {
	return tree.Begin()
}

// UpperBound - iterator at the maximum key, End if the tree is empty
func (tree *Tree[K]) UpperBound() Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.root.Last()}
}

// Find - iterator at key, End if not present
func (tree *Tree[K]) Find(key K) Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.Search(key)}
}

// FindNearestGreater - iterator at the smallest key greater than key,
// End if there is none
func (tree *Tree[K]) FindNearestGreater(key K) Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.NearestGreater(key)}
}

// FindNearestLower - iterator at the largest key less than key, End
// if there is none
func (tree *Tree[K]) FindNearestLower(key K) Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.NearestLower(key)}
}

// Valid - true when positioned at a node
func (it Iterator[K]) Valid() bool {
	return nil != it.node
}

// Node - current node, nil when past the end
func (it Iterator[K]) Node() *Node[K] {
	return it.node
}

// Key - key at the current position
func (it Iterator[K]) Key() K {
	if nil == it.node {
		panic(fault.ErrIteratorPastEnd)
	}
	if it.node.detached() {
		panic(fault.ErrNodeNotInTree)
	}
	return it.node.key
}

// Equal - same tree and same position
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.tree == other.tree && it.node == other.node
}

// Next - advance to the next higher key, moving past the end after
// the last one
func (it *Iterator[K]) Next() {
	if nil == it.node {
		panic(fault.ErrIteratorPastEnd)
	}
	it.node = it.node.Next()
}

// Prev - move to the next lower key, from past the end this is the
// highest key
func (it *Iterator[K]) Prev() {
	if nil == it.node {
		if nil == it.tree {
			panic(fault.ErrIteratorOnEmptyTree)
		}
		last := it.tree.root.Last()
		if nil == last {
			panic(fault.ErrIteratorOnEmptyTree)
		}
		it.node = last
		return
	}
	prev := it.node.Prev()
	if nil == prev {
		panic(fault.ErrIteratorBeforeBegin)
	}
	it.node = prev
}

// All - keys in ascending order
//
// the successor is found before yielding, so the key just yielded
// may be deleted
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.First(); nil != p; {
			next := p.Next()
			if !yield(p.key) {
				return
			}
			p = next
		}
	}
}

// Backward - keys in descending order
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.Last(); nil != p; {
			prev := p.Prev()
			if !yield(p.key) {
				return
			}
			p = prev
		}
	}
}

// Ascend - keys from the first one not less than from, in ascending
// order
func (tree *Tree[K]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		p := tree.Search(from)
		if nil == p {
			p = tree.NearestGreater(from)
		}
		for nil != p {
			next := p.Next()
			if !yield(p.key) {
				return
			}
			p = next
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for p := tree.root.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}
