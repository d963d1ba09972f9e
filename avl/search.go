// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key, nil if not present
func (tree *Tree[K]) Search(key K) *Node[K] {
	return tree.root.find(tree.compare, key)
}

// Contains - true if the key is present
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.Search(key)
}

// NearestGreater - node with the smallest key strictly greater than
// key, nil if there is none
//
// the key itself need not be in the tree
func (tree *Tree[K]) NearestGreater(key K) *Node[K] {
	return tree.root.nearestGreater(tree.compare, key)
}

// NearestLower - node with the largest key strictly less than key,
// nil if there is none
func (tree *Tree[K]) NearestLower(key K) *Node[K] {
	return tree.root.nearestLower(tree.compare, key)
}

func (p *Node[K]) find(compare CompareFunc[K], key K) *Node[K] {
	for nil != p {
		switch c := compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// remember each node passed on the way down that is greater, the last
// one remembered is the closest
func (p *Node[K]) nearestGreater(compare CompareFunc[K], key K) *Node[K] {
	var candidate *Node[K]
	for nil != p {
		if compare(key, p.key) < 0 {
			candidate = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return candidate
}

func (p *Node[K]) nearestLower(compare CompareFunc[K], key K) *Node[K] {
	var candidate *Node[K]
	for nil != p {
		if compare(key, p.key) > 0 {
			candidate = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return candidate
}
