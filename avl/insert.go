// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new key to the tree
//
// returns false if the key was already present, in which case the
// tree is unchanged
func (tree *Tree[K]) Insert(key K) bool {
	_, added := tree.insert(key)
	return added
}

// InsertNode - add a key and return the node holding it, which is the
// existing node if the key was already present
func (tree *Tree[K]) InsertNode(key K) (*Node[K], bool) {
	return tree.insert(key)
}

func (tree *Tree[K]) insert(key K) (*Node[K], bool) {
	var up *Node[K]
	link := &tree.root
	for nil != *link {
		up = *link
		switch c := tree.compare(key, up.key); {
		case c < 0:
			link = &up.left
		case c > 0:
			link = &up.right
		default:
			return up, false
		}
	}

	p := &Node[K]{
		key: key,
		up:  up,
	}
	*link = p
	tree.count += 1

	tree.grown(p)
	return p, true
}

// grown - retrace after the sub-tree rooted at p became one level
// taller
//
// stops as soon as a balance returns to zero, or after one rotation
// which always restores the previous height
func (tree *Tree[K]) grown(p *Node[K]) {
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.left {
			up.balance += 1
		} else {
			up.balance -= 1
		}
		switch up.balance {
		case 0:
			return
		case -1, +1:
			continue
		default:
			tree.rebalance(up)
			return
		}
	}
}
