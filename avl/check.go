// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/orderedtree/fault"
)

// Check - verify the structure of the whole tree
//
// every node must have a balance of -1, 0 or +1 that matches the
// actual heights of its sub-trees, a correct parent pointer and a key
// strictly between those of the ancestors that bound it, and the
// number of nodes must match Count
func (tree *Tree[K]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// returns the node count and height of the sub-tree at p
//
// lower and upper are the nearest ancestors that bound p's key
func (tree *Tree[K]) check(p *Node[K], up *Node[K], lower *Node[K], upper *Node[K]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fmt.Errorf("%w: key: %v", fault.ErrParentLinkMismatch, p.key)
	}
	if nil != lower && tree.compare(lower.key, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not after: %v", fault.ErrKeyOutOfOrder, p.key, lower.key)
	}
	if nil != upper && tree.compare(p.key, upper.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not before: %v", fault.ErrKeyOutOfOrder, p.key, upper.key)
	}

	ln, lh, err := tree.check(p.left, p, lower, p)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, p, p, upper)
	if nil != err {
		return 0, 0, err
	}

	if p.balance < -1 || p.balance > +1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrBalanceOutOfRange, p.key, p.balance)
	}
	if int(p.balance) != lh-rh {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %d  heights: %d/%d", fault.ErrBalanceMismatch, p.key, p.balance, lh, rh)
	}
	return 1 + ln + rn, 1 + max(lh, rh), nil
}

// CheckUp - check only the up pointers for consistency
func (tree *Tree[K]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

func checkUp[K any](p *Node[K], up *Node[K]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}
