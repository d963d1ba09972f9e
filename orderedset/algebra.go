// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import (
	"github.com/bitmark-inc/orderedtree/avl"
)

// which keys a merge keeps
type selection int

const (
	onlyLeft  selection = 1 << iota // key only in the receiver
	onlyRight                       // key only in the other set
	inBoth                          // key in both sets
)

// merge - walk both sets in order and collect the selected keys into
// a new set using the receiver's ordering
func (s *Set[K]) merge(other *Set[K], keep selection) *Set[K] {
	compare := s.tree.CompareFunc()
	result := &Set[K]{
		tree: avl.NewFunc(compare),
	}

	a := s.tree.Begin()
	b := other.tree.Begin()
	for a.Valid() && b.Valid() {
		c := compare(a.Key(), b.Key())
		switch {
		case c < 0:
			if 0 != keep&onlyLeft {
				result.tree.Insert(a.Key())
			}
			a.Next()
		case c > 0:
			if 0 != keep&onlyRight {
				result.tree.Insert(b.Key())
			}
			b.Next()
		default:
			if 0 != keep&inBoth {
				result.tree.Insert(a.Key())
			}
			a.Next()
			b.Next()
		}
	}
	for ; a.Valid() && 0 != keep&onlyLeft; a.Next() {
		result.tree.Insert(a.Key())
	}
	for ; b.Valid() && 0 != keep&onlyRight; b.Next() {
		result.tree.Insert(b.Key())
	}
	return result
}

// Union - keys in either set
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	return s.merge(other, onlyLeft|onlyRight|inBoth)
}

// Intersection - keys in both sets
func (s *Set[K]) Intersection(other *Set[K]) *Set[K] {
	return s.merge(other, inBoth)
}

// Difference - keys in this set but not the other
func (s *Set[K]) Difference(other *Set[K]) *Set[K] {
	return s.merge(other, onlyLeft)
}

// SymmetricDifference - keys in exactly one of the sets
func (s *Set[K]) SymmetricDifference(other *Set[K]) *Set[K] {
	return s.merge(other, onlyLeft|onlyRight)
}

// IsSubsetOf - every key of this set is in the other
func (s *Set[K]) IsSubsetOf(other *Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	compare := s.tree.CompareFunc()
	a := s.tree.Begin()
	b := other.tree.Begin()
	for a.Valid() {
		if !b.Valid() {
			return false
		}
		c := compare(a.Key(), b.Key())
		switch {
		case c < 0:
			return false // a's key was skipped over in b
		case c > 0:
			b.Next()
		default:
			a.Next()
			b.Next()
		}
	}
	return true
}

// IsSupersetOf - every key of the other set is in this one
func (s *Set[K]) IsSupersetOf(other *Set[K]) bool {
	return other.IsSubsetOf(s)
}

// IsProperSubsetOf - subset with fewer keys
func (s *Set[K]) IsProperSubsetOf(other *Set[K]) bool {
	return s.Len() < other.Len() && s.IsSubsetOf(other)
}

// IsDisjoint - no key in common
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	compare := s.tree.CompareFunc()
	a := s.tree.Begin()
	b := other.tree.Begin()
	for a.Valid() && b.Valid() {
		c := compare(a.Key(), b.Key())
		switch {
		case c < 0:
			a.Next()
		case c > 0:
			b.Next()
		default:
			return false
		}
	}
	return true
}

// Equal - same keys
func (s *Set[K]) Equal(other *Set[K]) bool {
	return s.tree.Equal(other.tree)
}

// Compare - lexicographic comparison of the ordered keys: -1, 0 or +1
func (s *Set[K]) Compare(other *Set[K]) int {
	return s.tree.Compare(other.tree)
}

// Less - lexicographically less
func (s *Set[K]) Less(other *Set[K]) bool {
	return s.tree.Less(other.tree)
}
