// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/bitmark-inc/orderedtree/avl"
)

// Set - ordered collection of unique keys
type Set[K any] struct {
	tree *avl.Tree[K]
}

// New - set using the natural order of K
func New[K cmp.Ordered](keys ...K) *Set[K] {
	return NewFunc[K](cmp.Compare[K], keys...)
}

// NewFunc - set using an explicit order
func NewFunc[K any](compare avl.CompareFunc[K], keys ...K) *Set[K] {
	s := &Set[K]{
		tree: avl.NewFunc(compare),
	}
	s.Add(keys...)
	return s
}

// FromSeq - set from a sequence of keys in natural order
func FromSeq[K cmp.Ordered](seq iter.Seq[K]) *Set[K] {
	return &Set[K]{
		tree: avl.FromSeq(seq),
	}
}

// Tree - the underlying tree, for iterator level access
func (s *Set[K]) Tree() *avl.Tree[K] {
	return s.tree
}

// Add - insert keys, returns how many were new
func (s *Set[K]) Add(keys ...K) int {
	n := 0
	for _, key := range keys {
		if s.tree.Insert(key) {
			n += 1
		}
	}
	return n
}

// Remove - delete keys, returns how many were present
func (s *Set[K]) Remove(keys ...K) int {
	n := 0
	for _, key := range keys {
		if s.tree.Delete(key) {
			n += 1
		}
	}
	return n
}

// Contains - true if key is in the set
func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Len - number of keys
func (s *Set[K]) Len() int {
	return s.tree.Count()
}

// IsEmpty - true if there are no keys
func (s *Set[K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear - remove all keys
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Clone - independent copy
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{
		tree: s.tree.Clone(),
	}
}

// Min - lowest key, false if empty
func (s *Set[K]) Min() (K, bool) {
	return keyOf(s.tree.First())
}

// Max - highest key, false if empty
func (s *Set[K]) Max() (K, bool) {
	return keyOf(s.tree.Last())
}

// NearestGreater - smallest key strictly greater than key
func (s *Set[K]) NearestGreater(key K) (K, bool) {
	return keyOf(s.tree.NearestGreater(key))
}

// NearestLower - largest key strictly less than key
func (s *Set[K]) NearestLower(key K) (K, bool) {
	return keyOf(s.tree.NearestLower(key))
}

func keyOf[K any](p *avl.Node[K]) (K, bool) {
	if nil == p {
		var zero K
		return zero, false
	}
	return p.Key(), true
}

// All - keys in ascending order
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Backward - keys in descending order
func (s *Set[K]) Backward() iter.Seq[K] {
	return s.tree.Backward()
}

// Keys - keys in ascending order
func (s *Set[K]) Keys() []K {
	return s.tree.Keys()
}

// String - keys in order as: {a b c}
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for p := s.tree.First(); nil != p; p = p.Next() {
		if p != s.tree.First() {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, p.Key())
	}
	b.WriteByte('}')
	return b.String()
}
