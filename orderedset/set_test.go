// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/orderedset"
)

func TestAlgebra(t *testing.T) {
	tests := []struct {
		a            []int
		b            []int
		union        []int
		intersection []int
		difference   []int
		symmetric    []int
	}{
		{
			a:            []int{1, 3, 5, 7},
			b:            []int{3, 4, 5, 6},
			union:        []int{1, 3, 4, 5, 6, 7},
			intersection: []int{3, 5},
			difference:   []int{1, 7},
			symmetric:    []int{1, 4, 6, 7},
		},
		{
			a:            []int{},
			b:            []int{2, 4},
			union:        []int{2, 4},
			intersection: []int{},
			difference:   []int{},
			symmetric:    []int{2, 4},
		},
		{
			a:            []int{9, 8, 7},
			b:            []int{},
			union:        []int{7, 8, 9},
			intersection: []int{},
			difference:   []int{7, 8, 9},
			symmetric:    []int{7, 8, 9},
		},
		{
			a:            []int{1, 2, 3},
			b:            []int{1, 2, 3},
			union:        []int{1, 2, 3},
			intersection: []int{1, 2, 3},
			difference:   []int{},
			symmetric:    []int{},
		},
		{
			a:            []int{1, 2},
			b:            []int{10, 20, 30},
			union:        []int{1, 2, 10, 20, 30},
			intersection: []int{},
			difference:   []int{1, 2},
			symmetric:    []int{1, 2, 10, 20, 30},
		},
	}

	for i, test := range tests {
		a := orderedset.New(test.a...)
		b := orderedset.New(test.b...)

		assert.Equal(t, test.union, keys(a.Union(b)), "%d: union", i)
		assert.Equal(t, test.intersection, keys(a.Intersection(b)), "%d: intersection", i)
		assert.Equal(t, test.difference, keys(a.Difference(b)), "%d: difference", i)
		assert.Equal(t, test.symmetric, keys(a.SymmetricDifference(b)), "%d: symmetric difference", i)

		// commutative operations
		assert.True(t, a.Union(b).Equal(b.Union(a)), "%d: union not commutative", i)
		assert.True(t, a.Intersection(b).Equal(b.Intersection(a)), "%d: intersection not commutative", i)

		// results are valid trees
		for _, s := range []*orderedset.Set[int]{a.Union(b), a.Intersection(b), a.Difference(b), a.SymmetricDifference(b)} {
			assert.Nil(t, s.Tree().Check(), "%d: invalid result", i)
		}

		// operands untouched
		assert.Equal(t, len(test.a), a.Len(), "%d: a modified", i)
	}
}

func keys(s *orderedset.Set[int]) []int {
	k := s.Keys()
	if nil == k {
		return []int{}
	}
	return k
}

func TestSubsets(t *testing.T) {
	small := orderedset.New(2, 4)
	large := orderedset.New(1, 2, 3, 4, 5)
	other := orderedset.New(2, 6)
	empty := orderedset.New[int]()

	assert.True(t, small.IsSubsetOf(large), "small ⊆ large")
	assert.True(t, small.IsProperSubsetOf(large), "small ⊂ large")
	assert.True(t, large.IsSupersetOf(small), "large ⊇ small")
	assert.False(t, large.IsSubsetOf(small), "large ⊆ small")
	assert.False(t, other.IsSubsetOf(large), "other ⊆ large")
	assert.True(t, small.IsSubsetOf(small), "small ⊆ small")
	assert.False(t, small.IsProperSubsetOf(small), "small ⊂ small")
	assert.True(t, empty.IsSubsetOf(small), "∅ ⊆ small")
	assert.True(t, empty.IsSubsetOf(empty), "∅ ⊆ ∅")
	assert.False(t, small.IsSubsetOf(empty), "small ⊆ ∅")

	// key beyond the end of the other set
	assert.False(t, orderedset.New(1, 9).IsSubsetOf(orderedset.New(1, 2, 3)), "9 beyond end")

	assert.True(t, orderedset.New(1, 3).IsDisjoint(orderedset.New(2, 4)), "disjoint")
	assert.False(t, small.IsDisjoint(other), "not disjoint")
	assert.True(t, empty.IsDisjoint(large), "∅ disjoint")
}

func TestCompare(t *testing.T) {
	a := orderedset.New(1, 2, 3)
	b := orderedset.New(3, 2, 1)
	c := orderedset.New(1, 2, 4)
	d := orderedset.New(1, 2)

	assert.True(t, a.Equal(b), "a == b")
	assert.Equal(t, 0, a.Compare(b), "a <=> b")
	assert.True(t, a.Less(c), "a < c")
	assert.True(t, d.Less(a), "prefix less")
	assert.Equal(t, +1, c.Compare(a), "c <=> a")
	assert.False(t, a.Equal(d), "a == d")
}

func TestBasics(t *testing.T) {
	s := orderedset.New[string]()
	assert.True(t, s.IsEmpty(), "not empty")
	_, ok := s.Min()
	assert.False(t, ok, "min of empty set")
	_, ok = s.Max()
	assert.False(t, ok, "max of empty set")

	assert.Equal(t, 3, s.Add("pear", "apple", "fig", "apple"), "added")
	assert.Equal(t, 3, s.Len(), "length")
	assert.True(t, s.Contains("fig"), "contains fig")
	assert.Equal(t, "{apple fig pear}", s.String(), "string")

	min, _ := s.Min()
	max, _ := s.Max()
	assert.Equal(t, "apple", min, "min")
	assert.Equal(t, "pear", max, "max")

	g, ok := s.NearestGreater("banana")
	assert.True(t, ok, "greater than banana")
	assert.Equal(t, "fig", g, "greater than banana")
	l, ok := s.NearestLower("fig")
	assert.True(t, ok, "lower than fig")
	assert.Equal(t, "apple", l, "lower than fig")
	_, ok = s.NearestGreater("pear")
	assert.False(t, ok, "greater than pear")

	c := s.Clone()
	assert.Equal(t, 2, s.Remove("fig", "kiwi", "pear"), "removed")
	assert.Equal(t, []string{"apple"}, s.Keys(), "after remove")
	assert.Equal(t, []string{"apple", "fig", "pear"}, c.Keys(), "clone changed")
	assert.Equal(t, []string{"pear", "fig", "apple"}, slices.Collect(c.Backward()), "backward")

	s.Clear()
	assert.True(t, s.IsEmpty(), "not empty after clear")
	assert.Equal(t, "{}", s.String(), "empty string")
}

func TestCustomOrder(t *testing.T) {
	fold := func(a string, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	a := orderedset.NewFunc(fold, "B", "a", "C")
	b := orderedset.NewFunc(fold, "A", "c", "d")

	assert.Equal(t, []string{"a", "C"}, a.Intersection(b).Keys(), "folded intersection")
	assert.Equal(t, []string{"a", "B", "C", "d"}, a.Union(b).Keys(), "folded union")
	assert.True(t, orderedset.FromSeq(slices.Values([]int{3, 1, 2})).Equal(orderedset.New(1, 2, 3)), "from sequence")
}
