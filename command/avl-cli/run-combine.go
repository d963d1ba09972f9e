// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/keyfile"
	"github.com/bitmark-inc/orderedtree/orderedset"
)

// set operations by command name
const (
	operationUnion        = "union"
	operationIntersection = "intersect"
	operationDifference   = "diff"
	operationSymmetric    = "xor"
)

type combineReply[K any] struct {
	Operation string `json:"operation"`
	Count     int    `json:"count"`
	Keys      []K    `json:"keys"`
}

func runUnion(c *cli.Context) error {
	return runCombine(c, operationUnion)
}

func runIntersect(c *cli.Context) error {
	return runCombine(c, operationIntersection)
}

func runDiff(c *cli.Context) error {
	return runCombine(c, operationDifference)
}

func runXor(c *cli.Context) error {
	return runCombine(c, operationSymmetric)
}

func runCombine(c *cli.Context, operation string) error {
	if err := checkArgs(c, 2); nil != err {
		return err
	}
	return getCommands(c).combine(operation, c.Args().Get(0), c.Args().Get(1))
}

func (e *engine[K]) combine(operation string, fileA string, fileB string) error {
	a, b, err := e.loadPair(fileA, fileB)
	if nil != err {
		return err
	}

	var result *orderedset.Set[K]
	switch operation {
	case operationUnion:
		result = a.Union(b)
	case operationIntersection:
		result = a.Intersection(b)
	case operationDifference:
		result = a.Difference(b)
	case operationSymmetric:
		result = a.SymmetricDifference(b)
	default:
		return fault.ErrInvalidOperation
	}

	reply := combineReply[K]{
		Operation: operation,
		Count:     result.Len(),
		Keys:      result.Keys(),
	}
	return e.output(reply, func() error {
		return keyfile.Write(e.m.w, result.All())
	})
}

func (e *engine[K]) loadPair(fileA string, fileB string) (*orderedset.Set[K], *orderedset.Set[K], error) {
	if stdinName == fileA && stdinName == fileB {
		return nil, nil, fault.ErrStdinTwice
	}
	a, err := e.load(fileA)
	if nil != err {
		return nil, nil, err
	}
	b, err := e.load(fileB)
	if nil != err {
		return nil, nil, err
	}
	return a, b, nil
}
