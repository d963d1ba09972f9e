// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/keyfile"
)

type rangeReply[K any] struct {
	From  K   `json:"from"`
	To    K   `json:"to"`
	Count int `json:"count"`
	Keys  []K `json:"keys"`
}

func runRange(c *cli.Context) error {
	if err := checkArgs(c, 3); nil != err {
		return err
	}
	return getCommands(c).keyRange(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
}

// walk forward from the first key not below from
func (e *engine[K]) keyRange(fileName string, fromText string, toText string) error {
	from, err := e.parseKey(fromText)
	if nil != err {
		return err
	}
	to, err := e.parseKey(toText)
	if nil != err {
		return err
	}
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	tree := s.Tree()
	compare := tree.CompareFunc()

	reply := rangeReply[K]{
		From: from,
		To:   to,
		Keys: []K{},
	}
	it := tree.Find(from)
	if !it.Valid() {
		it = tree.FindNearestGreater(from)
	}
	for ; it.Valid() && compare(it.Key(), to) <= 0; it.Next() {
		reply.Keys = append(reply.Keys, it.Key())
	}
	reply.Count = len(reply.Keys)

	if e.m.verbose {
		fmt.Fprintf(e.m.e, "range: [%v, %v]  keys: %d\n", from, to, reply.Count)
	}

	return e.output(reply, func() error {
		return keyfile.Write(e.m.w, slices.Values(reply.Keys))
	})
}
