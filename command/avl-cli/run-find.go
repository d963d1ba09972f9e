// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/fault"
)

type findReply[K any] struct {
	Key   K   `json:"key"`
	Depth int `json:"depth"`
}

func runFind(c *cli.Context) error {
	if err := checkArgs(c, 2); nil != err {
		return err
	}
	return getCommands(c).find(c.Args().Get(0), c.Args().Get(1))
}

// a missing key is an error so the exit status can be tested
func (e *engine[K]) find(fileName string, text string) error {
	key, err := e.parseKey(text)
	if nil != err {
		return err
	}
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	node := s.Tree().Search(key)
	if nil == node {
		return fmt.Errorf("%w: %v", fault.ErrNotFoundKey, key)
	}

	reply := findReply[K]{
		Key:   node.Key(),
		Depth: node.Depth(),
	}
	return e.output(reply, func() error {
		_, err := fmt.Fprintf(e.m.w, "found: %v  depth: %d\n", reply.Key, reply.Depth)
		return err
	})
}
