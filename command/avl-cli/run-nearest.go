// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type nearestReply[K any] struct {
	Key     K  `json:"key"`
	Lower   *K `json:"lower"`
	Greater *K `json:"greater"`
}

func runNearest(c *cli.Context) error {
	if err := checkArgs(c, 2); nil != err {
		return err
	}
	return getCommands(c).nearest(c.Args().Get(0), c.Args().Get(1))
}

// the key itself need not be in the file
func (e *engine[K]) nearest(fileName string, text string) error {
	key, err := e.parseKey(text)
	if nil != err {
		return err
	}
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	reply := nearestReply[K]{
		Key: key,
	}
	tree := s.Tree()
	if it := tree.FindNearestLower(key); it.Valid() {
		k := it.Key()
		reply.Lower = &k
	}
	if it := tree.FindNearestGreater(key); it.Valid() {
		k := it.Key()
		reply.Greater = &k
	}

	return e.output(reply, func() error {
		_, err := fmt.Fprintf(e.m.w, "%s < %v < %s\n", optional(reply.Lower), reply.Key, optional(reply.Greater))
		return err
	})
}
