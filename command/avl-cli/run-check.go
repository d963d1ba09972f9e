// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type checkReply struct {
	Valid  bool `json:"valid"`
	Count  int  `json:"count"`
	Height int  `json:"height"`
}

func runCheck(c *cli.Context) error {
	if err := checkArgs(c, 1); nil != err {
		return err
	}
	return getCommands(c).check(c.Args().Get(0))
}

func (e *engine[K]) check(fileName string) error {
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	tree := s.Tree()
	if err := tree.Check(); nil != err {
		if e.m.verbose {
			tree.Print(e.m.e, true)
		}
		return err
	}

	reply := checkReply{
		Valid:  true,
		Count:  tree.Count(),
		Height: tree.Height(),
	}
	return e.output(reply, func() error {
		_, err := fmt.Fprintf(e.m.w, "ok  keys: %d  height: %d\n", reply.Count, reply.Height)
		return err
	})
}
