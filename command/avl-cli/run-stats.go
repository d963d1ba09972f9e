// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type statsReply[K any] struct {
	Count  int `json:"count"`
	Height int `json:"height"`
	Min    *K  `json:"min"`
	Max    *K  `json:"max"`
	Root   *K  `json:"root"`
}

func runStats(c *cli.Context) error {
	if err := checkArgs(c, 1); nil != err {
		return err
	}
	return getCommands(c).stats(c.Args().Get(0))
}

func (e *engine[K]) stats(fileName string) error {
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	tree := s.Tree()
	reply := statsReply[K]{
		Count:  tree.Count(),
		Height: tree.Height(),
	}
	if !tree.IsEmpty() {
		lowest, highest, root := tree.First().Key(), tree.Last().Key(), tree.Root().Key()
		reply.Min = &lowest
		reply.Max = &highest
		reply.Root = &root
	}

	return e.output(reply, func() error {
		fmt.Fprintf(e.m.w, "count:  %d\n", reply.Count)
		fmt.Fprintf(e.m.w, "height: %d\n", reply.Height)
		fmt.Fprintf(e.m.w, "min:    %s\n", optional(reply.Min))
		fmt.Fprintf(e.m.w, "max:    %s\n", optional(reply.Max))
		fmt.Fprintf(e.m.w, "root:   %s\n", optional(reply.Root))
		return nil
	})
}

// text for a key that may be absent
func optional[K any](key *K) string {
	if nil == key {
		return "-"
	}
	return fmt.Sprint(*key)
}
