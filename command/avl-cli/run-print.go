// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {
	if err := checkArgs(c, 1); nil != err {
		return err
	}
	return getCommands(c).print(c.Args().Get(0))
}

// always text, verbose adds parent key and balance to each node
func (e *engine[K]) print(fileName string) error {
	s, err := e.load(fileName)
	if nil != err {
		return err
	}
	depth := s.Tree().Print(e.m.w, e.m.verbose)
	if e.m.verbose {
		fmt.Fprintf(e.m.e, "depth: %d\n", depth)
	}
	return nil
}
