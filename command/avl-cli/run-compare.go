// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type compareReply struct {
	Compare int  `json:"compare"`
	Equal   bool `json:"equal"`
	Less    bool `json:"less"`
}

func runCompare(c *cli.Context) error {
	if err := checkArgs(c, 2); nil != err {
		return err
	}
	return getCommands(c).compare(c.Args().Get(0), c.Args().Get(1))
}

func (e *engine[K]) compare(fileA string, fileB string) error {
	a, b, err := e.loadPair(fileA, fileB)
	if nil != err {
		return err
	}

	reply := compareReply{
		Compare: a.Compare(b),
		Equal:   a.Equal(b),
		Less:    a.Less(b),
	}
	return e.output(reply, func() error {
		_, err := fmt.Fprintf(e.m.w, "%+d  equal: %t\n", reply.Compare, reply.Equal)
		return err
	})
}
