// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type subsetReply struct {
	Subset       bool `json:"subset"`
	ProperSubset bool `json:"properSubset"`
	Superset     bool `json:"superset"`
	Disjoint     bool `json:"disjoint"`
	CountA       int  `json:"countA"`
	CountB       int  `json:"countB"`
}

func runSubset(c *cli.Context) error {
	if err := checkArgs(c, 2); nil != err {
		return err
	}
	return getCommands(c).subset(c.Args().Get(0), c.Args().Get(1))
}

func (e *engine[K]) subset(fileA string, fileB string) error {
	a, b, err := e.loadPair(fileA, fileB)
	if nil != err {
		return err
	}

	reply := subsetReply{
		Subset:       a.IsSubsetOf(b),
		ProperSubset: a.IsProperSubsetOf(b),
		Superset:     a.IsSupersetOf(b),
		Disjoint:     a.IsDisjoint(b),
		CountA:       a.Len(),
		CountB:       b.Len(),
	}
	return e.output(reply, func() error {
		fmt.Fprintf(e.m.w, "subset:        %t\n", reply.Subset)
		fmt.Fprintf(e.m.w, "proper subset: %t\n", reply.ProperSubset)
		fmt.Fprintf(e.m.w, "superset:      %t\n", reply.Superset)
		fmt.Fprintf(e.m.w, "disjoint:      %t\n", reply.Disjoint)
		return nil
	})
}
