// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/keyfile"
)

type keysReply[K any] struct {
	Count int `json:"count"`
	Keys  []K `json:"keys"`
}

func runSort(c *cli.Context) error {
	if err := checkArgs(c, 1); nil != err {
		return err
	}
	return getCommands(c).sort(c.Args().Get(0), false)
}

func runReverse(c *cli.Context) error {
	if err := checkArgs(c, 1); nil != err {
		return err
	}
	return getCommands(c).sort(c.Args().Get(0), true)
}

func (e *engine[K]) sort(fileName string, reverse bool) error {
	s, err := e.load(fileName)
	if nil != err {
		return err
	}

	keys := s.All()
	if reverse {
		keys = s.Backward()
	}

	reply := keysReply[K]{
		Count: s.Len(),
		Keys:  make([]K, 0, s.Len()),
	}
	for key := range keys {
		reply.Keys = append(reply.Keys, key)
	}

	return e.output(reply, func() error {
		return keyfile.Write(e.m.w, keys)
	})
}
