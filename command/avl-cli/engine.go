// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/keyfile"
	"github.com/bitmark-inc/orderedtree/orderedset"
)

// name used on the command line for standard input
const stdinName = "-"

// commands - every operation, independent of the key type
type commands interface {
	sort(fileName string, reverse bool) error
	print(fileName string) error
	check(fileName string) error
	stats(fileName string) error
	find(fileName string, key string) error
	nearest(fileName string, key string) error
	keyRange(fileName string, from string, to string) error
	combine(operation string, fileA string, fileB string) error
	subset(fileA string, fileB string) error
	compare(fileA string, fileB string) error
}

// engine - the operations for one key type
type engine[K cmp.Ordered] struct {
	m     *metadata
	parse keyfile.ParseFunc[K]
}

func newCommands(m *metadata) commands {
	switch m.keyType {
	case keyfile.IntegerKeys:
		return &engine[int64]{m: m, parse: keyfile.ParseInteger}
	case keyfile.FloatKeys:
		return &engine[float64]{m: m, parse: keyfile.ParseFloat}
	default:
		return &engine[string]{m: m, parse: keyfile.ParseString}
	}
}

func (e *engine[K]) load(fileName string) (*orderedset.Set[K], error) {
	var s *orderedset.Set[K]
	var err error
	if stdinName == fileName {
		s, err = keyfile.Read(e.m.stdin, "stdin", e.parse)
	} else {
		s, err = keyfile.ReadFile(fileName, e.parse)
	}
	if nil != err {
		return nil, err
	}
	if e.m.verbose {
		fmt.Fprintf(e.m.e, "file: %q  keys: %d\n", fileName, s.Len())
	}
	return s, nil
}

// parseKey - a key given on the command line
func (e *engine[K]) parseKey(text string) (K, error) {
	key, err := e.parse(text)
	if nil != err {
		return key, fmt.Errorf("%w: %q: %s", fault.ErrInvalidKey, text, err)
	}
	return key, nil
}

// output - JSON if selected, otherwise the text form
func (e *engine[K]) output(message interface{}, text func() error) error {
	if !e.m.json {
		return text()
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(e.m.w, "%s\n", b)
	return err
}

// the engine for the current invocation
func getCommands(c *cli.Context) commands {
	return c.App.Metadata["config"].(*metadata).commands
}

// checkArgs - exactly n positional arguments
func checkArgs(c *cli.Context, n int) error {
	switch {
	case c.NArg() < n:
		return fault.ErrMissingParameters
	case c.NArg() > n:
		return fault.ErrTooManyParameters
	default:
		return nil
	}
}
