// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/keyfile"
)

type metadata struct {
	keyType  keyfile.KeyType
	json     bool
	verbose  bool
	commands commands
	stdin    io.Reader
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "query and combine key files"
	app.Version = version
	app.HideVersion = true

	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " output JSON",
		},
		cli.StringFlag{
			Name:  "type, t",
			Value: "string",
			Usage: " interpret keys as `TYPE` [string|integer|float]",
		},
	}

	twoFiles := "FILE-A FILE-B"

	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "list the unique keys in ascending order",
			ArgsUsage: "FILE",
			Action:    runSort,
		},
		{
			Name:      "reverse",
			Usage:     "list the unique keys in descending order",
			ArgsUsage: "FILE",
			Action:    runReverse,
		},
		{
			Name:      "print",
			Usage:     "draw the tree built from the keys",
			ArgsUsage: "FILE",
			Action:    runPrint,
		},
		{
			Name:      "check",
			Usage:     "build the tree and verify its structure",
			ArgsUsage: "FILE",
			Action:    runCheck,
		},
		{
			Name:      "stats",
			Usage:     "count, height, extremes and root of the tree",
			ArgsUsage: "FILE",
			Action:    runStats,
		},
		{
			Name:      "find",
			Usage:     "check whether a key is present",
			ArgsUsage: "FILE KEY",
			Action:    runFind,
		},
		{
			Name:      "nearest",
			Usage:     "nearest keys below and above a key",
			ArgsUsage: "FILE KEY",
			Action:    runNearest,
		},
		{
			Name:      "range",
			Usage:     "keys from FROM to TO inclusive",
			ArgsUsage: "FILE FROM TO",
			Action:    runRange,
		},
		{
			Name:      "union",
			Usage:     "keys in either file",
			ArgsUsage: twoFiles,
			Action:    runUnion,
		},
		{
			Name:      "intersect",
			Usage:     "keys in both files",
			ArgsUsage: twoFiles,
			Action:    runIntersect,
		},
		{
			Name:      "diff",
			Usage:     "keys in the first file only",
			ArgsUsage: twoFiles,
			Action:    runDiff,
		},
		{
			Name:      "xor",
			Usage:     "keys in exactly one of the files",
			ArgsUsage: twoFiles,
			Action:    runXor,
		},
		{
			Name:      "subset",
			Usage:     "whether the first file's keys are all in the second",
			ArgsUsage: twoFiles,
			Action:    runSubset,
		},
		{
			Name:      "compare",
			Usage:     "lexicographic comparison of the sorted keys",
			ArgsUsage: twoFiles,
			Action:    runCompare,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		keyType, err := keyfile.ParseKeyType(c.GlobalString("type"))
		if nil != err {
			return fmt.Errorf("type: %q can only be string/integer/float", c.GlobalString("type"))
		}

		m := &metadata{
			keyType: keyType,
			json:    c.GlobalBool("json"),
			verbose: c.GlobalBool("verbose"),
			stdin:   stdin,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		m.commands = newCommands(m)

		if m.verbose {
			fmt.Fprintf(m.e, "key type: %s\n", keyType)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
