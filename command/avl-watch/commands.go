// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/orderedtree/util"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run", "config-test", "ct":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")
		fmt.Fprintf(w, "  config-test                (ct)     - read the configuration, display it and exit\n\n")
		fmt.Fprintf(w, "  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Fprintf(w, "                                        for convienience when passing script arguments\n")
		fmt.Fprintf(w, "\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(w io.Writer, arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config-test", "ct":
		buffer, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("config-test: error: %s", err)
		}
		fmt.Fprintf(w, "%s\n", buffer)
		for _, fileName := range options.Files {
			if !util.EnsureFileExists(fileName) {
				fmt.Fprintf(w, "warning: key file: %q does not exist\n", fileName)
			}
		}

	default: // unknown commands fall through to data command
		return false
	}

	return true
}
