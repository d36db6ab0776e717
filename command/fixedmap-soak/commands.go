// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run", "dump-configuration", "dc":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                 (h)      - display this message\n\n")
		fmt.Printf("  version              (v)      - display version sting\n\n")
		fmt.Printf("  dump-configuration   (dc)     - show the configuration after defaults are applied\n\n")
		fmt.Printf("  start                (run)    - run the workload (default with no arguments)\n\n")
	}

	return true
}

// configuration command handler
//
// commands that inspect the configuration then exit
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "dump-configuration", "dc":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration encode error: %s", err)
		}
		fmt.Printf("%s\n", b)

	default:
		return false
	}
	return true
}
