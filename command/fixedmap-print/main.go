// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fixedmap/tree"
)

type metadata struct {
	capacity int
	variant  tree.Variant
	erase    []string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "fixedmap-print"
	app.Usage = "insert keys into a fixed capacity map and show the result"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.IntFlag{
			Name:  "capacity, c",
			Value: 0,
			Usage: " maximum entries `COUNT`, 0 = number of keys",
		},
		cli.StringFlag{
			Name:  "variant, t",
			Value: tree.RedBlack.String(),
			Usage: " balancing `VARIANT` [red-black|avl]",
		},
		cli.StringFlag{
			Name:  "erase, e",
			Value: "",
			Usage: " comma separated `KEYS` to erase after inserting",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "tree",
			Usage:     "draw the tree sideways, root at the left",
			ArgsUsage: "KEY[=VALUE]...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values",
				},
			},
			Action: runTree,
		},
		{
			Name:      "list",
			Usage:     "list entries in key order as JSON",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runList,
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runCheck,
		},
		{
			Name:  "version",
			Usage: "display fixedmap-print version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		variant, err := tree.ParseVariant(c.GlobalString("variant"))
		if nil != err {
			return fmt.Errorf("variant: %q  error: %s", c.GlobalString("variant"), err)
		}

		capacity := c.GlobalInt("capacity")
		if capacity < 0 {
			return fmt.Errorf("capacity: %d must not be negative", capacity)
		}

		erase := []string{}
		if s := c.GlobalString("erase"); "" != s {
			erase = strings.Split(s, ",")
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				capacity: capacity,
				variant:  variant,
				erase:    erase,
				verbose:  c.GlobalBool("verbose"),
				e:        c.App.ErrWriter,
				w:        c.App.Writer,
			},
		}
		return nil
	}

	return app
}

// split KEY=VALUE, a missing value is the key itself
func parseArguments(arguments []string) ([]string, []string) {
	keys := make([]string, len(arguments))
	values := make([]string, len(arguments))
	for i, a := range arguments {
		s := strings.SplitN(a, "=", 2)
		keys[i] = s[0]
		values[i] = s[0]
		if 2 == len(s) {
			values[i] = s[1]
		}
	}
	return keys, values
}
