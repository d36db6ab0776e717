// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fixedmap/fixedmap"
	"github.com/bitmark-inc/fixedmap/tree"
)

func buildTree(m *metadata, arguments []string) (*tree.Tree[string, string], error) {
	keys, values := parseArguments(arguments)

	capacity := m.capacity
	if 0 == capacity {
		capacity = len(keys)
	}

	t, err := tree.NewOrdered[string, string](capacity, m.variant)
	if nil != err {
		return nil, err
	}

	for i, k := range keys {
		if !t.Insert(k, values[i]) && m.verbose {
			fmt.Fprintf(m.e, "insert rejected: %q\n", k)
		}
	}
	for _, k := range m.erase {
		if !t.Delete(k) && m.verbose {
			fmt.Fprintf(m.e, "erase: %q not found\n", k)
		}
	}
	return t, nil
}

func runTree(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	depth := t.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "variant: %s  count: %d  depth: %d  capacity: %d\n", t.Variant(), t.Count(), depth, t.Capacity())
	}
	return nil
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	t, err := buildTree(m, c.Args())
	if nil != err {
		return err
	}

	if err := t.Check(); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "ok: %s  count: %d  height: %d  available: %d\n", t.Variant(), t.Count(), t.Height(), t.Available())
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, values := parseArguments(c.Args())

	capacity := m.capacity
	if 0 == capacity {
		capacity = len(keys)
	}

	fm, err := fixedmap.New[string, string](capacity, m.variant)
	if nil != err {
		return err
	}
	for i, k := range keys {
		fm.Insert(k, values[i])
	}
	for _, k := range m.erase {
		fm.Erase(k)
	}

	out := struct {
		Variant  string                           `json:"variant"`
		Capacity int                              `json:"capacity"`
		Size     int                              `json:"size"`
		Entries  []fixedmap.Entry[string, string] `json:"entries"`
		Stats    fixedmap.Stats                   `json:"stats"`
	}{
		Variant:  fm.Variant().String(),
		Capacity: fm.Capacity(),
		Size:     fm.Size(),
		Entries:  fm.Entries(),
		Stats:    fm.Stats(),
	}
	return printJson(m.w, out)
}
