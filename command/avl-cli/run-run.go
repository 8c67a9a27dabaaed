// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/scenario"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	insert, err := keyList(c, "insert")
	if nil != err {
		return err
	}
	if 0 == len(insert) {
		return fmt.Errorf("at least one key to insert is required")
	}

	remove, err := keyList(c, "remove")
	if nil != err {
		return err
	}
	query, err := keyList(c, "query")
	if nil != err {
		return err
	}

	sc := &scenario.Scenario{
		Insert: insert,
		Remove: remove,
		Query:  query,
		Print:  c.Bool("print"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "insert: %v\n", sc.Insert)
		fmt.Fprintf(m.e, "remove: %v\n", sc.Remove)
		fmt.Fprintf(m.e, "query:  %v\n", sc.Query)
	}

	reporter := scenario.NewJSONReporter(m.w)
	runner := scenario.NewRunner(nil, reporter)

	if _, err := runner.Run(sc); nil != err {
		return err
	}
	return reporter.Flush()
}

// flags may be repeated and each may hold a comma separated list
func keyList(c *cli.Context, name string) ([]int, error) {
	keys := []int{}
	for _, s := range c.StringSlice(name) {
		for _, item := range strings.Split(s, ",") {
			item = strings.TrimSpace(item)
			if "" == item {
				continue
			}
			k, err := strconv.Atoi(item)
			if nil != err {
				return nil, fmt.Errorf("%s: invalid key: %q", name, item)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
