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
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build AVL trees and print the results as JSON"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "insert, remove and query keys in a single tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "insert, i",
					Usage: "*keys to insert in order `KEY[,KEY…]`",
				},
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " keys to remove after inserting `KEY[,KEY…]`",
				},
				cli.StringSliceFlag{
					Name:  "query, q",
					Usage: " keys to search for with their neighbours `KEY[,KEY…]`",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " include the tree shape after insert and remove",
				},
			},
			Action: runRun,
		},
		{
			Name:      "stress",
			Usage:     "run randomised insert and remove trials in parallel",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "trials, t",
					Value: 100,
					Usage: " number of independent trees `COUNT`",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 1000,
					Usage: " keys inserted into each tree `COUNT`",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 4,
					Usage: " trials run at the same time `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " seed of the first trial `NUMBER`",
				},
			},
			Action: runStress,
		},
		{
			Name:      "version",
			Usage:     "display avl-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}
