// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/scenario"
)

type stressReply struct {
	Config     scenario.Stress `json:"config"`
	Failed     uint64          `json:"failed"`
	Operations uint64          `json:"operations"`
	Rotations  uint64          `json:"rotations"`
	Elapsed    string          `json:"elapsed"`
	Nodes      avl.Statistics  `json:"nodes"`
	Error      string          `json:"error,omitempty"`
}

func runStress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	cfg := &scenario.Stress{
		Trials:  c.Int("trials"),
		Keys:    c.Int("keys"),
		Workers: c.Int("workers"),
		Seed:    c.Int64("seed"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "trials: %d  keys: %d  workers: %d  seed: %d\n", cfg.Trials, cfg.Keys, cfg.Workers, cfg.Seed)
	}

	runner := scenario.NewRunner(nil, nil)
	result, err := runner.Stress(cfg)
	if nil != err && 0 == result.Failed {
		// configuration error, nothing was run
		return err
	}

	reply := stressReply{
		Config:     *cfg,
		Failed:     result.Failed,
		Operations: result.Operations,
		Rotations:  result.Rotations,
		Elapsed:    result.Elapsed.String(),
		Nodes:      avl.Stats(),
	}
	if nil != err {
		reply.Error = err.Error()
	}

	if err := scenario.PrintJSON(m.w, reply); nil != err {
		return err
	}
	return err
}
