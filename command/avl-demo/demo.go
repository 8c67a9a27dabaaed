// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/scenario"
)

// run the scenario and then any stress trials, writing to w
func runDemo(w io.Writer, cfg *Configuration, log *logger.L) error {

	runner := scenario.NewRunner(log, scenario.NewConsoleReporter(w, cfg.Details))

	if _, err := runner.Run(&cfg.Scenario); nil != err {
		return err
	}

	if cfg.Stress.Trials <= 0 {
		return nil
	}

	fmt.Fprintf(w, "stress: trials: %d  keys: %d  workers: %d  seed: %d\n", cfg.Stress.Trials, cfg.Stress.Keys, cfg.Stress.Workers, cfg.Stress.Seed)
	result, err := runner.Stress(&cfg.Stress)
	fmt.Fprintf(w, "stress: failed: %d  operations: %d  rotations: %d  elapsed: %s\n", result.Failed, result.Operations, result.Rotations, result.Elapsed)
	return err
}
