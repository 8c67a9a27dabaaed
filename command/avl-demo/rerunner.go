// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
)

const (
	rerunnerLoggerPrefix = "rerunner"
)

// rerunner - repeat the demonstration on each configuration change
type rerunner struct {
	log               *logger.L
	w                 io.Writer
	configurationFile string
	change            <-chan struct{}
	details           bool
}

func newRerunner(configurationFile string, w io.Writer, change <-chan struct{}, details bool) *rerunner {
	return &rerunner{
		log:               logger.New(rerunnerLoggerPrefix),
		w:                 w,
		configurationFile: configurationFile,
		change:            change,
		details:           details,
	}
}

// Run - background process, exits on shutdown
func (r *rerunner) Run(args interface{}, shutdown <-chan struct{}) {

	log := r.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.change:
			r.runOnce()
		}
	}

	log.Info("stopped")
}

// reload the configuration and run the demonstration again
func (r *rerunner) runOnce() {
	r.log.Infof("configuration: %q changed, running again", r.configurationFile)

	cfg, err := getConfiguration(r.configurationFile)
	if nil != err {
		r.log.Errorf("configuration: %q  error: %s", r.configurationFile, err)
		fmt.Fprintf(r.w, "configuration error: %s\n", err)
		return
	}
	cfg.Details = cfg.Details || r.details

	if err := runDemo(r.w, cfg, r.log); nil != err {
		r.log.Errorf("demo failed: %s", err)
		fmt.Fprintf(r.w, "error: %s\n", err)
	}
}
