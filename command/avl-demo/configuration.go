// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/scenario"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStressKeys    = 1000
	defaultStressWorkers = 4
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// the demonstration tree, used when the configuration has no keys
//
// slices are not preset before parsing since the mapper writes into
// an existing slice in place
func defaultScenario() scenario.Scenario {
	return scenario.Scenario{
		Insert: []int{19, 8, 13, 78, 10, 1, 11, 9},
		Remove: []int{13},
		Query:  []int{13, 78, 11},
		Print:  true,
	}
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Details       bool                 `gluamapper:"details" json:"details"`
	Scenario      scenario.Scenario    `gluamapper:"scenario" json:"scenario"`
	Stress        scenario.Stress      `gluamapper:"stress" json:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Stress: scenario.Stress{
			Trials:  0, // disabled unless configured
			Keys:    defaultStressKeys,
			Workers: defaultStressWorkers,
			Seed:    1,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if 0 == len(options.Scenario.Insert) && 0 == len(options.Scenario.Remove) && 0 == len(options.Scenario.Query) {
		options.Scenario = defaultScenario()
	}

	options.DataDirectory, err = configuration.ResolveDataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	if err := configuration.EnsurePlainName(options.Logging.File); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory, err = configuration.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}
