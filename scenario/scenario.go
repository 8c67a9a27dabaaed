// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// Scenario - the operations to apply, in order
type Scenario struct {
	Insert []int `gluamapper:"insert" json:"insert"`
	Remove []int `gluamapper:"remove" json:"remove"`
	Query  []int `gluamapper:"query" json:"query"`
	Print  bool  `gluamapper:"print" json:"print"`
}

// Runner - applies scenarios and stress trials
type Runner struct {
	log      *logger.L
	reporter Reporter
}

// NewRunner - create a runner, log may be nil to run silently
func NewRunner(log *logger.L, reporter Reporter) *Runner {
	return &Runner{
		log:      log,
		reporter: reporter,
	}
}

// Run - build a tree from the scenario and report every outcome
//
// duplicate inserts and removal of absent keys are reported, not
// failures; the error is only set if the resulting tree is
// inconsistent or a neighbour lookup fails
func (r *Runner) Run(sc *Scenario) (*avl.Tree, error) {
	tree := avl.New()

	r.infof("insert: %d keys", len(sc.Insert))
	for _, k := range sc.Insert {
		err := tree.Insert(Key(k))
		if nil != err {
			r.warnf("insert: %d  error: %s", k, err)
		}
		r.reporter.Inserted(k, err)
	}
	if sc.Print {
		r.reporter.Tree("inserted", tree)
	}

	if len(sc.Remove) > 0 {
		r.infof("remove: %d keys", len(sc.Remove))
		for _, k := range sc.Remove {
			removed := tree.Delete(Key(k))
			r.debugf("remove: %d  removed: %v", k, removed)
			r.reporter.Removed(k, removed)
		}
		if sc.Print {
			r.reporter.Tree("removed", tree)
		}
	}

	if err := tree.Check(); nil != err {
		r.errorf("tree check failed: %s", err)
		return tree, err
	}

	for _, k := range sc.Query {
		node := tree.Search(Key(k))
		r.reporter.Searched(k, node)
		if nil == node {
			continue
		}
		predecessor, err := tree.Predecessor(node)
		if nil != err {
			r.errorf("predecessor of: %d  error: %s", k, err)
			return tree, err
		}
		successor, err := tree.Successor(node)
		if nil != err {
			r.errorf("successor of: %d  error: %s", k, err)
			return tree, err
		}
		r.reporter.Neighbours(k, predecessor, successor)
	}

	stats := avl.Stats()
	r.infof("count: %d  height: %d  rotations: %d  live nodes: %d", tree.Count(), tree.Height(), stats.Rotations, stats.Live())
	return tree, nil
}

// logging helpers, no output when there is no log channel

func (r *Runner) debugf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Debugf(format, arguments...)
	}
}

func (r *Runner) infof(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Infof(format, arguments...)
	}
}

func (r *Runner) warnf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Warnf(format, arguments...)
	}
}

func (r *Runner) errorf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Errorf(format, arguments...)
	}
}
