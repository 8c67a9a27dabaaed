// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Stress - randomised trial settings
type Stress struct {
	Trials  int   `gluamapper:"trials" json:"trials"`
	Keys    int   `gluamapper:"keys" json:"keys"`
	Workers int   `gluamapper:"workers" json:"workers"`
	Seed    int64 `gluamapper:"seed" json:"seed"`
}

// StressResult - totals over all trials
type StressResult struct {
	Trials     int           `json:"trials"`
	Failed     uint64        `json:"failed"`
	Operations uint64        `json:"operations"`
	Rotations  uint64        `json:"rotations"`
	Elapsed    time.Duration `json:"elapsed"`
}

// one unit of work for the pool
type trial struct {
	number int
	seed   int64
}

// Stress - run independent trials concurrently, each on its own tree
//
// trial n uses seed cfg.Seed+n so a failure can be reproduced by
// running a single trial with that seed
func (r *Runner) Stress(cfg *Stress) (StressResult, error) {

	result := StressResult{
		Trials: cfg.Trials,
	}

	if cfg.Trials <= 0 {
		return result, fault.ErrInvalidTrialCount
	}
	if cfg.Keys <= 0 {
		return result, fault.ErrInvalidKeyCount
	}
	if cfg.Workers <= 0 {
		return result, fault.ErrInvalidWorkerCount
	}

	r.infof("stress: trials: %d  keys: %d  workers: %d  seed: %d", cfg.Trials, cfg.Keys, cfg.Workers, cfg.Seed)

	var failed counter.Counter
	var operations counter.Counter

	var firstError error
	firstLock := sync.Mutex{}

	rotationsBefore := avl.Stats().Rotations
	start := time.Now()

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(cfg.Workers, func(i interface{}) {
		defer wg.Done()

		t := i.(trial)
		n, err := runTrial(t.seed, cfg.Keys)
		operations.Add(n)
		if nil == err {
			return
		}

		failed.Increment()
		r.errorf("trial: %d  seed: %d  error: %s", t.number, t.seed, err)

		firstLock.Lock()
		if nil == firstError {
			firstError = fmt.Errorf("%w: trial %d seed %d: %s", fault.ErrStressTrialFailed, t.number, t.seed, err)
		}
		firstLock.Unlock()
	}, ants.WithPreAlloc(true))
	if nil != err {
		return result, err
	}
	defer pool.Release()

	for n := 0; n < cfg.Trials; n += 1 {
		wg.Add(1)
		err := pool.Invoke(trial{number: n, seed: cfg.Seed + int64(n)})
		if nil != err {
			wg.Done()
			return result, err
		}
	}
	wg.Wait()

	result.Elapsed = time.Since(start)
	result.Failed = failed.Uint64()
	result.Operations = operations.Uint64()
	result.Rotations = avl.Stats().Rotations - rotationsBefore

	r.infof("stress: failed: %d  operations: %d  elapsed: %s", result.Failed, result.Operations, result.Elapsed)

	return result, firstError
}

// runTrial - build, shrink and verify one tree
//
// returns the number of tree operations performed
func runTrial(seed int64, keys int) (uint64, error) {
	rng := rand.New(rand.NewSource(seed))
	operations := uint64(0)

	tree := avl.New()
	present := make(map[int]bool, keys)

	order := rng.Perm(keys)
	for _, k := range order {
		operations += 1
		if err := tree.Insert(Key(k)); nil != err {
			return operations, err
		}
		present[k] = true
		if err := tree.Check(); nil != err {
			return operations, err
		}
	}

	// every key is present so every insert must be rejected
	for i := 0; i < keys/4+1; i += 1 {
		k := rng.Intn(keys)
		operations += 1
		if nil == tree.Insert(Key(k)) {
			return operations, fault.ErrDuplicateAccepted
		}
	}
	if tree.Count() != keys {
		return operations, fault.ErrTreeCountMismatch
	}

	order = rng.Perm(keys)
	for _, k := range order[:keys/2] {
		operations += 1
		if err := removeKey(tree, k); nil != err {
			return operations, err
		}
		delete(present, k)
		if err := tree.Check(); nil != err {
			return operations, err
		}
	}
	if tree.Count() != len(present) {
		return operations, fault.ErrTreeCountMismatch
	}

	// keys are 0..keys-1 so neighbours are found by stepping outwards
	for k := 0; k < keys; k += 1 {
		operations += 1
		node := tree.Search(Key(k))
		if present[k] != (nil != node) {
			return operations, fault.ErrSearchMismatch
		}
		if nil == node {
			continue
		}

		predecessor, err := tree.Predecessor(node)
		if nil != err {
			return operations, err
		}
		successor, err := tree.Successor(node)
		if nil != err {
			return operations, err
		}

		if !sameKey(predecessor, nearest(present, k, -1, keys)) || !sameKey(successor, nearest(present, k, +1, keys)) {
			return operations, fault.ErrNeighbourMismatch
		}
	}

	return operations, nil
}

// delete a key that must be present and confirm it has gone
func removeKey(tree *avl.Tree, k int) error {
	if !tree.Delete(Key(k)) {
		return fault.ErrDeleteFailed
	}
	if nil != tree.Search(Key(k)) {
		return fault.ErrRemovedKeyStillPresent
	}
	return nil
}

// nearest present key in direction step, -1 if none
func nearest(present map[int]bool, k int, step int, keys int) int {
	for i := k + step; i >= 0 && i < keys; i += step {
		if present[i] {
			return i
		}
	}
	return -1
}

func sameKey(node *avl.Node, expected int) bool {
	k, ok := keyOf(node)
	if !ok {
		return -1 == expected
	}
	return k == expected
}
