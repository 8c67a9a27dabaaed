// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// global statistics, shared by all trees
var (
	nodesCreated  counter.Counter
	nodesReleased counter.Counter
	rotations     counter.Counter
)

// Statistics - snapshot of the global node counters
type Statistics struct {
	Created   uint64 `json:"created"`   // nodes allocated by insert
	Released  uint64 `json:"released"`  // nodes released by delete
	Rotations uint64 `json:"rotations"` // single rotations, a double rotation counts two
}

// Live - nodes created but not yet released
func (s Statistics) Live() uint64 {
	return s.Created - s.Released
}

// Stats - read the current statistics
func Stats() Statistics {
	return Statistics{
		Created:   nodesCreated.Uint64(),
		Released:  nodesReleased.Uint64(),
		Rotations: rotations.Uint64(),
	}
}
