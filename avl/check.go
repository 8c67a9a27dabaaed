// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - consistency checker for the tree rooted at root
//
// returns the error for the first broken invariant found:
// fault.ErrUnorderedKeys, fault.ErrIncorrectHeight or
// fault.ErrUnbalancedNode
func Check(root *Node) error {
	_, err := check(root, nil, nil)
	return err
}

// keys in p must be strictly between low and high (nil is unbounded)
// returns the actual height of p
func check(p *Node, low Item, high Item) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, fault.ErrUnorderedKeys
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, fault.ErrUnorderedKeys
	}

	hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, err
	}

	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if h != p.height {
		return 0, fault.ErrIncorrectHeight
	}
	if d := hr - hl; d < -1 || d > 1 {
		return 0, fault.ErrUnbalancedNode
	}
	return h, nil
}
