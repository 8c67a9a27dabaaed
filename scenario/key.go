// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
)

// Key - integer key for the tree
type Key int

// Compare - key comparison for AVL interface
func (k Key) Compare(x interface{}) int {
	y := x.(Key)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k Key) String() string {
	return strconv.Itoa(int(k))
}

// the integer held by a node, false for nil
func keyOf(node *avl.Node) (int, bool) {
	if nil == node {
		return 0, false
	}
	return int(node.Key().(Key)), true
}
