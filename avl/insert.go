// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new key into the tree rooted at root
//
// returns the possibly updated root; if the key is already present
// the error is fault.ErrDuplicateKey and root is returned unchanged
func Insert(root *Node, key Item) (*Node, error) {
	return insert(key, root)
}

// internal routine for insert
//
// on error every level returns its own node without re-linking or
// re-balancing so nothing above the duplicate is modified
func insert(key Item, p *Node) (*Node, error) {
	if nil == p { // insert new node
		return newNode(key), nil
	}

	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		q, err := insert(key, p.left)
		if nil != err {
			return p, err
		}
		p.left = q

	case c < 0: // p.key < key
		q, err := insert(key, p.right)
		if nil != err {
			return p, err
		}
		p.right = q

	default:
		return p, fault.ErrDuplicateKey
	}
	return balance(p), nil
}
