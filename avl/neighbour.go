// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Predecessor - given a node in the tree rooted at root, return the
// node with the next lowest key or nil if node holds the lowest key
//
// fault.ErrNodeNotInTree if node cannot be reached from root
func Predecessor(root *Node, node *Node) (*Node, error) {
	lower, _, err := locate(root, node)
	if nil != err {
		return nil, err
	}
	if nil != node.left {
		return node.left.last(), nil
	}
	return lower, nil
}

// Successor - given a node in the tree rooted at root, return the
// node with the next highest key or nil if node holds the highest key
//
// fault.ErrNodeNotInTree if node cannot be reached from root
func Successor(root *Node, node *Node) (*Node, error) {
	_, upper, err := locate(root, node)
	if nil != err {
		return nil, err
	}
	if nil != node.right {
		return node.right.first(), nil
	}
	return upper, nil
}

// descend from root to node, remembering the last node passed on
// each side: lower is the closest ancestor with a smaller key and
// upper the closest ancestor with a larger key
func locate(root *Node, node *Node) (lower *Node, upper *Node, err error) {
	if nil == node || nil == node.key { // released nodes have no key
		return nil, nil, fault.ErrNodeNotInTree
	}

	p := root
	for nil != p {
		c := p.key.Compare(node.key)
		switch {
		case c < 0: // p.key < node.key
			lower = p
			p = p.right
		case c > 0: // p.key > node.key
			upper = p
			p = p.left
		default:
			if p != node {
				return nil, nil, fault.ErrNodeNotInTree
			}
			return lower, upper, nil
		}
	}
	return nil, nil, fault.ErrNodeNotInTree
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	return findMin(p)
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
