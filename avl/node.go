// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// k.Compare(x) is negative if k < x, zero if equal and positive if k > x
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    Item  // key part for ordering
	height int   // height of sub-tree rooted here, leaf == 1
}

// new leaf
func newNode(key Item) *Node {
	nodesCreated.Increment()
	return &Node{
		key:    key,
		height: 1,
	}
}

// drop the node's ownership of its children
func releaseNode(p *Node) {
	p.left = nil
	p.right = nil
	p.key = nil
	p.height = 0
	nodesReleased.Increment()
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return balanceFactor(p)
}

// cached height, absent sub-tree is zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute from children, which must already be correct
func fixHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

func balanceFactor(p *Node) int {
	return height(p.right) - height(p.left)
}
