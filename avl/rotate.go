// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single right rotation, p.left must exist
//
//	    p            q
//	   / \          / \
//	  q   c  =>    a   p
//	 / \              / \
//	a   b            b   c
func rotateRight(p *Node) *Node {
	q := p.left
	p.left = q.right
	q.right = p
	fixHeight(p)
	fixHeight(q)
	rotations.Increment()
	return q
}

// single left rotation, p.right must exist
//
//	  p                q
//	 / \              / \
//	a   q      =>    p   c
//	   / \          / \
//	  b   c        a   b
func rotateLeft(p *Node) *Node {
	q := p.right
	p.right = q.left
	q.left = p
	fixHeight(p)
	fixHeight(q)
	rotations.Increment()
	return q
}

// restore the AVL condition at p after one of its sub-trees changed
// height by one; both sub-trees must already be balanced
//
// returns the possibly new root of the sub-tree
func balance(p *Node) *Node {
	fixHeight(p)

	switch balanceFactor(p) {
	case +2: // right branch too high
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)

	case -2: // left branch too high
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}
