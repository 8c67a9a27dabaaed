// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree rooted at root
//
// returns the possibly updated root, a key that is not in the tree
// is not an error and leaves the tree as it was
func Remove(root *Node, key Item) *Node {
	p, _ := remove(key, root)
	return p
}

// internal delete routine, also reports whether a node was removed
func remove(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, removed = remove(key, p.left)

	case c < 0: // p.key < key
		p.right, removed = remove(key, p.right)

	default: // found: delete p
		l := p.left
		r := p.right
		releaseNode(p)

		if nil == r {
			return l, true
		}

		// the in-order successor replaces p
		m := findMin(r)
		m.right = removeMin(r)
		m.left = l
		return balance(m), true
	}
	return balance(p), removed
}

// lowest node in a sub-tree
func findMin(p *Node) *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}

// detach the lowest node from a sub-tree, the node itself is kept
// for re-use by the caller
func removeMin(p *Node) *Node {
	if nil == p.left {
		return p.right
	}
	p.left = removeMin(p.left)
	return balance(p)
}
