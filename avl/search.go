// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key, nil if not present
func Search(root *Node, key Item) *Node {
	return search(key, root)
}

func search(key Item, p *Node) *Node {
	if nil == p {
		return nil
	}

	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		return search(key, p.left)
	case c < 0: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
