// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Insert - add a new key, fault.ErrDuplicateKey if already present
func (tree *Tree) Insert(key Item) error {
	root, err := insert(key, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// Delete - remove a key, true if it was present
func (tree *Tree) Delete(key Item) bool {
	root, removed := remove(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// Search - find a specific key, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

// Predecessor - node with the next lowest key
func (tree *Tree) Predecessor(node *Node) (*Node, error) {
	return Predecessor(tree.root, node)
}

// Successor - node with the next highest key
func (tree *Tree) Successor(node *Node) (*Node, error) {
	return Successor(tree.root, node)
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// Check - verify ordering, heights and balance of every node
func (tree *Tree) Check() error {
	return Check(tree.root)
}

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(w io.Writer, printDetails bool) int {
	return Print(w, tree.root, printDetails)
}
