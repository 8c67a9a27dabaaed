// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that keeps the height of each
// sub-tree cached in its root node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The mutating functions take the current root and return the new
// root; after Insert or Remove any previously held root pointer is
// stale and must be replaced by the returned one.  The Tree type
// does this bookkeeping and keeps a node count.
//
// Keys are unique: an insert of a key that is already present fails
// with fault.ErrDuplicateKey and leaves the tree untouched.
package avl
