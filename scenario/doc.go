// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - drive an AVL tree from a list of operations
//
// A Scenario inserts keys, removes keys and then looks up query keys
// together with their in-order neighbours, passing every outcome to a
// Reporter.  Stress runs many independent randomised trials on a
// worker pool and verifies the tree after every step.
package scenario
