// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree rooted
// at root, higher keys above lower keys
//
// returns the maximum depth of the tree
func Print(w io.Writer, root *Node, printDetails bool) int {
	return printTree(w, root, "", rootBranch, printDetails)
}

// internal print - returns the maximum depth of the sub-tree
func printTree(w io.Writer, p *Node, prefix string, br branch, printDetails bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, rightBranch, printDetails)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printDetails {
		fmt.Fprintf(w, "%v h:%d %+d\n", p.key, p.height, balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, leftBranch, printDetails)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
