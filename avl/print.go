// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// DefaultPrintLevels - number of levels shown by Print
const DefaultPrintLevels = 5

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the top levels
// of the tree, returns the depth of the tree below the root that was
// visited (at most DefaultPrintLevels)
//
// the layout is for debugging only and may change
func (tree *BinarySearchTree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.PrintLevels(w, printData, DefaultPrintLevels)
}

// PrintLevels - as Print but showing up to levels levels
func (tree *BinarySearchTree[K, V]) PrintLevels(w io.Writer, printData bool, levels int) int {
	if levels <= 0 {
		return 0
	}
	return printTree(w, tree.root, "", root, printData, levels)
}

// internal print - returns the maximum depth printed
func printTree[K, V any](w io.Writer, p *Node[K, V], prefix string, br branch, printData bool, levels int) int {
	if nil == p || levels <= 0 {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData, levels-1)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d\n", p.key, p.value, up, p.balance)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData, levels-1)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
