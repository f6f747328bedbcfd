// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - true if for every node the heights of the left and
// right sub-trees differ by at most one
func (tree *BinarySearchTree[K, V]) IsBalanced() bool {
	return -1 != checkBalance(tree.root)
}

// internal: height of a sub-tree or -1 as soon as any sub-tree is
// out of balance
func checkBalance[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	lh := checkBalance(p.left)
	if -1 == lh {
		return -1
	}
	rh := checkBalance(p.right)
	if -1 == rh {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return 1 + max(lh, rh)
}

// CheckUp - check the up pointers for consistency
func (tree *BinarySearchTree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckOrder - true if an in-order walk gives strictly ascending keys
// and visits exactly Count nodes
func (tree *BinarySearchTree[K, V]) CheckOrder() bool {
	n := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return false
		}
		previous = p
		n += 1
	}
	return n == tree.count
}

// CheckBalance - true if every stored balance factor is in -1..+1
// and equals the actual right height minus left height
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkFactors(tree.root)
	return ok
}

// internal: height of a sub-tree and whether its factors are valid
func checkFactors[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkFactors(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkFactors(p.right)
	if !ok {
		return 0, false
	}
	b := rh - lh
	if b < -1 || b > 1 || b != int(p.balance) {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
