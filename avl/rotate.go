// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: promote the right child of p into p's position
//
//	    p                r
//	   / \              / \
//	  a   r     =>     p   c
//	     / \          / \
//	    b   c        a   b
func (tree *BinarySearchTree[K, V]) rotateLeft(p *Node[K, V]) {
	r := p.right
	up := p.up

	r.up = up
	tree.replaceChild(up, p, r)

	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}

	r.left = p
	p.up = r
}

// internal: promote the left child of p into p's position
//
//	      p            l
//	     / \          / \
//	    l   c   =>   a   p
//	   / \              / \
//	  a   b            b   c
func (tree *BinarySearchTree[K, V]) rotateRight(p *Node[K, V]) {
	l := p.left
	up := p.up

	l.up = up
	tree.replaceChild(up, p, l)

	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}

	l.right = p
	p.up = l
}

// internal: make the link from up that pointed at old point at
// replacement, a nil up means old was the root
func (tree *BinarySearchTree[K, V]) replaceChild(up *Node[K, V], old *Node[K, V], replacement *Node[K, V]) {
	switch {
	case nil == up:
		tree.root = replacement
	case up.left == old:
		up.left = replacement
	default:
		up.right = replacement
	}
}
