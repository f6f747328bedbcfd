// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the unbalanced tree
//
// returns false if the key was not present
func (tree *BinarySearchTree[K, V]) Remove(key K) bool {
	n := tree.internalFind(key)
	if nil == n {
		return false
	}
	if nil != n.left && nil != n.right {
		tree.nodeSwap(n, predecessor(n))
	}
	tree.unlink(n)
	return true
}

// Remove - removes a specific key from the AVL tree
//
// returns false if the key was not present
func (tree *Tree[K, V]) Remove(key K) bool {
	n := tree.internalFind(key)
	if nil == n {
		return false
	}
	if nil != n.left && nil != n.right {
		tree.nodeSwap(n, predecessor(n))
	}

	// balance = right height - left height
	p := n.up
	diff := int8(0)
	if nil != p {
		if p.left == n {
			diff = +1
		} else {
			diff = -1
		}
	}
	tree.unlink(n)
	tree.removeFix(p, diff)
	return true
}

// internal: splice out a node with at most one child and release it
func (tree *BinarySearchTree[K, V]) unlink(n *Node[K, V]) {
	child := n.left
	if nil == child {
		child = n.right
	}
	if nil != child {
		child.up = n.up
	}
	tree.replaceChild(n.up, n, child)
	tree.count -= 1
	tree.alloc.freeNode(n)
}

// internal: rebalance after the sub-tree on one side of n shrank
//
// diff is +1 if the left side shrank and -1 if the right side shrank
func (tree *Tree[K, V]) removeFix(n *Node[K, V], diff int8) {
	for nil != n {
		p := n.up
		next := int8(0)
		if nil != p {
			if p.left == n {
				next = +1
			} else {
				next = -1
			}
		}

		switch b := n.balance + diff; b {
		case 0: // n has shrunk, continue upward
			n.balance = 0

		case -1, +1: // height unchanged
			n.balance = b
			return

		case -2: // left branch too tall
			c := n.left
			switch c.balance {
			case -1:
				// single LL rotation, height shrinks
				tree.rotateRight(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single LL rotation, height unchanged
				tree.rotateRight(n)
				n.balance = -1
				c.balance = 1
				return
			default:
				// double LR rotation, height shrinks
				g := c.right
				tree.rotateLeft(c)
				tree.rotateRight(n)
				switch g.balance {
				case +1:
					n.balance = 0
					c.balance = -1
				case 0:
					n.balance = 0
					c.balance = 0
				case -1:
					n.balance = 1
					c.balance = 0
				}
				g.balance = 0
			}

		case +2: // right branch too tall
			c := n.right
			switch c.balance {
			case +1:
				// single RR rotation, height shrinks
				tree.rotateLeft(n)
				n.balance = 0
				c.balance = 0
			case 0:
				// single RR rotation, height unchanged
				tree.rotateLeft(n)
				n.balance = 1
				c.balance = -1
				return
			default:
				// double RL rotation, height shrinks
				g := c.left
				tree.rotateRight(c)
				tree.rotateLeft(n)
				switch g.balance {
				case -1:
					n.balance = 0
					c.balance = 1
				case 0:
					n.balance = 0
					c.balance = 0
				case +1:
					n.balance = -1
					c.balance = 0
				}
				g.balance = 0
			}
		}

		n = p
		diff = next
	}
}

// internal: exchange the positions of two nodes in the tree,
// neighbouring back links and the root are updated; the nodes keep
// their key and value
func (tree *BinarySearchTree[K, V]) nodeSwap(n1 *Node[K, V], n2 *Node[K, V]) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1p, n1l, n1r := n1.up, n1.left, n1.right
	n2p, n2l, n2r := n2.up, n2.left, n2.right
	n1IsLeft := nil != n1p && n1 == n1p.left
	n2IsLeft := nil != n2p && n2 == n2p.left

	n1.up, n2.up = n2p, n1p
	n1.left, n2.left = n2l, n1l
	n1.right, n2.right = n2r, n1r

	// adjacent nodes: the swapped link points at itself, reverse it
	switch {
	case n1r == n2:
		n2.right = n1
		n1.up = n2
	case n2r == n1:
		n1.right = n2
		n2.up = n1
	case n1l == n2:
		n2.left = n1
		n1.up = n2
	case n2l == n1:
		n1.left = n2
		n2.up = n1
	}

	if nil != n1p && n1p != n2 {
		if n1IsLeft {
			n1p.left = n2
		} else {
			n1p.right = n2
		}
	}
	if nil != n1r && n1r != n2 {
		n1r.up = n2
	}
	if nil != n1l && n1l != n2 {
		n1l.up = n2
	}

	if nil != n2p && n2p != n1 {
		if n2IsLeft {
			n2p.left = n1
		} else {
			n2p.right = n1
		}
	}
	if nil != n2r && n2r != n1 {
		n2r.up = n1
	}
	if nil != n2l && n2l != n1 {
		n2l.up = n1
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}
}

// internal: AVL version also exchanges the balance factors so each
// position keeps its own balance
func (tree *Tree[K, V]) nodeSwap(n1 *Node[K, V], n2 *Node[K, V]) {
	tree.BinarySearchTree.nodeSwap(n1, n2)
	n1.balance, n2.balance = n2.balance, n1.balance
}

// Clear - remove every node, the tree can be used again
func (tree *BinarySearchTree[K, V]) Clear() {
	tree.deleteNodes(tree.root)
	tree.root = nil
	tree.count = 0
	tree.alloc.reset()
}

// internal: post-order release of a sub-tree
func (tree *BinarySearchTree[K, V]) deleteNodes(p *Node[K, V]) {
	if nil == p {
		return
	}
	tree.deleteNodes(p.left)
	tree.deleteNodes(p.right)
	tree.alloc.freeNode(p)
}
