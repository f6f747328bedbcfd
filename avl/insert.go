// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the unbalanced tree or overwrite
// the value of an existing key
//
// returns true if a new node was added
func (tree *BinarySearchTree[K, V]) Insert(key K, value V) bool {
	_, added := tree.attach(key, value)
	return added
}

// internal: walk from the root and either overwrite an existing
// value or hang a new leaf under the last node visited
func (tree *BinarySearchTree[K, V]) attach(key K, value V) (*Node[K, V], bool) {
	if nil == tree.root {
		tree.root = tree.alloc.newNode(key, value, nil)
		tree.count += 1
		return tree.root, true
	}

	p := tree.root
	for {
		c := tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			if nil == p.left {
				p.left = tree.alloc.newNode(key, value, p)
				tree.count += 1
				return p.left, true
			}
			p = p.left
		case c > 0: // key > p.key
			if nil == p.right {
				p.right = tree.alloc.newNode(key, value, p)
				tree.count += 1
				return p.right, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}

// Insert - insert a new node into the AVL tree or overwrite the
// value of an existing key
//
// an overwrite makes no structural change; returns true if a new
// node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	n, added := tree.attach(key, value)
	if !added {
		return false
	}

	p := n.up
	if nil == p {
		return true
	}

	// the parent was leaning: now even and its height is unchanged
	if 0 != p.balance {
		p.balance = 0
		return true
	}

	// the parent has grown towards the new node
	if p.left == n {
		p.balance = -1
	} else {
		p.balance = 1
	}
	tree.insertFix(p, n)
	return true
}

// internal: propagate a height increase of parent (whose child n is
// on the taller side) up the tree
func (tree *Tree[K, V]) insertFix(parent *Node[K, V], n *Node[K, V]) {
	for {
		g := parent.up
		if nil == g {
			return
		}

		if g.left == parent {
			g.balance -= 1
		} else {
			g.balance += 1
		}

		switch g.balance {
		case 0: // absorbed
			return

		case -1, +1: // g has grown too
			n = parent
			parent = g
			continue

		case -2: // left branch too tall
			if -1 == parent.balance {
				// single LL rotation
				tree.rotateRight(g)
				g.balance = 0
				parent.balance = 0
			} else {
				// double LR rotation
				tree.rotateLeft(parent)
				tree.rotateRight(g)
				switch n.balance {
				case -1:
					parent.balance = 0
					g.balance = 1
				case 0:
					parent.balance = 0
					g.balance = 0
				case +1:
					parent.balance = -1
					g.balance = 0
				}
				n.balance = 0
			}
			return

		case +2: // right branch too tall
			if +1 == parent.balance {
				// single RR rotation
				tree.rotateLeft(g)
				g.balance = 0
				parent.balance = 0
			} else {
				// double RL rotation
				tree.rotateRight(parent)
				tree.rotateLeft(g)
				switch n.balance {
				case +1:
					parent.balance = 0
					g.balance = -1
				case 0:
					parent.balance = 0
					g.balance = 0
				case -1:
					parent.balance = 1
					g.balance = 0
				}
				n.balance = 0
			}
			return
		}
	}
}
