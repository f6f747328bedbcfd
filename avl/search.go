// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position an iterator at a specific key, returns the End
// iterator if the key is not in the tree
func (tree *BinarySearchTree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{current: tree.internalFind(key)}
}

// Search - find the node holding a specific key or nil
func (tree *BinarySearchTree[K, V]) Search(key K) *Node[K, V] {
	return tree.internalFind(key)
}

// Has - true if the key is present
func (tree *BinarySearchTree[K, V]) Has(key K) bool {
	return nil != tree.internalFind(key)
}

// internal: O(height) walk from the root
func (tree *BinarySearchTree[K, V]) internalFind(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
