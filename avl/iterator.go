// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - forward in-order position in a tree
//
// the zero value is the End iterator; an iterator is invalidated
// by removal of the node it refers to
type Iterator[K, V any] struct {
	current *Node[K, V]
}

// Begin - iterator at the lowest key, equal to End for an empty tree
func (tree *BinarySearchTree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{current: tree.root.first()}
}

// End - iterator past the highest key
func (tree *BinarySearchTree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Next - advance to the in-order successor, End stays at End
func (it *Iterator[K, V]) Next() {
	if nil != it.current {
		it.current = it.current.Next()
	}
}

// Equal - true if both iterators refer to the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.current == other.current
}

// IsEnd - true if there are no more nodes
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.current
}

// Node - the current node, nil at End
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key - current key, must not be called at End
func (it Iterator[K, V]) Key() K {
	return it.current.key
}

// Value - current value, must not be called at End
func (it Iterator[K, V]) Value() V {
	return it.current.value
}

// SetValue - overwrite the current value, must not be called at End
func (it Iterator[K, V]) SetValue(value V) {
	it.current.value = value
}

// All - range over the key/value pairs in ascending key order
func (tree *BinarySearchTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *BinarySearchTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for p := tree.root.first(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// First - return the node with the lowest key value
func (tree *BinarySearchTree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *BinarySearchTree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	// climb until arriving from a left child
	up := p.up
	for nil != up && up.left != p {
		p = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	return predecessor(p)
}

// internal: in-order predecessor
func predecessor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	if nil != p.left {
		return p.left.last()
	}
	// climb until arriving from a right child
	up := p.up
	for nil != up && up.right != p {
		p = up
		up = up.up
	}
	return up
}
