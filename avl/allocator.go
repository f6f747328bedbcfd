// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int8        // -1, 0, +1 (±2 only during rebalancing)
}

// maximum number of reclaimed nodes kept by a tree
const poolLimit = 256

// per-tree allocator data
type allocator[K, V any] struct {
	pool      *Node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		return &Node[K, V]{
			key:   key,
			value: value,
			up:    up,
		}
	}
	p := a.pool
	a.pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // replaces the freelist pointer
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
//
// all links and data are cleared so a released node cannot keep
// other nodes or user data reachable
func (a *allocator[K, V]) freeNode(node *Node[K, V]) {
	var zeroK K
	var zeroV V

	node.left = nil
	node.right = nil
	node.key = zeroK
	node.value = zeroV
	node.balance = 0

	if a.freeNodes >= poolLimit {
		node.up = nil
		return
	}
	node.up = a.pool // use as free list pointer
	a.pool = node
	a.freeNodes += 1
}

// drop every reclaimed node
func (a *allocator[K, V]) reset() {
	a.pool = nil
	a.freeNodes = 0
}
