// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc - three way comparison: negative if a < b, zero if
// a == b and positive if a > b
type CompareFunc[K any] func(a K, b K) int

// BinarySearchTree - type to hold the root node of an unbalanced tree
type BinarySearchTree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare CompareFunc[K]
	alloc   allocator[K, V]
}

// Tree - AVL balanced tree
//
// The embedded BinarySearchTree provides search, iteration and
// clearing; Insert and Remove are replaced by balancing versions.
// Mutating through the embedded tree directly will break the
// balance invariant.
type Tree[K, V any] struct {
	BinarySearchTree[K, V]
}

// Compare - the natural ordering of an ordered type
func Compare[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// New - create an initially empty AVL tree
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](Compare[K])
}

// NewFunc - create an initially empty AVL tree ordered by compare
func NewFunc[K, V any](compare CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		BinarySearchTree: BinarySearchTree[K, V]{
			compare: compare,
		},
	}
}

// NewBinarySearchTree - create an initially empty unbalanced tree
func NewBinarySearchTree[K constraints.Ordered, V any]() *BinarySearchTree[K, V] {
	return NewBinarySearchTreeFunc[K, V](Compare[K])
}

// NewBinarySearchTreeFunc - create an initially empty unbalanced
// tree ordered by compare
func NewBinarySearchTreeFunc[K, V any](compare CompareFunc[K]) *BinarySearchTree[K, V] {
	return &BinarySearchTree[K, V]{
		compare: compare,
	}
}

// Empty - true if tree contains no data
func (tree *BinarySearchTree[K, V]) Empty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *BinarySearchTree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *BinarySearchTree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - number of levels in the tree, zero when empty
func (tree *BinarySearchTree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - overwrite the value of a node item in place
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Balance - height of right sub-tree minus height of left sub-tree
// as maintained by the AVL tree, always zero in an unbalanced tree
func (p *Node[K, V]) Balance() int {
	return int(p.balance)
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
