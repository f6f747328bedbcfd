// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key/value trees with parent pointers to
// allow iteration through the nodes
//
// Two trees are provided:
//
//   BinarySearchTree - plain unbalanced tree, insert/remove/find
//   Tree             - AVL height balanced tree built on the above
//
// Both share the same node type; the balance field is only
// maintained by the AVL tree.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// An insert with an existing key overwrites the data.  Removal of a
// node with two children swaps the node with its in-order
// predecessor instead of copying data around, so nodes keep a
// constant address while they remain in the tree.
package avl
