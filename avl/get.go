// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - the value stored under key
//
// fails with fault.ErrKeyOutOfRange if the key is not present
func (tree *BinarySearchTree[K, V]) Get(key K) (V, error) {
	p := tree.internalFind(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyOutOfRange
	}
	return p.value, nil
}

// Ref - reference to the value stored under key, for in place update
//
// the reference is only valid until the key is removed
func (tree *BinarySearchTree[K, V]) Ref(key K) (*V, error) {
	p := tree.internalFind(key)
	if nil == p {
		return nil, fault.ErrKeyOutOfRange
	}
	return &p.value, nil
}
