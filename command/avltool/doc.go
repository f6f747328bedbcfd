// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - run scripts of tree operations against an AVL or a plain
// binary search tree
//
//   avltool [--config-file=FILE] [--plain] [--verbose] SCRIPT...
//
// each script line is one command, "#" starts a comment:
//
//   insert KEY VALUE...   add or overwrite a key
//   remove KEY            delete a key, absent keys are ignored
//   get KEY               show a value, fails if the key is absent
//   find KEY              show a value or "end"
//   list                  show all items in key order
//   print                 ASCII dump of the top levels of the tree
//   check                 verify the tree invariants, fails if broken
//   count                 show the number of items
//   clear                 remove every item
package main
