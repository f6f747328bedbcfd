// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// operations common to both kinds of tree
type store interface {
	Insert(key string, value string) bool
	Remove(key string) bool
	Get(key string) (string, error)
	Find(key string) avl.Iterator[string, string]
	Begin() avl.Iterator[string, string]
	End() avl.Iterator[string, string]
	Clear()
	Count() int
	IsBalanced() bool
	CheckUp() bool
	CheckOrder() bool
	PrintLevels(w io.Writer, printData bool, levels int) int
}

// only the AVL tree maintains balance factors
type balanceChecker interface {
	CheckBalance() bool
}

type runner struct {
	log    *logger.L
	tree   store
	kind   string
	levels int
	w      io.Writer
}

// create a runner with an empty tree of the configured kind
func newRunner(config *Configuration, w io.Writer) *runner {
	r := &runner{
		log:    logger.New("script"),
		kind:   config.Tree,
		levels: config.PrintLevels,
		w:      w,
	}
	if treePlain == config.Tree {
		r.tree = avl.NewBinarySearchTree[string, string]()
	} else {
		r.tree = avl.New[string, string]()
	}
	return r
}

// run all commands from a script, stops at the first failure
func (r *runner) run(name string, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}
		r.log.Debugf("%s:%d: %q", name, lineNumber, fields)
		if err := r.execute(fields); nil != err {
			r.log.Errorf("%s:%d: %s  error: %s", name, lineNumber, fields[0], err)
			return err
		}
	}
	if err := scanner.Err(); nil != err {
		r.log.Errorf("%s: read error: %s", name, err)
		return err
	}
	r.log.Infof("%s: %d lines  tree: %s  count: %d", name, lineNumber, r.kind, r.tree.Count())
	return nil
}

// the minimum number of fields including the command name
var minimumFields = map[string]int{
	"insert": 3,
	"remove": 2,
	"get":    2,
	"find":   2,
	"list":   1,
	"print":  1,
	"check":  1,
	"count":  1,
	"clear":  1,
}

// execute a single command
func (r *runner) execute(fields []string) error {
	command := strings.ToLower(fields[0])
	n, ok := minimumFields[command]
	if !ok {
		return fault.ErrUnknownCommand
	}
	if len(fields) < n || (command != "insert" && len(fields) != n) {
		return fault.ErrWrongArgumentCount
	}

	switch command {
	case "insert":
		key := fields[1]
		value := strings.Join(fields[2:], " ")
		if r.tree.Insert(key, value) {
			r.log.Tracef("added: %q", key)
		} else {
			r.log.Tracef("overwrote: %q", key)
		}

	case "remove":
		if !r.tree.Remove(fields[1]) {
			r.log.Debugf("remove: %q not present", fields[1])
		}

	case "get":
		value, err := r.tree.Get(fields[1])
		if nil != err {
			return err
		}
		fmt.Fprintf(r.w, "%s → %s\n", fields[1], value)

	case "find":
		it := r.tree.Find(fields[1])
		if it.Equal(r.tree.End()) {
			fmt.Fprintf(r.w, "%s: end\n", fields[1])
		} else {
			fmt.Fprintf(r.w, "%s → %s\n", it.Key(), it.Value())
		}

	case "list":
		for it := r.tree.Begin(); !it.Equal(r.tree.End()); it.Next() {
			fmt.Fprintf(r.w, "%s → %s\n", it.Key(), it.Value())
		}

	case "print":
		depth := r.tree.PrintLevels(r.w, true, r.levels)
		r.log.Debugf("printed depth: %d", depth)

	case "check":
		return r.check()

	case "count":
		fmt.Fprintf(r.w, "%d\n", r.tree.Count())

	case "clear":
		r.tree.Clear()
	}
	return nil
}

// verify the tree invariants
func (r *runner) check() error {
	if !r.tree.CheckUp() {
		fault.Criticalf("%s tree: parent links corrupt", r.kind)
		return fault.ErrWrongParentLink
	}
	if !r.tree.CheckOrder() {
		fault.Criticalf("%s tree: keys out of order", r.kind)
		return fault.ErrWrongKeyOrder
	}
	n := 0
	for it := r.tree.Begin(); !it.Equal(r.tree.End()); it.Next() {
		n += 1
	}
	if n != r.tree.Count() {
		fault.Criticalf("%s tree: traversal: %d  count: %d", r.kind, n, r.tree.Count())
		return fault.ErrInconsistentTree
	}

	b, ok := r.tree.(balanceChecker)
	if !ok {
		// an unbalanced tree is allowed to be unbalanced
		fmt.Fprintf(r.w, "ok: %d items  balanced: %t\n", r.tree.Count(), r.tree.IsBalanced())
		return nil
	}
	if !b.CheckBalance() {
		fault.Criticalf("%s tree: balance factors wrong", r.kind)
		return fault.ErrWrongBalanceFactor
	}
	if !r.tree.IsBalanced() {
		fault.Criticalf("%s tree: not height balanced", r.kind)
		return fault.ErrUnbalancedTree
	}
	fmt.Fprintf(r.w, "ok: %d items  balanced: true\n", r.tree.Count())
	return nil
}
