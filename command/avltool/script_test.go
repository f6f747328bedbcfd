// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
}

func teardownTestLogger() {
	fault.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func runText(t *testing.T, kind string, text string) (string, error) {
	t.Helper()
	config := &Configuration{
		Tree:        kind,
		PrintLevels: 5,
	}
	buffer := &bytes.Buffer{}
	err := newRunner(config, buffer).run(t.Name(), strings.NewReader(text))
	return buffer.String(), err
}

func TestScriptList(t *testing.T) {
	script := `
# comment lines are ignored
insert banana yellow
insert apple  red fruit   # trailing comment
insert cherry dark red
insert apple  green

list
count
`
	for _, kind := range []string{treeAVL, treePlain} {
		out, err := runText(t, kind, script)
		require.NoError(t, err, kind)
		expected := "apple → green\n" +
			"banana → yellow\n" +
			"cherry → dark red\n" +
			"3\n"
		assert.Equal(t, expected, out, kind)
	}
}

func TestScriptGetFind(t *testing.T) {
	out, err := runText(t, treeAVL, `
insert k1 v1
insert k2 v2
get k2
find k1
find k9
remove k2
remove k2
count
`)
	require.NoError(t, err)
	assert.Equal(t, "k2 → v2\nk1 → v1\nk9: end\n1\n", out)
}

func TestScriptGetMissing(t *testing.T) {
	_, err := runText(t, treeAVL, "insert a 1\nget b\n")
	assert.Equal(t, fault.ErrKeyOutOfRange, err)
	assert.True(t, fault.IsErrRange(err))
}

func TestScriptCheck(t *testing.T) {
	var b strings.Builder
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		b.WriteString("insert " + k + " x\n")
	}
	b.WriteString("check\nremove d\nremove a\ncheck\nclear\ncount\ncheck\n")

	out, err := runText(t, treeAVL, b.String())
	require.NoError(t, err)
	assert.Equal(t, "ok: 8 items  balanced: true\nok: 6 items  balanced: true\n0\nok: 0 items  balanced: true\n", out)
}

func TestScriptCheckPlainChain(t *testing.T) {
	// ascending inserts give a degenerate chain that is still valid
	out, err := runText(t, treePlain, "insert a 1\ninsert b 2\ninsert c 3\ncheck\n")
	require.NoError(t, err)
	assert.Equal(t, "ok: 3 items  balanced: false\n", out)
}

func TestScriptPrint(t *testing.T) {
	out, err := runText(t, treeAVL, "insert 2 two\ninsert 1 one\ninsert 3 three\nprint\n")
	require.NoError(t, err)
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "three")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestScriptErrors(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"frobnicate x\n", fault.ErrUnknownCommand},
		{"insert onlykey\n", fault.ErrWrongArgumentCount},
		{"remove\n", fault.ErrWrongArgumentCount},
		{"get a b\n", fault.ErrWrongArgumentCount},
		{"list all\n", fault.ErrWrongArgumentCount},
		{"count 1\n", fault.ErrWrongArgumentCount},
	}
	for i, item := range items {
		_, err := runText(t, treeAVL, item.text)
		assert.Equal(t, item.err, err, "%d: %q", i, item.text)
		assert.True(t, fault.IsErrInvalid(err), "%d: %q", i, item.text)
	}
}

func TestScriptStopsAtFirstError(t *testing.T) {
	out, err := runText(t, treeAVL, "insert a 1\ncount\nbad\ncount\n")
	assert.Equal(t, fault.ErrUnknownCommand, err)
	assert.Equal(t, "1\n", out)
}

func TestCommandCaseInsensitive(t *testing.T) {
	out, err := runText(t, treeAVL, "INSERT a 1\nCount\n")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRunScriptFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.script")
	require.NoError(t, os.WriteFile(fileName, []byte("insert x 1\ninsert y 2\ncount\n"), 0600))

	config, err := getConfiguration("")
	require.NoError(t, err)

	buffer := &bytes.Buffer{}
	err = runScript(fileName, config, buffer)
	require.NoError(t, err)
	assert.Equal(t, "2\n", buffer.String())

	err = runScript(filepath.Join(t.TempDir(), "missing"), config, buffer)
	assert.Error(t, err)
}
