// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// tree kinds
const (
	treeAVL   = "avl"
	treePlain = "plain"
)

const (
	defaultLogFile  = "avltool.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	Tree        string               `gluamapper:"tree"`
	PrintLevels int                  `gluamapper:"print_levels"`
	Logging     logger.Configuration `gluamapper:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with logging to the
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Tree:        treeAVL,
		PrintLevels: avl.DefaultPrintLevels,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// relative paths are from the directory holding the configuration
	dataDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Tree = strings.ToLower(options.Tree)
	switch options.Tree {
	case treeAVL, treePlain:
	default:
		return nil, fault.ErrInvalidTreeKind
	}

	if options.PrintLevels <= 0 {
		return nil, fault.ErrInvalidPrintLevels
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}
