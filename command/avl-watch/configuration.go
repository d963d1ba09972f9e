// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/orderedtree/configuration"
	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/keyfile"
	"github.com/bitmark-inc/orderedtree/keywatch"
	"github.com/bitmark-inc/orderedtree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyType     = "string"
	defaultReloadRate  = 2.0 // reloads per second
	defaultReloadBurst = 4
	defaultQuietWindow = "250ms"

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-watch.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Files         []string             `gluamapper:"files" json:"files"`
	ReloadRate    float64              `gluamapper:"reload_rate" json:"reload_rate"`
	ReloadBurst   int                  `gluamapper:"reload_burst" json:"reload_burst"`
	QuietWindow   string               `gluamapper:"quiet_window" json:"quiet_window"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	keyType     keyfile.KeyType
	quietWindow time.Duration
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotFoundConfigFile, configurationFileName)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		KeyType:       defaultKeyType,
		ReloadRate:    defaultReloadRate,
		ReloadBurst:   defaultReloadBurst,
		QuietWindow:   defaultQuietWindow,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.keyType, err = keyfile.ParseKeyType(options.KeyType)
	if nil != err {
		return nil, fmt.Errorf("%w: %q", err, options.KeyType)
	}

	options.quietWindow, err = time.ParseDuration(options.QuietWindow)
	if nil != err || options.quietWindow <= 0 {
		return nil, fmt.Errorf("%w: quiet_window: %q", fault.ErrInvalidDuration, options.QuietWindow)
	}
	if options.ReloadRate <= 0 {
		return nil, fmt.Errorf("%w: reload_rate: %v", fault.ErrInvalidDuration, options.ReloadRate)
	}
	if options.ReloadBurst <= 0 {
		return nil, fmt.Errorf("%w: reload_burst: %d", fault.ErrInvalidBurst, options.ReloadBurst)
	}
	if 0 == len(options.Files) {
		return nil, fault.ErrMissingFileList
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	}

	// watched files are relative to the data directory
	for i := range options.Files {
		options.Files[i] = util.EnsureAbsolute(options.DataDirectory, options.Files[i])
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// the log file must be a plain name inside the log directory
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotPlainFileName, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// reload tuning for the watcher
func (c *Configuration) watchOptions() keywatch.Options {
	return keywatch.Options{
		ReloadRate:  rate.Limit(c.ReloadRate),
		ReloadBurst: c.ReloadBurst,
		QuietWindow: c.quietWindow,
	}
}
