// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/configuration"
	"github.com/bitmark-inc/orderedtree/fault"
)

type logging struct {
	Directory string
	Levels    map[string]string
}

type watchConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	KeyType       string   `gluamapper:"key_type"`
	Files         []string `gluamapper:"files"`
	Burst         int      `gluamapper:"reload_burst"`
	Logging       logging  `gluamapper:"logging"`
}

const script = `
local M = {}

M.data_directory = data_directory
M.key_type = "integer"
M.files = { "a.keys", "b.keys" }
M.reload_burst = 3

M.logging = {
    directory = "log",
    levels = {
        DEFAULT = "info",
        watcher = "debug",
    },
}

return M
`

func TestParseString(t *testing.T) {
	config := &watchConfiguration{
		KeyType: "string",
		Burst:   1,
	}
	variables := map[string]string{
		"data_directory": "/var/lib/avl-watch",
	}
	err := configuration.ParseConfigurationString("test.conf", script, config, variables)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/avl-watch", config.DataDirectory, "data directory")
	assert.Equal(t, "integer", config.KeyType, "key type")
	assert.Equal(t, []string{"a.keys", "b.keys"}, config.Files, "files")
	assert.Equal(t, 3, config.Burst, "burst")
	assert.Equal(t, "log", config.Logging.Directory, "log directory")
	assert.Equal(t, "debug", config.Logging.Levels["watcher"], "watcher level")
}

func TestParseFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = os.WriteFile(fileName, []byte(`return { key_type = arg[0] }`), 0600)
	assert.Nil(t, err, "write error")

	config := &watchConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, config.KeyType, "arg[0] not the file name")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), config, nil)
	assert.NotNil(t, err, "missing file not detected")
}

func TestParseErrors(t *testing.T) {
	config := &watchConfiguration{}

	err := configuration.ParseConfigurationString("bad.conf", `return {`, config, nil)
	assert.NotNil(t, err, "syntax error not detected")

	err = configuration.ParseConfigurationString("bad.conf", `return 42`, config, nil)
	assert.True(t, fault.IsErrInvalid(err), "non-table not detected: %v", err)

	err = configuration.ParseConfigurationString("bad.conf", `return {}`, *config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer not detected")
}
