// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyfile_test

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/keyfile"
)

const stringKeys = `
# fruit
  pear
apple

fig
apple
# comment: not a key
banana split
`

func TestReadStrings(t *testing.T) {
	s, err := keyfile.Read(strings.NewReader(stringKeys), "fruit", keyfile.ParseString)
	assert.Nil(t, err, "read error")
	assert.Equal(t, []string{"apple", "banana split", "fig", "pear"}, s.Keys(), "wrong keys")
}

func TestReadIntegers(t *testing.T) {
	text := "10\n-3\n0x10\n7\n10\n"
	s, err := keyfile.Read(strings.NewReader(text), "numbers", keyfile.ParseInteger)
	assert.Nil(t, err, "read error")
	assert.Equal(t, []int64{-3, 7, 10, 16}, s.Keys(), "wrong keys")
}

func TestReadFloats(t *testing.T) {
	text := "2.5\n-1e3\n0.125\n"
	s, err := keyfile.Read(strings.NewReader(text), "floats", keyfile.ParseFloat)
	assert.Nil(t, err, "read error")
	assert.Equal(t, []float64{-1000, 0.125, 2.5}, s.Keys(), "wrong keys")
}

func TestReadNotFinite(t *testing.T) {
	for _, text := range []string{"1\nNaN\n", "1\n+Inf\n", "1\ninf\n", "1\n-infinity\n"} {
		s, err := keyfile.Read(strings.NewReader(text), "floats", keyfile.ParseFloat)
		assert.Nil(t, s, "set returned for: %q", text)
		assert.True(t, fault.IsErrInvalid(err), "wrong error class: %v", err)
		assert.Contains(t, err.Error(), "floats:2:", "missing position")
	}

	_, err := keyfile.ParseFloat("NaN")
	assert.Equal(t, fault.ErrNotFiniteNumber, err, "NaN accepted")
}

func TestReadLongLine(t *testing.T) {
	text := "short\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\n"
	s, err := keyfile.Read(strings.NewReader(text), "long", keyfile.ParseString)
	assert.Nil(t, s, "set returned on error")
	assert.True(t, errors.Is(err, bufio.ErrTooLong), "wrong error: %v", err)
	assert.Contains(t, err.Error(), "long:2:", "missing position")
}

func TestReadInvalid(t *testing.T) {
	text := "1\n2\n# three\nthree\n"
	s, err := keyfile.Read(strings.NewReader(text), "bad", keyfile.ParseInteger)
	assert.Nil(t, s, "set returned on error")
	assert.NotNil(t, err, "no error")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class: %v", err)
	assert.Contains(t, err.Error(), "bad:4:", "missing position")
	assert.Contains(t, err.Error(), `"three"`, "missing text")
}

func TestReadWriteFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "keyfile")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "keys.txt")
	err = os.WriteFile(fileName, []byte(stringKeys), 0600)
	assert.Nil(t, err, "write error")

	s, err := keyfile.ReadFile(fileName, keyfile.ParseString)
	assert.Nil(t, err, "read error")

	var buffer bytes.Buffer
	err = keyfile.Write(&buffer, s.All())
	assert.Nil(t, err, "write error")
	assert.Equal(t, "apple\nbanana split\nfig\npear\n", buffer.String(), "wrong output")

	_, err = keyfile.ReadFile(filepath.Join(dir, "missing.txt"), keyfile.ParseString)
	assert.True(t, os.IsNotExist(err), "expected not exist: %v", err)
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		text     string
		expected keyfile.KeyType
		ok       bool
	}{
		{"", keyfile.StringKeys, true},
		{"String", keyfile.StringKeys, true},
		{"int", keyfile.IntegerKeys, true},
		{" integer ", keyfile.IntegerKeys, true},
		{"f", keyfile.FloatKeys, true},
		{"float", keyfile.FloatKeys, true},
		{"complex", keyfile.StringKeys, false},
	}
	for _, test := range tests {
		kt, err := keyfile.ParseKeyType(test.text)
		if test.ok {
			assert.Nil(t, err, "%q: error", test.text)
			assert.Equal(t, test.expected, kt, "%q: wrong type", test.text)
		} else {
			assert.Equal(t, fault.ErrInvalidKeyType, err, "%q: expected error", test.text)
		}
	}
	assert.Equal(t, "integer", keyfile.IntegerKeys.String(), "name")
}
