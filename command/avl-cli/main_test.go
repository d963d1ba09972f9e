// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/fault"
)

type fixture struct {
	dir   string
	stdin string
}

func setupFixture(t *testing.T, files map[string]string) *fixture {
	dir, err := os.MkdirTemp("", "avl-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0600); nil != err {
			t.Fatalf("write: %q  error: %s", name, err)
		}
	}
	return &fixture{dir: dir}
}

func (f *fixture) teardown() {
	os.RemoveAll(f.dir)
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.dir, name)
}

// run the application, returning standard output and error
func (f *fixture) run(arguments ...string) (string, error) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	app := newApp(strings.NewReader(f.stdin), &stdout, &stderr)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return stdout.String(), err
}

var testFiles = map[string]string{
	"seven":   "5\n3\n8\n1\n4\n7\n9\n",
	"odd":     "1\n3\n5\n7\n9\n",
	"small":   "3\n5\n",
	"names":   "# people\nkim\nalex\n\nsam\nalex\n",
	"invalid": "1\ntwo\n",
}

func TestSort(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("--type=integer", "sort", f.path("seven"))
	assert.Nil(t, err, "sort")
	assert.Equal(t, "1\n3\n4\n5\n7\n8\n9\n", out, "sorted")

	out, err = f.run("-t", "int", "reverse", f.path("seven"))
	assert.Nil(t, err, "reverse")
	assert.Equal(t, "9\n8\n7\n5\n4\n3\n1\n", out, "reversed")

	out, err = f.run("sort", f.path("names"))
	assert.Nil(t, err, "sort names")
	assert.Equal(t, "alex\nkim\nsam\n", out, "sorted names")

	// as strings the order is lexical
	f.stdin = "10\n9\n100\n"
	out, err = f.run("sort", "-")
	assert.Nil(t, err, "sort stdin")
	assert.Equal(t, "10\n100\n9\n", out, "lexical order")
}

func TestSortJSON(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("--json", "--type=integer", "sort", f.path("seven"))
	assert.Nil(t, err, "sort")

	var reply keysReply[int64]
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "json decode")
	assert.Equal(t, 7, reply.Count, "count")
	assert.Equal(t, []int64{1, 3, 4, 5, 7, 8, 9}, reply.Keys, "keys")
}

func TestNearestAndFind(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("-t", "integer", "nearest", f.path("seven"), "5")
	assert.Nil(t, err, "nearest")
	assert.Equal(t, "4 < 5 < 7\n", out, "neighbours")

	out, err = f.run("-t", "integer", "nearest", f.path("seven"), "9")
	assert.Nil(t, err, "nearest at maximum")
	assert.Equal(t, "8 < 9 < -\n", out, "no greater key")

	out, err = f.run("-t", "integer", "find", f.path("seven"), "9")
	assert.Nil(t, err, "find")
	assert.Equal(t, "found: 9  depth: 2\n", out, "found")

	_, err = f.run("-t", "integer", "find", f.path("seven"), "6")
	assert.True(t, fault.IsErrNotFound(err), "missing key: %v", err)

	_, err = f.run("-t", "integer", "find", f.path("seven"), "six")
	assert.True(t, fault.IsErrInvalid(err), "bad key: %v", err)
}

func TestRange(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("-t", "integer", "range", f.path("seven"), "2", "7")
	assert.Nil(t, err, "range")
	assert.Equal(t, "3\n4\n5\n7\n", out, "absent start")

	out, err = f.run("-t", "integer", "range", f.path("seven"), "3", "3")
	assert.Nil(t, err, "single key range")
	assert.Equal(t, "3\n", out, "single key")

	out, err = f.run("-t", "integer", "range", f.path("seven"), "10", "20")
	assert.Nil(t, err, "empty range")
	assert.Equal(t, "", out, "nothing in range")
}

func TestCombine(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	tests := []struct {
		command  string
		expected string
	}{
		{"union", "1\n3\n4\n5\n7\n8\n9\n"},
		{"intersect", "1\n3\n5\n7\n9\n"},
		{"diff", "4\n8\n"},
		{"xor", "4\n8\n"},
	}
	for _, test := range tests {
		out, err := f.run("-t", "i", test.command, f.path("seven"), f.path("odd"))
		assert.Nil(t, err, "%s", test.command)
		assert.Equal(t, test.expected, out, "%s", test.command)
	}

	f.stdin = "9\n11\n"
	out, err := f.run("-t", "i", "xor", "-", f.path("odd"))
	assert.Nil(t, err, "xor stdin")
	assert.Equal(t, "1\n3\n5\n7\n11\n", out, "xor stdin")

	_, err = f.run("union", "-", "-")
	assert.Equal(t, fault.ErrStdinTwice, err, "stdin twice")
}

func TestSubsetAndCompare(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("--json", "-t", "integer", "subset", f.path("small"), f.path("odd"))
	assert.Nil(t, err, "subset")
	var s subsetReply
	assert.Nil(t, json.Unmarshal([]byte(out), &s), "json decode")
	assert.True(t, s.Subset, "subset")
	assert.True(t, s.ProperSubset, "proper subset")
	assert.False(t, s.Superset, "superset")
	assert.False(t, s.Disjoint, "disjoint")

	out, err = f.run("-t", "integer", "compare", f.path("odd"), f.path("seven"))
	assert.Nil(t, err, "compare")
	assert.Equal(t, "+1  equal: false\n", out, "5 > 4 at third key")

	out, err = f.run("-t", "integer", "compare", f.path("odd"), f.path("odd"))
	assert.Nil(t, err, "compare same")
	assert.Equal(t, "+0  equal: true\n", out, "same file")
}

func TestCheckStatsPrint(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	out, err := f.run("-t", "integer", "check", f.path("seven"))
	assert.Nil(t, err, "check")
	assert.Equal(t, "ok  keys: 7  height: 3\n", out, "check output")

	out, err = f.run("--json", "-t", "integer", "stats", f.path("seven"))
	assert.Nil(t, err, "stats")
	var reply statsReply[int64]
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "json decode")
	assert.Equal(t, 7, reply.Count, "count")
	assert.Equal(t, 3, reply.Height, "height")
	assert.Equal(t, int64(1), *reply.Min, "min")
	assert.Equal(t, int64(9), *reply.Max, "max")
	assert.Equal(t, int64(5), *reply.Root, "root")

	f.stdin = ""
	out, err = f.run("stats", "-")
	assert.Nil(t, err, "stats empty")
	assert.Contains(t, out, "min:    -", "empty min")

	out, err = f.run("-t", "integer", "print", f.path("seven"))
	assert.Nil(t, err, "print")
	assert.Equal(t, 7, strings.Count(out, "\n"), "print lines")
	assert.Contains(t, out, "|------+ 5\n", "root line")
}

func TestErrors(t *testing.T) {
	f := setupFixture(t, testFiles)
	defer f.teardown()

	_, err := f.run("-t", "complex", "sort", f.path("seven"))
	assert.NotNil(t, err, "bad type")

	_, err = f.run("-t", "integer", "sort", f.path("invalid"))
	assert.True(t, fault.IsErrInvalid(err), "invalid key: %v", err)

	_, err = f.run("sort")
	assert.Equal(t, fault.ErrMissingParameters, err, "no file")

	_, err = f.run("sort", "a", "b")
	assert.Equal(t, fault.ErrTooManyParameters, err, "two files")

	_, err = f.run("sort", f.path("missing"))
	assert.True(t, os.IsNotExist(err), "missing file: %v", err)
}
