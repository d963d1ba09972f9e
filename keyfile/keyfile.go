// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyfile - read and write text files holding one key per
// line
//
// Blank lines and lines starting with '#' are ignored and each key
// has its surrounding white space removed.  Duplicate keys collapse
// into one.
package keyfile

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/bitmark-inc/orderedtree/fault"
	"github.com/bitmark-inc/orderedtree/orderedset"
)

// comment lines start with this
const commentPrefix = "#"

// Read - parse keys from a reader, name is only used in errors
func Read[K cmp.Ordered](r io.Reader, name string, parse ParseFunc[K]) (*orderedset.Set[K], error) {
	s := orderedset.New[K]()

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		key, err := parse(text)
		if nil != err {
			return nil, fmt.Errorf("%w: %s:%d: %q: %s", fault.ErrInvalidKey, name, lineNumber, text, err)
		}
		s.Add(key)
	}
	if err := scanner.Err(); nil != err {
		return nil, fmt.Errorf("%s:%d: %w", name, lineNumber+1, err)
	}
	return s, nil
}

// ReadFile - parse all keys in a file
func ReadFile[K cmp.Ordered](fileName string, parse ParseFunc[K]) (*orderedset.Set[K], error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Read(f, fileName, parse)
}

// Write - output keys one per line
func Write[K any](w io.Writer, keys iter.Seq[K]) error {
	b := bufio.NewWriter(w)
	for key := range keys {
		if _, err := fmt.Fprintln(b, key); nil != err {
			return err
		}
	}
	return b.Flush()
}
