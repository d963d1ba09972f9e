// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyfile

import (
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/orderedtree/fault"
)

// KeyType - how the text of each line is interpreted
type KeyType int

// possible key types
const (
	StringKeys KeyType = iota
	IntegerKeys
	FloatKeys
)

// ParseFunc - convert the text of one line into a key
type ParseFunc[K any] func(text string) (K, error)

// ParseKeyType - key type from its name or abbreviation
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "s", "str", "string":
		return StringKeys, nil
	case "i", "int", "integer":
		return IntegerKeys, nil
	case "f", "float", "real":
		return FloatKeys, nil
	default:
		return StringKeys, fault.ErrInvalidKeyType
	}
}

// String - name of a key type
func (t KeyType) String() string {
	switch t {
	case StringKeys:
		return "string"
	case IntegerKeys:
		return "integer"
	case FloatKeys:
		return "float"
	default:
		return "unknown"
	}
}

// ParseString - the text itself is the key
func ParseString(text string) (string, error) {
	if "" == text {
		return "", fault.ErrEmptyKey
	}
	return text, nil
}

// ParseInteger - decimal, or 0x/0o/0b prefixed integer
func ParseInteger(text string) (int64, error) {
	return strconv.ParseInt(text, 0, 64)
}

// ParseFloat - finite floating point number
func ParseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if nil != err {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fault.ErrNotFiniteNumber
	}
	return f, nil
}
