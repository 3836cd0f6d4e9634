/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package textutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
)

const (
	// CardinalityUnset marks a bound that was not given or could not be parsed.
	CardinalityUnset = math.MinInt
	// CardinalityUnbounded marks an open upper bound ("*", "n").
	CardinalityUnbounded = -1
)

// ParseCardinality parses a cardinality cell such as "[0..1]", "1..*", "0…n", "*" or "1".
// A single value sets both bounds. Unparseable bounds are logged and left unset.
func ParseCardinality(data string) (lower, upper int) {
	data = RemoveBrackets(data)
	data = strings.ReplaceAll(data, "…", "..")
	if data == "*" {
		data = "0..*"
	}
	pos := strings.Index(data, "..")
	if pos < 0 {
		c := ParseCardinalityBound(data)
		return c, c
	}
	return ParseCardinalityBound(data[:pos]), ParseCardinalityBound(data[pos+2:])
}

// ParseCardinalityBound parses one bound of a cardinality.
func ParseCardinalityBound(data string) int {
	data = strings.TrimSpace(data)
	if data == "n/a" {
		return CardinalityUnset
	}
	data = strings.TrimPrefix(data, "1 or ")
	if data == "*" || data == "n" {
		return CardinalityUnbounded
	}
	result, err := strconv.Atoi(data)
	if err != nil {
		logger.Warnf("Reading cardinality '%s': %v", data, err)
		return CardinalityUnset
	}
	return result
}

// IsBounded reports whether c is a concrete bound, i.e. neither unset nor unbounded.
func IsBounded(c int) bool {
	return c != CardinalityUnset && c != CardinalityUnbounded
}
