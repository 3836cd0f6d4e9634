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
	"strings"
	"unicode"
)

// Semantic id markers preceding identifiers in template tables.
const (
	IRIMarker      = "[IRI]"
	IRDIMarker     = "[IRDI]"
	IRDIPathMarker = "[IRDI PATH]"
)

var markersWithPath = []string{IRIMarker, IRDIMarker, IRDIPathMarker, "[IRDI Path]"}

// SemanticIDMarkers returns every semantic id marker occurring in value, grouped by marker.
func SemanticIDMarkers(value string) []string {
	var result []string
	for _, m := range markersWithPath {
		for n := strings.Count(value, m); n > 0; n-- {
			result = append(result, m)
		}
	}
	return result
}

// CountSemanticIDMarkers returns the number of semantic id markers in value.
func CountSemanticIDMarkers(value string) int {
	return len(SemanticIDMarkers(value))
}

// HasSemanticIDMarker reports whether value starts with [IRI] or [IRDI].
func HasSemanticIDMarker(value string) bool {
	return strings.HasPrefix(value, IRIMarker) || strings.HasPrefix(value, IRDIMarker)
}

// NormalizeSemanticIDSpec repairs doubled opening brackets and turns an IRDI path
// specification into an [IRDI] specification of its last path element.
func NormalizeSemanticIDSpec(value string) string {
	if strings.HasPrefix(value, "[[") {
		value = value[1:]
	}
	if strings.HasPrefix(strings.ToUpper(value), "[IRDI PATH") {
		if pos := strings.Index(value, "/"); pos > 0 {
			value = IRDIMarker + value[pos+1:]
		}
	}
	return value
}

// IsSemanticIDSpec reports whether value starts with a semantic id marker. With
// followedBySpace the marker must be followed by whitespace.
func IsSemanticIDSpec(value string, followedBySpace bool) bool {
	value = NormalizeSemanticIDSpec(value)
	if !HasSemanticIDMarker(value) {
		return false
	}
	if followedBySpace {
		pos := strings.Index(value, "]")
		return pos+1 < len(value) && unicode.IsSpace(rune(value[pos+1]))
	}
	return true
}
