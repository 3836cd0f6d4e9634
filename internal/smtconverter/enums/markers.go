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

// Package enums infers enumerations from the free-text descriptions of submodel template fields.
package enums

import (
	"regexp"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
)

// marker selects an enum parsing kind. The rest of the text after the marker holds the
// literals. If follow is set, the rest must match it.
type marker struct {
	kind    model.EnumParsingKind
	pattern *regexp.Regexp
	follow  *regexp.Regexp
}

var numberedEntry = regexp.MustCompile(`^\s*\d+\.\s*["“]`)

// markers is ordered, the first match wins.
var markers = []marker{
	{kind: model.ParsingKindEnumEntries, pattern: regexp.MustCompile(`[Ee]numeration entries:`)},
	{kind: model.ParsingKindEnumEntries, pattern: regexp.MustCompile(`[Ee]numeration:`), follow: numberedEntry},
	{kind: model.ParsingKindEnum, pattern: regexp.MustCompile(`[Ee]numeration:`)},
	{kind: model.ParsingKindValueList2, pattern: regexp.MustCompile(`Value List \([^)]*\):?`)},
	{kind: model.ParsingKindValueList, pattern: regexp.MustCompile(`Value ?List:`)},
	{kind: model.ParsingKindIRDIs, pattern: regexp.MustCompile(`\[IRDIs for values\]:`)},
}

// Match is a marker found in a description.
type Match struct {
	Kind model.EnumParsingKind
	// Before is the text preceding the marker.
	Before string
	// Rest is the text following the marker.
	Rest string
}

// FindMarker returns the first marker in data. With atBeginning the marker may start at
// position 0, otherwise some text must precede it. A "[" directly before the marker and the
// corresponding closing "]" are removed.
func FindMarker(data string, atBeginning bool) (Match, bool) {
	for _, m := range markers {
		loc := m.pattern.FindStringIndex(data)
		if loc == nil {
			continue
		}
		if loc[0] == 0 && !atBeginning {
			continue
		}
		rest := data[loc[1]:]
		if m.follow != nil && !m.follow.MatchString(rest) {
			continue
		}
		before := strings.TrimSpace(data[:loc[0]])
		if b, ok := strings.CutSuffix(before, "["); ok {
			before = strings.TrimSpace(b)
			if r, ok := strings.CutSuffix(strings.TrimSpace(rest), "]"); ok {
				rest = r
			}
		}
		return Match{Kind: m.kind, Before: before, Rest: rest}, true
	}
	return Match{}, false
}
