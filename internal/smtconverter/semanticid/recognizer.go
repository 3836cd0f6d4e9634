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

// Package semanticid recognizes semantic identifiers (ECLASS and IEC CDD IRDIs, IDTA and generic
// IRIs) embedded in the free text of submodel template tables.
//
// Identifiers in the converted tables are frequently word-wrapped or followed by description
// text. Recognizers therefore split the text on whitespace and greedily re-combine the pieces
// as long as the result stays a syntactically valid identifier.
package semanticid

import (
	"regexp"
	"strings"
)

// Identifier scheme prefixes carried by normalized semantic ids.
const (
	IRDIPrefix = "irdi:"
	IRIPrefix  = "iri:"
)

// Recognizer parses and validates one identifier scheme.
type Recognizer interface {
	// Handles reports whether the text looks like it starts with an identifier of this scheme.
	Handles(text string) bool
	// Parse extracts the longest valid identifier from the start of text.
	Parse(text string) (string, bool)
	// IsValid reports whether text is a complete identifier of this scheme.
	IsValid(text string) bool
	// Prefix is the scheme prefix used when composing normalized ids.
	Prefix() string
	// Fallback recognizers are consulted after all specific recognizers.
	Fallback() bool
	// LastOfPath reduces a path-like text to the part that holds the identifier.
	LastOfPath(text string) string
}

// CombinePredicate decides whether the token after may be appended to the candidate before.
type CombinePredicate func(before, after string) bool

var whitespaceRun = regexp.MustCompile(`\s+`)

// SplitAndCombine splits text on whitespace and appends successive tokens to the first one as
// long as combine holds and the candidate stays valid. It returns the final candidate if it is
// valid. A nil combine accepts every token.
func SplitAndCombine(text string, valid func(string) bool, combine CombinePredicate) (string, bool) {
	tokens := strings.Split(whitespaceRun.ReplaceAllString(text, " "), " ")
	result := tokens[0]
	for _, tok := range tokens[1:] {
		if tok == "" {
			continue
		}
		if combine != nil && !combine(result, tok) {
			break
		}
		candidate := result + tok
		if !valid(candidate) {
			break
		}
		result = candidate
	}
	if !valid(result) {
		return "", false
	}
	return result, true
}

// Compose prefixes id with the scheme prefix unless it already carries one.
func Compose(prefix, id string) string {
	if prefix == "" || strings.HasPrefix(id, IRDIPrefix) || strings.HasPrefix(id, IRIPrefix) {
		return id
	}
	return prefix + id
}

// StripPrefix removes a scheme prefix from id.
func StripPrefix(id string) string {
	if s, ok := strings.CutPrefix(id, IRDIPrefix); ok {
		return s
	}
	if s, ok := strings.CutPrefix(id, IRIPrefix); ok {
		return s
	}
	return id
}

type patternRecognizer struct {
	handles    func(string) bool
	pattern    *regexp.Regexp
	prefix     string
	fallback   bool
	combine    CombinePredicate
	lastOfPath func(string) string
}

func (r *patternRecognizer) Handles(text string) bool {
	return r.handles(text)
}

func (r *patternRecognizer) Parse(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return SplitAndCombine(text, r.IsValid, r.combine)
}

func (r *patternRecognizer) IsValid(text string) bool {
	return r.pattern.MatchString(text)
}

func (r *patternRecognizer) Prefix() string {
	return r.prefix
}

func (r *patternRecognizer) Fallback() bool {
	return r.fallback
}

func (r *patternRecognizer) LastOfPath(text string) string {
	if r.lastOfPath == nil {
		return text
	}
	return r.lastOfPath(text)
}

var (
	eclassPattern    = regexp.MustCompile(`^\d+-\d#\d+-[A-Z]+\d+#\d+$`)
	iecCddPattern    = regexp.MustCompile(`^\d+/\d+///\d+#[A-Z0-9]+\d+.*$`)
	iecCddCore       = regexp.MustCompile(`^\d+/\d+///\d+#[A-Z0-9]+\d+`)
	urlHandlePattern = regexp.MustCompile(`^(https?|ftp|file)://.*`)
	urlPattern       = regexp.MustCompile(`^(https?|ftp|file)://[-a-zA-Z0-9+&@#/%?=~_|!:,.;]*[-a-zA-Z0-9+&@#/%=~_|]$`)
)

// NewEclassIRDIRecognizer recognizes ECLASS IRDIs such as 0173-1#02-AAO677#002.
func NewEclassIRDIRecognizer() Recognizer {
	return &patternRecognizer{
		handles: func(s string) bool { return strings.HasPrefix(s, "0173-") },
		pattern: eclassPattern,
		prefix:  IRDIPrefix,
		lastOfPath: func(s string) string {
			if pos := strings.LastIndex(s, "/"); pos > 0 {
				return s[pos+1:]
			}
			return s
		},
	}
}

// NewIECCDDIRDIRecognizer recognizes IEC Common Data Dictionary IRDIs such as
// 0112/2///61987#ABN590#002.
func NewIECCDDIRDIRecognizer() Recognizer {
	return &patternRecognizer{
		handles: func(s string) bool { return strings.HasPrefix(s, "0112/") },
		pattern: iecCddPattern,
		prefix:  IRDIPrefix,
		// the pattern accepts any tail, so only wrapped pieces of an incomplete id are joined
		combine: func(before, _ string) bool { return !iecCddCore.MatchString(before) },
	}
}

// NewIDTAIRIRecognizer recognizes IRIs below https://admin-shell.io/.
func NewIDTAIRIRecognizer() Recognizer {
	return &patternRecognizer{
		handles: func(s string) bool { return strings.HasPrefix(s, "https://admin-shell.io/") },
		pattern: urlPattern,
		prefix:  IRIPrefix,
		combine: urlCombinable,
	}
}

// NewURLIRIRecognizer recognizes generic http, https, ftp and file IRIs. It is a fallback.
func NewURLIRIRecognizer() Recognizer {
	return &patternRecognizer{
		handles:  urlHandlePattern.MatchString,
		pattern:  urlPattern,
		prefix:   IRIPrefix,
		fallback: true,
		combine:  urlCombinable,
	}
}

func urlCombinable(before, after string) bool {
	if before == "" {
		return false
	}
	switch last := before[len(before)-1]; {
	case last == '-':
		return true
	case last >= '0' && last <= '9':
		// a trailing version or revision only continues with a path
		return strings.HasPrefix(after, "/")
	default:
		return strings.HasSuffix(before, "/") || strings.HasPrefix(after, "/") ||
			strings.Contains(after, "/") || len(after) < 10
	}
}
