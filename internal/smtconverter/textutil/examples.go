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
	"regexp"
	"strings"
)

var seeSection = regexp.MustCompile(`^See [Ss]ection \d+(\.\d+)*(.*)$`)

// IsIgnoredExample reports whether an example cell carries no example ("n/a", "[-]",
// "see below").
func IsIgnoredExample(data string) bool {
	return data == "n/a" || data == "[-]" || strings.EqualFold(data, "see below")
}

// SplitExamples turns an example cell into example values. The text is split at "or:"
// separators. Multi-language examples ("text@en text@de") are split at language tags.
// Otherwise a single value is split at repeated "[valueType]" prefixes and at ", " before a
// quoted value. Lines in more are appended. Quotes are removed and "See section x.y"
// references pruned. It returns nil if no value remains.
func SplitExamples(data, valueType string, multiLanguage bool, more []string) []string {
	if IsBlank(data) {
		return nil
	}
	tokens := splitAtOr(data)
	containsAt := false
	for _, t := range tokens {
		if strings.Contains(t, "@") {
			containsAt = true
			break
		}
	}
	if multiLanguage && containsAt {
		tokens = SplitMultiLanguageExample(tokens)
	} else {
		tokens = Retokenize("["+valueType+"]", tokens, nil)
		tokens = Retokenize(", ", tokens, func(s string) bool {
			return strings.HasPrefix(s, "\"") || strings.HasPrefix(s, "“")
		})
	}
	values := tokens
	if len(tokens) == 1 {
		values = ToLines(data)
	}
	values = append(append([]string(nil), values...), more...)
	for i := range values {
		values[i] = RemoveQuotes(values[i])
	}
	return PruneExamples(values)
}

func splitAtOr(data string) []string {
	var tokens []string
	lastPos := 0
	for {
		pos := indexFrom(data, "or:", lastPos)
		if pos <= 0 {
			break
		}
		tokens = append(tokens, strings.TrimSpace(data[lastPos:pos]))
		lastPos = pos + len("or:")
	}
	return append(tokens, strings.TrimSpace(data[lastPos:]))
}

func indexFrom(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	pos := strings.Index(s[from:], sub)
	if pos < 0 {
		return -1
	}
	return pos + from
}

// PruneExamples trims examples, reduces "See section x.y text" references to their text and
// drops empty values. It returns nil if no value remains.
func PruneExamples(data []string) []string {
	var result []string
	for _, d := range data {
		d = strings.TrimSpace(d)
		if m := seeSection.FindStringSubmatch(d); m != nil {
			d = strings.TrimSpace(m[2])
		}
		if d != "" {
			result = append(result, d)
		}
	}
	return result
}

// Retokenize splits a single token at sep. A leading "e.g. " is dropped. If condition is
// given, a separator only splits if condition holds for the text after it. Token lists with
// more than one element are returned unchanged.
func Retokenize(sep string, tokens []string, condition func(string) bool) []string {
	if len(tokens) != 1 || sep == "" {
		return tokens
	}
	token := strings.TrimPrefix(tokens[0], "e.g. ")
	pos := strings.Index(token, sep)
	if pos <= 0 {
		return tokens
	}
	var result []string
	lastPos := 0
	for pos > 0 {
		if condition == nil || condition(token[pos+len(sep):]) {
			result = append(result, strings.TrimSpace(token[lastPos:pos]))
			lastPos = pos + len(sep)
		}
		pos = indexFrom(token, sep, pos+len(sep))
	}
	return append(result, strings.TrimSpace(token[lastPos:]))
}

// SplitMultiLanguageExample splits tokens such as "Hello@en Hallo@de" at words ending in a
// language tag.
func SplitMultiLanguageExample(tokens []string) []string {
	var result []string
	for _, t := range tokens {
		words := strings.Split(t, " ")
		if len(words) < 2 {
			result = append(result, t)
			continue
		}
		last := 0
		for j, w := range words {
			langPos := strings.LastIndex(w, "@")
			if langPos > 0 && langPos >= len(w)-3 {
				result = append(result, strings.Join(words[last : j+1], " "))
				last = j + 1
			}
		}
		if last < len(words) {
			result = append(result, strings.Join(words[last:], " "))
		}
	}
	return result
}
