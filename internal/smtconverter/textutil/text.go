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

// Package textutil contains the line, whitespace, bracket and token helpers shared by the
// extraction engine, the enum inference and the validator.
//
// All helpers operate on cell texts as delivered by the row sources. Absent cells are
// represented by the empty string.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// Bullet is the private-use bullet character that PDF converters leave in front of list items.
const Bullet = '\uf0b7'

var (
	lineSeparator        = regexp.MustCompile(`\r\n|[\n\x0B\x0C\r\x{85}\x{2028}\x{2029}]`)
	bracketsWithFootnote = regexp.MustCompile(`^\[([^\]]+)\]\W*\d*$`)
)

// ToIdentifier trims name and replaces every character that may not appear in an identifier
// with an underscore.
func ToIdentifier(name string) string {
	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		if !isIdentifierPart(r) {
			runes[i] = '_'
		}
	}
	return string(runes)
}

func isIdentifierPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// RemoveLinebreaks replaces CRLF, CR and LF with a single space each.
func RemoveLinebreaks(data string) string {
	data = strings.ReplaceAll(data, "\r\n", " ")
	data = strings.ReplaceAll(data, "\r", " ")
	return strings.ReplaceAll(data, "\n", " ")
}

// ReplaceWhitespace replaces LF, CR and blank characters with replacement.
func ReplaceWhitespace(data, replacement string) string {
	return strings.NewReplacer("\n", replacement, "\r", replacement, " ", replacement).Replace(data)
}

// RemoveWhitespace removes LF, CR and blank characters.
func RemoveWhitespace(data string) string {
	return ReplaceWhitespace(data, "")
}

// ConsumeWhitespaces returns the first position at or after pos that is not whitespace.
func ConsumeWhitespaces(data string, pos int) int {
	for pos < len(data) && unicode.IsSpace(rune(data[pos])) {
		pos++
	}
	return pos
}

// ConsumeNonWhitespaces returns the first position at or after pos that is whitespace.
func ConsumeNonWhitespaces(data string, pos int) int {
	for pos < len(data) && !unicode.IsSpace(rune(data[pos])) {
		pos++
	}
	return pos
}

// IsBlank reports whether data is empty or whitespace only.
func IsBlank(data string) bool {
	return strings.TrimSpace(data) == ""
}

// ToLines splits data at line terminators. Trailing empty lines are dropped; a text without
// any line content yields no lines.
func ToLines(data string) []string {
	lines := lineSeparator.Split(data, -1)
	if len(lines) == 1 {
		return lines
	}
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}

// RemoveBrackets returns the content of a bracketed text such as "[Property]" or "[1]³",
// whitespace removed. Other texts are returned unchanged.
func RemoveBrackets(data string) string {
	if m := bracketsWithFootnote.FindStringSubmatch(data); m != nil {
		return RemoveWhitespace(m[1])
	}
	return data
}

// FixTypeName normalizes a value type cell such as "[xs:string]" or "xs:string [opt]".
func FixTypeName(name string) string {
	result := RemoveBrackets(name)
	if pos := strings.Index(name, "["); pos > 0 {
		result = strings.TrimSpace(name[:pos])
	}
	return result
}

// LastNoteComment returns the text from the last "Note: " on.
func LastNoteComment(text string) string {
	pos := strings.LastIndex(text, "Note: ")
	if pos < 0 {
		return text
	}
	return text[pos:]
}

// RemoveNote cuts text at the first "Note: " that does not start the text.
func RemoveNote(data string) string {
	if pos := strings.Index(data, "Note: "); pos > 0 {
		return data[:pos]
	}
	return data
}

// FixedIDShortNote classifies the note below an idShort. It returns true if the note states
// that the idShort is fixed, and known reports whether the note text was recognized.
func FixedIDShortNote(note string) (fixed bool, known bool) {
	tmp := strings.ToLower(note)
	switch {
	case tmp == "note: the above idshort shall always be as stated.":
		return true, true
	case tmp == "note: the idshort can be chosen freely.",
		strings.HasPrefix(tmp, "note: a different idshort might be used"):
		return false, true
	}
	return false, false
}

// RemoveQuotes strips one pair of typographic quotes enclosing value if there are no inner
// quotes, and a leading bullet character.
func RemoveQuotes(value string) string {
	const open, closing = "“", "”"
	if strings.HasPrefix(value, open) && strings.HasSuffix(value, closing) && len(value) >= len(open)+len(closing) {
		inner := value[len(open) : len(value)-len(closing)]
		if !strings.Contains(inner, open) && !strings.Contains(inner, closing) {
			value = inner
		}
	}
	if r, size := firstRune(value); r == Bullet {
		value = strings.TrimSpace(value[size:])
	}
	return value
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

// IsGenericIDShort reports whether idShort denotes a placeholder such as "{arbitrary}",
// "{Local...}" or "<no idShort>".
func IsGenericIDShort(idShort string) bool {
	if idShort == "" {
		return false
	}
	switch {
	case idShort == "{arbitrary}", idShort == "{Variable}", strings.HasPrefix(idShort, "{Local"):
		return true
	case strings.HasPrefix(idShort, "{") && strings.HasSuffix(idShort, "}"):
		return true
	}
	return strings.EqualFold(RemoveWhitespace(idShort), "<noidshort>")
}

// StripRefBy unwraps "refBy(T)" to "T".
func StripRefBy(typ string) string {
	if strings.HasPrefix(typ, "refBy(") && strings.HasSuffix(typ, ")") {
		return typ[len("refBy(") : len(typ)-1]
	}
	return typ
}

// Contains reports whether item is one of data.
func Contains(data []string, item string) bool {
	for _, d := range data {
		if d == item {
			return true
		}
	}
	return false
}

// SplitDropTrailing splits data at sep like strings.Split but drops trailing empty parts.
func SplitDropTrailing(data, sep string) []string {
	parts := strings.Split(data, sep)
	end := len(parts)
	for end > 1 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}
