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

package enums

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

var entryLiteral = regexp.MustCompile(`(and\W+)?\d+\.\W*"([^"]+)"(\.)?`)

// tokenize splits an enumeration text into literal tokens. Commas inside parentheses do not
// separate tokens.
func (in *Inferrer) tokenize(text string, kind model.EnumParsingKind) []string {
	if kind == model.ParsingKindValueList2 {
		return in.tokenizeValueList2(text)
	}
	var tokens []string
	depth := 0
	last := 0
	for i, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ',' && depth == 0:
			if tok := strings.TrimSpace(text[last:i]); tok != "" {
				tokens = append(tokens, tok)
			}
			last = i + 1
		}
	}
	if tok := strings.TrimSpace(text[last:]); tok != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}

// tokenizeValueList2 splits bullet separated entries or scans "name [scheme] id" sequences.
// Tokens have the form "semanticId|name".
func (in *Inferrer) tokenizeValueList2(text string) []string {
	var tokens []string
	if strings.IndexRune(text, textutil.Bullet) > 0 {
		for _, t := range strings.Split(text, string(textutil.Bullet)) {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if id, ok := in.chain.SemanticID(t, true, false); ok {
				tokens = append(tokens, id+"|"+strings.TrimSpace(consumeID(t, semanticid.StripPrefix(id))))
			} else {
				tokens = append(tokens, "|"+t)
			}
		}
		return tokens
	}
	for {
		pos := strings.Index(text, "[")
		if pos <= 0 {
			break
		}
		end := strings.Index(text[pos:], "]")
		if end < 0 {
			break
		}
		idShort := strings.TrimSpace(text[:pos])
		rest := strings.TrimSpace(text[pos+end+1:])
		id, ok := in.chain.SemanticID(rest, true, false)
		if !ok {
			break
		}
		tokens = append(tokens, id+"|"+idShort)
		text = strings.TrimSpace(consumeID(rest, semanticid.StripPrefix(id)))
	}
	return tokens
}

// consumeID returns text after the leading identifier id. Whitespace inside the identifier in
// text, as left by line wrapping, is skipped.
func consumeID(text, id string) string {
	i := 0
	for _, r := range id {
		for i < len(text) && unicode.IsSpace(rune(text[i])) {
			i++
		}
		if i >= len(text) || !strings.HasPrefix(text[i:], string(r)) {
			return text[i:]
		}
		i += len(string(r))
	}
	return text[i:]
}

// enumLiteral reads "id (description)", "name (value, id)" and "name (id)" tokens.
func (in *Inferrer) enumLiteral(token string, e *model.Enum) {
	open := strings.Index(token, "(")
	closing := strings.Index(token, ")")
	if open <= 0 || open >= closing {
		logger.Warnf("Unknown enum literal structure: %s", token)
		return
	}
	beforePar := token[:open]
	beforePrefix := in.chain.Prefix(textutil.RemoveWhitespace(beforePar))
	inPar := token[open+1 : closing]
	parts := strings.Split(inPar, ",")
	prefixes := make([]string, len(parts))
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		prefixes[i] = in.chain.Prefix(textutil.RemoveWhitespace(parts[i]))
	}
	switch {
	case beforePrefix != "":
		name := ToLiteralName(inPar)
		identifier := ""
		if pos := strings.Index(name, " - "); pos > 0 {
			identifier = textutil.ToIdentifier(name[:pos])
		}
		e.AddLiteral(model.NewEnumLiteral(name,
			semanticid.Compose(beforePrefix, textutil.RemoveWhitespace(beforePar)), inPar, identifier))
	case len(parts) == 2 && prefixes[1] != "":
		l := model.NewEnumLiteral(strings.TrimSpace(beforePar), semanticid.Compose(prefixes[1], parts[1]), "", "")
		l.Value = parts[0]
		e.AddLiteral(l)
	case len(parts) == 1 && prefixes[0] != "":
		e.AddLiteral(model.NewEnumLiteral(strings.TrimSpace(beforePar), semanticid.Compose(prefixes[0], parts[0]), "", ""))
	default:
		logger.Warnf("Unknown enum literal structure: %s", token)
	}
}

// entriesLiterals reads numbered quoted entries such as `1. "A" and 2. "B".`.
func entriesLiterals(token string, e *model.Enum) {
	token = strings.NewReplacer("“", `"`, "”", `"`).Replace(token)
	for _, m := range entryLiteral.FindAllStringSubmatch(token, -1) {
		e.AddLiteral(model.NewEnumLiteral(m[2], "", "", ""))
	}
}

// valueList2Literal reads a "semanticId|name" token. A double space in name separates a
// leading identifier.
func valueList2Literal(token string, e *model.Enum) {
	semID, name, ok := strings.Cut(token, "|")
	if !ok {
		return
	}
	identifier := ""
	if pos := strings.Index(name, "  "); pos > 0 {
		identifier = strings.TrimSpace(name[:pos])
		name = strings.TrimSpace(name[pos+2:])
	}
	e.AddLiteral(model.NewEnumLiteral(name, semID, "", identifier))
}

// irdiLiterals reads "name - IRDI" sequences.
func (in *Inferrer) irdiLiterals(token string, e *model.Enum) {
	token = strings.ReplaceAll(token, "–", "-")
	for {
		pos := strings.Index(token, "-")
		if pos <= 0 {
			return
		}
		idShort := strings.TrimSpace(token[:pos])
		token = strings.TrimSpace(token[pos+1:])
		id, ok := in.chain.SemanticID(token, true, false)
		if !ok {
			return
		}
		token = consumeID(token, semanticid.StripPrefix(id))
		e.AddLiteral(model.NewEnumLiteral(idShort, id, "", ""))
	}
}

// ToLiteralName shortens a literal description to its first five words.
func ToLiteralName(description string) string {
	result := description
	count := 3
	cut := strings.Index(description, " ")
	for cut > 0 && count >= 0 {
		next := strings.Index(description[cut+1:], " ")
		if next < 0 {
			cut = -1
			break
		}
		cut += next + 1
		count--
	}
	if cut > 0 {
		result = description[:cut]
	}
	return strings.TrimSpace(result)
}
