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

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

var openEnum = []*regexp.Regexp{
	regexp.MustCompile(`declared as.*open.*for further addition`),
	regexp.MustCompile(`usage of values that are not given`),
}

// IsOpen reports whether a description declares its enumeration open for further values.
func IsOpen(description string) bool {
	for _, p := range openEnum {
		if p.MatchString(description) {
			return true
		}
	}
	return false
}

// Inferrer turns enumeration markers in field descriptions into enums.
type Inferrer struct {
	chain    *semanticid.Chain
	registry *Registry
}

// NewInferrer creates an inferrer registering enums in registry.
func NewInferrer(chain *semanticid.Chain, registry *Registry) *Inferrer {
	return &Inferrer{chain: chain, registry: registry}
}

// Registry returns the registry enums are added to.
func (in *Inferrer) Registry() *Registry {
	return in.registry
}

// Infer looks for an enumeration marker in data, the note-free part of description. If one is
// found, an enum named after the field is registered unless it exists, the field value type is
// set to the enum and the text before the marker is returned as the field description.
// Otherwise description is returned unchanged.
func (in *Inferrer) Infer(data, description string, field *model.Field, atBeginning bool) string {
	m, ok := FindMarker(data, atBeginning)
	if !ok {
		return description
	}
	field.ValueType = in.infer(m, field.IDShort, field.SemanticID, IsOpen(description))
	return m.Before
}

func (in *Inferrer) infer(m Match, idShort, semanticID string, isOpen bool) string {
	if in.registry.Has(idShort) {
		return idShort
	}
	e := model.NewEnum(idShort)
	e.SemanticID = semanticID
	e.IsOpen = isOpen
	e.Description = textutil.FilterLanguage(m.Before)
	e.ParsingKind = m.Kind
	for _, token := range in.tokenize(m.Rest, m.Kind) {
		switch m.Kind {
		case model.ParsingKindEnum:
			in.enumLiteral(token, e)
		case model.ParsingKindEnumEntries:
			entriesLiterals(token, e)
		case model.ParsingKindValueList2:
			valueList2Literal(token, e)
		case model.ParsingKindIRDIs:
			in.irdiLiterals(token, e)
		}
	}
	logger.Debugf("Inferred %s enum %s with %d literals", m.Kind, idShort, len(e.Literals))
	in.registry.Add(e)
	return idShort
}
