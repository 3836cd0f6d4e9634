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

package extraction

import (
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

const valueListSuffix = "ValueList"

// detectValueListTable tracks the two header rows of value list tables. Once both were seen,
// the current types become value list enums whose literals are the following rows.
func (p *Processor) detectValueListTable() {
	if p.enum1Row > 0 && p.enum2Row > 0 && len(p.current) > 0 {
		for _, t := range p.current {
			p.registry.Add(model.NewEnumFromType(t, model.ParsingKindValueList, t.IDShort+valueListSuffix))
		}
		p.current = nil
	}
	if p.enum1Row == 0 && p.cell(0) == "-" && p.cell(1) == "-" && strings.HasPrefix(p.cell(2), "semanticId =") {
		p.enum1Row = p.row
	}
	if p.cell(0) == "Preferred Name" && strings.HasPrefix(p.cell(1), "Description") &&
		strings.HasPrefix(p.cell(2), "Dictionary") {
		p.enum2Row = p.row
	}
}

// valueListLiteral reads a three cell literal row. Plain value lists carry value, idShort and
// semantic id; value list tables carry idShort, description and semantic id.
func (p *Processor) valueListLiteral() {
	value := p.cell(0)
	idShort := strings.ReplaceAll(p.cell(1), "–", "-")
	semanticID := p.cell(2)
	description := ""
	if p.enum2Row > 0 {
		semanticID = p.literalSemanticID(semanticID)
		idShort = p.cell(0)
		description = p.cell(1)
		if strings.Contains(semanticID, "n/a") {
			semanticID = ""
		}
	}
	lit := model.NewEnumLiteral(idShort, semanticID, description, enumLiteralIdentifier(idShort))
	lit.Value = value
	p.addLastEnumLiteral(lit)
}

// literalSemanticID normalizes a literal semantic id given with or without scheme marker.
// Unrecognized texts are kept as given.
func (p *Processor) literalSemanticID(text string) string {
	text = strings.TrimSpace(text)
	if textutil.IsSemanticIDSpec(text, false) {
		if id, ok := p.parseSemanticID(text, false); ok {
			return id
		}
	} else if id, ok := p.chain.SemanticID(text, true, false); ok {
		return id
	}
	return text
}

// addLastEnumLiteral adds a copy of lit to every collecting enum.
func (p *Processor) addLastEnumLiteral(lit *model.EnumLiteral) {
	for _, e := range p.lastEnum {
		e.AddLiteral(lit.Clone())
	}
}

// enumLiteralIdentifier derives an identifier from dashed literal names such as
// "DE-BY - Bavaria" (DE_BY). Names without dash have no identifier.
func enumLiteralIdentifier(idShort string) string {
	if strings.Index(idShort, "-") <= 0 {
		return ""
	}
	identifier := idShort
	if pos := strings.Index(idShort, " - "); pos > 0 {
		identifier = strings.TrimSpace(idShort[:pos])
	}
	return strings.ReplaceAll(identifier, "-", "_")
}
