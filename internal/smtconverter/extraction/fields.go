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
	"regexp"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// Field table header rows.
const (
	headerSmeType    = "[SME type]"
	headerSemanticID = "semanticId = [idType]value"
	headerValueType  = "[valueType]"
	headerCard       = "card."
	headerIDShort    = "idShort"
	headerDesc       = "Description@en"
	headerExample    = "example"
)

var langStringEnd = regexp.MustCompile(`.*@[a-z]+$`)

// rowText renders the current row for log messages.
func (p *Processor) rowText() string {
	cells := make([]string, rowCapacity)
	for i, c := range p.raw {
		if c == nil {
			cells[i] = "null"
		} else {
			cells[i] = *c
		}
	}
	return "[" + strings.Join(cells, ", ") + "]"
}

// processFourColumns detects the header rows of field tables and turns the following rows
// into fields of the current types.
func (p *Processor) processFourColumns() {
	switch p.cell(0) {
	case headerSmeType:
		if p.cell(1) == headerSemanticID && p.cell(2) == headerValueType && p.cell(3) == headerCard {
			p.header1Row = p.row
			return
		}
		logger.Warnf("Unknown line 1 header format: %s", p.rowText())
	case headerIDShort:
		if p.cell(1) == headerDesc && (strings.EqualFold(p.cell(2), headerExample) ||
			strings.EqualFold(p.cell(3), headerExample)) {
			p.header2Row = p.row
			return
		}
		logger.Warnf("Unknown line 2 header format: %s", p.rowText())
	}
	switch {
	case p.header1Row >= 0 && p.header2Row >= 0:
		if !strings.EqualFold(p.cell(0), "class name of contained elements") {
			p.fieldRow()
		}
	case p.header1Row >= 0 || p.header2Row >= 0:
		if p.opts.StrictHeaders {
			logger.Warnf("Missing headers: %d, %d", p.header1Row, p.header2Row)
		} else {
			logger.Debugf("Missing headers: %d, %d", p.header1Row, p.header2Row)
		}
	}
}

func (p *Processor) fieldRow() {
	field := model.NewField()
	further := p.smeTypeIDShort(p.cell(0), field)
	if textutil.IsGenericIDShort(field.IDShort) {
		field.IsGeneric = true
		p.genericFields = append(p.genericFields, field)
	}
	p.valueTypeExample(p.cell(2), field)
	p.semanticIDDescription(p.cell(1), field)
	if p.raw[3] != nil {
		field.SetCardinality(textutil.ParseCardinality(p.cell(3)))
	}
	p.onCurrent("fields", func(t *model.Type) { t.AddField(field) })
	p.lastField = field
	p.continuations = 0

	for _, id := range further {
		p.addDeferred(id, field.IDShort)
		f := field.Clone()
		f.IDShort = id
		if f.Kind == model.SmeKindSmeCollection || f.Kind == model.SmeKindSmeList {
			f.ValueType = id
		}
		p.onCurrent("fields", func(t *model.Type) { t.AddField(f) })
	}
}

// smeTypeIDShort reads the kind and idShort cell of a field row such as "[SMC]\nAddress" or
// "[Prop] Name". It returns the alternative idShorts of "A or B" cells.
func (p *Processor) smeTypeIDShort(data string, field *model.Field) []string {
	var further []string
	if p.opts.OrAlternatives {
		ids := strings.Split(strings.ReplaceAll(data, "\nor ", " or "), " or ")
		if len(ids) > 1 {
			for _, id := range ids[1:] {
				further = append(further, strings.TrimSpace(textutil.RemoveWhitespace(id)))
			}
			data = ids[0]
		}
	}
	lines := textutil.ToLines(data)
	if len(lines) == 2 && strings.HasSuffix(lines[1], "}") {
		lines = []string{lines[0] + lines[1]}
	}
	var rawType, rawID string
	switch {
	case len(lines) == 1:
		if pos := strings.Index(lines[0], "]"); pos > 0 {
			rawType = lines[0][:pos+1]
			rawID = lines[0][pos+1:]
		} else {
			rawType = "property"
			rawID = lines[0]
		}
	case len(lines) == 2:
		rawType = lines[0]
		rawID = lines[1]
	case len(lines) > 2:
		rawType = lines[0]
		next := 2
		for next < len(lines) && strings.TrimSpace(lines[next]) == "" {
			next++
		}
		if next < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[next]), "Example") {
			rawID = lines[1]
		} else {
			rawID = strings.Join(lines[1:], " ")
		}
	default:
		logger.Warnf("Unknown SMEtype/idShort format: %s", data)
		return further
	}
	kind, ok := model.SmeKindFromText(textutil.RemoveBrackets(rawType))
	if !ok {
		logger.Warnf("Unknown SME type %s of field %s", rawType, rawID)
	}
	field.Kind = kind
	idShort := textutil.RemoveWhitespace(rawID)
	multiValued := false
	if id, ok := strings.CutSuffix(idShort, "{00}"); ok {
		idShort = id
		multiValued = true
	}
	logger.Debugf("Processing field %s/%s", idShort, kind)
	field.SetIDShort(idShort, multiValued)
	switch kind {
	case model.SmeKindSmeCollection, model.SmeKindSmeList, model.SmeKindEntity:
		field.ValueType = idShort
	}
	return further
}

// semanticIDDescription reads the semantic id and description cell of a field row. Multi
// line descriptions may declare an enumeration.
func (p *Processor) semanticIDDescription(data string, field *model.Field) {
	if data == "" {
		return
	}
	setID := func(id string) { field.SemanticID = id }
	lines := textutil.ToLines(data)
	switch {
	case len(lines) == 1:
		line := lines[0]
		pos := strings.Index(line, " ")
		if textutil.IsSemanticIDSpec(line, true) {
			pos = indexFrom(line, " ", pos+1)
		}
		if pos > 0 {
			p.setSemanticID(line[:pos], false, setID)
			p.setFieldDescription(line[pos+1:], field)
		} else {
			p.setSemanticID(line, false, setID)
		}
	case len(lines) >= 2:
		p.setSemanticID(lines[0], false, setID)
		description := strings.Join(lines[1:], " ")
		if semID := field.SemanticID; semID != "" {
			if pos := strings.Index(semID, ":"); pos > 0 {
				semID = semID[pos+1:]
			}
			pattern := semID
			if pos := strings.LastIndex(semID, " "); pos >= 0 {
				pattern = semID[pos+1:]
			}
			if pos := strings.Index(lines[0], pattern); pos > 0 {
				description = strings.TrimSpace(lines[0][pos+len(pattern):]) + " " + description
			}
		}
		description = p.inferrer.Infer(textutil.RemoveNote(description), description, field, false)
		p.setFieldDescription(description, field)
	default:
		logger.Warnf("Unknown semanticId/description format: %s", data)
	}
}

// setFieldDescription sets the description and an "isCaseOf:" reference leading it.
func (p *Processor) setFieldDescription(description string, field *model.Field) {
	const marker = "isCaseOf:"
	if strings.HasPrefix(description, marker) {
		if pos := indexFrom(description, "]", len(marker)); pos > 0 {
			pos = textutil.ConsumeWhitespaces(description, pos+1)
			pos = textutil.ConsumeNonWhitespaces(description, pos)
			if pos < len(description) {
				p.setSemanticID(description[len(marker):pos], false, func(id string) { field.IsCaseOf = id })
				description = description[textutil.ConsumeWhitespaces(description, pos):]
			}
		}
	}
	field.MultiSemanticIDs = textutil.CountSemanticIDMarkers(description) > 1
	field.Description = textutil.FilterLanguage(textutil.RemoveLinebreaks(strings.TrimSpace(textutil.RemoveNote(description))))
}

// valueTypeExample reads the value type and example cell of a field row.
func (p *Processor) valueTypeExample(data string, field *model.Field) {
	if data == "" || textutil.IsIgnoredExample(data) {
		return
	}
	lines := textutil.ToLines(data)
	switch {
	case len(lines) == 1:
		p.valueTypeExampleOneLine(lines[0], field)
		return
	case len(lines) == 0:
		logger.Warnf("Unknown example format: %s", data)
		return
	}
	typ := lines[0]
	example := lines[1]
	rest := 2
	for rest < len(lines) && (strings.HasSuffix(example, "or:") || strings.HasPrefix(lines[rest], "or:")) {
		example += lines[rest]
		rest++
	}
	if pos := strings.Index(typ, "]"); pos+2 < len(typ) {
		pre := typ[pos+1:]
		sep := " "
		if strings.TrimSpace(pre) == "Z" {
			sep = ""
		}
		example = pre + sep + example
		typ = typ[:pos+1]
	}
	for rest < len(lines) && (strings.HasSuffix(strings.TrimSpace(example), "=") ||
		strings.HasPrefix(strings.TrimSpace(lines[rest]), "=")) {
		example += " " + lines[rest]
		rest++
	}
	var more []string
	if field.Kind == model.SmeKindMultiLanguageProperty {
		for rest < len(lines) && langStringEnd.MatchString(lines[rest]) {
			more = append(more, lines[rest])
			rest++
		}
	} else {
		for _, ex := range lines[rest:] {
			more = append(more, strings.TrimPrefix(ex, "|_"))
		}
	}
	if typ != "[-]" {
		if vt := textutil.FixTypeName(typ); strings.TrimSpace(vt) != "" {
			field.ValueType = vt
		}
		p.setExampleValues(strings.TrimSpace(example), more, field)
	}
	if rest < len(lines) {
		field.ExampleExplanation = strings.Join(lines[rest:], "\n")
	}
}

// valueTypeExampleOneLine reads "[type] example", "type example" with a known type spelling,
// or a plain example.
func (p *Processor) valueTypeExampleOneLine(line string, field *model.Field) {
	typ := line
	example := ""
	done := false
	if !strings.HasPrefix(typ, "[") {
		tmpType, tmpExample := typ, ""
		if pos := strings.Index(typ, " "); pos > 0 {
			tmpExample = textutil.RemoveQuotes(strings.TrimSpace(typ[pos+1:]))
			tmpType = strings.TrimSpace(typ[:pos+1])
		}
		if p.basic.IsKnownSpelling(tmpType) {
			example = tmpExample
			if strings.HasPrefix(example, "[") && strings.HasSuffix(example, "]") {
				example = ""
			}
			typ = tmpType
			done = true
		}
	}
	if !done {
		if pos := strings.Index(typ, "]"); pos+2 < len(typ) {
			example = strings.TrimSpace(typ[pos+1:])
			typ = typ[:pos+1]
		}
	}
	if vt := textutil.FixTypeName(typ); field.ValueType == "" && vt != "" {
		field.ValueType = vt
	}
	p.setExampleValues(example, nil, field)
}

func (p *Processor) setExampleValues(data string, more []string, field *model.Field) {
	if textutil.IsBlank(data) {
		return
	}
	field.ExampleValues = textutil.SplitExamples(data, field.ValueType,
		field.Kind == model.SmeKindMultiLanguageProperty, more)
}

// postProcessFourColumns continues the last field with a row whose first cell is empty.
// Split rows carry the description and examples; the row before may have held the value
// type and the semantic id on their own.
func (p *Processor) postProcessFourColumns() {
	f := p.lastField
	if f == nil {
		return
	}
	p.continuations++
	if limit := p.opts.MaxSplitContinuationRows; limit > 0 && p.continuations > limit {
		logger.Debugf("Ignoring row %d, more than %d continuation rows for field %s", p.row, limit, f.IDShort)
		return
	}
	if t := lastCell(p.lastRaw, 2); t != "" && f.ValueType == "" {
		if typ := textutil.FixTypeName(t); p.basic.IsKnownSpelling(typ) {
			f.ValueType = typ
		}
	}
	if s := lastCell(p.lastRaw, 1); s != "" {
		p.setSemanticID(textutil.RemoveLinebreaks(s), false, func(id string) { f.SemanticID = id })
	}
	switch {
	case p.raw[1] != nil && p.raw[2] != nil:
		p.setFieldDescription(p.cell(1), f)
		p.setExampleValues(p.cell(2), nil, f)
	case p.raw[1] != nil:
		p.setFieldDescription(p.cell(1), f)
	default:
		logger.Warnf("Post processing 4 columns, unconsidered format: %s", p.rowText())
	}
}

func indexFrom(s, sub string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	pos := strings.Index(s[from:], sub)
	if pos < 0 {
		return -1
	}
	return pos + from
}
