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

// Package extraction classifies the rows of submodel template tables and builds the type
// model from them.
//
// A Processor consumes one document row by row. Rows are classified by the number of
// populated leading cells: single cells end table sections, two cells carry type attributes,
// three or four cells are field table rows or value list literals. The processor never fails
// on malformed rows; ambiguities are logged and leave attributes unset.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/enums"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/rows"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// rowCapacity is the number of cells kept per row.
const rowCapacity = 4

const idtaMarker = "IDTA"

var (
	titlePattern   = regexp.MustCompile(`^(IDTA\W+\d+-\d+-\d+)\W+(.*)$`)
	versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)
)

// title holds what was read from the document title row.
type title struct {
	versionedName     string
	versionIdentifier string
	version           string
	name              string
	specNumber        string
}

// Processor turns the rows of one document into a SpecSummary. It is not safe for
// concurrent use; every document needs its own processor.
type Processor struct {
	opts     Options
	chain    *semanticid.Chain
	basic    *model.BasicTypes
	registry *enums.Registry
	inferrer *enums.Inferrer

	types   []*model.Type
	current []*model.Type

	raw         [rowCapacity]*string
	lastRaw     [rowCapacity]*string
	maxRawIndex int
	column      int
	row         int

	header1Row    int
	header2Row    int
	lastField     *model.Field
	continuations int

	lastEnum          []*model.Enum
	enum1Row          int
	enum2Row          int
	lastSemanticIDRaw string

	deferred         []model.DeferredType
	genericFields    []*model.Field
	genericTypeCount int

	currentIsAspect            bool
	currentMultiSemIDProcessed bool

	title      title
	titleFound bool
}

// NewProcessor creates a processor. A nil chain or basic type registry is replaced by the
// default one.
func NewProcessor(opts Options, chain *semanticid.Chain, basic *model.BasicTypes) *Processor {
	if chain == nil {
		chain = semanticid.DefaultChain()
	}
	if basic == nil {
		basic = model.NewBasicTypes()
	}
	p := &Processor{
		opts:        opts,
		chain:       chain,
		basic:       basic,
		maxRawIndex: -1,
		header1Row:  -1,
		header2Row:  -1,
		enum1Row:    -1,
		enum2Row:    -1,
		title:       title{specNumber: model.DefaultSpecNumber},
	}
	p.registry = enums.NewRegistry(p.enumAdded)
	p.inferrer = enums.NewInferrer(chain, p.registry)
	return p
}

// enumAdded collects value list enums; their literals follow in the next rows.
func (p *Processor) enumAdded(e *model.Enum) {
	if e.ParsingKind == model.ParsingKindValueList {
		p.lastEnum = append(p.lastEnum, e)
	}
}

// StartRow starts collecting the cells of a row.
func (p *Processor) StartRow() {
	p.column = 0
	p.raw = [rowCapacity]*string{}
}

// AddCell adds the next cell of the current row. text may be nil for an empty cell.
// Cells beyond the row capacity are ignored.
func (p *Processor) AddCell(text *string) {
	if !p.titleFound && text != nil && strings.HasPrefix(*text, idtaMarker) {
		p.readTitle(*text)
	}
	if text != nil {
		if p.column < rowCapacity {
			p.raw[p.column] = text
			p.maxRawIndex = p.column
		} else {
			logger.Warnf("Ignoring cell %d of row %d: %s", p.column, p.row, *text)
		}
	}
	p.column++
}

// ProcessRow processes a complete row.
func (p *Processor) ProcessRow(cells ...*string) {
	p.StartRow()
	for _, c := range cells {
		p.AddCell(c)
	}
	p.EndRow()
}

// Run processes all rows of src and completes the summary.
func (p *Processor) Run(ctx context.Context, src rows.Source) (*model.SpecSummary, error) {
	for {
		row, err := src.NextRow(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows of %s: %w", src.Name(), err)
		}
		p.ProcessRow(row...)
	}
	return p.Complete(), nil
}

func (p *Processor) readTitle(data string) {
	data = textutil.RemoveLinebreaks(data)
	p.titleFound = true
	p.title.versionedName = data
	m := titlePattern.FindStringSubmatch(data)
	if m == nil {
		return
	}
	p.title.versionIdentifier = m[1]
	text := strings.TrimSpace(m[2])
	if t, ok := strings.CutPrefix(text, "Submodel for "); ok {
		text = strings.TrimSpace(t)
	}
	text = stripTitleDate(text)
	version := strings.ReplaceAll(strings.TrimSpace(strings.TrimPrefix(m[1], idtaMarker)), "-", ".")
	if dot := strings.Index(version, "."); dot > 3 && dot+1 < len(version) {
		p.title.specNumber = version[:dot]
		version = version[dot+1:]
	}
	if versionPattern.MatchString(version) {
		p.title.version = version
		p.title.name = textutil.ToIdentifier(idtaMarker + " " + text)
	} else {
		p.title.name = textutil.ToIdentifier(m[1] + " " + text)
		logger.Warnf("Cannot turn potential version string into version: %s", version)
	}
}

// stripTitleDate removes a trailing year and the month before it.
func stripTitleDate(value string) string {
	pos := strings.LastIndex(value, " ")
	if pos <= 0 {
		return value
	}
	year, err := strconv.Atoi(strings.TrimSpace(value[pos:]))
	if err != nil {
		return value
	}
	if year > 2000 {
		if monthPos := strings.LastIndex(value[:pos], " "); monthPos > 0 {
			pos = monthPos
		}
	}
	return strings.TrimSpace(value[:pos])
}

// cell returns the text of cell i or "".
func (p *Processor) cell(i int) string {
	if p.raw[i] == nil {
		return ""
	}
	return *p.raw[i]
}

func lastCell(raw [rowCapacity]*string, i int) string {
	if raw[i] == nil {
		return ""
	}
	return *raw[i]
}

// hasCells reports whether the row has data and the cells before index until are set.
func (p *Processor) hasCells(until int) bool {
	if p.maxRawIndex < 0 {
		return false
	}
	for i := 0; i < until && i < rowCapacity; i++ {
		if p.raw[i] == nil {
			return false
		}
	}
	return true
}

// EndRow classifies and processes the collected row.
func (p *Processor) EndRow() {
	switch p.maxRawIndex {
	case 0:
		p.singleCell()
	case 1:
		switch {
		case len(p.lastEnum) > 0 && p.hasCells(1):
			if p.enum1Row < 0 {
				idShort := p.cell(0)
				p.addLastEnumLiteral(model.NewEnumLiteral(idShort, p.literalSemanticID(p.cell(1)), "",
					enumLiteralIdentifier(idShort)))
			}
		case p.hasCells(1):
			p.lastEnum = nil
			p.processTwoColumns()
		default:
			p.postProcessFourColumns()
		}
	case 2, 3:
		p.multiCells()
	}
	p.maxRawIndex = -1
	p.row++
	p.lastRaw = p.raw
}

func (p *Processor) singleCell() {
	text := p.cell(0)
	if strings.HasPrefix(text, "<<") {
		p.endSection()
	}
	if strings.HasPrefix(text, "Table") || strings.HasPrefix(text, "Figure") ||
		strings.HasPrefix(text, "2.8 Display names") || strings.HasPrefix(text, "2.4 Example") {
		p.endSection()
		if strings.Contains(text, " ValueList ") {
			p.enum1Row = 0
		}
	}
}

func (p *Processor) multiCells() {
	threeCells := p.maxRawIndex == 2 && p.hasCells(3)
	if threeCells {
		p.detectValueListTable()
	}
	switch {
	case len(p.lastEnum) > 0 && threeCells:
		p.valueListLiteral()
	case p.raw[0] == nil && p.lastField != nil:
		p.postProcessFourColumns()
	case p.hasCells(2):
		p.lastEnum = nil
		p.processFourColumns()
	}
}

// endSection clears the per-section state. Current types stay current until the next
// type declaration.
func (p *Processor) endSection() {
	p.header1Row = -1
	p.header2Row = -1
	p.lastField = nil
	p.continuations = 0
	p.lastEnum = nil
	p.lastSemanticIDRaw = ""
	p.currentIsAspect = false
	p.currentMultiSemIDProcessed = false
	p.enum1Row = -1
	p.enum2Row = -1
}

// storeAsCurrent moves the current types to the result and makes newCurrent current.
// Current types whose kind is not a type kind are dropped.
func (p *Processor) storeAsCurrent(newCurrent []*model.Type) {
	for _, t := range p.current {
		if t.Kind.IsSet() && !t.Kind.IsType() {
			logger.Debugf("Dropping %s %s, not a type", t.Kind, t.IDShort)
			continue
		}
		p.types = append(p.types, t)
	}
	p.current = newCurrent
}

// addDeferred records that id shall become a copy of prototype. A later request for the
// same id replaces the earlier one.
func (p *Processor) addDeferred(id, prototype string) {
	for i := range p.deferred {
		if p.deferred[i].ID == id {
			p.deferred[i].Prototype = prototype
			return
		}
	}
	p.deferred = append(p.deferred, model.DeferredType{ID: id, Prototype: prototype})
}

// Complete ends the document and returns the extracted summary. Aspect merging, deferred
// types and name fixes are left to validation.
func (p *Processor) Complete() *model.SpecSummary {
	p.storeAsCurrent(nil)
	s := model.NewSpecSummary()
	s.Types = p.types
	s.Enums = p.registry.Enums()
	s.Deferred = p.deferred
	s.Version = p.title.version
	s.Name = p.title.name
	s.VersionIdentifier = p.title.versionIdentifier
	s.SpecNumber = p.title.specNumber
	s.Title = p.title.versionedName
	st := s.Statistics()
	logger.Infof("Extracted %d types, %d fields, %d operations and %d enums in %d rows",
		st.Types, st.Fields, st.Operations, st.Enums, p.row)
	return s
}
