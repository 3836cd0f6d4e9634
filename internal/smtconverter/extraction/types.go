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
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

var slashAlternatives = regexp.MustCompile(`\s*/\s*`)

// processTwoColumns applies a type attribute row to the current types. An idShort row
// declares the next types.
func (p *Processor) processTwoColumns() {
	header := strings.TrimSuffix(p.cell(0), ":")
	value := p.cell(1)
	switch {
	case header == "idShort":
		p.declareTypes(value)
	case header == "Class":
		kind, ok := model.SmeKindFromText(value)
		if !ok {
			logger.Warnf("Unknown Class: %s", value)
		}
		p.onCurrent("Class", func(t *model.Type) { t.Kind = kind })
	case header == "semanticId":
		p.typeSemanticIDs(value)
	case header == "isCaseOf":
		p.setSemanticID(value, false, func(id string) {
			p.onCurrent("isCaseOf", func(t *model.Type) { t.IsCaseOf = id })
		})
	case header == "AllowDuplicates", textutil.RemoveWhitespace(header) == "AllowDuplicates":
		allow := strings.EqualFold(strings.TrimSpace(value), "true")
		p.onCurrent("AllowDuplicates", func(t *model.Type) { t.AllowDuplicates = allow })
	case header == "Ordered", textutil.RemoveWhitespace(header) == "Ordered":
		ordered := strings.EqualFold(strings.TrimSpace(value), "true")
		p.onCurrent("Ordered", func(t *model.Type) { t.Ordered = ordered })
	case header == "Parent":
		parent := parseParent(value)
		logger.Debugf("Parent: %s", parent)
		p.onCurrent("Parent", func(t *model.Type) { t.Parent = parent })
	case header == "Explanation":
		p.explanation(value)
	case header == "Kind", header == "Version", header == "Revision":
		logger.Debugf("%s: %s", header, value)
	default:
		logger.Warnf("Unknown 2 column header: %s", header)
	}
}

// onCurrent applies set to all current types.
func (p *Processor) onCurrent(attribute string, set func(t *model.Type)) {
	if len(p.current) == 0 {
		logger.Warnf("No current type for: %s", attribute)
		return
	}
	for _, t := range p.current {
		set(t)
	}
}

func (p *Processor) declareTypes(value string) {
	var idShort string
	fixed := false
	switch lines := textutil.ToLines(value); len(lines) {
	case 1:
		idShort = lines[0]
	case 2:
		idShort = lines[0]
		var known bool
		fixed, known = textutil.FixedIDShortNote(strings.TrimSpace(lines[1]))
		if !known {
			logger.Warnf("Unknown idShort note: %s", lines[1])
		}
	default:
		logger.Warnf("idShort field has more than two lines: %s", value)
		return
	}
	multiValued := false
	if id, ok := strings.CutSuffix(idShort, "{00}"); ok {
		idShort = id
		multiValued = true
	} else if strings.HasPrefix(idShort, "{") && strings.HasSuffix(idShort, "#00}") {
		idShort = strings.TrimSpace(idShort[1 : len(idShort)-4])
		multiValued = true
	}
	logger.Debugf("Processing type %s", idShort)

	var ids []string
	aspectName := ""
	p.currentIsAspect = false
	if eq := strings.Index(idShort, " = "); strings.HasPrefix(idShort, "{") && eq > 0 {
		aspectName = strings.TrimSpace(idShort[1:eq])
		ids = aspectIDs(idShort[eq+3:])
		p.currentIsAspect = containsPlainType(p.types, ids) || containsPlainType(p.current, ids)
	} else if p.opts.OrAlternatives {
		ids = idsBySeparator(idShort)
	} else {
		ids = []string{idShort}
	}
	p.currentMultiSemIDProcessed = len(ids) > 1

	types := make([]*model.Type, 0, len(ids))
	for _, id := range ids {
		t := model.NewType(id, fixed, multiValued)
		t.IsAspect = p.currentIsAspect
		if t.IsAspect {
			t.AspectName = aspectName
		}
		if textutil.IsGenericIDShort(id) {
			p.genericType(t, id)
		}
		types = append(types, t)
	}
	p.storeAsCurrent(types)
}

// genericType names a placeholder type such as "{arbitrary}" Generic_<id>_<n>.
func (p *Processor) genericType(t *model.Type, id string) {
	t.IsGeneric = true
	p.genericTypeCount++
	suffix := "_" + strconv.Itoa(p.genericTypeCount)
	if strings.HasPrefix(id, "{") && strings.HasSuffix(id, "}") {
		t.DisplayName = id[1 : len(id)-1] + suffix
	} else {
		t.DisplayName = id + suffix
	}
	t.IDShort = "Generic_" + textutil.ToIdentifier(id) + suffix
	if p.opts.GenericFieldPairing && len(p.genericFields) > 0 {
		f := p.genericFields[0]
		p.genericFields = p.genericFields[1:]
		f.ValueType = t.IDShort
		logger.Warnf("Replaced generic field/type name with '%s'. Please review.", t.IDShort)
	}
}

// aspectIDs returns the type ids of an aspect declaration "A | B}".
func aspectIDs(text string) []string {
	var ids []string
	for _, id := range strings.Fields(text) {
		if id == "|" {
			continue
		}
		id = strings.TrimSuffix(strings.TrimPrefix(id, "{"), "}")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// containsPlainType reports whether types contains a non-aspect type with one of ids.
func containsPlainType(types []*model.Type, ids []string) bool {
	for _, t := range types {
		if !t.IsAspect && textutil.Contains(ids, t.IDShort) {
			return true
		}
	}
	return false
}

// idsBySeparator splits "A (B/C)" into A, B, C and "A or B" into A, B.
func idsBySeparator(idShort string) []string {
	if pos := strings.Index(idShort, "("); pos > 0 {
		if pos2 := strings.Index(idShort, ")"); pos2 > pos {
			tmp := idShort[:pos] + "/ " + idShort[pos+1 : pos2]
			return strings.Split(slashAlternatives.ReplaceAllString(tmp, "/"), "/")
		}
	}
	return strings.Split(idShort, " or ")
}

func (p *Processor) typeSemanticIDs(value string) {
	if len(p.current) > 1 {
		ids := strings.Split(value, " or ")
		idPos := 0
		for _, t := range p.current {
			p.setSemanticID(ids[idPos], false, func(id string) { t.SemanticID = id })
			if idPos < len(ids)-1 {
				idPos++
			}
		}
	} else {
		p.setSemanticID(value, true, func(id string) {
			p.onCurrent("semanticId", func(t *model.Type) { t.SemanticID = id })
		})
	}
	p.lastSemanticIDRaw = value
	if p.currentIsAspect {
		if mapped := p.parseMappedSemanticIDs(value); len(mapped) > 0 {
			p.onCurrent("mappedSemanticIds", func(t *model.Type) { t.AddMappedSemanticIDs(mapped) })
		}
	}
}

func (p *Processor) explanation(value string) {
	entityType := model.EntityTypeFromText(value)
	desc := textutil.FilterLanguage(textutil.RemoveLinebreaks(value))
	markers := desc
	if p.lastSemanticIDRaw != "" {
		markers += " " + p.lastSemanticIDRaw
	}
	multi := !p.currentMultiSemIDProcessed && textutil.CountSemanticIDMarkers(markers) > 1
	p.onCurrent("Explanation", func(t *model.Type) {
		t.EntityType = entityType
		t.Description = desc
		t.MultiSemanticIDs = multi
	})
}

// parseParent reads the parent of a type: the quoted name of a submodel or collection, or
// the shell marker.
func parseParent(value string) string {
	switch {
	case strings.HasPrefix(value, "Submodel"), strings.HasPrefix(value, "SMC"):
		pos := strings.Index(value, `"`)
		var lastPos int
		if pos > 0 {
			lastPos = strings.LastIndex(value, `"`)
		} else {
			pos = strings.Index(value, "“")
			lastPos = strings.LastIndex(value, "”")
		}
		if pos > 0 && pos < lastPos {
			open := len(`"`)
			if value[pos] != '"' {
				open = len("“")
			}
			return value[pos+open : lastPos]
		}
	case strings.HasPrefix(value, "Asset Admin"), value == "AAS":
		return model.ParentAAS
	}
	return value
}
