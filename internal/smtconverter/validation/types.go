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

package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
)

// extensionDescription matches the description of unnamed extension tables such as
// "... SMC Marking in ... with region-specific elements ...".
var extensionDescription = regexp.MustCompile(`(?s)^.* SMC (.*) in .* with (.*) elements.*$`)

const extensionIDShort = "-"

// plainTypes maps the idShorts of non-aspect types to the first type declaring them.
func plainTypes(types []*model.Type) map[string]*model.Type {
	result := map[string]*model.Type{}
	for _, t := range types {
		if t.IDShort == "" || t.IsAspect {
			continue
		}
		if _, ok := result[t.IDShort]; !ok {
			result[t.IDShort] = t
		}
	}
	return result
}

// mergeAspects moves the fields of aspect types and unnamed extension tables into their base
// types and removes them.
func (r *run) mergeAspects() {
	base := plainTypes(r.s.Types)
	kept := r.s.Types[:0]
	for _, t := range r.s.Types {
		switch {
		case t.IsAspect:
			target, ok := base[t.IDShort]
			if !ok {
				r.report.change(model.DiagnosticWarning, CodeAspectUnresolved, t.IDShort,
					"cannot apply aspect %s, no such type, dropping it", t.IDShort)
				continue
			}
			if target.SemanticID == "" {
				if id, ok := t.MappedSemanticID(t.IDShort); ok {
					target.SemanticID = id
				} else {
					target.SemanticID = t.SemanticID
				}
			}
			if target.Description == "" {
				target.Description = t.Description
			}
			r.transfer(t, target, t.AspectName)
		case !t.Kind.IsSet() && t.IDShort == extensionIDShort:
			m := extensionDescription.FindStringSubmatch(t.Description)
			if m == nil {
				r.report.change(model.DiagnosticError, CodeAspectUnresolved, t.IDShort,
					"cannot identify extension conditions of %q, dropping it", t.Description)
				continue
			}
			target, ok := base[m[1]]
			if !ok {
				r.report.change(model.DiagnosticError, CodeAspectUnresolved, m[1],
					"cannot apply extension for %s, no such type, dropping it", m[1])
				continue
			}
			r.transfer(t, target, strings.TrimSuffix(m[2], "-specific"))
		default:
			kept = append(kept, t)
		}
	}
	r.s.Types = kept
}

// transfer appends copies of the fields and operations of from to target, tagged with aspect.
func (r *run) transfer(from, target *model.Type, aspect string) {
	for _, f := range from.Fields {
		c := f.Clone()
		c.Aspect = aspect
		target.AddField(c)
	}
	for _, o := range from.Operations {
		c := o.Clone()
		c.Aspect = aspect
		target.AddField(c)
	}
	r.report.change(model.DiagnosticInfo, CodeAspectMerged, target.IDShort,
		"applied %d elements of aspect %q to %s", len(from.Fields)+len(from.Operations), aspect, target.IDShort)
}

// materializeDeferred creates the types requested by alternative field declarations as
// copies of their prototypes. The requests are consumed.
func (r *run) materializeDeferred() {
	byID := map[string]*model.Type{}
	for _, t := range r.s.Types {
		if _, ok := byID[t.IDShort]; !ok {
			byID[t.IDShort] = t
		}
	}
	deferred := r.s.Deferred
	if len(deferred) > 0 {
		r.report.Changed = true
	}
	r.s.Deferred = nil
	for _, d := range deferred {
		if _, ok := byID[d.ID]; ok {
			continue
		}
		prototype, ok := byID[d.Prototype]
		if !ok {
			r.report.add(model.DiagnosticError, CodeDeferredUnresolved, d.ID,
				"unresolved type %s points to type %s which does not exist", d.ID, d.Prototype)
			continue
		}
		t := prototype.Clone()
		t.IDShort = d.ID
		r.s.InsertType(r.s.IndexOfType(prototype)+1, t)
		byID[d.ID] = t
		r.report.add(model.DiagnosticInfo, CodeDeferredCreated, d.ID, "created %s as copy of %s", d.ID, d.Prototype)
	}
}

// uniqueTypeNames unbraces generic type names and makes idShorts unique. A type repeating an
// idShort and semantic id of an earlier type is dropped, otherwise it is renamed.
func (r *run) uniqueTypeNames() {
	original := map[*model.Type]string{}
	counter := map[string]int{}
	declared := map[string]struct{}{}
	for _, t := range r.s.Types {
		declared[unbrace(t.IDShort)] = struct{}{}
	}
	kept := r.s.Types[:0]
	for _, t := range r.s.Types {
		idShort := t.IDShort
		if strings.HasPrefix(idShort, "{") {
			unbraced := unbrace(idShort)
			t.DisplayName = idShort
			t.IDShort = unbraced
			r.recordRename(t.SemanticID, unbraced)
			r.report.change(model.DiagnosticWarning, CodeTypeUnbraced, unbraced,
				"renamed type %s to %s for semanticId %s as no identifier", idShort, unbraced, t.SemanticID)
			idShort = unbraced
		}
		if _, taken := r.types[idShort]; !taken {
			r.register(idShort, t)
			original[t] = idShort
			counter[idShort] = 1
			kept = append(kept, t)
			continue
		}
		if prev, ok := r.bySID[t.SemanticID]; ok && t.SemanticID != "" && original[prev] == idShort {
			r.report.change(model.DiagnosticInfo, CodeTypeDuplicate, idShort,
				"dropped duplicate type %s with semanticId %s", idShort, t.SemanticID)
			continue
		}
		cnt := counter[idShort]
		newIDShort := ""
		for {
			cnt++
			newIDShort = idShort + "_" + strconv.Itoa(cnt)
			_, taken := r.types[newIDShort]
			_, reserved := declared[newIDShort]
			if !taken && !reserved {
				break
			}
		}
		counter[idShort] = cnt
		t.IDShort = newIDShort
		r.recordRename(t.SemanticID, newIDShort)
		r.register(newIDShort, t)
		original[t] = idShort
		kept = append(kept, t)
		r.report.change(model.DiagnosticWarning, CodeTypeRenamed, newIDShort,
			"renamed type %s to %s for semanticId %s", idShort, newIDShort, t.SemanticID)
	}
	r.s.Types = kept
}

// unbrace removes the braces of generic names such as "{Document}".
func unbrace(idShort string) string {
	if !strings.HasPrefix(idShort, "{") {
		return idShort
	}
	return strings.NewReplacer("{", "", "}", "").Replace(idShort)
}

func (r *run) register(idShort string, t *model.Type) {
	r.types[idShort] = t
	if _, ok := r.bySID[t.SemanticID]; !ok && t.SemanticID != "" {
		r.bySID[t.SemanticID] = t
	}
}

func (r *run) recordRename(semanticID, idShort string) {
	if semanticID != "" {
		r.rename[semanticID] = idShort
	}
}
