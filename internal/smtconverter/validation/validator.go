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

// Package validation post-processes an extracted SpecSummary so that the emitter can rely on
// it: aspect types are merged into their base types, deferred alternative types are created,
// names are made unique and field value types are resolved against the known types, enums and
// imports.
//
// The validator works in place. Findings are returned as diagnostics and stored in the
// summary; running the validator on its own result changes nothing.
package validation

import (
	"fmt"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/imports"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
)

// Diagnostic codes.
const (
	CodeAspectMerged       = "ASPECT_MERGED"
	CodeAspectUnresolved   = "ASPECT_UNRESOLVED"
	CodeDeferredUnresolved = "DEFERRED_UNRESOLVED"
	CodeDeferredCreated    = "DEFERRED_CREATED"
	CodeTypeUnbraced       = "TYPE_UNBRACED"
	CodeTypeRenamed        = "TYPE_RENAMED"
	CodeTypeDuplicate      = "TYPE_DUPLICATE"
	CodeLiteralNamed       = "LITERAL_NAMED"
	CodeMissingKind        = "MISSING_KIND"
	CodeFieldUnbraced      = "FIELD_UNBRACED"
	CodeValueTypeChanged   = "VALUE_TYPE_CHANGED"
	CodeValueTypeUndefined = "VALUE_TYPE_UNDEFINED"
	CodeCardinalitySwapped = "CARDINALITY_SWAPPED"
)

// Validator checks and repairs a SpecSummary.
type Validator struct {
	Basic   *model.BasicTypes
	Imports *imports.Registry
}

// New creates a validator. Nil arguments are replaced by the default registries.
func New(basic *model.BasicTypes, imp *imports.Registry) *Validator {
	if basic == nil {
		basic = model.NewBasicTypes()
	}
	if imp == nil {
		imp = imports.Default()
	}
	return &Validator{Basic: basic, Imports: imp}
}

// Report is the result of a validation run.
type Report struct {
	Diagnostics []model.Diagnostic `json:"diagnostics"`
	// Changed is set if the summary was modified.
	Changed bool `json:"changed"`
}

// HasErrors reports whether the report contains error diagnostics.
func (r *Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Level == model.DiagnosticError {
			return true
		}
	}
	return false
}

func (r *Report) add(level model.DiagnosticLevel, code, element, format string, args ...any) {
	d := model.Diagnostic{Level: level, Code: code, Element: element, Message: fmt.Sprintf(format, args...)}
	switch level {
	case model.DiagnosticError:
		logger.Errorf("%s", d)
	case model.DiagnosticWarning:
		logger.Warnf("%s", d)
	default:
		logger.Infof("%s", d)
	}
	r.Diagnostics = append(r.Diagnostics, d)
}

// change records a modification together with its diagnostic.
func (r *Report) change(level model.DiagnosticLevel, code, element, format string, args ...any) {
	r.Changed = true
	r.add(level, code, element, format, args...)
}

// run holds the lookup tables of one validation run.
type run struct {
	v      *Validator
	s      *model.SpecSummary
	report *Report
	// rename maps the semantic ids of renamed types to their new idShort.
	rename map[string]string
	types  map[string]*model.Type
	bySID  map[string]*model.Type
	enums  map[string]*model.Enum
}

// Validate checks and repairs s in place. The diagnostics of the run replace the diagnostics
// stored in s.
func (v *Validator) Validate(s *model.SpecSummary) Report {
	report := Report{}
	r := &run{
		v:      v,
		s:      s,
		report: &report,
		rename: map[string]string{},
		types:  map[string]*model.Type{},
		bySID:  map[string]*model.Type{},
		enums:  map[string]*model.Enum{},
	}
	r.mergeAspects()
	r.materializeDeferred()
	r.uniqueTypeNames()
	for _, e := range s.Enums {
		r.nameLiterals(e)
		r.enums[e.IDShort] = e
	}
	for _, t := range s.Types {
		if !t.Kind.IsSet() {
			report.add(model.DiagnosticError, CodeMissingKind, t.IDShort,
				"type %s has no SME type assigned, cannot emit it", t.IDShort)
		}
		for _, f := range t.Fields {
			r.field(t, f)
		}
		for _, o := range t.Operations {
			r.cardinality(t, o)
		}
	}
	s.Diagnostics = report.Diagnostics
	st := s.Statistics()
	logger.Debugf("Validated %d types and %d enums, %d diagnostics, changed %t",
		st.Types, st.Enums, len(report.Diagnostics), report.Changed)
	return report
}

func (r *run) field(t *model.Type, f *model.Field) {
	r.unbraceField(t, f)
	r.resolveValueType(t, f)
	r.cardinality(t, f)
}

func elementName(t *model.Type, f *model.Field) string {
	return t.IDShort + "/" + f.IDShort
}
