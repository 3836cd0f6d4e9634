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
	"strconv"
	"strings"
	"unicode"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// nameLiterals names literals without idShort VALUE_<n>, unless an identifier, display name
// or value id can name them.
func (r *run) nameLiterals(e *model.Enum) {
	for i, lit := range e.Literals {
		if lit.IDShort != "" {
			continue
		}
		idShort := "VALUE_" + strconv.Itoa(i+1)
		switch {
		case lit.Identifier != "":
			idShort = lit.Identifier
		case lit.DisplayName != "":
			idShort = textutil.ToIdentifier(lit.DisplayName)
		case lit.ValueID != "":
			idShort = textutil.ToIdentifier(lit.ValueID)
		}
		lit.IDShort = idShort
		r.report.change(model.DiagnosticInfo, CodeLiteralNamed, e.IDShort,
			"named literal %d of enum %s %s", i+1, e.IDShort, idShort)
	}
}

// unbraceField turns a placeholder field name such as "{Document}" into an identifier, taken
// from the last path segment of an IRI semantic id if that one is usable.
func (r *run) unbraceField(t *model.Type, f *model.Field) {
	idShort := f.IDShort
	if !strings.HasPrefix(idShort, "{") {
		return
	}
	f.DisplayName = idShort
	if pos := strings.Index(idShort, "}"); pos > 0 {
		idShort = idShort[:pos]
	}
	idShort = strings.NewReplacer("{", "", "}", "").Replace(idShort)
	if id, ok := strings.CutPrefix(f.SemanticID, semanticid.IRIPrefix); ok {
		if pos := strings.LastIndex(id, "/"); pos > 0 {
			part := id[pos+1:]
			if len(part) >= 3 && unicode.IsLetter([]rune(part)[0]) {
				idShort = textutil.ToIdentifier(part)
			}
		}
	}
	f.IDShort = idShort
	r.report.change(model.DiagnosticInfo, CodeFieldUnbraced, elementName(t, f),
		"renamed field %s of %s to %s", f.DisplayName, t.IDShort, idShort)
}

// resolveValueType makes sure the value type of f refers to a basic type, a type, an enum or
// an imported type. Unresolvable value types are reset so that the field becomes generic.
func (r *run) resolveValueType(t *model.Type, f *model.Field) {
	valueType := textutil.StripRefBy(f.IvmlValueType(r.v.Basic, false))
	if r.v.Basic.IsBasic(valueType) {
		return
	}
	if renamed, ok := r.rename[f.SemanticID]; ok && f.SemanticID != "" {
		r.setValueType(t, f, renamed, "type of semanticId %s was ambiguous", f.SemanticID)
		valueType = renamed
	} else if specific, ok := r.v.Imports.SpecificType(f.SemanticID); ok {
		r.setValueType(t, f, specific, "import for semanticId %s", f.SemanticID)
		valueType = specific
	}
	if r.known(valueType) {
		return
	}
	if ref, ok := r.bySID[f.SemanticID]; ok && f.SemanticID != "" {
		r.setValueType(t, f, ref.IDShort, "declared semanticId %s", f.SemanticID)
		return
	}
	r.report.change(model.DiagnosticWarning, CodeValueTypeUndefined, elementName(t, f),
		"value type of field %s in type %s is not defined: %s, using generic type, declared imports are: %s",
		f.IDShort, t.IDShort, valueType, r.v.Imports.ProjectNames())
	f.ValueType = ""
}

func (r *run) known(valueType string) bool {
	if r.v.Basic.IsBasic(valueType) {
		return true
	}
	if _, ok := r.types[valueType]; ok {
		return true
	}
	if _, ok := r.enums[valueType]; ok {
		return true
	}
	return r.v.Imports.IsKnownType(valueType)
}

func (r *run) setValueType(t *model.Type, f *model.Field, valueType, reason string, args ...any) {
	if f.ValueType == valueType {
		return
	}
	old := f.ValueType
	f.ValueType = valueType
	r.report.change(model.DiagnosticWarning, CodeValueTypeChanged, elementName(t, f),
		"changed type of %s/%s from %q to %s due to "+reason,
		append([]any{t.IDShort, f.IDShort, old, valueType}, args...)...)
}

// cardinality swaps bounds given in the wrong order.
func (r *run) cardinality(t *model.Type, f *model.Field) {
	if !textutil.IsBounded(f.Lower) || !textutil.IsBounded(f.Upper) || f.Lower <= f.Upper {
		return
	}
	r.report.change(model.DiagnosticWarning, CodeCardinalitySwapped, elementName(t, f),
		"lower bound %d exceeds upper bound %d, swapping", f.Lower, f.Upper)
	f.Lower, f.Upper = f.Upper, f.Lower
}
