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

// Package ivml writes a validated SpecSummary as IVML configuration model and as a short text
// index listing the declared types.
package ivml

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/imports"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// DefaultIndent is the indentation of one nesting level.
const DefaultIndent = "  "

// UnknownProject is the project name used if neither a project name nor a main submodel is known.
const UnknownProject = "Unknown"

// NoIdShort is the name of elements without usable idShort.
const NoIdShort = "<NoIdShort>"

// basicIvmlName matches enum literal names that can be used as values without quoting issues.
var basicIvmlName = regexp.MustCompile(`^[\w \[\]\-$_]+$`)

// Options control the emitted names and layout.
type Options struct {
	// NamePrefix is prepended to the submodel variables and to the names of types and enums.
	NamePrefix string `mapstructure:"namePrefix" json:"namePrefix"`
	// Indent is one indentation level, DefaultIndent if empty.
	Indent string `mapstructure:"indent" json:"indent"`
}

// Writer emits IVML text for summaries. A Writer holds no per-summary state and may be shared.
type Writer struct {
	Options Options
	Basic   *model.BasicTypes
	Imports *imports.Registry
}

// NewWriter creates a writer. Nil registries are replaced by the defaults.
func NewWriter(opts Options, basic *model.BasicTypes, imp *imports.Registry) *Writer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	if basic == nil {
		basic = model.NewBasicTypes()
	}
	if imp == nil {
		imp = imports.Default()
	}
	return &Writer{Options: opts, Basic: basic, Imports: imp}
}

// ProjectName returns the IVML project name of s: the explicit project name, else
// IDTA_0<spec>_<main submodel>, else UnknownProject.
func (w *Writer) ProjectName(s *model.SpecSummary) string {
	if s.ProjectName != "" {
		return s.ProjectName
	}
	if sm, ok := s.MainSubmodel(); ok && sm.IDShort != "" {
		spec := s.SpecNumber
		if !strings.HasPrefix(spec, "0") {
			spec = "0" + spec
		}
		return "IDTA_" + spec + "_" + sm.IDShort
	}
	return UnknownProject
}

// WriteModel writes s as IVML project.
func (w *Writer) WriteModel(out io.Writer, s *model.SpecSummary) error {
	e := w.newEmission(s)
	p := newPrinter(out, w.Options.Indent)
	p.println("project " + e.project + " {")
	p.increaseIndent()
	p.println("")
	if s.Version != "" {
		p.println("version v" + s.Version + ";")
		p.println("")
	}
	p.println("import AASDataTypes;")
	for _, imp := range e.imports() {
		line := "import " + imp.ProjectName
		if imp.Version != "" {
			line += " with (" + imp.ProjectName + ".version == v" + imp.Version + ")"
		}
		p.println(line + ";")
	}
	p.println("")
	p.println("annotate BindingTime bindingTime = BindingTime::compile to .;")
	for _, en := range s.Enums {
		if e.emit(&en.Element) {
			p.printDeclaration("AasEnumType", e.varNames[&en.Element], e.enumEntries(en))
		}
	}
	for _, t := range s.Types {
		if typeName, ok := e.ivmlType(t); ok {
			p.printDeclaration(typeName, e.varNames[&t.Element], e.typeEntries(t))
		}
	}
	p.println("")
	p.println("freeze {")
	p.increaseIndent()
	p.println(".;")
	p.decreaseIndent()
	p.println("} but (f|f.bindingTime >= BindingTime.runtimeMon);")
	p.decreaseIndent()
	p.println("}")
	return p.flush()
}

// WriteIndex writes one line "<project>::<type> = <description>" per emitted type.
func (w *Writer) WriteIndex(out io.Writer, s *model.SpecSummary) error {
	e := w.newEmission(s)
	p := newPrinter(out, "")
	for _, t := range s.Types {
		if _, ok := e.ivmlType(t); !ok {
			continue
		}
		name := e.varNames[&t.Element]
		description := t.Description
		if description == "" {
			description = "Declaration for AAS type " + name
		}
		p.println(e.project + "::" + name + " = " + description)
	}
	return p.flush()
}

// emission holds the derived names of one summary.
type emission struct {
	w       *Writer
	s       *model.SpecSummary
	project string
	// self are the imports the summary itself implements.
	self     []*imports.Import
	varNames map[*model.Element]string
}

func (w *Writer) newEmission(s *model.SpecSummary) *emission {
	e := &emission{w: w, s: s, project: w.ProjectName(s), varNames: map[*model.Element]string{}}
	for _, imp := range w.Imports.Imports() {
		if imp.ProjectName == e.project {
			e.self = append(e.self, imp)
		}
	}
	counter := 0
	varName := func(el *model.Element) string {
		if isNoIdShort(el.IDShort) {
			name := "NoIdShort_" + strconv.Itoa(counter)
			counter++
			return name
		}
		return textutil.ToIdentifier(el.IDShort)
	}
	for _, en := range s.Enums {
		e.varNames[&en.Element] = varName(&en.Element)
	}
	for _, t := range s.Types {
		name := varName(&t.Element)
		if w.Options.NamePrefix != "" && t.Kind == model.SmeKindSubmodel {
			name = w.Options.NamePrefix + name
		}
		e.varNames[&t.Element] = name
	}
	return e
}

func (e *emission) isSelf(imp *imports.Import) bool {
	for _, s := range e.self {
		if s == imp {
			return true
		}
	}
	return false
}

// emit reports whether el is declared by the emitted project rather than by an import.
func (e *emission) emit(el *model.Element) bool {
	if imp, ok := e.w.Imports.Import(el.SemanticID); ok {
		return e.isSelf(imp)
	}
	return !e.w.Imports.IsKnownTypeExcluding(el.IDShort, e.self)
}

// ivmlType returns the IVML type of t, false if t is not emitted.
func (e *emission) ivmlType(t *model.Type) (string, bool) {
	if !t.Kind.IsSet() {
		logger.Errorf("type %s has no SME type assigned, not emitting it", t.IDShort)
		return "", false
	}
	if !e.emit(&t.Element) {
		return "", false
	}
	switch t.Kind {
	case model.SmeKindSubmodel:
		return "AasSubmodelType", true
	case model.SmeKindSubmodelList:
		return "AasSubmodelListType", true
	case model.SmeKindSmeList:
		return "AasSubmodelElementListType", true
	case model.SmeKindSmeCollection:
		return "AasSubmodelElementCollectionType", true
	case model.SmeKindEntity:
		return "AasEntityType", true
	case model.SmeKindFile:
		return "AasFileResourceType", true
	}
	logger.Warnf("type %s of kind %s has no IVML counterpart, not emitting it", t.IDShort, t.Kind)
	return "", false
}

// imports returns the non-self imports the summary refers to, sorted by project name.
func (e *emission) imports() []*imports.Import {
	seen := map[*imports.Import]struct{}{}
	var result []*imports.Import
	add := func(imp *imports.Import) {
		if _, ok := seen[imp]; ok || e.isSelf(imp) {
			return
		}
		seen[imp] = struct{}{}
		result = append(result, imp)
	}
	for _, t := range e.s.Types {
		if imp, ok := e.w.Imports.Import(t.SemanticID); ok {
			add(imp)
		}
		for _, f := range t.Fields {
			if imp, ok := e.w.Imports.Import(f.SemanticID); ok {
				add(imp)
			}
			if imp, ok := e.valueTypeImport(f); ok {
				add(imp)
			}
		}
	}
	return imports.Sort(result)
}

// valueTypeImport returns the import declaring the value type of f unless the summary declares
// that type itself.
func (e *emission) valueTypeImport(f *model.Field) (*imports.Import, bool) {
	valueType := textutil.StripRefBy(f.IvmlValueType(e.w.Basic, false))
	if e.w.Basic.IsBasic(valueType) {
		return nil, false
	}
	if _, ok := e.s.FindType(valueType); ok {
		return nil, false
	}
	if e.s.HasEnum(valueType) {
		return nil, false
	}
	for _, imp := range e.w.Imports.Imports() {
		if imp.IsKnownType(valueType) {
			return imp, true
		}
	}
	return nil, false
}

// ivmlName returns the IVML name for idShort.
func ivmlName(idShort string) string {
	if isNoIdShort(idShort) {
		return NoIdShort
	}
	return idShort
}

func (e *emission) enumEntries(en *model.Enum) entries {
	var es entries
	es.str("name", e.w.Options.NamePrefix+ivmlName(en.IDShort))
	es.str("description", en.Description)
	es.flag("isOpen", en.IsOpen)
	es.str("versionIdentifier", e.s.VersionIdentifier)
	hasValues := false
	needsValues := false
	for _, l := range en.Literals {
		hasValues = hasValues || l.Value != ""
		needsValues = needsValues || !basicIvmlName.MatchString(l.IDShort)
	}
	literals := make([]compound, 0, len(en.Literals))
	for _, l := range en.Literals {
		var le entries
		le.str("name", literalName(l.IDShort))
		le.str("identifier", l.Identifier)
		le.str("description", l.Description)
		value := l.Value
		if !hasValues && needsValues {
			value = l.IDShort
		}
		le.str("value", value)
		le.str("semanticId", l.ValueID)
		literals = append(literals, compound{typeName: "AasEnumLiteral", entries: le})
	}
	es.list("literals", literals)
	return es
}

func (e *emission) typeEntries(t *model.Type) entries {
	var es entries
	es.str("name", e.w.Options.NamePrefix+ivmlName(t.Name()))
	es.str("semanticId", t.SemanticID)
	es.flag("multiSemanticIds", t.MultiSemanticIDs)
	es.str("description", t.Description)
	version := t.VersionIdentifier
	if version == "" {
		version = e.s.VersionIdentifier
	}
	es.str("versionIdentifier", version)
	es.flag("isGeneric", t.IsGeneric)
	es.flag("allowDuplicates", t.AllowDuplicates)
	es.flag("ordered", t.Ordered)
	es.flag("fixedName", t.FixedIDShort)
	fields := make([]compound, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, compound{typeName: "AasField", entries: e.fieldEntries(f)})
	}
	es.list("fields", fields)
	return es
}

func (e *emission) fieldEntries(f *model.Field) entries {
	var es entries
	es.str("name", ivmlName(f.IDShort))
	if f.DisplayName != "" && f.DisplayName != f.IDShort {
		es.str("displayName", f.DisplayName)
	}
	es.str("semanticId", f.SemanticID)
	es.flag("multiSemanticIds", f.MultiSemanticIDs)
	es.flag("isGeneric", f.IsGeneric)
	es.flag("counting", f.MultiValued)
	es.raw("type", e.fieldType(f))
	es.str("aspect", f.Aspect)
	es.bound("minimumInstances", f.Lower)
	es.bound("maximumInstances", f.Upper)
	es.strings("examples", f.ExampleValues)
	es.str("description", f.Description)
	return es
}

// listTypes maps basic types to their list counterparts.
var listTypes = map[string]string{
	model.TypeInteger: "IntegerListType",
	model.TypeBoolean: "BooleanListType",
	model.TypeDouble:  "DoubleListType",
	model.TypeFloat:   "FloatListType",
	model.TypeString:  "StringListType",
}

// fieldType returns the IVML value type of f. Fields of the simple basic types that may occur
// more than once are promoted to the corresponding list type.
func (e *emission) fieldType(f *model.Field) string {
	result := f.IvmlValueType(e.w.Basic, true)
	if f.MultiValued || f.Upper > 1 || (f.Lower >= 0 && f.Upper < 0) {
		if list, ok := listTypes[textutil.StripRefBy(result)]; ok {
			return "refBy(" + list + ")"
		}
	}
	return result
}

func literalName(idShort string) string {
	name := strings.NewReplacer(",", "", "(", "", ")", "", "/", " ").Replace(idShort)
	return strings.TrimSpace(name)
}

// isNoIdShort reports whether idShort is a "no idShort" placeholder such as "<no idShort>".
func isNoIdShort(idShort string) bool {
	id := strings.ToLower(textutil.RemoveWhitespace(idShort))
	return id == "" || id == "<noidshort>" || id == "<no_idshort>"
}
