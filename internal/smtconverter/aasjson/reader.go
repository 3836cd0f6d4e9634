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

// Package aasjson builds a SpecSummary from an AAS JSON environment holding submodel templates.
//
// Submodels, collections, lists and entities become types; all other submodel elements become
// fields of their parent. Template qualifiers provide cardinalities and example values, concept
// descriptions fill in missing descriptions and isCaseOf references.
package aasjson

import (
	"fmt"
	"strings"

	"github.com/FriedJannik/aas-go-sdk/jsonization"
	"github.com/FriedJannik/aas-go-sdk/types"
	"github.com/FriedJannik/aas-go-sdk/verification"
	jsoniter "github.com/json-iterator/go"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxReportedViolations limits the verification messages carried by the returned error.
const maxReportedViolations = 5

// Qualifier types of submodel templates.
const (
	qualifierCardinality   = "SMT/Cardinality"
	qualifierExampleValue  = "SMT/ExampleValue"
	qualifierLegacyCard    = "Cardinality"
	qualifierMultiplicity  = "Multiplicity"
	qualifierLegacyExample = "ExampleValue"
)

const (
	exampleValueSeparator = "|"
	preferredLanguage     = "en"
)

// Options control the reader.
type Options struct {
	// SpecNumber is the IDTA number of the template, model.DefaultSpecNumber if empty.
	SpecNumber string
	// Verify checks the environment against the metamodel constraints before mapping it.
	Verify bool
}

// Reader maps AAS environments to summaries.
type Reader struct {
	opts  Options
	basic *model.BasicTypes
	chain *semanticid.Chain
}

// NewReader creates a reader. Nil registries are replaced by the defaults.
func NewReader(opts Options, basic *model.BasicTypes, chain *semanticid.Chain) *Reader {
	if basic == nil {
		basic = model.NewBasicTypes()
	}
	if chain == nil {
		chain = semanticid.DefaultChain()
	}
	return &Reader{opts: opts, basic: basic, chain: chain}
}

// Read decodes data as AAS JSON environment and maps it.
func (r *Reader) Read(data []byte) (*model.SpecSummary, error) {
	var jsonable any
	if err := json.Unmarshal(data, &jsonable); err != nil {
		return nil, fmt.Errorf("%w: %v", smterrors.ErrInvalidEnvironment, err)
	}
	env, err := jsonization.EnvironmentFromJsonable(jsonable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", smterrors.ErrInvalidEnvironment, err)
	}
	if r.opts.Verify {
		if err := verify(env); err != nil {
			return nil, err
		}
	}
	return r.Map(env), nil
}

func verify(env types.IEnvironment) error {
	var violations []string
	verification.Verify(env, func(verErr *verification.VerificationError) bool {
		violations = append(violations, verErr.Error())
		return false
	})
	if len(violations) == 0 {
		return nil
	}
	logger.Warnf("AAS environment has %d metamodel violations", len(violations))
	shown := violations
	if len(shown) > maxReportedViolations {
		shown = shown[:maxReportedViolations]
	}
	return fmt.Errorf("%w: %s", smterrors.ErrEnvironmentVerificationFailed, strings.Join(shown, "; "))
}

// Map builds the summary of env.
func (r *Reader) Map(env types.IEnvironment) *model.SpecSummary {
	s := model.NewSpecSummary()
	if r.opts.SpecNumber != "" {
		s.SpecNumber = r.opts.SpecNumber
	}
	b := &builder{r: r, s: s}
	for _, sm := range env.Submodels() {
		b.submodel(sm)
	}
	b.applyConceptDescriptions(env.ConceptDescriptions())
	st := s.Statistics()
	logger.Infof("Read %d submodels from AAS environment: %d types, %d fields, %d operations",
		len(env.Submodels()), st.Types, st.Fields, st.Operations)
	return s
}

type builder struct {
	r *Reader
	s *model.SpecSummary
}

func (b *builder) submodel(sm types.ISubmodel) {
	t := model.NewType(deref(sm.IDShort()), false, false)
	t.Kind = model.SmeKindSubmodel
	t.SemanticID = b.semanticID(sm.SemanticID())
	t.Description = preferredText(sm.Description())
	if admin := sm.Administration(); admin != nil {
		version := deref(admin.Version())
		if rev := deref(admin.Revision()); version != "" && rev != "" {
			version += "." + rev
		}
		if b.s.Version == "" {
			b.s.Version = version
		}
	}
	if b.s.Name == "" {
		b.s.Name = t.IDShort
		b.s.Title = t.Description
	}
	b.s.Types = append(b.s.Types, t)
	for _, el := range sm.SubmodelElements() {
		b.element(t, el)
	}
}

// element maps el to a field of parent. Container elements additionally become types.
func (b *builder) element(parent *model.Type, el types.ISubmodelElement) {
	kind, ok := model.SmeKindFromModelType(el.ModelType())
	if !ok {
		logger.LogUnmappedModelType(el.ModelType(), deref(el.IDShort()))
		return
	}
	f := model.NewField()
	f.IDShort = deref(el.IDShort())
	f.Kind = kind
	f.SemanticID = b.semanticID(el.SemanticID())
	f.Description = preferredText(el.Description())
	b.qualifiers(f, el.Qualifiers())

	switch el.ModelType() {
	case types.ModelTypeProperty:
		if p, ok := el.(types.IProperty); ok {
			f.ValueType = b.r.basic.FromXSD(p.ValueType())
			if v := deref(p.Value()); v != "" && len(f.ExampleValues) == 0 {
				f.ExampleValues = splitExamples(v)
			}
		}
	case types.ModelTypeSubmodelElementCollection:
		if c, ok := el.(types.ISubmodelElementCollection); ok {
			f.ValueType = b.container(el, kind, c.Value())
		}
	case types.ModelTypeSubmodelElementList:
		if l, ok := el.(types.ISubmodelElementList); ok {
			f.ValueType = b.container(el, kind, l.Value())
		}
	case types.ModelTypeEntity:
		if e, ok := el.(types.IEntity); ok {
			f.ValueType = b.container(el, kind, e.Statements())
		}
	}
	parent.AddField(f)
}

// container creates the type of a collection, list or entity and returns its idShort. Repeated
// containers with the same idShort and semantic id share one type.
func (b *builder) container(el types.ISubmodelElement, kind model.SmeKind, children []types.ISubmodelElement) string {
	idShort := deref(el.IDShort())
	semID := b.semanticID(el.SemanticID())
	for _, existing := range b.s.Types {
		if existing.IDShort == idShort && existing.SemanticID == semID && existing.Kind == kind {
			return idShort
		}
	}
	t := model.NewType(idShort, false, false)
	t.Kind = kind
	t.SemanticID = semID
	t.Description = preferredText(el.Description())
	t.IsGeneric = textutil.IsGenericIDShort(idShort)
	b.s.Types = append(b.s.Types, t)
	for _, child := range children {
		b.element(t, child)
	}
	return idShort
}

func (b *builder) qualifiers(f *model.Field, qualifiers []types.IQualifier) {
	for _, q := range qualifiers {
		value := deref(q.Value())
		switch q.Type() {
		case qualifierCardinality, qualifierLegacyCard, qualifierMultiplicity:
			lower, upper, ok := parseCardinality(value)
			if !ok {
				logger.Warnf("unknown cardinality '%s' of element '%s'", value, f.IDShort)
				continue
			}
			f.SetCardinality(lower, upper)
		case qualifierExampleValue, qualifierLegacyExample:
			if value != "" {
				f.ExampleValues = append(f.ExampleValues, splitExamples(value)...)
			}
		}
	}
}

// parseCardinality maps template cardinalities such as "ZeroToMany" to bounds.
func parseCardinality(value string) (lower, upper int, ok bool) {
	switch strings.TrimSpace(value) {
	case "One":
		return 1, 1, true
	case "ZeroToOne":
		return 0, 1, true
	case "ZeroToMany":
		return 0, textutil.CardinalityUnbounded, true
	case "OneToMany":
		return 1, textutil.CardinalityUnbounded, true
	}
	return textutil.CardinalityUnset, textutil.CardinalityUnset, false
}

func splitExamples(value string) []string {
	var result []string
	for _, v := range strings.Split(value, exampleValueSeparator) {
		if v = strings.TrimSpace(v); v != "" && !textutil.IsIgnoredExample(v) {
			result = append(result, v)
		}
	}
	return result
}

// applyConceptDescriptions fills missing descriptions from IEC 61360 definitions and missing
// isCaseOf references of the elements the concept descriptions define.
func (b *builder) applyConceptDescriptions(cds []types.IConceptDescription) {
	if len(cds) == 0 {
		return
	}
	byID := map[string]types.IConceptDescription{}
	for _, cd := range cds {
		byID[cd.ID()] = cd
	}
	apply := func(el *model.Element) {
		if el.SemanticID == "" {
			return
		}
		cd, ok := byID[semanticid.StripPrefix(el.SemanticID)]
		if !ok {
			cd, ok = byID[el.SemanticID]
		}
		if !ok {
			return
		}
		if el.Description == "" {
			el.Description = definition(cd)
		}
		if el.IsCaseOf == "" && len(cd.IsCaseOf()) > 0 {
			el.IsCaseOf = b.semanticID(cd.IsCaseOf()[0])
		}
	}
	for _, t := range b.s.Types {
		apply(&t.Element)
		for _, f := range t.Fields {
			apply(&f.Element)
		}
		for _, o := range t.Operations {
			apply(&o.Element)
		}
	}
}

func definition(cd types.IConceptDescription) string {
	for _, eds := range cd.EmbeddedDataSpecifications() {
		iec, ok := eds.DataSpecificationContent().(*types.DataSpecificationIEC61360)
		if !ok {
			continue
		}
		if text := preferredText(iec.Definition()); text != "" {
			return text
		}
	}
	return ""
}

// semanticID returns the normalized id of the first key of ref.
func (b *builder) semanticID(ref types.IReference) string {
	if ref == nil || len(ref.Keys()) == 0 {
		return ""
	}
	value := strings.TrimSpace(ref.Keys()[0].Value())
	if id, ok := b.r.chain.SemanticID(value, true, false); ok {
		return id
	}
	return value
}

type langString interface {
	Language() string
	Text() string
}

// preferredText returns the English text of strs, else the first text.
func preferredText[T langString](strs []T) string {
	for _, s := range strs {
		if strings.EqualFold(s.Language(), preferredLanguage) || strings.HasPrefix(strings.ToLower(s.Language()), preferredLanguage+"-") {
			return textutil.RemoveLinebreaks(s.Text())
		}
	}
	if len(strs) > 0 {
		return textutil.RemoveLinebreaks(strs[0].Text())
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
