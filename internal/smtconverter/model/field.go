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

package model

import (
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// Cardinality bound markers.
const (
	CardinalityUnset     = textutil.CardinalityUnset
	CardinalityUnbounded = textutil.CardinalityUnbounded
)

// Field is a field or operation of a type.
type Field struct {
	Element            `yaml:",inline" bson:",inline"`
	Kind               SmeKind  `json:"kind,omitempty" yaml:"kind,omitempty" bson:"kind,omitempty"`
	MultiValued        bool     `json:"multiValued,omitempty" yaml:"multiValued,omitempty" bson:"multiValued,omitempty"`
	ValueType          string   `json:"valueType,omitempty" yaml:"valueType,omitempty" bson:"valueType,omitempty"`
	ExampleValues      []string `json:"exampleValues,omitempty" yaml:"exampleValues,omitempty" bson:"exampleValues,omitempty"`
	ExampleExplanation string   `json:"exampleExplanation,omitempty" yaml:"exampleExplanation,omitempty" bson:"exampleExplanation,omitempty"`
	Lower              int      `json:"lower" yaml:"lower" bson:"lower"`
	Upper              int      `json:"upper" yaml:"upper" bson:"upper"`
	Aspect             string   `json:"aspect,omitempty" yaml:"aspect,omitempty" bson:"aspect,omitempty"`
}

// NewField creates a field with unset cardinality.
func NewField() *Field {
	return &Field{Lower: CardinalityUnset, Upper: CardinalityUnset}
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := *f
	c.ExampleValues = append([]string(nil), f.ExampleValues...)
	return &c
}

// SetIDShort sets the idShort and the multi-valued flag.
func (f *Field) SetIDShort(idShort string, multiValued bool) {
	f.IDShort = idShort
	f.MultiValued = multiValued
}

// SetCardinality sets both bounds.
func (f *Field) SetCardinality(lower, upper int) {
	f.Lower = lower
	f.Upper = upper
}

// HasValueType reports whether a value type is given.
func (f *Field) HasValueType() bool {
	return f.ValueType != ""
}

// HasCardinality reports whether both bounds are set.
func (f *Field) HasCardinality() bool {
	return f.Lower != CardinalityUnset && f.Upper != CardinalityUnset
}

// IvmlValueType returns the emitter type of the field wrapped as refBy(...). Fields without
// kind are treated as properties. With logFallback, fields mapped to the fallback string type
// are logged.
func (f *Field) IvmlValueType(basic *BasicTypes, logFallback bool) string {
	kind := f.Kind
	if kind == SmeKindNone {
		kind = SmeKindProperty
	}
	var result string
	if kind == SmeKindProperty {
		result = basic.MapPropertyType(f.ValueType, f.ValueType)
	}
	if result == "" {
		switch kind {
		case SmeKindSmeList, SmeKindSmeCollection:
			result = TypeGenericCollection
			if f.HasValueType() {
				result = f.ValueType
			}
		case SmeKindMultiLanguageProperty:
			result = TypeMultiLangString
		case SmeKindFile:
			result = TypeFileResource
		case SmeKindReference:
			result = TypeReference
		case SmeKindRelation:
			result = TypeRelation
		case SmeKindEntity:
			result = TypeGenericEntity
			if f.HasValueType() {
				result = f.ValueType
			}
		case SmeKindBlob:
			result = TypeBlob
		case SmeKindRange:
			result = TypeRange
		default:
			result = TypeString
			if logFallback {
				logger.Warnf("No type mapping specified for valueType '%s' / smeType '%s'. Mapping to %s.",
					f.ValueType, kind, result)
			}
		}
	}
	return "refBy(" + result + ")"
}
