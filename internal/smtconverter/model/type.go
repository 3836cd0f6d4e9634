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

import "strings"

// ParentAAS is the parent marker of types contained directly in the asset administration shell.
const ParentAAS = "*AAS*"

// EntityType is the entity kind of an Entity type.
type EntityType string

// Entity kinds. EntityTypeNone means no entity kind was given.
const (
	EntityTypeNone        EntityType = ""
	EntityTypeCoManaged   EntityType = "CoManagedEntity"
	EntityTypeSelfManaged EntityType = "SelfManagedEntity"
)

var entityTypes = []EntityType{EntityTypeCoManaged, EntityTypeSelfManaged}

// EntityTypeFromText returns the first entity kind whose literal occurs in text.
func EntityTypeFromText(text string) EntityType {
	for _, e := range entityTypes {
		if strings.Contains(text, string(e)) {
			return e
		}
	}
	return EntityTypeNone
}

// ParseEntityType maps a literal such as "selfmanagedentity" to an entity kind, ignoring case.
func ParseEntityType(value string) EntityType {
	for _, e := range entityTypes {
		if strings.EqualFold(string(e), value) {
			return e
		}
	}
	return EntityTypeNone
}

// MappedSemanticID is the semantic id an aspect type applies under a condition.
type MappedSemanticID struct {
	Condition  string `json:"condition" yaml:"condition" bson:"condition"`
	SemanticID string `json:"semanticId" yaml:"semanticId" bson:"semanticId"`
}

// Type is a submodel, collection, list, entity or file declaration.
type Type struct {
	Element           `yaml:",inline" bson:",inline"`
	Kind              SmeKind            `json:"kind,omitempty" yaml:"kind,omitempty" bson:"kind,omitempty"`
	AllowDuplicates   bool               `json:"allowDuplicates,omitempty" yaml:"allowDuplicates,omitempty" bson:"allowDuplicates,omitempty"`
	Ordered           bool               `json:"ordered,omitempty" yaml:"ordered,omitempty" bson:"ordered,omitempty"`
	FixedIDShort      bool               `json:"fixedIdShort,omitempty" yaml:"fixedIdShort,omitempty" bson:"fixedIdShort,omitempty"`
	MultiValued       bool               `json:"multiValued,omitempty" yaml:"multiValued,omitempty" bson:"multiValued,omitempty"`
	Parent            string             `json:"parent,omitempty" yaml:"parent,omitempty" bson:"parent,omitempty"`
	EntityType        EntityType         `json:"entityType,omitempty" yaml:"entityType,omitempty" bson:"entityType,omitempty"`
	IsAspect          bool               `json:"isAspect,omitempty" yaml:"isAspect,omitempty" bson:"isAspect,omitempty"`
	AspectName        string             `json:"aspectName,omitempty" yaml:"aspectName,omitempty" bson:"aspectName,omitempty"`
	MappedSemanticIDs []MappedSemanticID `json:"mappedSemanticIds,omitempty" yaml:"mappedSemanticIds,omitempty" bson:"mappedSemanticIds,omitempty"`
	Fields            []*Field           `json:"fields,omitempty" yaml:"fields,omitempty" bson:"fields,omitempty"`
	Operations        []*Field           `json:"operations,omitempty" yaml:"operations,omitempty" bson:"operations,omitempty"`
	VersionIdentifier string             `json:"versionIdentifier,omitempty" yaml:"versionIdentifier,omitempty" bson:"versionIdentifier,omitempty"`
}

// NewType creates a type without kind.
func NewType(idShort string, fixedIDShort, multiValued bool) *Type {
	return &Type{
		Element:      Element{IDShort: idShort},
		FixedIDShort: fixedIDShort,
		MultiValued:  multiValued,
	}
}

// Clone returns a deep copy of t.
func (t *Type) Clone() *Type {
	c := *t
	c.Fields = make([]*Field, 0, len(t.Fields))
	for _, f := range t.Fields {
		c.Fields = append(c.Fields, f.Clone())
	}
	c.Operations = make([]*Field, 0, len(t.Operations))
	for _, o := range t.Operations {
		c.Operations = append(c.Operations, o.Clone())
	}
	c.MappedSemanticIDs = append([]MappedSemanticID(nil), t.MappedSemanticIDs...)
	return &c
}

// AddField appends field to the fields, or to the operations if it is an operation.
func (t *Type) AddField(field *Field) {
	if field == nil {
		return
	}
	if field.Kind == SmeKindOperation {
		t.Operations = append(t.Operations, field)
		return
	}
	t.Fields = append(t.Fields, field)
}

// IsAasParent reports whether the type is contained directly in the shell.
func (t *Type) IsAasParent() bool {
	return t.Parent == ParentAAS
}

// IsLast reports whether field is the last field of t.
func (t *Type) IsLast(field *Field) bool {
	return len(t.Fields) > 0 && t.Fields[len(t.Fields)-1] == field
}

// FindField returns the field with the given idShort.
func (t *Type) FindField(idShort string) (*Field, bool) {
	for _, f := range t.Fields {
		if f.IDShort == idShort {
			return f, true
		}
	}
	return nil, false
}

// AddMappedSemanticIDs merges mapped semantic ids, replacing existing conditions.
func (t *Type) AddMappedSemanticIDs(mapped []MappedSemanticID) {
	for _, m := range mapped {
		replaced := false
		for i := range t.MappedSemanticIDs {
			if t.MappedSemanticIDs[i].Condition == m.Condition {
				t.MappedSemanticIDs[i].SemanticID = m.SemanticID
				replaced = true
				break
			}
		}
		if !replaced {
			t.MappedSemanticIDs = append(t.MappedSemanticIDs, m)
		}
	}
}

// MappedSemanticID returns the semantic id mapped to condition.
func (t *Type) MappedSemanticID(condition string) (string, bool) {
	for _, m := range t.MappedSemanticIDs {
		if m.Condition == condition {
			return m.SemanticID, true
		}
	}
	return "", false
}
