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
	"strings"

	"github.com/FriedJannik/aas-go-sdk/types"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

// SmeKind is the AAS element kind of a type or field. The zero value SmeKindNone denotes a
// missing kind.
type SmeKind int

// Element kinds.
const (
	SmeKindNone SmeKind = iota
	SmeKindAas
	SmeKindSubmodel
	SmeKindSubmodelList
	SmeKindSmeCollection
	SmeKindSmeList
	SmeKindSubmodelElement
	SmeKindProperty
	SmeKindMultiLanguageProperty
	SmeKindLangString
	SmeKindEntity
	SmeKindRelation
	SmeKindReference
	SmeKindBlob
	SmeKindRange
	SmeKindOperation
	SmeKindFile
)

type smeKindInfo struct {
	name         string
	isType       bool
	spellings    []string
	modelType    types.ModelType
	hasModelType bool
}

var smeKinds = map[SmeKind]smeKindInfo{
	SmeKindAas: {name: "AssetAdministrationShell", isType: true,
		spellings: []string{"AAS", "AssetAdministrationShell"},
		modelType: types.ModelTypeAssetAdministrationShell, hasModelType: true},
	SmeKindSubmodel: {name: "Submodel", isType: true,
		spellings: []string{"Submodel", "SM"},
		modelType: types.ModelTypeSubmodel, hasModelType: true},
	SmeKindSubmodelList: {name: "SubmodelList", isType: true,
		spellings: []string{"SubmodelList"}},
	SmeKindSmeCollection: {name: "SubmodelElementCollection", isType: true,
		spellings: []string{"SMC", "SubmodelElementCollection", "Collection"},
		modelType: types.ModelTypeSubmodelElementCollection, hasModelType: true},
	SmeKindSmeList: {name: "SubmodelElementList", isType: true,
		spellings: []string{"SML", "SubmodelElementList", "List"},
		modelType: types.ModelTypeSubmodelElementList, hasModelType: true},
	SmeKindSubmodelElement: {name: "SubmodelElement",
		spellings: []string{"SubmodelElement", "SME", "BasicEventElement", "Capability"}},
	SmeKindProperty: {name: "Property",
		spellings: []string{"Prop", "Property"},
		modelType: types.ModelTypeProperty, hasModelType: true},
	SmeKindMultiLanguageProperty: {name: "MultiLanguageProperty",
		spellings: []string{"MLP", "MultiLanguageProperty"},
		modelType: types.ModelTypeMultiLanguageProperty, hasModelType: true},
	SmeKindLangString: {name: "LangString",
		spellings: []string{"LangString", "LangStringSet"}},
	SmeKindEntity: {name: "Entity", isType: true,
		spellings: []string{"Ent", "Entity"},
		modelType: types.ModelTypeEntity, hasModelType: true},
	SmeKindRelation: {name: "RelationshipElement",
		spellings: []string{"RelationshipElement", "Relationship", "Rel", "AnnotatedRelationshipElement", "RelationElement"},
		modelType: types.ModelTypeRelationshipElement, hasModelType: true},
	SmeKindReference: {name: "ReferenceElement",
		spellings: []string{"ReferenceElement", "Reference", "Ref", "RefElement"},
		modelType: types.ModelTypeReferenceElement, hasModelType: true},
	SmeKindBlob: {name: "Blob",
		spellings: []string{"Blob"},
		modelType: types.ModelTypeBlob, hasModelType: true},
	SmeKindRange: {name: "Range",
		spellings: []string{"Range"},
		modelType: types.ModelTypeRange, hasModelType: true},
	SmeKindOperation: {name: "Operation",
		spellings: []string{"Operation", "Op"},
		modelType: types.ModelTypeOperation, hasModelType: true},
	SmeKindFile: {name: "File", isType: true,
		spellings: []string{"File"},
		modelType: types.ModelTypeFile, hasModelType: true},
}

var (
	smeKindsBySpelling  = map[string]SmeKind{}
	smeKindsByModelType = map[types.ModelType]SmeKind{}
)

func init() {
	for kind, info := range smeKinds {
		for _, s := range info.spellings {
			smeKindsBySpelling[normalizeKindText(s)] = kind
		}
		if info.hasModelType {
			smeKindsByModelType[info.modelType] = kind
		}
	}
	smeKindsByModelType[types.ModelTypeAnnotatedRelationshipElement] = SmeKindRelation
	smeKindsByModelType[types.ModelTypeBasicEventElement] = SmeKindSubmodelElement
}

func normalizeKindText(text string) string {
	return strings.ToLower(textutil.RemoveWhitespace(strings.TrimSpace(text)))
}

// String returns the AAS metamodel name of the kind.
func (k SmeKind) String() string {
	if info, ok := smeKinds[k]; ok {
		return info.name
	}
	return "None"
}

// IsType reports whether elements of this kind are emitted as types.
func (k SmeKind) IsType() bool {
	return smeKinds[k].isType
}

// IsSet reports whether the kind is not SmeKindNone.
func (k SmeKind) IsSet() bool {
	return k != SmeKindNone
}

// ModelType returns the AAS model type of the kind, if the metamodel has one.
func (k SmeKind) ModelType() (types.ModelType, bool) {
	info, ok := smeKinds[k]
	if !ok || !info.hasModelType {
		return 0, false
	}
	return info.modelType, true
}

// SmeKindFromText maps a cell text such as "[SMC]", "Submodel Element Collection" or "MLP"
// to a kind. Matching ignores case, whitespace and enclosing brackets.
func SmeKindFromText(text string) (SmeKind, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	kind, ok := smeKindsBySpelling[normalizeKindText(text)]
	return kind, ok
}

// SmeKindFromModelType maps an AAS model type to a kind.
func SmeKindFromModelType(mt types.ModelType) (SmeKind, bool) {
	kind, ok := smeKindsByModelType[mt]
	return kind, ok
}

// MarshalText implements encoding.TextMarshaler.
func (k SmeKind) MarshalText() ([]byte, error) {
	if k == SmeKindNone {
		return []byte{}, nil
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SmeKind) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*k = SmeKindNone
		return nil
	}
	kind, _ := SmeKindFromText(string(data))
	*k = kind
	return nil
}
