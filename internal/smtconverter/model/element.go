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

// Package model holds the submodel template type model: the specification summary with its
// types, fields, enumerations and enumeration literals.
//
// The extraction engine builds the model incrementally, the validator fixes it up in place
// and the emitter only reads it.
package model

// Element carries the descriptive attributes shared by types, fields, enums and literals.
type Element struct {
	// IDShort is the short name and primary lookup key within the owning scope.
	IDShort string `json:"idShort" yaml:"idShort" bson:"idShort"`
	// DisplayName is set if IDShort had to be sanitized or generated.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty" bson:"displayName,omitempty"`
	// Description is the language-filtered description.
	Description string `json:"description,omitempty" yaml:"description,omitempty" bson:"description,omitempty"`
	// SemanticID is the normalized semantic id including its scheme prefix.
	SemanticID string `json:"semanticId,omitempty" yaml:"semanticId,omitempty" bson:"semanticId,omitempty"`
	// IsCaseOf is an optional reference identifier.
	IsCaseOf string `json:"isCaseOf,omitempty" yaml:"isCaseOf,omitempty" bson:"isCaseOf,omitempty"`
	// IsGeneric marks unnamed placeholder elements.
	IsGeneric bool `json:"isGeneric,omitempty" yaml:"isGeneric,omitempty" bson:"isGeneric,omitempty"`
	// MultiSemanticIDs is set if more than one semantic id marker was found in the source text.
	MultiSemanticIDs bool `json:"multiSemanticIds,omitempty" yaml:"multiSemanticIds,omitempty" bson:"multiSemanticIds,omitempty"`
}

// HasIDShort reports whether the element has a non-empty idShort.
func (e *Element) HasIDShort() bool {
	return e.IDShort != ""
}

// Name returns the display name if given, else the idShort.
func (e *Element) Name() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.IDShort
}
