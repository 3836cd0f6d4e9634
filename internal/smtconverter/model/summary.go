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

import "fmt"

// DefaultSpecNumber is the spec number used if the title does not carry one.
const DefaultSpecNumber = "0000"

// DeferredType requests a copy of the prototype type under the alternate id. Extraction
// records such requests for "A or B" field declarations; validation materializes them.
type DeferredType struct {
	ID        string `json:"id" yaml:"id" bson:"id"`
	Prototype string `json:"prototype" yaml:"prototype" bson:"prototype"`
}

// DiagnosticLevel classifies a validation finding.
type DiagnosticLevel string

// Diagnostic levels.
const (
	DiagnosticInfo    DiagnosticLevel = "INFO"
	DiagnosticWarning DiagnosticLevel = "WARNING"
	DiagnosticError   DiagnosticLevel = "ERROR"
)

// Diagnostic is an auditable validation finding.
type Diagnostic struct {
	Level   DiagnosticLevel `json:"level" yaml:"level" bson:"level"`
	Code    string          `json:"code" yaml:"code" bson:"code"`
	Element string          `json:"element,omitempty" yaml:"element,omitempty" bson:"element,omitempty"`
	Message string          `json:"message" yaml:"message" bson:"message"`
}

func (d Diagnostic) String() string {
	if d.Element == "" {
		return fmt.Sprintf("%s %s: %s", d.Level, d.Code, d.Message)
	}
	return fmt.Sprintf("%s %s [%s]: %s", d.Level, d.Code, d.Element, d.Message)
}

// Statistics counts the elements of a summary.
type Statistics struct {
	Types      int `json:"types" yaml:"types" bson:"types"`
	Fields     int `json:"fields" yaml:"fields" bson:"fields"`
	Operations int `json:"operations" yaml:"operations" bson:"operations"`
	Enums      int `json:"enums" yaml:"enums" bson:"enums"`
}

// SpecSummary is the type model of one submodel template document.
type SpecSummary struct {
	// Version is the template version such as "2.0", empty if unknown.
	Version           string         `json:"version,omitempty" yaml:"version,omitempty" bson:"version,omitempty"`
	// ProjectName overrides the derived emitter project name.
	ProjectName       string         `json:"projectName,omitempty" yaml:"projectName,omitempty" bson:"projectName,omitempty"`
	// Name is the identifier derived from the document title.
	Name              string         `json:"name,omitempty" yaml:"name,omitempty" bson:"name,omitempty"`
	VersionIdentifier string         `json:"versionIdentifier,omitempty" yaml:"versionIdentifier,omitempty" bson:"versionIdentifier,omitempty"`
	SpecNumber        string         `json:"specNumber" yaml:"specNumber" bson:"specNumber"`
	Title             string         `json:"title,omitempty" yaml:"title,omitempty" bson:"title,omitempty"`
	Types             []*Type        `json:"types" yaml:"types" bson:"types"`
	Enums             []*Enum        `json:"enums" yaml:"enums" bson:"enums"`
	Deferred          []DeferredType `json:"deferred,omitempty" yaml:"deferred,omitempty" bson:"deferred,omitempty"`
	Diagnostics       []Diagnostic   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" bson:"diagnostics,omitempty"`
}

// NewSpecSummary creates an empty summary with the default spec number.
func NewSpecSummary() *SpecSummary {
	return &SpecSummary{SpecNumber: DefaultSpecNumber}
}

// MainSubmodel returns the first submodel type.
func (s *SpecSummary) MainSubmodel() (*Type, bool) {
	for _, t := range s.Types {
		if t.Kind == SmeKindSubmodel {
			return t, true
		}
	}
	return nil, false
}

// FindType returns the first type with the given idShort.
func (s *SpecSummary) FindType(idShort string) (*Type, bool) {
	for _, t := range s.Types {
		if t.IDShort == idShort {
			return t, true
		}
	}
	return nil, false
}

// FindEnum returns the enum with the given idShort.
func (s *SpecSummary) FindEnum(idShort string) (*Enum, bool) {
	for _, e := range s.Enums {
		if e.IDShort == idShort {
			return e, true
		}
	}
	return nil, false
}

// HasEnum reports whether an enum with the given idShort exists.
func (s *SpecSummary) HasEnum(idShort string) bool {
	_, ok := s.FindEnum(idShort)
	return ok
}

// Statistics counts types, fields, operations and enums.
func (s *SpecSummary) Statistics() Statistics {
	st := Statistics{Types: len(s.Types), Enums: len(s.Enums)}
	for _, t := range s.Types {
		st.Fields += len(t.Fields)
		st.Operations += len(t.Operations)
	}
	return st
}

// AddDiagnostic records a finding.
func (s *SpecSummary) AddDiagnostic(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// IndexOfType returns the position of t in the types, or -1.
func (s *SpecSummary) IndexOfType(t *Type) int {
	for i, c := range s.Types {
		if c == t {
			return i
		}
	}
	return -1
}

// InsertType inserts t at position pos.
func (s *SpecSummary) InsertType(pos int, t *Type) {
	if pos < 0 || pos >= len(s.Types) {
		s.Types = append(s.Types, t)
		return
	}
	s.Types = append(s.Types, nil)
	copy(s.Types[pos+1:], s.Types[pos:])
	s.Types[pos] = t
}
