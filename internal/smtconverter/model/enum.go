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

// EnumParsingKind names the description marker an enum was inferred from. It is only
// meaningful during extraction.
type EnumParsingKind int

// Enum parsing kinds.
const (
	ParsingKindNone EnumParsingKind = iota
	// ParsingKindEnumEntries is an "enumeration:" marker followed by numbered quoted entries.
	ParsingKindEnumEntries
	// ParsingKindEnum is an "enumeration:" marker followed by comma separated literals.
	ParsingKindEnum
	// ParsingKindValueList2 is a "Value List (...)" marker with inline literals.
	ParsingKindValueList2
	// ParsingKindValueList is a "Value List:" marker with literals in the following rows.
	ParsingKindValueList
	// ParsingKindIRDIs is an "[IRDIs for values]:" marker with dash separated literals.
	ParsingKindIRDIs
)

var parsingKindNames = map[EnumParsingKind]string{
	ParsingKindNone:        "NONE",
	ParsingKindEnumEntries: "ENUM_ENTRIES",
	ParsingKindEnum:        "ENUM",
	ParsingKindValueList2:  "VALUE_LIST2",
	ParsingKindValueList:   "VALUE_LIST",
	ParsingKindIRDIs:       "IRDIS",
}

func (k EnumParsingKind) String() string {
	return parsingKindNames[k]
}

// EnumLiteral is a literal of an enum.
type EnumLiteral struct {
	Element    `yaml:",inline" bson:",inline"`
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty" bson:"identifier,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty" bson:"value,omitempty"`
	// ValueID is the semantic id of the value.
	ValueID string `json:"valueId,omitempty" yaml:"valueId,omitempty" bson:"valueId,omitempty"`
}

// NewEnumLiteral creates a literal.
func NewEnumLiteral(idShort, valueID, description, identifier string) *EnumLiteral {
	return &EnumLiteral{
		Element:    Element{IDShort: idShort, Description: description},
		ValueID:    valueID,
		Identifier: identifier,
	}
}

// Clone returns a copy of l.
func (l *EnumLiteral) Clone() *EnumLiteral {
	c := *l
	return &c
}

// Enum is an enumeration inferred from a field description or a value list table.
type Enum struct {
	Element     `yaml:",inline" bson:",inline"`
	IsOpen      bool            `json:"isOpen,omitempty" yaml:"isOpen,omitempty" bson:"isOpen,omitempty"`
	ParsingKind EnumParsingKind `json:"-" yaml:"-" bson:"-"`
	Literals    []*EnumLiteral  `json:"literals,omitempty" yaml:"literals,omitempty" bson:"literals,omitempty"`
	Aspect      string          `json:"aspect,omitempty" yaml:"aspect,omitempty" bson:"aspect,omitempty"`
}

// NewEnum creates an empty enum.
func NewEnum(idShort string) *Enum {
	return &Enum{Element: Element{IDShort: idShort}}
}

// NewEnumFromType creates an enum named name that takes the descriptive attributes of t.
func NewEnumFromType(t *Type, kind EnumParsingKind, name string) *Enum {
	e := &Enum{Element: t.Element, ParsingKind: kind}
	e.IDShort = name
	return e
}

// AddLiteral appends a literal.
func (e *Enum) AddLiteral(l *EnumLiteral) {
	if l != nil {
		e.Literals = append(e.Literals, l)
	}
}

// IsLast reports whether l is the last literal of e.
func (e *Enum) IsLast(l *EnumLiteral) bool {
	return len(e.Literals) > 0 && e.Literals[len(e.Literals)-1] == l
}

// Clone returns a deep copy of e.
func (e *Enum) Clone() *Enum {
	c := *e
	c.Literals = make([]*EnumLiteral, 0, len(e.Literals))
	for _, l := range e.Literals {
		c.Literals = append(c.Literals, l.Clone())
	}
	return &c
}
