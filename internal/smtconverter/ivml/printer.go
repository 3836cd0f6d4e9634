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

package ivml

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/textutil"
)

var quoter = strings.NewReplacer(`"`, "'", `\`, `\\`)

// quote renders value as IVML string literal.
func quote(value string) string {
	return `"` + quoter.Replace(value) + `"`
}

// entry is one attribute of a compound value, either a plain value or a list of compounds.
type entry struct {
	name   string
	value  string
	isList bool
	list   []compound
}

// compound is a compound value such as "AasField { ... }".
type compound struct {
	typeName string
	entries  entries
}

type entries []entry

// str adds a string attribute unless value is empty.
func (e *entries) str(name, value string) {
	if value != "" {
		*e = append(*e, entry{name: name, value: quote(value)})
	}
}

// flag adds a boolean attribute if set.
func (e *entries) flag(name string, set bool) {
	if set {
		*e = append(*e, entry{name: name, value: "true"})
	}
}

func (e *entries) raw(name, value string) {
	*e = append(*e, entry{name: name, value: value})
}

// bound adds a cardinality attribute if value is a concrete bound.
func (e *entries) bound(name string, value int) {
	if textutil.IsBounded(value) {
		*e = append(*e, entry{name: name, value: strconv.Itoa(value)})
	}
}

// strings adds a string set attribute unless values is empty.
func (e *entries) strings(name string, values []string) {
	if len(values) == 0 {
		return
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	*e = append(*e, entry{name: name, value: "{" + strings.Join(quoted, ",") + "}"})
}

func (e *entries) list(name string, items []compound) {
	*e = append(*e, entry{name: name, isList: true, list: items})
}

// printer writes indented lines and keeps the first write error.
type printer struct {
	w         *bufio.Writer
	indentStr string
	indent    int
	err       error
}

func newPrinter(w io.Writer, indent string) *printer {
	return &printer{w: bufio.NewWriter(w), indentStr: indent}
}

func (p *printer) println(text string) {
	if p.err != nil {
		return
	}
	if text != "" {
		_, p.err = p.w.WriteString(strings.Repeat(p.indentStr, p.indent))
		if p.err != nil {
			return
		}
	}
	_, p.err = p.w.WriteString(text + "\n")
}

func (p *printer) increaseIndent() {
	p.indent++
}

func (p *printer) decreaseIndent() {
	if p.indent > 0 {
		p.indent--
	}
}

// printEntries writes entries separated by commas. The last entry carries no comma.
func (p *printer) printEntries(es entries) {
	for i, e := range es {
		comma := ""
		if i < len(es)-1 {
			comma = ","
		}
		if !e.isList {
			p.println(e.name + " = " + e.value + comma)
			continue
		}
		p.println(e.name + " = {")
		p.increaseIndent()
		for j, c := range e.list {
			itemComma := ""
			if j < len(e.list)-1 {
				itemComma = ","
			}
			p.printCompound(c, itemComma)
		}
		p.decreaseIndent()
		p.println("}" + comma)
	}
}

func (p *printer) printCompound(c compound, suffix string) {
	p.println(c.typeName + " {")
	p.increaseIndent()
	p.printEntries(c.entries)
	p.decreaseIndent()
	p.println("}" + suffix)
}

// printDeclaration writes a top level variable declaration "<type> <name> = { ... };".
func (p *printer) printDeclaration(typeName, varName string, es entries) {
	p.println("")
	p.println(typeName + " " + varName + " = {")
	p.increaseIndent()
	p.printEntries(es)
	p.decreaseIndent()
	p.println("};")
}

func (p *printer) flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}
