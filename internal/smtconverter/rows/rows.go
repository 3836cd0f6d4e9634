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

// Package rows reads the tables of submodel template documents as ordered rows of optional
// cells. Row documents are JSON exports of the spreadsheet tables; CSV files hold one sheet.
package rows

import (
	"context"
	"io"
	"strings"
)

// Row is an ordered list of optional cells. A nil cell is empty.
type Row []*string

// Text creates a row from texts. Empty and whitespace-only texts become empty cells.
func Text(cells ...string) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		row[i] = Cell(c)
	}
	return row
}

// Cell returns a pointer to text, or nil if text is blank.
func Cell(text string) *string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &text
}

// Sheet is a named table of rows.
type Sheet struct {
	Name string `json:"name,omitempty"`
	Rows []Row  `json:"rows"`
}

// Document is a named sequence of sheets.
type Document struct {
	Name   string  `json:"name"`
	Sheets []Sheet `json:"sheets"`
}

// RowCount returns the number of rows of all sheets.
func (d *Document) RowCount() int {
	n := 0
	for _, s := range d.Sheets {
		n += len(s.Rows)
	}
	return n
}

// Source yields the rows of one document in order.
type Source interface {
	// Name is the document name.
	Name() string
	// NextRow returns the next row or io.EOF after the last row.
	NextRow(ctx context.Context) (Row, error)
}

type documentSource struct {
	doc   *Document
	sheet int
	row   int
}

// Source returns a source over the rows of all sheets of d.
func (d *Document) Source() Source {
	return &documentSource{doc: d}
}

func (s *documentSource) Name() string {
	return s.doc.Name
}

func (s *documentSource) NextRow(ctx context.Context) (Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for s.sheet < len(s.doc.Sheets) {
		sheet := s.doc.Sheets[s.sheet]
		if s.row < len(sheet.Rows) {
			r := sheet.Rows[s.row]
			s.row++
			return r, nil
		}
		s.sheet++
		s.row = 0
	}
	return nil, io.EOF
}
