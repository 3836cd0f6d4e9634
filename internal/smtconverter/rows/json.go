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

package rows

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed rowdocument.schema.json
var rowDocumentSchema []byte

var (
	compileOnce    sync.Once
	compiledSchema *gojsonschema.Schema
	compileErr     error
)

func schema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		sl := gojsonschema.NewSchemaLoader()
		compiledSchema, compileErr = sl.Compile(gojsonschema.NewBytesLoader(rowDocumentSchema))
	})
	return compiledSchema, compileErr
}

// Schema returns the JSON schema of row documents.
func Schema() []byte {
	return rowDocumentSchema
}

// ValidateJSON checks data against the row document schema.
func ValidateJSON(data []byte) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("compile row document schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", smterrors.ErrInvalidRowDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", smterrors.ErrInvalidRowDocument, strings.Join(msgs, "; "))
	}
	return nil
}

// ParseJSON validates and decodes a row document. Blank cells become empty cells. If the
// document has no name, fallbackName is used.
func ParseJSON(data []byte, fallbackName string) (*Document, error) {
	if err := ValidateJSON(data); err != nil {
		return nil, err
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", smterrors.ErrInvalidRowDocument, err)
	}
	if doc.Name == "" {
		doc.Name = fallbackName
	}
	for _, s := range doc.Sheets {
		for _, r := range s.Rows {
			for i, c := range r {
				if c != nil {
					r[i] = Cell(*c)
				}
			}
		}
	}
	return &doc, nil
}

// ReadJSON reads a row document from r.
func ReadJSON(r io.Reader, fallbackName string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read row document: %w", err)
	}
	return ParseJSON(data, fallbackName)
}

// MarshalJSON encodes d as row document.
func MarshalJSON(d *Document) ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Marshal(d)
}
