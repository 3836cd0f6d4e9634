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

// Package persistence defines the stored conversion record and the store implementations
// keeping them.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
)

// Status values of a stored conversion.
const (
	StatusCompleted         = "COMPLETED"
	StatusCompletedWithErrs = "COMPLETED_WITH_ERRORS"
)

// DefaultPageLimit is used when List is called without limit.
const DefaultPageLimit = 100

// Conversion is the stored outcome of one document conversion.
type Conversion struct {
	ID          string             `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Format      string             `json:"format" bson:"format"`
	Project     string             `json:"project" bson:"project"`
	SpecNumber  string             `json:"specNumber" bson:"specNumber"`
	Version     string             `json:"version,omitempty" bson:"version,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Statistics  model.Statistics   `json:"statistics" bson:"statistics"`
	Diagnostics []model.Diagnostic `json:"diagnostics,omitempty" bson:"diagnostics,omitempty"`
	IVML        string             `json:"-" bson:"ivml"`
	Index       string             `json:"-" bson:"index"`
	Created     time.Time          `json:"created" bson:"created"`
}

// NewConversion creates a record with a fresh id from result.
func NewConversion(result *pipeline.Result) *Conversion {
	status := StatusCompleted
	if result.Report.HasErrors() {
		status = StatusCompletedWithErrs
	}
	return &Conversion{
		ID:          uuid.NewString(),
		Name:        result.Name,
		Format:      string(result.Format),
		Project:     result.Project,
		SpecNumber:  result.Summary.SpecNumber,
		Version:     result.Summary.Version,
		Status:      status,
		Statistics:  result.Summary.Statistics(),
		Diagnostics: result.Report.Diagnostics,
		IVML:        string(result.IVML),
		Index:       string(result.Index),
		Created:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Summary returns a copy of c without artifacts and diagnostics.
func (c Conversion) Summary() Conversion {
	c.IVML = ""
	c.Index = ""
	c.Diagnostics = nil
	return c
}

// ConversionStore keeps conversion records. Implementations are safe for concurrent use.
// Records are listed by ascending id; cursor is the id of the first record of the page and
// the returned cursor the first id of the next page, empty on the last page.
type ConversionStore interface {
	Create(ctx context.Context, c *Conversion) error
	Get(ctx context.Context, id string) (*Conversion, error)
	List(ctx context.Context, limit int, cursor string) ([]Conversion, string, error)
	Delete(ctx context.Context, id string) error
}

// ArtifactSink receives the generated files of a conversion.
type ArtifactSink interface {
	Put(ctx context.Context, c *Conversion) error
	Delete(ctx context.Context, id string) error
}
