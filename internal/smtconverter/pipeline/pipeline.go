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

// Package pipeline wires readers, extraction, validation and the IVML writer into conversions
// of complete documents.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/aasjson"
	smterrors "github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/errors"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/extraction"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/imports"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/ivml"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/model"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/rows"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/semanticid"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/validation"
)

// Format is an input format.
type Format string

// Input formats.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatAAS  Format = "aas"
)

// ParseFormat maps a format name to a Format. An empty name is FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatCSV, FormatAAS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", smterrors.ErrUnsupportedFormat, name)
}

// DetectFormat guesses the format of data named name. JSON is told apart by its top level keys,
// everything else is read as CSV.
func DetectFormat(name string, data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return FormatCSV
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return FormatCSV
	}
	if bytes.Contains(trimmed, []byte(`"sheets"`)) {
		return FormatJSON
	}
	if bytes.Contains(trimmed, []byte(`"submodels"`)) || bytes.Contains(trimmed, []byte(`"assetAdministrationShells"`)) {
		return FormatAAS
	}
	return FormatJSON
}

// Input is one document to convert.
type Input struct {
	// Name identifies the document, usually its file name.
	Name   string
	Format Format
	Data   []byte
	// SpecNumber is used for AAS environments which do not carry one.
	SpecNumber string
}

// Result is a converted document.
type Result struct {
	Name    string
	Format  Format
	Project string
	Summary *model.SpecSummary
	Report  validation.Report
	IVML    []byte
	Index   []byte
	// Duration is the conversion time.
	Duration time.Duration
}

// Observer is notified about finished conversions.
type Observer interface {
	ObserveConversion(format Format, result *Result, err error)
}

// Options configure a Converter.
type Options struct {
	Extraction extraction.Options
	IVML       ivml.Options
	// VerifyAAS checks AAS environments against the metamodel constraints.
	VerifyAAS bool
}

// DefaultOptions returns the default extraction heuristics without name prefix.
func DefaultOptions() Options {
	return Options{Extraction: extraction.DefaultOptions()}
}

// Converter converts documents. It holds only immutable registries and may be used
// concurrently; every conversion creates its own processor and validator run.
type Converter struct {
	opts      Options
	chain     *semanticid.Chain
	basic     *model.BasicTypes
	imports   *imports.Registry
	validator *validation.Validator
	writer    *ivml.Writer
	observer  Observer
}

// NewConverter creates a converter with the default registries.
func NewConverter(opts Options) *Converter {
	chain := semanticid.DefaultChain()
	basic := model.NewBasicTypes()
	imp := imports.Default()
	return &Converter{
		opts:      opts,
		chain:     chain,
		basic:     basic,
		imports:   imp,
		validator: validation.New(basic, imp),
		writer:    ivml.NewWriter(opts.IVML, basic, imp),
	}
}

// WithObserver sets the observer notified about conversions.
func (c *Converter) WithObserver(o Observer) *Converter {
	c.observer = o
	return c
}

// Writer returns the IVML writer of the converter.
func (c *Converter) Writer() *ivml.Writer {
	return c.writer
}

// Convert reads, validates and emits one document.
func (c *Converter) Convert(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()
	format := in.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(in.Name, in.Data)
	}
	result, err := c.convert(ctx, in, format)
	if result != nil {
		result.Duration = time.Since(start)
	}
	if c.observer != nil {
		c.observer.ObserveConversion(format, result, err)
	}
	if err != nil {
		logger.LogError("convert "+in.Name, err)
		return nil, err
	}
	logger.Infof("Converted %s (%s) to project %s in %s", in.Name, format, result.Project, result.Duration)
	return result, nil
}

func (c *Converter) convert(ctx context.Context, in Input, format Format) (*Result, error) {
	var summary *model.SpecSummary
	switch format {
	case FormatJSON, FormatCSV:
		doc, err := c.readRows(in, format)
		if err != nil {
			return nil, err
		}
		summary, err = extraction.NewProcessor(c.opts.Extraction, c.chain, c.basic).Run(ctx, doc.Source())
		if err != nil {
			return nil, err
		}
	case FormatAAS:
		reader := aasjson.NewReader(aasjson.Options{SpecNumber: in.SpecNumber, Verify: c.opts.VerifyAAS}, c.basic, c.chain)
		var err error
		summary, err = reader.Read(in.Data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", smterrors.ErrUnsupportedFormat, format)
	}
	if len(summary.Types) == 0 {
		return nil, fmt.Errorf("%w: %s", smterrors.ErrEmptyDocument, in.Name)
	}
	result, err := c.Emit(summary)
	if err != nil {
		return nil, err
	}
	result.Name = in.Name
	result.Format = format
	return result, nil
}

func (c *Converter) readRows(in Input, format Format) (*rows.Document, error) {
	name := strings.TrimSuffix(filepath.Base(in.Name), filepath.Ext(in.Name))
	if format == FormatCSV {
		return rows.ReadCSV(bytes.NewReader(in.Data), name)
	}
	return rows.ParseJSON(in.Data, name)
}

// Emit validates summary in place and writes its IVML model and index.
func (c *Converter) Emit(summary *model.SpecSummary) (*Result, error) {
	report := c.validator.Validate(summary)
	var ivmlModel, index bytes.Buffer
	if err := c.writer.WriteModel(&ivmlModel, summary); err != nil {
		return nil, fmt.Errorf("write IVML model: %w", err)
	}
	if err := c.writer.WriteIndex(&index, summary); err != nil {
		return nil, fmt.Errorf("write IVML index: %w", err)
	}
	return &Result{
		Project: c.writer.ProjectName(summary),
		Summary: summary,
		Report:  report,
		IVML:    ivmlModel.Bytes(),
		Index:   index.Bytes(),
	}, nil
}

// ConvertAll converts independent documents in parallel with at most limit conversions at a
// time; limit <= 0 means no limit. Results keep the order of inputs. The first error cancels
// the remaining conversions.
func (c *Converter) ConvertAll(ctx context.Context, inputs []Input, limit int) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			r, err := c.Convert(gctx, in)
			if err != nil {
				return fmt.Errorf("convert %s: %w", in.Name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
