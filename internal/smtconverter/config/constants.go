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

// Package config holds the constants of the converter service and maps the service
// configuration onto the conversion pipeline.
package config

import (
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/extraction"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/ivml"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/logger"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/smtconverter/pipeline"
)

// Service constants
const (
	ComponentName   = "SMTCONV"
	ServiceName     = "BaSyx Submodel Template Converter"
	ServiceVersion  = "1.0.0"
	DefaultPort     = 5080
	DefaultWorkers  = 4
	OpenAPISpecPath = "/api-docs/openapi.yaml"
	SwaggerUIPath   = "/swagger"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongoDB  = "mongodb"
)

// Profiles returned by the description endpoint.
var Profiles = []string{
	"https://basyx.org/smtconverter/SSP-001",
}

// PipelineOptions maps the converter settings to pipeline options.
func PipelineOptions(cfg common.ConverterConfig) pipeline.Options {
	return pipeline.Options{
		Extraction: extraction.Options{
			OrAlternatives:           cfg.Heuristics.OrAlternatives,
			GenericFieldPairing:      cfg.Heuristics.GenericFieldPairing,
			MaxSplitContinuationRows: cfg.Heuristics.MaxSplitContinuationRows,
			StrictHeaders:            cfg.Heuristics.StrictHeaders,
		},
		IVML:      ivml.Options{NamePrefix: cfg.NamePrefix},
		VerifyAAS: cfg.VerifyAAS,
	}
}

// Workers returns the configured batch parallelism.
func Workers(cfg common.ConverterConfig) int {
	if cfg.Workers <= 0 {
		return DefaultWorkers
	}
	return cfg.Workers
}

// ApplyLogLevel sets the logger threshold. Unknown levels keep the current one.
func ApplyLogLevel(level string) bool {
	l, ok := logger.ParseLevel(level)
	if !ok {
		logger.Warnf("unknown log level %q, keeping %v", level, logger.GetLevel())
		return false
	}
	logger.SetLevel(l)
	return true
}
