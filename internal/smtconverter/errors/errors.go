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

// Package errors provides centralized error definitions for the submodel template converter.
package errors

import "github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"

// Conversion-related errors
var (
	// ErrConversionNotFound is returned when the requested conversion does not exist.
	ErrConversionNotFound = common.NewErrNotFound("Conversion not found")

	// ErrConversionAlreadyExists is returned when a conversion with the same id is stored twice.
	ErrConversionAlreadyExists = common.NewErrConflict("Conversion already exists")

	// ErrEmptyDocument is returned when a document yields no types at all.
	ErrEmptyDocument = common.NewErrBadRequest("Document contains no submodel template types")
)

// Input-related errors
var (
	// ErrInvalidRowDocument is returned when a row document violates the row document schema.
	ErrInvalidRowDocument = common.NewErrBadRequest("Row document does not match the row document schema")

	// ErrUnsupportedFormat is returned for input formats the converter cannot read.
	ErrUnsupportedFormat = common.NewErrBadRequest("Unsupported input format")

	// ErrInvalidEnvironment is returned when an AAS environment cannot be decoded.
	ErrInvalidEnvironment = common.NewErrBadRequest("Invalid AAS environment")

	// ErrEnvironmentVerificationFailed is returned when an AAS environment violates metamodel constraints.
	ErrEnvironmentVerificationFailed = common.NewErrBadRequest("AAS environment verification failed")
)

// Storage-related errors
var (
	// ErrArtifactUploadFailed is returned when generated artifacts cannot be written to the object store.
	ErrArtifactUploadFailed = common.NewInternalServerError("Failed to upload conversion artifacts - see console for details")

	// ErrArtifactNotFound is returned when an artifact is missing in the object store.
	ErrArtifactNotFound = common.NewErrNotFound("Conversion artifact not found")

	// ErrStorageFailure is returned when the conversion store fails.
	ErrStorageFailure = common.NewInternalServerError("Conversion store failure - see console for details")
)

// Event-related errors
var (
	// ErrEventPublishFailed is returned when a conversion event cannot be published.
	ErrEventPublishFailed = common.NewInternalServerError("Failed to publish conversion event")
)
