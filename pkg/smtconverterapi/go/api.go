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

// Package openapi provides the HTTP controllers of the Submodel Template Converter service.
//
// Controllers parse requests, pass the data to a servicer and write the servicer's
// results to the http response.
package openapi

import (
	"context"
	"net/http"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

// ConversionAPIAPIRouter defines the required methods for binding the api requests to a responses for the ConversionAPIAPI
// The ConversionAPIAPIRouter implementation should parse necessary information from the http request,
// pass the data to a ConversionAPIAPIServicer to perform the required actions, then write the service results to the http response.
type ConversionAPIAPIRouter interface {
	PostConversion(http.ResponseWriter, *http.Request)
	PostAASConversion(http.ResponseWriter, *http.Request)
	GetAllConversions(http.ResponseWriter, *http.Request)
	GetConversionByID(http.ResponseWriter, *http.Request)
	GetConversionIVMLByID(http.ResponseWriter, *http.Request)
	GetConversionIndexByID(http.ResponseWriter, *http.Request)
	DeleteConversionByID(http.ResponseWriter, *http.Request)
}

// DescriptionAPIAPIRouter defines the required methods for binding the api requests to a responses for the DescriptionAPIAPI
type DescriptionAPIAPIRouter interface {
	GetDescription(http.ResponseWriter, *http.Request)
}

// ConversionAPIAPIServicer defines the api actions for the ConversionAPIAPI service
type ConversionAPIAPIServicer interface {
	PostConversion(context.Context, ConversionRequest) (model.ImplResponse, error)
	PostAASConversion(context.Context, ConversionRequest) (model.ImplResponse, error)
	GetAllConversions(context.Context, int32, string) (model.ImplResponse, error)
	GetConversionByID(context.Context, string) (model.ImplResponse, error)
	GetConversionIVMLByID(context.Context, string) (model.ImplResponse, error)
	GetConversionIndexByID(context.Context, string) (model.ImplResponse, error)
	DeleteConversionByID(context.Context, string) (model.ImplResponse, error)
}

// DescriptionAPIAPIServicer defines the api actions for the DescriptionAPIAPI service
type DescriptionAPIAPIServicer interface {
	GetDescription(context.Context) (model.ImplResponse, error)
}
