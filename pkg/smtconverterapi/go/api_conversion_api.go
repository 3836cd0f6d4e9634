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

package openapi

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common"
	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

// DefaultMaxUploadBytes limits uploaded documents if no other limit is configured.
const DefaultMaxUploadBytes int64 = 32 << 20

// ConversionAPIAPIController binds http requests to an api service and writes the service results to the http response
type ConversionAPIAPIController struct {
	service        ConversionAPIAPIServicer
	errorHandler   model.ErrorHandler
	contextPath    string
	maxUploadBytes int64
}

// ConversionAPIAPIOption for how the controller is set up.
type ConversionAPIAPIOption func(*ConversionAPIAPIController)

// WithConversionAPIAPIErrorHandler inject ErrorHandler into controller
func WithConversionAPIAPIErrorHandler(h model.ErrorHandler) ConversionAPIAPIOption {
	return func(c *ConversionAPIAPIController) {
		c.errorHandler = h
	}
}

// WithMaxUploadBytes limits the size of uploaded documents. Values <= 0 keep the default.
func WithMaxUploadBytes(n int64) ConversionAPIAPIOption {
	return func(c *ConversionAPIAPIController) {
		if n > 0 {
			c.maxUploadBytes = n
		}
	}
}

// NewConversionAPIAPIController creates a default api controller
func NewConversionAPIAPIController(s ConversionAPIAPIServicer, contextPath string, opts ...ConversionAPIAPIOption) *ConversionAPIAPIController {
	controller := &ConversionAPIAPIController{
		service:        s,
		errorHandler:   model.DefaultErrorHandler,
		contextPath:    contextPath,
		maxUploadBytes: DefaultMaxUploadBytes,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Routes returns all the api routes for the ConversionAPIAPIController
func (c *ConversionAPIAPIController) Routes() Routes {
	return Routes{
		"PostConversion": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/conversions",
			c.PostConversion,
		},
		"PostAASConversion": Route{
			strings.ToUpper("Post"),
			c.contextPath + "/conversions/aas",
			c.PostAASConversion,
		},
		"GetAllConversions": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/conversions",
			c.GetAllConversions,
		},
		"GetConversionById": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/conversions/{conversionIdentifier}",
			c.GetConversionByID,
		},
		"GetConversionIVMLById": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/conversions/{conversionIdentifier}/ivml",
			c.GetConversionIVMLByID,
		},
		"GetConversionIndexById": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/conversions/{conversionIdentifier}/index",
			c.GetConversionIndexByID,
		},
		"DeleteConversionById": Route{
			strings.ToUpper("Delete"),
			c.contextPath + "/conversions/{conversionIdentifier}",
			c.DeleteConversionByID,
		},
	}
}

// readDocument reads the request body into a ConversionRequest. It reports false if an error
// response has already been written.
func (c *ConversionAPIAPIController) readDocument(w http.ResponseWriter, r *http.Request, operation string) (ConversionRequest, bool) {
	query, err := model.ParseQuery(r.URL.RawQuery)
	if err != nil {
		c.errorHandler(w, r, &model.ParsingError{Err: err}, nil)
		return ConversionRequest{}, false
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, c.maxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			result := common.NewErrorResponse(err, http.StatusRequestEntityTooLarge, "SMTCONV", operation, "PayloadTooLarge")
			_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
			return ConversionRequest{}, false
		}
		c.errorHandler(w, r, &model.ParsingError{Param: "body", Err: err}, nil)
		return ConversionRequest{}, false
	}
	if len(data) == 0 {
		c.errorHandler(w, r, &model.RequiredError{Field: "body"}, nil)
		return ConversionRequest{}, false
	}

	format := query.Get("format")
	if format == "" {
		if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mediaType == "text/csv" {
			format = "csv"
		}
	}

	return ConversionRequest{
		Name:       query.Get("name"),
		Format:     format,
		SpecNumber: query.Get("specNumber"),
		Data:       data,
	}, true
}

// PostConversion - Converts an uploaded row document and stores the result
func (c *ConversionAPIAPIController) PostConversion(w http.ResponseWriter, r *http.Request) {
	request, ok := c.readDocument(w, r, "PostConversion")
	if !ok {
		return
	}
	result, err := c.service.PostConversion(r.Context(), request)
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// PostAASConversion - Converts an uploaded AAS environment and stores the result
func (c *ConversionAPIAPIController) PostAASConversion(w http.ResponseWriter, r *http.Request) {
	request, ok := c.readDocument(w, r, "PostAASConversion")
	if !ok {
		return
	}
	request.Format = "aas"
	result, err := c.service.PostAASConversion(r.Context(), request)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetAllConversions - Returns a page of stored conversions
func (c *ConversionAPIAPIController) GetAllConversions(w http.ResponseWriter, r *http.Request) {
	query, err := model.ParseQuery(r.URL.RawQuery)
	if err != nil {
		c.errorHandler(w, r, &model.ParsingError{Err: err}, nil)
		return
	}
	limitParam, err := model.ParseNumericParameter[int32](
		query.Get("limit"),
		model.WithDefaultOrParse[int32](100, model.ParseInt32),
		model.WithMinimum[int32](1),
		model.WithMaximum[int32](1000),
	)
	if err != nil {
		c.errorHandler(w, r, &model.ParsingError{Param: "limit", Err: err}, nil)
		return
	}
	cursorParam := query.Get("cursor")
	result, err := c.service.GetAllConversions(r.Context(), limitParam, cursorParam)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

func (c *ConversionAPIAPIController) conversionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	conversionIdentifierParam := chi.URLParam(r, "conversionIdentifier")
	if conversionIdentifierParam == "" {
		c.errorHandler(w, r, &model.RequiredError{Field: "conversionIdentifier"}, nil)
		return "", false
	}
	return conversionIdentifierParam, true
}

// GetConversionByID - Returns a specific conversion
func (c *ConversionAPIAPIController) GetConversionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.conversionID(w, r)
	if !ok {
		return
	}
	result, err := c.service.GetConversionByID(r.Context(), id)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetConversionIVMLByID - Returns the IVML model of a conversion
func (c *ConversionAPIAPIController) GetConversionIVMLByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.conversionID(w, r)
	if !ok {
		return
	}
	result, err := c.service.GetConversionIVMLByID(r.Context(), id)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// GetConversionIndexByID - Returns the text index of a conversion
func (c *ConversionAPIAPIController) GetConversionIndexByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.conversionID(w, r)
	if !ok {
		return
	}
	result, err := c.service.GetConversionIndexByID(r.Context(), id)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// DeleteConversionByID - Deletes a conversion
func (c *ConversionAPIAPIController) DeleteConversionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := c.conversionID(w, r)
	if !ok {
		return
	}
	result, err := c.service.DeleteConversionByID(r.Context(), id)
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}
