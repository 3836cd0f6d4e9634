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
	"context"
	"net/http"
	"strings"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

// DescriptionAPIAPIController binds http requests to an api service and writes the service results to the http response
type DescriptionAPIAPIController struct {
	service      DescriptionAPIAPIServicer
	errorHandler model.ErrorHandler
	contextPath  string
}

// NewDescriptionAPIAPIController creates a default api controller
func NewDescriptionAPIAPIController(s DescriptionAPIAPIServicer, contextPath string) *DescriptionAPIAPIController {
	return &DescriptionAPIAPIController{
		service:      s,
		errorHandler: model.DefaultErrorHandler,
		contextPath:  contextPath,
	}
}

// Routes returns all the api routes for the DescriptionAPIAPIController
func (c *DescriptionAPIAPIController) Routes() Routes {
	return Routes{
		"GetDescription": Route{
			strings.ToUpper("Get"),
			c.contextPath + "/description",
			c.GetDescription,
		},
	}
}

// GetDescription - Returns the self-describing information of a network resource (ServiceDescription)
func (c *DescriptionAPIAPIController) GetDescription(w http.ResponseWriter, r *http.Request) {
	result, err := c.service.GetDescription(r.Context())
	// If an error occurred, encode the error with the status code
	if err != nil {
		c.errorHandler(w, r, err, &result)
		return
	}
	// If no error, encode the body and the result code
	_ = model.EncodeJSONResponse(result.Body, &result.Code, w)
}

// DescriptionAPIAPIService returns a fixed service description.
type DescriptionAPIAPIService struct {
	description model.ServiceDescription
}

// NewDescriptionAPIAPIService creates a default api service
func NewDescriptionAPIAPIService(name string, version string, profiles []string) *DescriptionAPIAPIService {
	return &DescriptionAPIAPIService{description: model.ServiceDescription{
		Name:     name,
		Version:  version,
		Profiles: profiles,
	}}
}

// GetDescription - Returns the self-describing information of a network resource (ServiceDescription)
func (s *DescriptionAPIAPIService) GetDescription(_ context.Context) (model.ImplResponse, error) {
	return model.Response(http.StatusOK, s.description), nil
}
