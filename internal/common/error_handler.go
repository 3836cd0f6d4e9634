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

package common

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/eclipse-basyx/basyx-go-smtconverter/internal/common/model"
)

const (
	prefixNotFound      = "404 Not Found: "
	prefixBadRequest    = "400 Bad Request: "
	prefixDenied        = "403 Forbidden: "
	prefixConflict      = "409 Conflict: "
	prefixInternalError = "500 Internal Server Error: "
)

type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

func NewErrorHandler(messageType string, text error, code string, correlationId string, timestamp string) *ErrorHandler {
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          text.Error(),
		Code:          code,
		CorrelationId: correlationId,
		Timestamp:     timestamp,
	}
}

func NewErrNotFound(elementId string) error {
	return errors.New(prefixNotFound + elementId)
}

func NewErrBadRequest(message string) error {
	return errors.New(prefixBadRequest + message)
}

func NewErrDenied(message string) error {
	return errors.New(prefixDenied + message)
}

func NewErrConflict(message string) error {
	return errors.New(prefixConflict + message)
}

func NewInternalServerError(message string) error {
	return errors.New(prefixInternalError + message)
}

func IsErrNotFound(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixNotFound)
}

func IsErrBadRequest(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixBadRequest)
}

func IsErrDenied(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixDenied)
}

func IsErrConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixConflict)
}

func IsInternalServerError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), prefixInternalError)
}

// StatusCode maps the prefix of err to an HTTP status, 500 for unknown errors.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsErrBadRequest(err):
		return http.StatusBadRequest
	case IsErrNotFound(err):
		return http.StatusNotFound
	case IsErrDenied(err):
		return http.StatusForbidden
	case IsErrConflict(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the JSON error result of a failed operation. The code is composed of
// component, operation and detail, e.g. "SMTCONV-POSTCONV-BadRequest".
func NewErrorResponse(err error, status int, component string, operation string, detail string) model.ImplResponse {
	code := strings.ToUpper(component) + "-" + strings.ToUpper(operation) + "-" + detail
	log.Printf("🧩 [%s] %s failed with %d: %v", component, operation, status, err)
	message := NewErrorHandler("Error", err, code, "", time.Now().UTC().Format(time.RFC3339))
	return model.Response(status, model.Result{Messages: []model.Message{{
		Code:          message.Code,
		CorrelationID: message.CorrelationId,
		MessageType:   message.MessageType,
		Text:          message.Text,
		Timestamp:     message.Timestamp,
	}}})
}

// NewAccessDeniedResponse is the response of requests rejected by the access guard.
func NewAccessDeniedResponse() model.ImplResponse {
	return NewErrorResponse(NewErrDenied("access denied"), http.StatusForbidden, "AUTH", "Guard", "Denied")
}
